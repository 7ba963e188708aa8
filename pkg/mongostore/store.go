package mongostore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/docshape/docshape/pkg/document"
	"github.com/docshape/docshape/pkg/model"
)

// Store implements model.Collection over one MongoDB collection. Documents
// are keyed by a string uuid under "_id"; InsertOrUpdate is a replace with
// upsert, so first saves insert and later saves overwrite in one operation.
type Store struct {
	coll    *mongo.Collection
	idField string
}

// Option configures a Store.
type Option func(*Store)

// WithIDField overrides the document field carrying the identifier. Must
// match the model's setting.
func WithIDField(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.idField = name
		}
	}
}

// New wraps a driver collection.
func New(coll *mongo.Collection, opts ...Option) *Store {
	s := &Store{coll: coll, idField: "_id"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) InsertOrUpdate(ctx context.Context, doc document.Document) (string, error) {
	id, _ := doc[s.idField].(string)
	if id == "" {
		id = uuid.NewString()
	}
	replacement := document.Clone(doc)
	delete(replacement, s.idField)
	replacement["_id"] = id

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, replacement, options.Replace().SetUpsert(true))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (document.Document, error) {
	var raw bson.M
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	doc := fromBSON(raw)
	delete(doc, "_id")
	if s.idField != "_id" {
		delete(doc, s.idField)
	}
	return doc, nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// fromBSON rewrites a decoded BSON document into the document value union:
// int32 narrows to int, BSON datetimes become UTC time.Time, and nested
// documents and arrays are rewritten recursively.
func fromBSON(m bson.M) document.Document {
	out := make(document.Document, len(m))
	for k, v := range m {
		out[k] = valueFromBSON(v)
	}
	return out
}

func valueFromBSON(v any) any {
	switch val := v.(type) {
	case int32:
		return int(val)
	case bson.DateTime:
		return val.Time().UTC()
	case bson.M:
		return fromBSON(val)
	case bson.D:
		m := make(document.Document, len(val))
		for _, e := range val {
			m[e.Key] = valueFromBSON(e.Value)
		}
		return m
	case bson.A:
		out := make([]any, len(val))
		for i, el := range val {
			out[i] = valueFromBSON(el)
		}
		return out
	default:
		return v
	}
}
