package model_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docshape/docshape/pkg/document"
	"github.com/docshape/docshape/pkg/memstore"
	"github.com/docshape/docshape/pkg/model"
	"github.com/docshape/docshape/pkg/schema"
	"github.com/docshape/docshape/pkg/validator"
)

// Example_saveLifecycle demonstrates declaring a schema with defaults,
// validators, and hooks, and driving a document through the save pipeline.
func Example_saveLifecycle() {
	carSchema := schema.MustNew(schema.Fields{
		"name":       {Type: schema.String, Required: true},
		"wheels":     {Type: schema.Int, Default: schema.Literal(4), Validate: []validator.Validator{validator.GTE(0)}},
		"updated_at": {Type: schema.DateTime},
	}, "name", "wheels", "updated_at")

	carSchema.Pre("save", func(ctx context.Context, doc document.Document) error {
		doc["updated_at"] = time.Now().UTC()
		return nil
	})

	cars := model.New(carSchema, memstore.New())

	brum := cars.NewInstance(document.Document{"name": "Brum"})
	if err := brum.Save(context.Background()); err != nil {
		panic(err)
	}
	fmt.Println("wheels:", brum.Get("wheels"))

	// A document that violates the schema never reaches the store.
	bad := cars.NewInstance(document.Document{"name": "Wreck", "wheels": -1})
	err := bad.Save(context.Background())
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		fmt.Println("rejected:", ve.Get("wheels")[0])
	}

	// Output:
	// wheels: 4
	// rejected: must be >= 0
}

// Example_virtualFields demonstrates a computed field writing through to
// the literal fields that back it.
func Example_virtualFields() {
	personSchema := schema.MustNew(schema.Fields{
		"first": {Type: schema.String, Required: true},
		"last":  {Type: schema.String, Required: true},
	}, "first", "last")

	_ = personSchema.Virtual("full_name",
		func(doc document.Document) any {
			return fmt.Sprintf("%v %v", doc["first"], doc["last"])
		},
		func(doc document.Document, v any) error {
			s, ok := v.(string)
			if !ok {
				return errors.New("full_name must be a string")
			}
			var first, last string
			if _, err := fmt.Sscanf(s, "%s %s", &first, &last); err != nil {
				return errors.New("full_name needs two parts")
			}
			doc["first"], doc["last"] = first, last
			return nil
		},
	)

	people := model.New(personSchema, memstore.New())
	p := people.NewInstance(nil)
	_ = p.Set("full_name", "John Humphreys")
	fmt.Println(p.Get("first"))
	fmt.Println(p.Get("full_name"))

	// Output:
	// John
	// John Humphreys
}
