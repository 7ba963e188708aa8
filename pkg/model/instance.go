package model

import (
	"context"
	"log/slog"

	"github.com/docshape/docshape/pkg/document"
)

// saveEvent names the lifecycle event the save pipeline runs hooks for.
const saveEvent = "save"

// Instance is one document bound to its Model. It exclusively owns its
// underlying document; nothing is shared with other instances or with the
// maps it was constructed from. An Instance is not safe for concurrent use
// with itself, but independent instances may be used from independent
// goroutines freely.
type Instance struct {
	model *Model
	doc   document.Document
	stale bool
}

// Get reads a field. Virtuals are consulted first, then the literal
// document; an undeclared, unset name reads as nil.
func (in *Instance) Get(name string) any {
	if v, ok := in.model.schema.LookupVirtual(name); ok {
		return v.Get(in.doc)
	}
	return in.doc[name]
}

// Set writes a field. A virtual with a setter routes through it (and so
// writes whatever literal fields the setter touches); a virtual without one
// fails with ErrReadOnlyVirtual. Any declared literal field is written
// directly; names the schema knows nothing about fail with ErrUnknownField.
func (in *Instance) Set(name string, value any) error {
	if v, ok := in.model.schema.LookupVirtual(name); ok {
		if v.Set == nil {
			return ErrReadOnlyVirtual
		}
		return v.Set(in.doc, value)
	}
	if _, ok := in.model.schema.LookupField(name); !ok && name != in.model.idField {
		return ErrUnknownField
	}
	in.doc[name] = value
	return nil
}

// ID returns the store-assigned identifier, or "" before the first
// successful save.
func (in *Instance) ID() string {
	id, _ := in.doc[in.model.idField].(string)
	return id
}

// Document returns a deep copy of the underlying document.
func (in *Instance) Document() document.Document {
	return document.Clone(in.doc)
}

// Validate runs the schema engine against the current document without
// persisting. Defaults are materialized into the instance, exactly as a
// save would. Returns nil or the full *schema.ValidationError.
func (in *Instance) Validate() error {
	return in.model.schema.Validate(in.doc)
}

// Save runs the full pipeline: pre-save hooks in registration order, then
// validation, then the store write, then post-save hooks. The first failing
// step aborts everything downstream, so persistence never sees an invalid
// document and post-save hooks never run for a write that was not reported
// successful. On success the store-assigned identifier is recorded on the
// instance.
func (in *Instance) Save(ctx context.Context) error {
	if in.stale {
		return ErrStale
	}
	log := in.model.log

	for i, hook := range in.model.schema.PreHooks(saveEvent) {
		if err := hook(ctx, in.doc); err != nil {
			herr := &HookError{Event: saveEvent, Phase: "pre", Index: i, Err: err}
			log.DebugContext(ctx, "save aborted by pre hook", slog.Int("hook", i), slog.Any("error", err))
			return herr
		}
	}

	if err := in.model.schema.Validate(in.doc); err != nil {
		log.DebugContext(ctx, "save aborted by validation", slog.Any("error", err))
		return err
	}

	id, err := in.model.coll.InsertOrUpdate(ctx, in.doc)
	if err != nil {
		log.ErrorContext(ctx, "persistence failed", slog.Any("error", err))
		return &PersistenceError{Op: "save", Err: err}
	}
	in.doc[in.model.idField] = id

	for i, hook := range in.model.schema.PostHooks(saveEvent) {
		if err := hook(ctx, in.doc); err != nil {
			return &HookError{Event: saveEvent, Phase: "post", Index: i, Err: err}
		}
	}

	log.DebugContext(ctx, "document saved", slog.String("id", id))
	return nil
}

// Delete removes the persisted document by identifier. The instance is
// stale afterwards: further Save or Delete calls fail with ErrStale rather
// than re-inserting. Deleting a never-saved instance fails with ErrUnsaved.
func (in *Instance) Delete(ctx context.Context) error {
	if in.stale {
		return ErrStale
	}
	id := in.ID()
	if id == "" {
		return ErrUnsaved
	}
	if err := in.model.coll.DeleteByID(ctx, id); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	in.stale = true
	in.model.log.DebugContext(ctx, "document deleted", slog.String("id", id))
	return nil
}
