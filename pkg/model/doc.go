// Package model turns a schema plus a persistence collection into a
// document model: a factory whose instances wrap exactly one document each
// and orchestrate the save lifecycle.
//
// # Pipeline
//
// Instance.Save runs pre-save hooks in registration order, then the schema
// validation engine, then Collection.InsertOrUpdate, then post-save hooks.
// Validation is run by the pipeline itself immediately before persistence —
// it is not a user-registered hook, so it can be neither skipped nor
// reordered, and no invalid document is ever handed to the store. The first
// failure anywhere aborts the remainder of the pipeline and surfaces as one
// of four distinguishable kinds: *schema.ValidationError, *HookError,
// *PersistenceError, or a sentinel (ErrStale, ErrNotFound).
//
// # Identity
//
// The store assigns an identifier on first insert; Save records it in the
// instance's document (under "_id" unless WithIDField overrides it) and
// every later Save upserts by that identifier. Delete marks the instance
// stale; a stale instance refuses further saves instead of re-inserting.
//
// # Field access
//
// Instance.Get and Instance.Set form the accessor layer: the virtual
// registry is consulted first and the literal document second, per an
// explicit dispatch rather than reflection. Virtuals are derived state —
// they are never validated and never persisted unless their setter writes
// literal fields.
package model
