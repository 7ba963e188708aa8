// Package memstore provides an in-memory implementation of the
// model.Collection interface backed by a mutex-guarded map. It exists for
// tests and local development: identifiers are random UUIDs, documents are
// always deep-cloned across the boundary, and FailWith injects store-level
// failures on demand.
package memstore
