package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document exists under the requested
	// identifier. Collection implementations return it (or wrap it) from
	// FindByID and DeleteByID.
	ErrNotFound = errors.New("document not found")

	// ErrStale is returned by Save and Delete on an instance whose
	// document was already deleted. A deleted instance never silently
	// re-inserts.
	ErrStale = errors.New("instance is stale: document was deleted")

	// ErrUnsaved is returned by Delete on an instance that was never
	// persisted and so has no identifier to delete by.
	ErrUnsaved = errors.New("instance has no identifier")

	// ErrReadOnlyVirtual is returned by Set for a virtual registered
	// without a setter.
	ErrReadOnlyVirtual = errors.New("virtual field is read-only")

	// ErrUnknownField is returned by Set for a name that is neither a
	// declared field nor a virtual.
	ErrUnknownField = errors.New("unknown field")
)

// HookError reports that a lifecycle hook aborted the pipeline. It carries
// the event, the phase ("pre" or "post"), the hook's registration index, and
// the hook's reason as the wrapped cause.
type HookError struct {
	Event string
	Phase string
	Index int
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s-%s hook %d aborted: %v", e.Phase, e.Event, e.Index, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

// PersistenceError wraps a failure reported by the Collection. The cause is
// opaque to the model layer; no retries are attempted here.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
