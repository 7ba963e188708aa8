package schema

import (
	"fmt"
	"strings"
)

// StructuralError reports a malformed schema declaration: an unknown or nil
// field type, a name collision between a literal field and a virtual, or a
// cyclic nesting. It is raised at schema-build time and is never
// recoverable.
type StructuralError struct {
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Field == "" {
		return "invalid schema: " + e.Reason
	}
	return fmt.Sprintf("invalid schema: field %q: %s", e.Field, e.Reason)
}

// ValidationError aggregates every violation found in one full walk of a
// document against its schema. Errors are keyed by dotted/indexed field path
// ("author.first", "comments[2].email") and each path carries the messages
// in the order the checks produced them. The walk always completes; a
// ValidationError is never partial.
type ValidationError struct {
	paths  []string
	byPath map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{byPath: make(map[string][]string)}
}

func (e *ValidationError) add(path, msg string) {
	if _, seen := e.byPath[path]; !seen {
		e.paths = append(e.paths, path)
	}
	e.byPath[path] = append(e.byPath[path], msg)
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, p := range e.paths {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(p)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.byPath[p], ", "))
	}
	return b.String()
}

// Has reports whether any error was recorded at the given field path.
func (e *ValidationError) Has(path string) bool {
	_, ok := e.byPath[path]
	return ok
}

// Get returns the messages recorded at the given field path, in order.
func (e *ValidationError) Get(path string) []string {
	return e.byPath[path]
}

// Fields returns every field path with at least one error, in the order the
// walk first touched them.
func (e *ValidationError) Fields() []string {
	return e.paths
}

// Len is the total number of recorded messages across all paths.
func (e *ValidationError) Len() int {
	n := 0
	for _, msgs := range e.byPath {
		n += len(msgs)
	}
	return n
}

func (e *ValidationError) empty() bool {
	return len(e.paths) == 0
}
