// Package validator provides the per-field validation functions attached to
// schema fields.
//
// A Validator is a plain unary function from value to optional error; the
// factories here (GTE, LTE, GT, LT, Between, Length, Match, OneOf) return
// configured Validators, and application code can supply arbitrary custom
// functions with the same signature. The schema engine runs every validator
// declared on a field and records every failure, so validators should each
// check exactly one property and report it with a self-contained message.
//
// All factories are stateless and the returned functions are safe for
// concurrent use; Match compiles its pattern once at declaration time and
// panics on an invalid pattern to fail fast during schema construction.
package validator
