// Package document defines the value model shared by the schema engine and
// the persistence stores: a Document is a plain map from field name to a
// value drawn from a closed union of kinds (string, int, long, float, bool,
// datetime, nested document, array).
//
// Keeping the union closed lets the validation engine type-check values with
// a structural match instead of reflection, and lets stores define exact
// wire formats for every kind they may encounter.
//
// The package also provides the deep Clone used to guarantee that model
// instances never share nested state, and the Child/Index helpers that build
// the dotted and indexed field paths ("author.first", "comments[2].email")
// used to key validation errors.
package document
