// Package schemayaml builds schemas from YAML declarations, so document
// shapes can live in configuration rather than code.
//
// A declaration is a mapping from field name to the same keys the Go surface
// recognizes: type, required, nullable, default (or default_now for a
// save-time timestamp), and validates. Declaration order is preserved as the
// schema's field walk order. Union fields declare "type: mixed" with an
// "of:" list of at least two member declarations.
//
//	name:
//	  type: string
//	  required: true
//	wheels:
//	  type: int
//	  default: 4
//	  validates:
//	    - gte: 0
//	author:
//	  type: document
//	  required: true
//	  fields:
//	    first: {type: string, required: true}
//	    last: {type: string, required: true}
//	tags:
//	  type: array
//	  of: {type: string}
//	  default: [blog]
//	  validates:
//	    - length: {min: 1}
//
// Validator entries are the parametrized builtins: gte, lte, gt, lt,
// between {min, max}, length (an int minimum or {min, max}), match, and
// one_of. Custom validators cannot be expressed as data; attach them to the
// parsed schema's fields in code if needed.
package schemayaml
