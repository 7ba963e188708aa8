// Package schema implements the declarative document schema and its
// validation engine.
//
// A Schema is built once from Fields declarations and is immutable
// afterwards: every field names its type (a scalar kind, a nested *Schema,
// ArrayOf for embedded collections, or MixedOf for a union of types),
// whether it is required, whether it is nullable, an optional Default
// (literal or producer), and an ordered list of validators.
// Alongside the literal fields a Schema carries two registries: virtual
// fields (computed getter/setter pairs, excluded from validation) and
// pre/post lifecycle hooks keyed by event name, which the model layer
// executes around persistence.
//
// # Validation
//
// Schema.Validate walks the document in declared field order. Per field, in
// order: defaults are resolved and materialized into the document, the value
// is type-checked against the declared kind (recursing into nested schemas
// and per-index into array elements), requiredness is checked against
// post-default absence, and finally every declared validator runs with no
// short-circuiting between them. An explicit null value is its own case:
// valid on nullable fields, a violation otherwise, and never a trigger for
// default resolution. All violations are aggregated into a single
// *ValidationError keyed by dotted/indexed path; the walk always completes
// before the error is returned.
//
// # Usage
//
//	post := schema.MustNew(schema.Fields{
//	    "name":   {Type: schema.String, Required: true},
//	    "wheels": {Type: schema.Int, Default: schema.Literal(4),
//	        Validate: []validator.Validator{validator.GTE(0)}},
//	}, "name", "wheels")
//
//	post.Pre("save", func(ctx context.Context, doc document.Document) error {
//	    doc["updated_at"] = time.Now().UTC()
//	    return nil
//	})
//
//	if err := post.Validate(doc); err != nil {
//	    var ve *schema.ValidationError
//	    if errors.As(err, &ve) {
//	        for _, field := range ve.Fields() {
//	            // field-level messages via ve.Get(field)
//	        }
//	    }
//	}
package schema
