package schemayaml

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/docshape/docshape/pkg/schema"
	"github.com/docshape/docshape/pkg/validator"
)

// ErrInvalidDeclaration wraps YAML-level failures so callers can
// distinguish a broken file from a structurally invalid schema.
var ErrInvalidDeclaration = errors.New("invalid schema declaration")

// fieldDecl mirrors one field's YAML mapping. Default stays a raw node so
// scalar, list, and mapping defaults all decode into the document value
// union; Fields stays raw so nested declarations keep their source order.
// The raw members are value-typed: yaml only re-assigns node values during
// decoding, so a *yaml.Node member would stay a zero node. Absent keys are
// detected with IsZero instead.
type fieldDecl struct {
	Type       string                 `yaml:"type"`
	Required   bool                   `yaml:"required"`
	Nullable   bool                   `yaml:"nullable"`
	Default    yaml.Node              `yaml:"default"`
	DefaultNow bool                   `yaml:"default_now"`
	Validates  []map[string]yaml.Node `yaml:"validates"`
	Fields     yaml.Node              `yaml:"fields"`
	Of         yaml.Node              `yaml:"of"`
}

// Parse builds a Schema from a YAML declaration. The top level is a mapping
// from field name to a {type, required, default, validates} declaration;
// declaration order becomes the schema's field walk order. Nested documents
// declare "type: document" with a "fields:" mapping, embedded collections
// "type: array" with an "of:" element declaration.
func Parse(data []byte) (*schema.Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrInvalidDeclaration, err)
	}
	if len(root.Content) == 0 {
		return nil, &schema.StructuralError{Reason: "empty schema declaration"}
	}
	return parseSchema(root.Content[0])
}

// Load reads and parses a YAML schema declaration from disk.
func Load(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidDeclaration, err)
	}
	return Parse(data)
}

func parseSchema(n *yaml.Node) (*schema.Schema, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &schema.StructuralError{Reason: "schema declaration must be a mapping"}
	}
	fields := make(schema.Fields, len(n.Content)/2)
	order := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		var decl fieldDecl
		if err := n.Content[i+1].Decode(&decl); err != nil {
			return nil, errors.Join(ErrInvalidDeclaration, err)
		}
		f, err := buildField(name, &decl)
		if err != nil {
			return nil, err
		}
		fields[name] = f
		order = append(order, name)
	}
	return schema.New(fields, order...)
}

func buildField(name string, d *fieldDecl) (schema.Field, error) {
	t, err := buildType(name, d)
	if err != nil {
		return schema.Field{}, err
	}
	f := schema.Field{Type: t, Required: d.Required, Nullable: d.Nullable}

	switch {
	case d.DefaultNow:
		f.Default = schema.Producer(func() any { return time.Now().UTC() })
	case !d.Default.IsZero():
		var v any
		if err := d.Default.Decode(&v); err != nil {
			return schema.Field{}, errors.Join(ErrInvalidDeclaration, err)
		}
		f.Default = schema.Literal(normalize(v))
	}

	for _, rule := range d.Validates {
		v, err := buildValidator(name, rule)
		if err != nil {
			return schema.Field{}, err
		}
		f.Validate = append(f.Validate, v)
	}
	return f, nil
}

func buildType(name string, d *fieldDecl) (schema.FieldType, error) {
	switch d.Type {
	case "string":
		return schema.String, nil
	case "int":
		return schema.Int, nil
	case "long":
		return schema.Int64, nil
	case "float":
		return schema.Float, nil
	case "bool":
		return schema.Bool, nil
	case "datetime":
		return schema.DateTime, nil
	case "document":
		if d.Fields.IsZero() {
			return nil, &schema.StructuralError{Field: name, Reason: "document type requires a fields mapping"}
		}
		return parseSchema(&d.Fields)
	case "array":
		if d.Of.IsZero() {
			return nil, &schema.StructuralError{Field: name, Reason: "array type requires an of declaration"}
		}
		var elem fieldDecl
		if err := d.Of.Decode(&elem); err != nil {
			return nil, errors.Join(ErrInvalidDeclaration, err)
		}
		et, err := buildType(name, &elem)
		if err != nil {
			return nil, err
		}
		return schema.ArrayOf(et), nil
	case "mixed":
		if d.Of.IsZero() {
			return nil, &schema.StructuralError{Field: name, Reason: "mixed type requires an of list"}
		}
		var decls []fieldDecl
		if err := d.Of.Decode(&decls); err != nil {
			return nil, errors.Join(ErrInvalidDeclaration, err)
		}
		if len(decls) < 2 {
			return nil, &schema.StructuralError{Field: name, Reason: "mixed type requires at least two members"}
		}
		members := make([]schema.FieldType, len(decls))
		for i := range decls {
			mt, err := buildType(name, &decls[i])
			if err != nil {
				return nil, err
			}
			members[i] = mt
		}
		return schema.MixedOf(members[0], members[1], members[2:]...), nil
	case "":
		return nil, &schema.StructuralError{Field: name, Reason: "missing type tag"}
	default:
		return nil, &schema.StructuralError{Field: name, Reason: fmt.Sprintf("unknown type tag %q", d.Type)}
	}
}

func buildValidator(name string, rule map[string]yaml.Node) (validator.Validator, error) {
	if len(rule) != 1 {
		return nil, &schema.StructuralError{Field: name, Reason: "each validates entry must hold exactly one rule"}
	}
	for key, node := range rule {
		switch key {
		case "gte", "lte", "gt", "lt":
			var bound float64
			if err := node.Decode(&bound); err != nil {
				return nil, errors.Join(ErrInvalidDeclaration, err)
			}
			switch key {
			case "gte":
				return validator.GTE(bound), nil
			case "lte":
				return validator.LTE(bound), nil
			case "gt":
				return validator.GT(bound), nil
			default:
				return validator.LT(bound), nil
			}
		case "between":
			var bounds struct {
				Min float64 `yaml:"min"`
				Max float64 `yaml:"max"`
			}
			if err := node.Decode(&bounds); err != nil {
				return nil, errors.Join(ErrInvalidDeclaration, err)
			}
			return validator.Between(bounds.Min, bounds.Max), nil
		case "length":
			if node.Kind == yaml.ScalarNode {
				var min int
				if err := node.Decode(&min); err != nil {
					return nil, errors.Join(ErrInvalidDeclaration, err)
				}
				return validator.Length(min), nil
			}
			var bounds struct {
				Min int  `yaml:"min"`
				Max *int `yaml:"max"`
			}
			if err := node.Decode(&bounds); err != nil {
				return nil, errors.Join(ErrInvalidDeclaration, err)
			}
			if bounds.Max != nil {
				return validator.Length(bounds.Min, *bounds.Max), nil
			}
			return validator.Length(bounds.Min), nil
		case "match":
			var pattern string
			if err := node.Decode(&pattern); err != nil {
				return nil, errors.Join(ErrInvalidDeclaration, err)
			}
			if _, err := regexp.Compile(pattern); err != nil {
				return nil, &schema.StructuralError{Field: name, Reason: fmt.Sprintf("invalid match pattern: %v", err)}
			}
			return validator.Match(pattern), nil
		case "one_of":
			var values []any
			if err := node.Decode(&values); err != nil {
				return nil, errors.Join(ErrInvalidDeclaration, err)
			}
			return validator.OneOf(values...), nil
		default:
			return nil, &schema.StructuralError{Field: name, Reason: fmt.Sprintf("unknown validator %q", key)}
		}
	}
	return nil, &schema.StructuralError{Field: name, Reason: "empty validates entry"}
}

// normalize rewrites decoded YAML composites into the document value union:
// mappings become map[string]any recursively, sequences []any.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, el := range val {
			val[k] = normalize(el)
		}
		return val
	case []any:
		for i, el := range val {
			val[i] = normalize(el)
		}
		return val
	default:
		return v
	}
}
