package openapi

import "slices"

// DataType is a JSON Schema primitive type name.
//
// See: https://spec.openapis.org/oas/v3.1.0#data-types
type DataType string

const (
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeInteger DataType = "integer"
	TypeBoolean DataType = "boolean"
	TypeArray   DataType = "array"
	TypeObject  DataType = "object"
)

// PropertyBuilder assembles one property of an object schema.
// Unset fields are left out of the rendered schema.
//
// See: https://spec.openapis.org/oas/v3.1.0#schema-object
type PropertyBuilder struct {
	name        string
	dataType    DataType
	format      string
	title       string
	description string
	nullable    bool
	maximum     *float64
	minimum     *float64
	maxLength   *int
	minLength   *int
	pattern     string
	readOnly    *bool
	writeOnly   *bool
	enum        []any
	example     any
	deprecated  *bool
	arrayType   DataType
	itemsRef    string
}

// NewProperty returns a property builder with the given name.
func NewProperty(name string) *PropertyBuilder {
	return &PropertyBuilder{name: name}
}

// Name sets the property name, unique within its object schema.
func (b *PropertyBuilder) Name(name string) *PropertyBuilder {
	b.name = name
	return b
}

// PropertyName returns the property name.
func (b *PropertyBuilder) PropertyName() string {
	return b.name
}

// Type sets the property type.
func (b *PropertyBuilder) Type(t DataType) *PropertyBuilder {
	b.dataType = t
	return b
}

// Format sets the format annotation, for example "date-time" or "uuid".
//
// See: https://spec.openapis.org/oas/v3.1.0#data-type-format
func (b *PropertyBuilder) Format(format string) *PropertyBuilder {
	b.format = format
	return b
}

func (b *PropertyBuilder) Title(title string) *PropertyBuilder {
	b.title = title
	return b
}

func (b *PropertyBuilder) Description(text ...string) *PropertyBuilder {
	b.description = lines(text)
	return b
}

// Nullable marks the property as accepting null.
func (b *PropertyBuilder) Nullable(nullable bool) *PropertyBuilder {
	b.nullable = nullable
	return b
}

func (b *PropertyBuilder) Maximum(v float64) *PropertyBuilder {
	b.maximum = &v
	return b
}

func (b *PropertyBuilder) Minimum(v float64) *PropertyBuilder {
	b.minimum = &v
	return b
}

func (b *PropertyBuilder) MaxLength(n int) *PropertyBuilder {
	b.maxLength = &n
	return b
}

func (b *PropertyBuilder) MinLength(n int) *PropertyBuilder {
	b.minLength = &n
	return b
}

// Length sets both minLength and maxLength to n.
func (b *PropertyBuilder) Length(n int) *PropertyBuilder {
	return b.MinLength(n).MaxLength(n)
}

// Pattern sets an ECMA-262 regular expression the value must match.
func (b *PropertyBuilder) Pattern(pattern string) *PropertyBuilder {
	b.pattern = pattern
	return b
}

func (b *PropertyBuilder) ReadOnly(v bool) *PropertyBuilder {
	b.readOnly = &v
	return b
}

func (b *PropertyBuilder) WriteOnly(v bool) *PropertyBuilder {
	b.writeOnly = &v
	return b
}

// Enum adds allowed values. A value loosely equal to one already present
// is skipped, so 1 and "1" count as the same value.
func (b *PropertyBuilder) Enum(values ...any) *PropertyBuilder {
	b.enum = appendEnum(b.enum, values...)
	return b
}

func (b *PropertyBuilder) Example(example any) *PropertyBuilder {
	b.example = example
	return b
}

// Deprecated sets the deprecated flag. An explicit false is rendered.
func (b *PropertyBuilder) Deprecated(v bool) *PropertyBuilder {
	b.deprecated = &v
	return b
}

// ArrayType renders the property as items of the given primitive type.
// It is meant for properties of type array.
func (b *PropertyBuilder) ArrayType(t DataType) *PropertyBuilder {
	b.arrayType = t
	return b
}

// ItemsRef renders the property items as a reference, see Ref.
// It takes precedence over ArrayType.
func (b *PropertyBuilder) ItemsRef(ref string) *PropertyBuilder {
	b.itemsRef = ref
	return b
}

// Render returns the property schema.
func (b *PropertyBuilder) Render() *Schema {
	schema := &Schema{
		Type:        string(b.dataType),
		Nullable:    b.nullable,
		Format:      b.format,
		Title:       b.title,
		Description: b.description,
		Maximum:     clonePtr(b.maximum),
		Minimum:     clonePtr(b.minimum),
		MaxLength:   clonePtr(b.maxLength),
		MinLength:   clonePtr(b.minLength),
		Pattern:     b.pattern,
		ReadOnly:    clonePtr(b.readOnly),
		WriteOnly:   clonePtr(b.writeOnly),
		Enum:        slices.Clone(b.enum),
		Example:     b.example,
		Deprecated:  clonePtr(b.deprecated),
	}

	switch {
	case b.itemsRef != "":
		schema.Items = &Schema{Ref: b.itemsRef}
	case b.arrayType != "":
		schema.Items = &Schema{Type: string(b.arrayType)}
	}

	return schema
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
