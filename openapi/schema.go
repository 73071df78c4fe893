package openapi

import (
	"fmt"
	"slices"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// SchemaKind tags a schema variant.
type SchemaKind string

const (
	KindObject        SchemaKind = "object"
	KindString        SchemaKind = "string"
	KindReference     SchemaKind = "reference"
	KindItemReference SchemaKind = "item-reference"
	KindSecurity      SchemaKind = "security"
)

// SchemaBuilder is implemented by the schema variants: *ObjectSchemaBuilder,
// *StringSchemaBuilder, *ReferenceSchemaBuilder and *SecuritySchemaBuilder.
// The set is closed.
type SchemaBuilder interface {
	// Kind returns the variant tag.
	Kind() SchemaKind

	// KeyName returns the name the schema is registered under in the
	// document components.
	KeyName() string

	schemaBuilder()
}

// NewSchema returns an empty builder for the variant named by kind.
func NewSchema(kind SchemaKind) (SchemaBuilder, error) {
	switch kind {
	case KindObject:
		return NewObjectSchema(""), nil
	case KindString:
		return NewStringSchema(""), nil
	case KindReference, KindItemReference:
		return &ReferenceSchemaBuilder{kind: kind}, nil
	case KindSecurity:
		return NewSecuritySchema(""), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSchemaKind, kind)
}

// Configure builds the variant named by kind and passes it to fn.
//
//	s, err := openapi.Configure(openapi.KindObject, func(o *openapi.ObjectSchemaBuilder) {
//		o.Key("Pet").Required("id")
//	})
//
// The type parameter must be the builder type of kind, or SchemaBuilder.
func Configure[B SchemaBuilder](kind SchemaKind, fn func(B)) (SchemaBuilder, error) {
	return configureSchema(kind, fn)
}

// configureSchema is the untyped form of Configure. fn is nil or a
// func taking SchemaBuilder or one of the variant builder pointers.
func configureSchema(kind SchemaKind, fn any) (SchemaBuilder, error) {
	s, err := NewSchema(kind)
	if err != nil {
		return nil, err
	}

	switch f := fn.(type) {
	case nil:
	case func(SchemaBuilder):
		if f != nil {
			f(s)
		}
	case func(*ObjectSchemaBuilder):
		err = apply(s, f)
	case func(*StringSchemaBuilder):
		err = apply(s, f)
	case func(*ReferenceSchemaBuilder):
		err = apply(s, f)
	case func(*SecuritySchemaBuilder):
		err = apply(s, f)
	default:
		err = fmt.Errorf("%w: %q with %T", ErrSchemaKindMismatch, kind, fn)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func apply[B SchemaBuilder](s SchemaBuilder, fn func(B)) error {
	b, ok := s.(B)
	if !ok {
		return fmt.Errorf("%w: %q with %T", ErrSchemaKindMismatch, s.Kind(), fn)
	}
	if fn != nil {
		fn(b)
	}
	return nil
}

// renderDataSchema renders any variant usable as a data schema: a
// parameter schema, a media type schema or a components schema.
func renderDataSchema(s SchemaBuilder) (*Schema, error) {
	switch v := s.(type) {
	case *ObjectSchemaBuilder:
		return v.Render()
	case *StringSchemaBuilder:
		return v.Render(), nil
	case *ReferenceSchemaBuilder:
		return v.Render()
	case *SecuritySchemaBuilder:
		return nil, fmt.Errorf("%w: %q", ErrSecuritySchemaInline, v.key)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownSchemaKind, s)
}

// ObjectSchemaBuilder assembles an object schema from properties.
//
// See: https://spec.openapis.org/oas/v3.1.0#schema-object
type ObjectSchemaBuilder struct {
	key        string
	required   []string
	properties []*PropertyBuilder
}

// NewObjectSchema returns an object schema registered under key.
func NewObjectSchema(key string) *ObjectSchemaBuilder {
	return &ObjectSchemaBuilder{key: key}
}

func (b *ObjectSchemaBuilder) Kind() SchemaKind { return KindObject }
func (b *ObjectSchemaBuilder) KeyName() string  { return b.key }
func (b *ObjectSchemaBuilder) schemaBuilder()   {}

// Key sets the components key name.
func (b *ObjectSchemaBuilder) Key(key string) *ObjectSchemaBuilder {
	b.key = key
	return b
}

// Required appends property names to the required list. Names are not
// checked against the properties.
func (b *ObjectSchemaBuilder) Required(names ...string) *ObjectSchemaBuilder {
	b.required = append(b.required, names...)
	return b
}

// Properties configures one property per function.
func (b *ObjectSchemaBuilder) Properties(fns ...func(*PropertyBuilder)) *ObjectSchemaBuilder {
	for _, fn := range fns {
		p := &PropertyBuilder{}
		fn(p)
		b.AddProperty(p)
	}
	return b
}

// AddProperty appends a property. A property whose name is already taken
// is dropped and the first one is kept.
func (b *ObjectSchemaBuilder) AddProperty(p *PropertyBuilder) *ObjectSchemaBuilder {
	for _, existing := range b.properties {
		if existing.name == p.name {
			return b
		}
	}
	b.properties = append(b.properties, p)
	return b
}

// Render returns {type, required?, properties}.
func (b *ObjectSchemaBuilder) Render() (*Schema, error) {
	props := sequencedmap.New[string, *Schema]()
	for i, p := range b.properties {
		if p.name == "" {
			return nil, fmt.Errorf("%w: property %d of %q", ErrMissingPropertyName, i, b.key)
		}
		if props.Has(p.name) {
			continue
		}
		props.Set(p.name, p.Render())
	}

	return &Schema{
		Type:       string(TypeObject),
		Required:   slices.Clone(b.required),
		Properties: props,
	}, nil
}

// StringSchemaBuilder assembles a string schema.
//
// See: https://spec.openapis.org/oas/v3.1.0#schema-object
type StringSchemaBuilder struct {
	key        string
	format     string
	maximum    *float64
	minimum    *float64
	maxLength  *int
	minLength  *int
	pattern    string
	enum       []any
	example    any
	deprecated *bool
}

// NewStringSchema returns a string schema registered under key.
func NewStringSchema(key string) *StringSchemaBuilder {
	return &StringSchemaBuilder{key: key}
}

func (b *StringSchemaBuilder) Kind() SchemaKind { return KindString }
func (b *StringSchemaBuilder) KeyName() string  { return b.key }
func (b *StringSchemaBuilder) schemaBuilder()   {}

func (b *StringSchemaBuilder) Key(key string) *StringSchemaBuilder {
	b.key = key
	return b
}

func (b *StringSchemaBuilder) Format(format string) *StringSchemaBuilder {
	b.format = format
	return b
}

func (b *StringSchemaBuilder) Maximum(v float64) *StringSchemaBuilder {
	b.maximum = &v
	return b
}

func (b *StringSchemaBuilder) Minimum(v float64) *StringSchemaBuilder {
	b.minimum = &v
	return b
}

func (b *StringSchemaBuilder) MaxLength(n int) *StringSchemaBuilder {
	b.maxLength = &n
	return b
}

func (b *StringSchemaBuilder) MinLength(n int) *StringSchemaBuilder {
	b.minLength = &n
	return b
}

// Length sets both minLength and maxLength to n.
func (b *StringSchemaBuilder) Length(n int) *StringSchemaBuilder {
	return b.MinLength(n).MaxLength(n)
}

func (b *StringSchemaBuilder) Pattern(pattern string) *StringSchemaBuilder {
	b.pattern = pattern
	return b
}

// Enum adds allowed values, skipping values loosely equal to one present.
func (b *StringSchemaBuilder) Enum(values ...any) *StringSchemaBuilder {
	b.enum = appendEnum(b.enum, values...)
	return b
}

func (b *StringSchemaBuilder) Example(example any) *StringSchemaBuilder {
	b.example = example
	return b
}

func (b *StringSchemaBuilder) Deprecated(v bool) *StringSchemaBuilder {
	b.deprecated = &v
	return b
}

// Render returns the string schema. Unset fields are omitted.
func (b *StringSchemaBuilder) Render() *Schema {
	return &Schema{
		Type:       string(TypeString),
		Format:     b.format,
		Maximum:    clonePtr(b.maximum),
		Minimum:    clonePtr(b.minimum),
		MaxLength:  clonePtr(b.maxLength),
		MinLength:  clonePtr(b.minLength),
		Pattern:    b.pattern,
		Enum:       slices.Clone(b.enum),
		Example:    b.example,
		Deprecated: clonePtr(b.deprecated),
	}
}

// ReferenceSchemaBuilder assembles a reference to a components entry,
// either directly ({$ref}) or as array items ({items: {$ref}}).
//
// See: https://spec.openapis.org/oas/v3.1.0#reference-object
type ReferenceSchemaBuilder struct {
	key  string
	kind SchemaKind
	ref  string
}

// NewReference returns a direct reference to ref.
func NewReference(ref string) *ReferenceSchemaBuilder {
	return &ReferenceSchemaBuilder{kind: KindReference, ref: ref}
}

// NewItemReference returns a reference to ref wrapped in items.
func NewItemReference(ref string) *ReferenceSchemaBuilder {
	return &ReferenceSchemaBuilder{kind: KindItemReference, ref: ref}
}

// Kind returns KindReference or KindItemReference, or "" when unset.
func (b *ReferenceSchemaBuilder) Kind() SchemaKind { return b.kind }
func (b *ReferenceSchemaBuilder) KeyName() string  { return b.key }
func (b *ReferenceSchemaBuilder) schemaBuilder()   {}

func (b *ReferenceSchemaBuilder) Key(key string) *ReferenceSchemaBuilder {
	b.key = key
	return b
}

// As switches between KindReference and KindItemReference.
func (b *ReferenceSchemaBuilder) As(kind SchemaKind) *ReferenceSchemaBuilder {
	b.kind = kind
	return b
}

// Ref sets the target, see the package function Ref.
func (b *ReferenceSchemaBuilder) Ref(ref string) *ReferenceSchemaBuilder {
	b.ref = ref
	return b
}

// Render returns {$ref} or {items: {$ref}}.
func (b *ReferenceSchemaBuilder) Render() (*Schema, error) {
	if b.ref == "" {
		return nil, ErrMissingReference
	}

	switch b.kind {
	case KindReference:
		return &Schema{Ref: b.ref}, nil
	case KindItemReference:
		return &Schema{Items: &Schema{Ref: b.ref}}, nil
	case "":
		return nil, fmt.Errorf("%w: %q", ErrMissingReferenceKind, b.ref)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSchemaKind, b.kind)
}

// RefCategory is the components section a reference points into.
type RefCategory string

const (
	RefSecuritySchemes RefCategory = "securitySchemes"
	RefSchemas         RefCategory = "schemas"
	RefRequests        RefCategory = "requests"
	RefResponses       RefCategory = "responses"
)

// Ref returns "#/components/{category}/{name}".
func Ref(category RefCategory, name string) string {
	return "#/components/" + string(category) + "/" + name
}

// SecurityStyle is the type of a security scheme.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object (type)
type SecurityStyle string

const (
	SecurityAPIKey        SecurityStyle = "apiKey"
	SecurityHTTP          SecurityStyle = "http"
	SecurityMutualTLS     SecurityStyle = "mutualTLS"
	SecurityOAuth2        SecurityStyle = "oauth2"
	SecurityOpenIDConnect SecurityStyle = "openIdConnect"
)

// SecuritySchemaBuilder assembles a security scheme. Security schemas are
// never rendered as data; the document places them under
// components.securitySchemes and lists them in the top-level security.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
type SecuritySchemaBuilder struct {
	key              string
	style            SecurityStyle
	name             string
	in               ParameterLocation
	description      string
	scheme           string
	bearerFormat     string
	openIDConnectURL string
	tag              string
}

// NewSecuritySchema returns a security schema registered under key.
func NewSecuritySchema(key string) *SecuritySchemaBuilder {
	return &SecuritySchemaBuilder{key: key}
}

func (b *SecuritySchemaBuilder) Kind() SchemaKind { return KindSecurity }
func (b *SecuritySchemaBuilder) KeyName() string  { return b.key }
func (b *SecuritySchemaBuilder) schemaBuilder()   {}

func (b *SecuritySchemaBuilder) Key(key string) *SecuritySchemaBuilder {
	b.key = key
	return b
}

// Style sets the scheme type, rendered as "type".
func (b *SecuritySchemaBuilder) Style(style SecurityStyle) *SecuritySchemaBuilder {
	b.style = style
	return b
}

// Name sets the header, query or cookie parameter name of an apiKey scheme.
func (b *SecuritySchemaBuilder) Name(name string) *SecuritySchemaBuilder {
	b.name = name
	return b
}

// In sets the location of an apiKey scheme.
func (b *SecuritySchemaBuilder) In(in ParameterLocation) *SecuritySchemaBuilder {
	b.in = in
	return b
}

func (b *SecuritySchemaBuilder) Description(text ...string) *SecuritySchemaBuilder {
	b.description = lines(text)
	return b
}

// Scheme sets the HTTP Authorization scheme, for example "bearer".
func (b *SecuritySchemaBuilder) Scheme(scheme string) *SecuritySchemaBuilder {
	b.scheme = scheme
	return b
}

// BearerFormat hints how a bearer token is formatted, for example "JWT".
func (b *SecuritySchemaBuilder) BearerFormat(format string) *SecuritySchemaBuilder {
	b.bearerFormat = format
	return b
}

func (b *SecuritySchemaBuilder) OpenIDConnectURL(url string) *SecuritySchemaBuilder {
	b.openIDConnectURL = url
	return b
}

// Tag links the scheme to the documentation section of a tag, rendered as
// x-linkTo "tag/{tag}".
func (b *SecuritySchemaBuilder) Tag(tag string) *SecuritySchemaBuilder {
	b.tag = tag
	return b
}

// Render returns the security scheme.
func (b *SecuritySchemaBuilder) Render() (*SecurityScheme, error) {
	if b.style == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingSecurityType, b.key)
	}

	scheme := &SecurityScheme{
		Type:             string(b.style),
		Description:      b.description,
		Name:             b.name,
		In:               string(b.in),
		Scheme:           b.scheme,
		BearerFormat:     b.bearerFormat,
		OpenIDConnectURL: b.openIDConnectURL,
	}
	if b.tag != "" {
		scheme.LinkTo = "tag/" + b.tag
	}
	return scheme, nil
}
