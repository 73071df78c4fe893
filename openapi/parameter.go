package openapi

import (
	"errors"
	"fmt"
)

// ParameterLocation is where a parameter is read from.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-locations
type ParameterLocation string

const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

// ParameterStyle describes how a parameter value is serialized.
//
// See: https://spec.openapis.org/oas/v3.1.0#style-values
type ParameterStyle string

const (
	StyleMatrix         ParameterStyle = "matrix"
	StyleLabel          ParameterStyle = "label"
	StyleForm           ParameterStyle = "form"
	StyleSimple         ParameterStyle = "simple"
	StyleSpaceDelimited ParameterStyle = "spaceDelimited"
	StylePipeDelimited  ParameterStyle = "pipeDelimited"
	StyleDeepObject     ParameterStyle = "deepObject"
)

// ParameterBuilder assembles a single operation parameter. Path parameters
// must be marked Required by the caller.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object
type ParameterBuilder struct {
	name            string
	in              ParameterLocation
	description     string
	required        bool
	deprecated      bool
	allowEmptyValue bool
	style           ParameterStyle
	explode         *bool
	allowReserved   bool
	schema          SchemaBuilder
	example         any
	content         []*ContentBuilder
	errs            []error
}

// NewParameter returns a parameter builder for name in the given location.
func NewParameter(name string, in ParameterLocation) *ParameterBuilder {
	return &ParameterBuilder{name: name, in: in}
}

// Name sets the parameter name. Path parameter names must match a
// template expression of the path.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (name)
func (b *ParameterBuilder) Name(name string) *ParameterBuilder {
	b.name = name
	return b
}

// In sets the parameter location.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (in)
func (b *ParameterBuilder) In(in ParameterLocation) *ParameterBuilder {
	b.in = in
	return b
}

// Description sets the parameter description.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (description)
func (b *ParameterBuilder) Description(text ...string) *ParameterBuilder {
	b.description = lines(text)
	return b
}

// Required marks the parameter as mandatory.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (required)
func (b *ParameterBuilder) Required(required bool) *ParameterBuilder {
	b.required = required
	return b
}

// Deprecated marks the parameter as deprecated.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (deprecated)
func (b *ParameterBuilder) Deprecated(deprecated bool) *ParameterBuilder {
	b.deprecated = deprecated
	return b
}

// AllowEmptyValue allows sending a query parameter with an empty value.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (allowEmptyValue)
func (b *ParameterBuilder) AllowEmptyValue(allow bool) *ParameterBuilder {
	b.allowEmptyValue = allow
	return b
}

// Style sets the serialization style.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (style)
func (b *ParameterBuilder) Style(style ParameterStyle) *ParameterBuilder {
	b.style = style
	return b
}

// Explode sets whether array and object values generate separate
// parameters. An explicit false is rendered.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (explode)
func (b *ParameterBuilder) Explode(explode bool) *ParameterBuilder {
	b.explode = &explode
	return b
}

// AllowReserved allows RFC 3986 reserved characters in query values.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (allowReserved)
func (b *ParameterBuilder) AllowReserved(allow bool) *ParameterBuilder {
	b.allowReserved = allow
	return b
}

// Schema sets the parameter schema. Any data variant is accepted.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (schema)
func (b *ParameterBuilder) Schema(s SchemaBuilder) *ParameterBuilder {
	b.schema = s
	return b
}

// ConfigureSchema builds the schema variant for kind and passes it to fn.
// Errors are reported by Render.
func (b *ParameterBuilder) ConfigureSchema(kind SchemaKind, fn any) *ParameterBuilder {
	s, err := configureSchema(kind, fn)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.schema = s
	return b
}

// Example sets an example value.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (example)
func (b *ParameterBuilder) Example(example any) *ParameterBuilder {
	b.example = example
	return b
}

// Content configures one media type entry per function, for parameters
// that need a serialization other than style-based.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object (content)
func (b *ParameterBuilder) Content(fns ...func(*ContentBuilder)) *ParameterBuilder {
	for _, fn := range fns {
		c := &ContentBuilder{}
		fn(c)
		b.content = append(b.content, c)
	}
	return b
}

// Render returns the Parameter Object.
func (b *ParameterBuilder) Render() (*Parameter, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("parameter %q: %w", b.name, errors.Join(b.errs...))
	}

	param := &Parameter{
		Name:            b.name,
		In:              string(b.in),
		Description:     b.description,
		Required:        b.required,
		Deprecated:      b.deprecated,
		AllowEmptyValue: b.allowEmptyValue,
		Style:           string(b.style),
		Explode:         clonePtr(b.explode),
		AllowReserved:   b.allowReserved,
		Example:         b.example,
	}

	if b.schema != nil {
		schema, err := renderDataSchema(b.schema)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", b.name, err)
		}
		param.Schema = schema
	}

	if len(b.content) > 0 {
		content, err := renderContent(b.content)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", b.name, err)
		}
		param.Content = content
	}

	return param, nil
}

func renderParameters(list []*ParameterBuilder) ([]*Parameter, error) {
	if len(list) == 0 {
		return nil, nil
	}
	params := make([]*Parameter, 0, len(list))
	for _, p := range list {
		param, err := p.Render()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}
