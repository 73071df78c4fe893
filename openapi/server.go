package openapi

import (
	"slices"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// ServerBuilder assembles a Server Object.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-object
type ServerBuilder struct {
	url         string
	description string
	variables   []*ServerVariableBuilder
}

// NewServer returns a server builder for the given URL. The URL may contain
// {name} placeholders described by Variables.
func NewServer(url string) *ServerBuilder {
	return &ServerBuilder{url: url}
}

// URL sets the server URL.
func (b *ServerBuilder) URL(url string) *ServerBuilder {
	b.url = url
	return b
}

// Description sets the server description.
func (b *ServerBuilder) Description(text ...string) *ServerBuilder {
	b.description = lines(text)
	return b
}

// Variables configures one server variable per function. A variable whose
// name is already present is ignored.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-variable-object
func (b *ServerBuilder) Variables(fns ...func(*ServerVariableBuilder)) *ServerBuilder {
	for _, fn := range fns {
		v := &ServerVariableBuilder{}
		fn(v)
		b.AddVariable(v)
	}
	return b
}

// AddVariable adds a configured server variable unless one with the same
// name was added before.
func (b *ServerBuilder) AddVariable(v *ServerVariableBuilder) *ServerBuilder {
	for _, existing := range b.variables {
		if existing.name == v.name {
			return b
		}
	}
	b.variables = append(b.variables, v)
	return b
}

// Render returns the Server Object.
func (b *ServerBuilder) Render() Server {
	server := Server{URL: b.url, Description: b.description}
	if len(b.variables) > 0 {
		server.Variables = sequencedmap.New[string, *ServerVariable]()
		for _, v := range b.variables {
			if server.Variables.Has(v.name) {
				continue
			}
			server.Variables.Set(v.name, v.Render())
		}
	}
	return server
}

// ServerVariableBuilder assembles a Server Variable Object.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-variable-object
type ServerVariableBuilder struct {
	name         string
	defaultValue string
	description  string
	enum         []string
}

// Name sets the placeholder name used in the server URL.
func (b *ServerVariableBuilder) Name(name string) *ServerVariableBuilder {
	b.name = name
	return b
}

// Default sets the value used when no alternative is supplied.
func (b *ServerVariableBuilder) Default(value string) *ServerVariableBuilder {
	b.defaultValue = value
	return b
}

func (b *ServerVariableBuilder) Description(text ...string) *ServerVariableBuilder {
	b.description = lines(text)
	return b
}

// Enum adds allowed values, skipping duplicates.
func (b *ServerVariableBuilder) Enum(values ...string) *ServerVariableBuilder {
	b.enum = appendUnique(b.enum, values...)
	return b
}

// Render returns the Server Variable Object.
func (b *ServerVariableBuilder) Render() *ServerVariable {
	return &ServerVariable{
		Default:     b.defaultValue,
		Description: b.description,
		Enum:        slices.Clone(b.enum),
	}
}
