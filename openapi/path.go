package openapi

import (
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// PathBuilder groups the operations served under one path template.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
type PathBuilder struct {
	path        string
	summary     string
	description string
	parameters  []*ParameterBuilder
	operations  []*OperationBuilder
}

// NewPath returns a builder for the given path template, for example
// "/pets/{petId}".
func NewPath(path string) *PathBuilder {
	return &PathBuilder{path: path}
}

// Template returns the path template.
func (b *PathBuilder) Template() string {
	return b.path
}

// Summary sets a summary applying to all operations of the path.
func (b *PathBuilder) Summary(s string) *PathBuilder {
	b.summary = s
	return b
}

// Description sets a description applying to all operations of the path.
func (b *PathBuilder) Description(text ...string) *PathBuilder {
	b.description = lines(text)
	return b
}

// Parameters configures parameters shared by all operations of the path.
func (b *PathBuilder) Parameters(fns ...func(*ParameterBuilder)) *PathBuilder {
	for _, fn := range fns {
		p := &ParameterBuilder{}
		fn(p)
		b.parameters = append(b.parameters, p)
	}
	return b
}

// Operations configures one operation per function, each on a fresh
// builder, and appends them to the path.
func (b *PathBuilder) Operations(fns ...func(*OperationBuilder)) *PathBuilder {
	for _, fn := range fns {
		op := &OperationBuilder{}
		fn(op)
		b.operations = append(b.operations, op)
	}
	return b
}

// AddOperation appends a configured operation.
func (b *PathBuilder) AddOperation(op *OperationBuilder) *PathBuilder {
	b.operations = append(b.operations, op)
	return b
}

// Render returns a single-entry map from the path template to its path
// item. When several operations use the same method the last one wins.
func (b *PathBuilder) Render() (*Paths, error) {
	if b.path == "" {
		return nil, ErrMissingPath
	}

	item := &PathItem{
		Summary:     b.summary,
		Description: b.description,
	}

	params, err := renderParameters(b.parameters)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", b.path, err)
	}
	item.Parameters = params

	for _, opb := range b.operations {
		method, op, err := opb.Render()
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", b.path, err)
		}
		assignOperation(item, method, op)
	}

	return sequencedmap.New(sequencedmap.NewElem(b.path, item)), nil
}

// assignOperation places op into the PathItem field for the given method.
func assignOperation(item *PathItem, method string, op *Operation) {
	switch method {
	case MethodGet:
		item.Get = op
	case MethodPut:
		item.Put = op
	case MethodPost:
		item.Post = op
	case MethodDelete:
		item.Delete = op
	case MethodOptions:
		item.Options = op
	case MethodHead:
		item.Head = op
	case MethodPatch:
		item.Patch = op
	case MethodTrace:
		item.Trace = op
	}
}
