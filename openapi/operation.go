package openapi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// HTTP methods accepted by OperationBuilder.Method, in the order they are
// emitted within a path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

var methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// OperationBuilder assembles one operation of a path.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object
type OperationBuilder struct {
	method       string
	tags         []string
	summary      string
	description  string
	operationID  string
	deprecated   bool
	externalDocs *ExternalDocsBuilder
	parameters   []*ParameterBuilder
	requestBody  *RequestBodyBuilder
	responses    []*ResponseBuilder
}

// NewOperation returns an operation builder for the given HTTP method.
func NewOperation(method string) *OperationBuilder {
	return (&OperationBuilder{}).Method(method)
}

// Method sets the HTTP method. It is case-insensitive.
func (b *OperationBuilder) Method(method string) *OperationBuilder {
	b.method = strings.ToLower(method)
	return b
}

// Tags adds tags for grouping in the docs, skipping tags already present.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (tags)
func (b *OperationBuilder) Tags(tags ...string) *OperationBuilder {
	b.tags = appendUnique(b.tags, tags...)
	return b
}

// Summary sets the operation summary.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (summary)
func (b *OperationBuilder) Summary(s string) *OperationBuilder {
	b.summary = s
	return b
}

// Description sets the operation description. Lines are joined with newlines.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (description)
func (b *OperationBuilder) Description(text ...string) *OperationBuilder {
	b.description = lines(text)
	return b
}

// OperationID sets the operation ID.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (operationId)
func (b *OperationBuilder) OperationID(id string) *OperationBuilder {
	b.operationID = id
	return b
}

// Deprecated marks the operation as deprecated.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (deprecated)
func (b *OperationBuilder) Deprecated(deprecated bool) *OperationBuilder {
	b.deprecated = deprecated
	return b
}

// ExternalDocs configures external documentation for the operation.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (externalDocs)
func (b *OperationBuilder) ExternalDocs(fn func(*ExternalDocsBuilder)) *OperationBuilder {
	if b.externalDocs == nil {
		b.externalDocs = &ExternalDocsBuilder{}
	}
	fn(b.externalDocs)
	return b
}

// Parameters configures one parameter per function.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (parameters)
func (b *OperationBuilder) Parameters(fns ...func(*ParameterBuilder)) *OperationBuilder {
	for _, fn := range fns {
		p := &ParameterBuilder{}
		fn(p)
		b.parameters = append(b.parameters, p)
	}
	return b
}

// AddParameter appends a configured parameter.
func (b *OperationBuilder) AddParameter(p *ParameterBuilder) *OperationBuilder {
	b.parameters = append(b.parameters, p)
	return b
}

// RequestBody configures the request body. Repeated calls configure the
// same body.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object (requestBody)
func (b *OperationBuilder) RequestBody(fn func(*RequestBodyBuilder)) *OperationBuilder {
	if b.requestBody == nil {
		b.requestBody = &RequestBodyBuilder{}
	}
	fn(b.requestBody)
	return b
}

// SetRequestBody replaces the request body.
func (b *OperationBuilder) SetRequestBody(rb *RequestBodyBuilder) *OperationBuilder {
	b.requestBody = rb
	return b
}

// Responses configures one response per function.
//
// See: https://spec.openapis.org/oas/v3.1.0#responses-object
func (b *OperationBuilder) Responses(fns ...func(*ResponseBuilder)) *OperationBuilder {
	for _, fn := range fns {
		r := &ResponseBuilder{}
		fn(r)
		b.responses = append(b.responses, r)
	}
	return b
}

// AddResponse appends a configured response. A later response with the
// same key replaces an earlier one in its position.
func (b *OperationBuilder) AddResponse(r *ResponseBuilder) *OperationBuilder {
	b.responses = append(b.responses, r)
	return b
}

// Render returns the operation and its method.
func (b *OperationBuilder) Render() (string, *Operation, error) {
	if b.method == "" {
		return "", nil, ErrMissingMethod
	}
	if !slices.Contains(methods, b.method) {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownMethod, b.method)
	}

	op := &Operation{
		Tags:        slices.Clone(b.tags),
		Summary:     b.summary,
		Description: b.description,
		OperationID: b.operationID,
		Deprecated:  b.deprecated,
	}
	if b.externalDocs != nil {
		op.ExternalDocs = b.externalDocs.Render()
	}

	params, err := renderParameters(b.parameters)
	if err != nil {
		return "", nil, b.wrap(err)
	}
	op.Parameters = params

	if b.requestBody != nil {
		rb, err := b.requestBody.Render()
		if err != nil {
			return "", nil, b.wrap(fmt.Errorf("request body: %w", err))
		}
		op.RequestBody = rb
	}

	if len(b.responses) > 0 {
		responses := sequencedmap.New[string, *Response]()
		for _, r := range b.responses {
			code, resp, err := r.Render()
			if err != nil {
				return "", nil, b.wrap(err)
			}
			responses = put(responses, code, resp)
		}
		op.Responses = responses
	}

	return b.method, op, nil
}

func (b *OperationBuilder) wrap(err error) error {
	if b.operationID != "" {
		return fmt.Errorf("operation %s %q: %w", b.method, b.operationID, err)
	}
	return fmt.Errorf("operation %s: %w", b.method, err)
}
