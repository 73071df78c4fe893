package openapi

import (
	"fmt"
	"strconv"
)

// ResponseDefault is the response key used for any status code not
// covered by another response.
const ResponseDefault = "default"

// ResponseBuilder assembles a response keyed by status code.
//
// See: https://spec.openapis.org/oas/v3.1.0#response-object
type ResponseBuilder struct {
	code        string
	description string
	content     ContentBuilder
}

// NewResponse returns a response builder for an HTTP status code.
func NewResponse(status int) *ResponseBuilder {
	return (&ResponseBuilder{}).StatusCode(status)
}

// StatusCode sets the HTTP status code key.
func (b *ResponseBuilder) StatusCode(status int) *ResponseBuilder {
	b.code = strconv.Itoa(status)
	return b
}

// Code sets the response key verbatim: a status code, a range such as
// "4XX", or "default".
//
// See: https://spec.openapis.org/oas/v3.1.0#responses-object
func (b *ResponseBuilder) Code(code string) *ResponseBuilder {
	b.code = code
	return b
}

// Default keys the response as "default".
func (b *ResponseBuilder) Default() *ResponseBuilder {
	b.code = ResponseDefault
	return b
}

// StatusKey returns the response key.
func (b *ResponseBuilder) StatusKey() string {
	return b.code
}

func (b *ResponseBuilder) Description(text ...string) *ResponseBuilder {
	b.description = lines(text)
	return b
}

func (b *ResponseBuilder) MediaType(mediaType string) *ResponseBuilder {
	b.content.MediaType(mediaType)
	return b
}

func (b *ResponseBuilder) Schema(s SchemaBuilder) *ResponseBuilder {
	b.content.Schema(s)
	return b
}

// ConfigureSchema builds the content schema, see ContentBuilder.ConfigureSchema.
func (b *ResponseBuilder) ConfigureSchema(kind SchemaKind, fn any) *ResponseBuilder {
	b.content.ConfigureSchema(kind, fn)
	return b
}

func (b *ResponseBuilder) Example(example any) *ResponseBuilder {
	b.content.Example(example)
	return b
}

// Render returns the response key and the Response Object. The key is not
// part of the object. A response without media type and schema renders
// without content.
func (b *ResponseBuilder) Render() (string, *Response, error) {
	if b.code == "" {
		return "", nil, ErrMissingStatusCode
	}

	resp := &Response{Description: b.description}
	if !b.content.empty() {
		content, err := renderContent([]*ContentBuilder{&b.content})
		if err != nil {
			return "", nil, fmt.Errorf("response %s: %w", b.code, err)
		}
		resp.Content = content
	}
	return b.code, resp, nil
}
