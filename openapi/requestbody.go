package openapi

// RequestBodyBuilder assembles a request body carrying one media type.
//
// See: https://spec.openapis.org/oas/v3.1.0#request-body-object
type RequestBodyBuilder struct {
	description string
	required    bool
	content     ContentBuilder
}

// NewRequestBody returns an empty request body builder.
func NewRequestBody() *RequestBodyBuilder {
	return &RequestBodyBuilder{}
}

func (b *RequestBodyBuilder) Description(text ...string) *RequestBodyBuilder {
	b.description = lines(text)
	return b
}

// Required marks the body as mandatory.
func (b *RequestBodyBuilder) Required(required bool) *RequestBodyBuilder {
	b.required = required
	return b
}

// MediaType sets the content media type.
func (b *RequestBodyBuilder) MediaType(mediaType string) *RequestBodyBuilder {
	b.content.MediaType(mediaType)
	return b
}

// Schema sets the content schema.
func (b *RequestBodyBuilder) Schema(s SchemaBuilder) *RequestBodyBuilder {
	b.content.Schema(s)
	return b
}

// ConfigureSchema builds the content schema, see ContentBuilder.ConfigureSchema.
func (b *RequestBodyBuilder) ConfigureSchema(kind SchemaKind, fn any) *RequestBodyBuilder {
	b.content.ConfigureSchema(kind, fn)
	return b
}

func (b *RequestBodyBuilder) Example(example any) *RequestBodyBuilder {
	b.content.Example(example)
	return b
}

// Render returns the Request Body Object, or nil when no media type or
// schema was ever set.
func (b *RequestBodyBuilder) Render() (*RequestBody, error) {
	if b.content.empty() {
		return nil, nil
	}

	content, err := renderContent([]*ContentBuilder{&b.content})
	if err != nil {
		return nil, err
	}
	return &RequestBody{
		Description: b.description,
		Required:    b.required,
		Content:     content,
	}, nil
}
