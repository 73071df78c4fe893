package openapi

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Common media types.
const (
	MediaTypeJSON      = "application/json"
	MediaTypeXML       = "application/xml"
	MediaTypeForm      = "application/x-www-form-urlencoded"
	MediaTypeMultipart = "multipart/form-data"
	MediaTypeText      = "text/plain"
	MediaTypeHTML      = "text/html"
	MediaTypeAny       = "*/*"
)

// ContentBuilder pairs one media type with a schema and an optional example.
//
// See: https://spec.openapis.org/oas/v3.1.0#media-type-object
type ContentBuilder struct {
	mediaType string
	schema    SchemaBuilder
	example   any
	errs      []error
}

// NewContent returns a content builder for the given media type.
func NewContent(mediaType string) *ContentBuilder {
	return &ContentBuilder{mediaType: mediaType}
}

// MediaType sets the media type key, for example "application/json".
func (b *ContentBuilder) MediaType(mediaType string) *ContentBuilder {
	b.mediaType = mediaType
	return b
}

// Schema sets the schema. Security schemas are rejected at render time.
func (b *ContentBuilder) Schema(s SchemaBuilder) *ContentBuilder {
	b.schema = s
	return b
}

// ConfigureSchema builds the schema variant for kind and passes it to fn,
// which must be a func taking that variant's builder. Errors are reported
// by Render.
func (b *ContentBuilder) ConfigureSchema(kind SchemaKind, fn any) *ContentBuilder {
	s, err := configureSchema(kind, fn)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.schema = s
	return b
}

func (b *ContentBuilder) Example(example any) *ContentBuilder {
	b.example = example
	return b
}

// empty reports whether neither a media type nor a schema was set.
func (b *ContentBuilder) empty() bool {
	return b.mediaType == "" && b.schema == nil && len(b.errs) == 0
}

// Render returns the Media Type Object and its key. It fails when only
// one of the media type and the schema is set.
func (b *ContentBuilder) Render() (string, *MediaType, error) {
	if len(b.errs) > 0 {
		return "", nil, errors.Join(b.errs...)
	}
	if b.schema == nil {
		return "", nil, fmt.Errorf("%w: media type %q", ErrMissingSchema, b.mediaType)
	}
	if b.mediaType == "" {
		return "", nil, fmt.Errorf("%w: schema kind %q", ErrMissingMediaType, b.schema.Kind())
	}

	schema, err := renderDataSchema(b.schema)
	if err != nil {
		return "", nil, err
	}
	return b.mediaType, &MediaType{Schema: schema, Example: b.example}, nil
}

// renderContent renders a content list into a map keyed by media type.
// A later entry for the same media type replaces the earlier one.
func renderContent(list []*ContentBuilder) (*Content, error) {
	content := sequencedmap.New[string, *MediaType]()
	for _, c := range list {
		key, mt, err := c.Render()
		if err != nil {
			return nil, err
		}
		content = put(content, key, mt)
	}
	return content, nil
}
