package openapi

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Supported values of the openapi field.
const (
	Version30  = "3.0"
	Version301 = "3.0.1"
	Version310 = "3.1.0"
)

// DocumentBuilder is the root builder. It collects info, servers, paths,
// schemas, tags and tag groups and renders them into a Document.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-object
type DocumentBuilder struct {
	version      string
	info         *InfoBuilder
	servers      []*ServerBuilder
	paths        []*PathBuilder
	schemas      []SchemaBuilder
	tags         []*TagBuilder
	tagGroups    []*TagGroupBuilder
	externalDocs *ExternalDocsBuilder
	errs         []error
}

// NewDocument returns a document builder for OpenAPI 3.1.0 with an empty info.
func NewDocument() *DocumentBuilder {
	return &DocumentBuilder{
		version: Version310,
		info:    &InfoBuilder{},
	}
}

// Version sets the openapi field, see Version30, Version301 and Version310.
func (b *DocumentBuilder) Version(version string) *DocumentBuilder {
	b.version = version
	return b
}

// Info configures the document info.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
func (b *DocumentBuilder) Info(fn func(*InfoBuilder)) *DocumentBuilder {
	fn(b.info)
	return b
}

// SetInfo replaces the document info.
func (b *DocumentBuilder) SetInfo(info *InfoBuilder) *DocumentBuilder {
	b.info = info
	return b
}

// Servers configures one server per function.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-object
func (b *DocumentBuilder) Servers(fns ...func(*ServerBuilder)) *DocumentBuilder {
	for _, fn := range fns {
		s := &ServerBuilder{}
		fn(s)
		b.servers = append(b.servers, s)
	}
	return b
}

// AddServer appends a configured server.
func (b *DocumentBuilder) AddServer(s *ServerBuilder) *DocumentBuilder {
	b.servers = append(b.servers, s)
	return b
}

// Path configures the path with the given template.
//
//	doc.Path("/pets", func(p *openapi.PathBuilder) {
//		p.Operations(func(op *openapi.OperationBuilder) {
//			op.Method(openapi.MethodGet).Tags("pet")
//		})
//	})
func (b *DocumentBuilder) Path(path string, fn func(*PathBuilder)) *DocumentBuilder {
	p := NewPath(path)
	fn(p)
	b.paths = append(b.paths, p)
	return b
}

// AddPath appends configured paths. A later path with the same template
// replaces the earlier one.
func (b *DocumentBuilder) AddPath(paths ...*PathBuilder) *DocumentBuilder {
	b.paths = append(b.paths, paths...)
	return b
}

// AddSchema appends schemas. Object schemas go to components.schemas and
// security schemas to components.securitySchemes, keyed by their key names.
// String and reference schemas are accepted but not rendered at the root.
func (b *DocumentBuilder) AddSchema(schemas ...SchemaBuilder) *DocumentBuilder {
	b.schemas = append(b.schemas, schemas...)
	return b
}

// Schema builds the schema variant for kind, passes it to fn and appends
// it. fn must be a func taking that variant's builder. Errors are reported
// by Render.
func (b *DocumentBuilder) Schema(kind SchemaKind, fn any) *DocumentBuilder {
	s, err := configureSchema(kind, fn)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.schemas = append(b.schemas, s)
	return b
}

// Tags configures one tag per function.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
func (b *DocumentBuilder) Tags(fns ...func(*TagBuilder)) *DocumentBuilder {
	for _, fn := range fns {
		t := &TagBuilder{}
		fn(t)
		b.tags = append(b.tags, t)
	}
	return b
}

// AddTag appends configured tags.
func (b *DocumentBuilder) AddTag(tags ...*TagBuilder) *DocumentBuilder {
	b.tags = append(b.tags, tags...)
	return b
}

// TagGroups configures one x-tagGroups entry per function.
func (b *DocumentBuilder) TagGroups(fns ...func(*TagGroupBuilder)) *DocumentBuilder {
	for _, fn := range fns {
		g := &TagGroupBuilder{}
		fn(g)
		b.tagGroups = append(b.tagGroups, g)
	}
	return b
}

// AddTagGroup appends configured tag groups.
func (b *DocumentBuilder) AddTagGroup(groups ...*TagGroupBuilder) *DocumentBuilder {
	b.tagGroups = append(b.tagGroups, groups...)
	return b
}

// ExternalDocs configures external documentation for the whole API.
func (b *DocumentBuilder) ExternalDocs(fn func(*ExternalDocsBuilder)) *DocumentBuilder {
	if b.externalDocs == nil {
		b.externalDocs = &ExternalDocsBuilder{}
	}
	fn(b.externalDocs)
	return b
}

// Render folds the builder tree into a Document. It fails on the first
// invalid node; errors recorded by configuring calls are all returned.
// Render does not modify the builders and may be called repeatedly.
func (b *DocumentBuilder) Render() (*Document, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	doc := &Document{
		OpenAPI: b.version,
		Paths:   sequencedmap.New[string, *PathItem](),
	}
	if b.info != nil {
		doc.Info = b.info.Render()
	}

	for _, s := range b.servers {
		doc.Servers = append(doc.Servers, s.Render())
	}

	for _, p := range b.paths {
		rendered, err := p.Render()
		if err != nil {
			return nil, err
		}
		for path, item := range rendered.All() {
			doc.Paths = put(doc.Paths, path, item)
		}
	}

	components, err := b.renderComponents()
	if err != nil {
		return nil, err
	}
	doc.Components = components
	if components != nil {
		for key := range components.SecuritySchemes.Keys() {
			doc.Security = append(doc.Security, SecurityRequirement{key: []string{}})
		}
	}

	for _, t := range b.tags {
		doc.Tags = append(doc.Tags, t.Render())
	}
	for _, g := range b.tagGroups {
		doc.TagGroups = append(doc.TagGroups, g.Render())
	}
	if b.externalDocs != nil {
		doc.ExternalDocs = b.externalDocs.Render()
	}

	return doc, nil
}

// renderComponents partitions the schemas by variant. It returns nil when
// neither partition has entries.
func (b *DocumentBuilder) renderComponents() (*Components, error) {
	securitySchemes := sequencedmap.New[string, *SecurityScheme]()
	schemas := sequencedmap.New[string, *Schema]()

	for i, s := range b.schemas {
		switch v := s.(type) {
		case *SecuritySchemaBuilder:
			if v.key == "" {
				return nil, fmt.Errorf("%w: security schema %d", ErrMissingKeyName, i)
			}
			scheme, err := v.Render()
			if err != nil {
				return nil, err
			}
			securitySchemes = put(securitySchemes, v.key, scheme)

		case *ObjectSchemaBuilder:
			if v.key == "" {
				return nil, fmt.Errorf("%w: object schema %d", ErrMissingKeyName, i)
			}
			schema, err := v.Render()
			if err != nil {
				return nil, fmt.Errorf("schema %q: %w", v.key, err)
			}
			schemas = put(schemas, v.key, schema)

		case *StringSchemaBuilder, *ReferenceSchemaBuilder:
			// Only object and security schemas have a components slot.
		}
	}

	if securitySchemes.Len() == 0 && schemas.Len() == 0 {
		return nil, nil
	}

	components := &Components{}
	if securitySchemes.Len() > 0 {
		components.SecuritySchemes = securitySchemes
	}
	if schemas.Len() > 0 {
		components.Schemas = schemas
	}
	return components, nil
}
