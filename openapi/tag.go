package openapi

import "slices"

// TagBuilder assembles a Tag Object.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
type TagBuilder struct {
	name         string
	displayName  string
	description  string
	externalDocs *ExternalDocsBuilder
}

// NewTag returns a tag builder with the given name.
func NewTag(name string) *TagBuilder {
	return &TagBuilder{name: name}
}

func (b *TagBuilder) Name(name string) *TagBuilder {
	b.name = name
	return b
}

// Display sets the x-displayName shown by Redoc instead of the tag name.
func (b *TagBuilder) Display(name string) *TagBuilder {
	b.displayName = name
	return b
}

func (b *TagBuilder) Description(text ...string) *TagBuilder {
	b.description = lines(text)
	return b
}

// ExternalDocs configures additional external documentation for the tag.
func (b *TagBuilder) ExternalDocs(fn func(*ExternalDocsBuilder)) *TagBuilder {
	if b.externalDocs == nil {
		b.externalDocs = &ExternalDocsBuilder{}
	}
	fn(b.externalDocs)
	return b
}

// Render returns the Tag Object.
func (b *TagBuilder) Render() Tag {
	tag := Tag{
		Name:        b.name,
		DisplayName: b.displayName,
		Description: b.description,
	}
	if b.externalDocs != nil {
		tag.ExternalDocs = b.externalDocs.Render()
	}
	return tag
}

// TagGroupBuilder assembles one entry of the Redoc x-tagGroups extension.
type TagGroupBuilder struct {
	name string
	tags []string
}

// NewTagGroup returns a tag group builder with the given name.
func NewTagGroup(name string) *TagGroupBuilder {
	return &TagGroupBuilder{name: name}
}

func (b *TagGroupBuilder) Name(name string) *TagGroupBuilder {
	b.name = name
	return b
}

// Tags adds tag names to the group, skipping names already present.
func (b *TagGroupBuilder) Tags(tags ...string) *TagGroupBuilder {
	b.tags = appendUnique(b.tags, tags...)
	return b
}

// Render returns the tag group.
func (b *TagGroupBuilder) Render() TagGroup {
	tags := slices.Clone(b.tags)
	if tags == nil {
		tags = []string{}
	}
	return TagGroup{Name: b.name, Tags: tags}
}

// ExternalDocsBuilder assembles an External Documentation Object.
//
// See: https://spec.openapis.org/oas/v3.1.0#external-documentation-object
type ExternalDocsBuilder struct {
	description string
	url         string
}

func (b *ExternalDocsBuilder) Description(text ...string) *ExternalDocsBuilder {
	b.description = lines(text)
	return b
}

func (b *ExternalDocsBuilder) URL(url string) *ExternalDocsBuilder {
	b.url = url
	return b
}

// Render returns the External Documentation Object.
func (b *ExternalDocsBuilder) Render() *ExternalDocs {
	return &ExternalDocs{Description: b.description, URL: b.url}
}

// appendUnique appends each value not already present in list.
func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(list, v) {
			list = append(list, v)
		}
	}
	return list
}
