package openapi

import (
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Rendered document model. Values of these types are produced by the
// builders' Render methods and are treated as immutable afterwards.
// Struct field order is the key order of the emitted JSON and YAML.

// Paths maps a path template to its operations, in insertion order.
type Paths = sequencedmap.Map[string, *PathItem]

// Responses maps a status code (or "default") to a response, in insertion order.
type Responses = sequencedmap.Map[string, *Response]

// Content maps a media type to its schema and example, in insertion order.
type Content = sequencedmap.Map[string, *MediaType]

// Properties maps a property name to its schema, in insertion order.
type Properties = sequencedmap.Map[string, *Schema]

// Document represents the root of a rendered API description document.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-object
type Document struct {
	OpenAPI      string                `json:"openapi"`
	Info         Info                  `json:"info"`
	Servers      []Server              `json:"servers,omitempty"`
	Security     []SecurityRequirement `json:"security,omitempty"`
	Paths        *Paths                `json:"paths"`
	Components   *Components           `json:"components,omitempty"`
	Tags         []Tag                 `json:"tags,omitempty"`
	TagGroups    []TagGroup            `json:"x-tagGroups,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty"`
}

// Info provides metadata about the API.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
type Info struct {
	Title          string   `json:"title"`
	Summary        string   `json:"summary,omitempty"`
	Version        string   `json:"version"`
	Description    string   `json:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty"`
	License        *License `json:"license,omitempty"`
	Logo           *Logo    `json:"x-logo,omitempty"`
}

// Contact represents contact information for the API.
//
// See: https://spec.openapis.org/oas/v3.1.0#contact-object
type Contact struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// License represents license information for the API.
//
// See: https://spec.openapis.org/oas/v3.1.0#license-object
type License struct {
	Name       string `json:"name,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Logo is the Redoc x-logo vendor extension of the info object.
//
// See: https://redocly.com/docs-legacy/api-reference-docs/specification-extensions/x-logo
type Logo struct {
	URL             string `json:"url,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	AltText         string `json:"altText,omitempty"`
	Href            string `json:"href,omitempty"`
}

// Server represents a server.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-object
type Server struct {
	URL         string                                     `json:"url"`
	Description string                                     `json:"description,omitempty"`
	Variables   *sequencedmap.Map[string, *ServerVariable] `json:"variables,omitempty"`
}

// ServerVariable represents a server variable for URL template substitution.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-variable-object
type ServerVariable struct {
	Default     string   `json:"default"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// PathItem describes the operations available on a single path.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
type PathItem struct {
	Summary     string       `json:"summary,omitempty"`
	Description string       `json:"description,omitempty"`
	Get         *Operation   `json:"get,omitempty"`
	Put         *Operation   `json:"put,omitempty"`
	Post        *Operation   `json:"post,omitempty"`
	Delete      *Operation   `json:"delete,omitempty"`
	Options     *Operation   `json:"options,omitempty"`
	Head        *Operation   `json:"head,omitempty"`
	Patch       *Operation   `json:"patch,omitempty"`
	Trace       *Operation   `json:"trace,omitempty"`
	Parameters  []*Parameter `json:"parameters,omitempty"`
}

// Operation describes a single API operation on a path.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object
type Operation struct {
	Tags         []string      `json:"tags,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	Description  string        `json:"description,omitempty"`
	OperationID  string        `json:"operationId,omitempty"`
	Deprecated   bool          `json:"deprecated,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty"`
	RequestBody  *RequestBody  `json:"requestBody,omitempty"`
	Parameters   []*Parameter  `json:"parameters,omitempty"`
	Responses    *Responses    `json:"responses,omitempty"`
}

// Parameter describes a single operation parameter.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object
type Parameter struct {
	Name            string   `json:"name,omitempty"`
	In              string   `json:"in,omitempty"`
	Description     string   `json:"description,omitempty"`
	Required        bool     `json:"required,omitempty"`
	Deprecated      bool     `json:"deprecated,omitempty"`
	AllowEmptyValue bool     `json:"allowEmptyValue,omitempty"`
	Style           string   `json:"style,omitempty"`
	Explode         *bool    `json:"explode,omitempty"`
	AllowReserved   bool     `json:"allowReserved,omitempty"`
	Schema          *Schema  `json:"schema,omitempty"`
	Example         any      `json:"example,omitempty"`
	Content         *Content `json:"content,omitempty"`
}

// RequestBody describes a single request body.
//
// See: https://spec.openapis.org/oas/v3.1.0#request-body-object
type RequestBody struct {
	Description string   `json:"description,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Content     *Content `json:"content"`
}

// Response describes a single response from an API operation.
// The status code is the key of the enclosing Responses map.
//
// See: https://spec.openapis.org/oas/v3.1.0#response-object
type Response struct {
	Description string   `json:"description,omitempty"`
	Content     *Content `json:"content,omitempty"`
}

// MediaType holds the schema and example for one media type.
//
// See: https://spec.openapis.org/oas/v3.1.0#media-type-object
type MediaType struct {
	Schema  *Schema `json:"schema,omitempty"`
	Example any     `json:"example,omitempty"`
}

// Schema is the rendered form of every data schema variant: object,
// primitive, reference and item reference, as well as object properties.
// Only the fields of the producing variant are set.
//
// See: https://spec.openapis.org/oas/v3.1.0#schema-object
type Schema struct {
	Ref         string      `json:"$ref,omitempty"`
	Type        string      `json:"type,omitempty"`
	Required    []string    `json:"required,omitempty"`
	Nullable    bool        `json:"nullable,omitempty"`
	Format      string      `json:"format,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Maximum     *float64    `json:"maximum,omitempty"`
	Minimum     *float64    `json:"minimum,omitempty"`
	MaxLength   *int        `json:"maxLength,omitempty"`
	MinLength   *int        `json:"minLength,omitempty"`
	Pattern     string      `json:"pattern,omitempty"`
	ReadOnly    *bool       `json:"readOnly,omitempty"`
	WriteOnly   *bool       `json:"writeOnly,omitempty"`
	Enum        []any       `json:"enum,omitempty"`
	Example     any         `json:"example,omitempty"`
	Deprecated  *bool       `json:"deprecated,omitempty"`
	Properties  *Properties `json:"properties,omitempty"`
	Items       *Schema     `json:"items,omitempty"`
}

// SecurityScheme defines a security scheme usable by operations.
// LinkTo carries the Redoc x-linkTo extension pointing at a tag section.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
type SecurityScheme struct {
	Type             string `json:"type"`
	Description      string `json:"description,omitempty"`
	Name             string `json:"name,omitempty"`
	In               string `json:"in,omitempty"`
	Scheme           string `json:"scheme,omitempty"`
	BearerFormat     string `json:"bearerFormat,omitempty"`
	OpenIDConnectURL string `json:"openIdConnectUrl,omitempty"`
	LinkTo           string `json:"x-linkTo,omitempty"`
}

// SecurityRequirement lists the required security schemes for an operation.
// Each key is a security scheme name and the value is the list of scopes.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-requirement-object
type SecurityRequirement map[string][]string

// Components holds reusable objects for the document.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object
type Components struct {
	SecuritySchemes *sequencedmap.Map[string, *SecurityScheme] `json:"securitySchemes,omitempty"`
	Schemas         *sequencedmap.Map[string, *Schema]         `json:"schemas,omitempty"`
}

// Tag adds metadata to a tag used by operations.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
type Tag struct {
	Name         string        `json:"name"`
	DisplayName  string        `json:"x-displayName,omitempty"`
	Description  string        `json:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty"`
}

// TagGroup is the Redoc x-tagGroups entry grouping tags in the side menu.
//
// See: https://redocly.com/docs-legacy/api-reference-docs/specification-extensions/x-tag-groups
type TagGroup struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// ExternalDocs references external documentation.
//
// See: https://spec.openapis.org/oas/v3.1.0#external-documentation-object
type ExternalDocs struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}
