// Package openapi provides fluent builders for OpenAPI documents aimed at
// Redoc, and the plain document model they render to.
//
// Builders are mutable: every setter changes the builder and returns the
// same pointer so calls chain. Nothing is produced until Render is called,
// which folds the builder tree into plain values without touching the
// builders, so a builder can be rendered any number of times.
//
// See: https://spec.openapis.org/oas/v3.1.0
// See: https://redocly.com/docs-legacy/api-reference-docs/specification-extensions
//
// # Document
//
//	doc := openapi.NewDocument().
//	    Info(func(i *openapi.InfoBuilder) {
//	        i.Title("Petstore").Version("1.0.0")
//	    }).
//	    Path("/pets", func(p *openapi.PathBuilder) {
//	        p.Operations(func(op *openapi.OperationBuilder) {
//	            op.Method(openapi.MethodGet).Tags("pet").
//	                Responses(func(r *openapi.ResponseBuilder) {
//	                    r.StatusCode(200).MediaType(openapi.MediaTypeJSON).
//	                        Schema(openapi.NewItemReference(openapi.Ref(openapi.RefSchemas, "Pet")))
//	                })
//	        })
//	    })
//
//	rendered, err := doc.Render()
//	data, err := rendered.JSON()
//
// # Schema Variants
//
// A schema is one of four variants, each with its own output shape:
//
//	*ObjectSchemaBuilder     {type: object, required?, properties}
//	*StringSchemaBuilder     {type: string, format?, maxLength?, ...}
//	*ReferenceSchemaBuilder  {$ref} or {items: {$ref}}
//	*SecuritySchemaBuilder   {type: <style>, in?, scheme?, x-linkTo?, ...}
//
// NewSchema and Configure select the variant from a SchemaKind tag and
// reject unknown tags with ErrUnknownSchemaKind. Parents accepting a
// schema also take a kind and configurator through ConfigureSchema; any
// error is reported when the parent is rendered.
//
// At the document root, object schemas are rendered under
// components.schemas and security schemas under components.securitySchemes.
// Every security scheme is also listed, without scopes, in the top-level
// security requirement. String and reference schemas have no root slot and
// are skipped. Security schemas cannot be used as data and fail with
// ErrSecuritySchemaInline inside parameters, request bodies and responses.
//
// # Duplicates
//
// Duplicates are resolved silently:
//
//   - properties with a name already used in the object are dropped
//   - enum values loosely equal to a present value (1 and "1") are dropped
//   - operation tags, tag group tags and server variables keep the first
//   - an operation for a method already present in the path replaces it
//   - responses, paths and components with a key already present replace
//     the value in place
//
// # Output
//
// Unset fields, empty lists and empty maps are left out of the output,
// except paths and object properties, which are always present. Keyed
// collections keep insertion order in both JSON and YAML.
package openapi
