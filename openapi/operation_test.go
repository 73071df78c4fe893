package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petsPath() *PathBuilder {
	return NewPath("/pets").Operations(func(op *OperationBuilder) {
		op.Method(MethodGet).
			Tags("pet").
			Responses(
				func(r *ResponseBuilder) {
					r.StatusCode(200).
						Description("A list of pets.").
						MediaType(MediaTypeAny).
						Schema(NewItemReference(Ref(RefSchemas, "Pet")))
				},
				func(r *ResponseBuilder) {
					r.Default().
						Description("Unexpected error.").
						MediaType(MediaTypeHTML).
						Schema(NewReference(Ref(RefSchemas, "ErrorModel")))
				},
			)
	})
}

func TestPathBuilder(t *testing.T) {
	t.Run("pets listing", func(t *testing.T) {
		paths, err := petsPath().Render()
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"/pets": {
				"get": {
					"tags": ["pet"],
					"responses": {
						"200": {
							"description": "A list of pets.",
							"content": {
								"*/*": {"schema": {"items": {"$ref": "#/components/schemas/Pet"}}}
							}
						},
						"default": {
							"description": "Unexpected error.",
							"content": {
								"text/html": {"schema": {"$ref": "#/components/schemas/ErrorModel"}}
							}
						}
					}
				}
			}
		}`, mustJSON(t, paths))

		item, ok := paths.Get("/pets")
		require.True(t, ok)
		ok200, ok := item.Get.Responses.Get("200")
		require.True(t, ok)
		media, ok := ok200.Content.Get("*/*")
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", media.Schema.Items.Ref)
	})

	t.Run("render is idempotent", func(t *testing.T) {
		p := petsPath()
		first, err := p.Render()
		require.NoError(t, err)
		second, err := p.Render()
		require.NoError(t, err)
		assert.Equal(t, mustJSON(t, first), mustJSON(t, second))
	})

	t.Run("several methods", func(t *testing.T) {
		paths, err := NewPath("/pets/{petId}").
			Summary("A single pet").
			Parameters(func(p *ParameterBuilder) {
				p.Name("petId").In(InPath).Required(true).Schema(NewStringSchema(""))
			}).
			Operations(
				func(op *OperationBuilder) { op.Method("GET").OperationID("showPet") },
				func(op *OperationBuilder) { op.Method(MethodDelete).OperationID("deletePet") },
			).
			AddOperation(NewOperation(MethodPatch).OperationID("updatePet")).
			Render()
		require.NoError(t, err)

		item, _ := paths.Get("/pets/{petId}")
		assert.Equal(t, "A single pet", item.Summary)
		require.Len(t, item.Parameters, 1)
		assert.Equal(t, "petId", item.Parameters[0].Name)
		assert.Equal(t, "showPet", item.Get.OperationID)
		assert.Equal(t, "deletePet", item.Delete.OperationID)
		assert.Equal(t, "updatePet", item.Patch.OperationID)
		assert.Nil(t, item.Post)
	})

	// Reproduces observed behavior: a second operation for the same method
	// replaces the first.
	t.Run("duplicate method keeps the last", func(t *testing.T) {
		paths, err := NewPath("/pets").
			Operations(
				func(op *OperationBuilder) { op.Method(MethodGet).OperationID("first") },
				func(op *OperationBuilder) { op.Method(MethodGet).OperationID("second") },
			).
			Render()
		require.NoError(t, err)

		item, _ := paths.Get("/pets")
		assert.Equal(t, "second", item.Get.OperationID)
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := NewPath("").Render()
		require.ErrorIs(t, err, ErrMissingPath)
	})

	t.Run("operation error names the path", func(t *testing.T) {
		_, err := NewPath("/pets").Operations(func(op *OperationBuilder) {}).Render()
		require.ErrorIs(t, err, ErrMissingMethod)
		assert.Contains(t, err.Error(), "/pets")
	})
}

func TestOperationBuilder(t *testing.T) {
	t.Run("full operation", func(t *testing.T) {
		method, op, err := NewOperation(MethodPost).
			Tags("pet", "store", "pet").
			Summary("Add a pet").
			Description("Adds a pet.", "Names must be unique.").
			OperationID("addPet").
			Deprecated(true).
			ExternalDocs(func(d *ExternalDocsBuilder) { d.URL("https://example.com/pets") }).
			Parameters(func(p *ParameterBuilder) { p.Name("X-Trace").In(InHeader) }).
			RequestBody(func(rb *RequestBodyBuilder) {
				rb.Description("Pet to add").Required(true).MediaType(MediaTypeJSON).
					ConfigureSchema(KindReference, func(r *ReferenceSchemaBuilder) { r.Ref(Ref(RefSchemas, "Pet")) })
			}).
			AddResponse(NewResponse(201).Description("Created.")).
			Render()
		require.NoError(t, err)
		assert.Equal(t, MethodPost, method)

		assert.JSONEq(t, `{
			"tags": ["pet", "store"],
			"summary": "Add a pet",
			"description": "Adds a pet.\nNames must be unique.",
			"operationId": "addPet",
			"deprecated": true,
			"externalDocs": {"url": "https://example.com/pets"},
			"requestBody": {
				"description": "Pet to add",
				"required": true,
				"content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
			},
			"parameters": [{"name": "X-Trace", "in": "header"}],
			"responses": {"201": {"description": "Created."}}
		}`, mustJSON(t, op))
	})

	t.Run("empty request body is omitted", func(t *testing.T) {
		_, op, err := NewOperation(MethodGet).
			RequestBody(func(rb *RequestBodyBuilder) { rb.Description("nothing here").Required(true) }).
			Render()
		require.NoError(t, err)
		assert.Nil(t, op.RequestBody)

		var raw map[string]any
		require.NoError(t, json.Unmarshal([]byte(mustJSON(t, op)), &raw))
		assert.NotContains(t, raw, "requestBody")
	})

	t.Run("request body carries content keyed by media type", func(t *testing.T) {
		_, op, err := NewOperation(MethodPut).
			SetRequestBody(NewRequestBody().MediaType(MediaTypeXML).Schema(NewStringSchema(""))).
			Render()
		require.NoError(t, err)
		require.NotNil(t, op.RequestBody)
		_, ok := op.RequestBody.Content.Get(MediaTypeXML)
		assert.True(t, ok)
	})

	t.Run("request body without media type", func(t *testing.T) {
		_, _, err := NewOperation(MethodPost).
			RequestBody(func(rb *RequestBodyBuilder) { rb.Schema(NewStringSchema("")) }).
			Render()
		require.ErrorIs(t, err, ErrMissingMediaType)
	})

	t.Run("request body with security schema", func(t *testing.T) {
		_, _, err := NewOperation(MethodPost).
			RequestBody(func(rb *RequestBodyBuilder) {
				rb.MediaType(MediaTypeJSON).Schema(NewSecuritySchema("k").Style(SecurityAPIKey))
			}).
			Render()
		require.ErrorIs(t, err, ErrSecuritySchemaInline)
	})

	t.Run("responses keep order and replace by key", func(t *testing.T) {
		_, op, err := NewOperation(MethodGet).
			Responses(
				func(r *ResponseBuilder) { r.StatusCode(200).Description("first") },
				func(r *ResponseBuilder) { r.Code("4XX").Description("client error") },
				func(r *ResponseBuilder) { r.StatusCode(200).Description("replaced") },
			).
			Render()
		require.NoError(t, err)

		var keys []string
		for k := range op.Responses.Keys() {
			keys = append(keys, k)
		}
		assert.Equal(t, []string{"200", "4XX"}, keys)

		resp, _ := op.Responses.Get("200")
		assert.Equal(t, "replaced", resp.Description)
	})

	t.Run("response without content", func(t *testing.T) {
		_, op, err := NewOperation(MethodDelete).
			AddResponse(NewResponse(204).Description("Deleted.")).
			Render()
		require.NoError(t, err)
		assert.JSONEq(t, `{"responses":{"204":{"description":"Deleted."}}}`, mustJSON(t, op))
	})

	t.Run("response without code", func(t *testing.T) {
		_, _, err := NewOperation(MethodGet).
			Responses(func(r *ResponseBuilder) { r.Description("no code") }).
			Render()
		require.ErrorIs(t, err, ErrMissingStatusCode)
	})

	t.Run("response media type without schema", func(t *testing.T) {
		_, _, err := NewOperation(MethodGet).
			AddResponse(NewResponse(200).MediaType(MediaTypeJSON)).
			Render()
		require.ErrorIs(t, err, ErrMissingSchema)
	})

	t.Run("method validation", func(t *testing.T) {
		tests := []struct {
			name   string
			method string
			err    error
		}{
			{name: "missing", method: "", err: ErrMissingMethod},
			{name: "unknown", method: "fetch", err: ErrUnknownMethod},
			{name: "upper case accepted", method: "TRACE"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				method, _, err := NewOperation(tt.method).Render()
				if tt.err != nil {
					require.ErrorIs(t, err, tt.err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, MethodTrace, method)
			})
		}
	})

	t.Run("error names the operation", func(t *testing.T) {
		_, _, err := NewOperation(MethodGet).
			OperationID("listPets").
			Responses(func(r *ResponseBuilder) {}).
			Render()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listPets")
	})
}
