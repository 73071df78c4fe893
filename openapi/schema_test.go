package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestNewSchema(t *testing.T) {
	tests := []struct {
		name string
		kind SchemaKind
		want any
	}{
		{name: "object", kind: KindObject, want: &ObjectSchemaBuilder{}},
		{name: "string", kind: KindString, want: &StringSchemaBuilder{}},
		{name: "reference", kind: KindReference, want: &ReferenceSchemaBuilder{kind: KindReference}},
		{name: "item reference", kind: KindItemReference, want: &ReferenceSchemaBuilder{kind: KindItemReference}},
		{name: "security", kind: KindSecurity, want: &SecuritySchemaBuilder{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.kind, s.Kind())
		})
	}

	t.Run("unknown kind names the tag", func(t *testing.T) {
		s, err := NewSchema("table")
		assert.Nil(t, s)
		require.ErrorIs(t, err, ErrUnknownSchemaKind)
		assert.Contains(t, err.Error(), `"table"`)
	})
}

func TestConfigure(t *testing.T) {
	t.Run("typed configurator", func(t *testing.T) {
		s, err := Configure(KindObject, func(o *ObjectSchemaBuilder) {
			o.Key("Pet").Required("id")
		})
		require.NoError(t, err)

		obj, ok := s.(*ObjectSchemaBuilder)
		require.True(t, ok)
		assert.Equal(t, "Pet", obj.KeyName())
		assert.Equal(t, []string{"id"}, obj.required)
	})

	t.Run("generic configurator", func(t *testing.T) {
		var seen SchemaKind
		s, err := Configure(KindSecurity, func(b SchemaBuilder) {
			seen = b.Kind()
		})
		require.NoError(t, err)
		assert.Equal(t, KindSecurity, seen)
		assert.IsType(t, &SecuritySchemaBuilder{}, s)
	})

	t.Run("item reference uses the reference builder", func(t *testing.T) {
		s, err := Configure(KindItemReference, func(r *ReferenceSchemaBuilder) {
			r.Ref(Ref(RefSchemas, "Pet"))
		})
		require.NoError(t, err)
		assert.Equal(t, KindItemReference, s.Kind())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Configure(SchemaKind("union"), func(o *ObjectSchemaBuilder) {})
		require.ErrorIs(t, err, ErrUnknownSchemaKind)
		assert.Contains(t, err.Error(), "union")
	})

	t.Run("configurator of another variant", func(t *testing.T) {
		_, err := Configure(KindString, func(o *ObjectSchemaBuilder) {})
		require.ErrorIs(t, err, ErrSchemaKindMismatch)
	})

	t.Run("unsupported configurator type", func(t *testing.T) {
		_, err := configureSchema(KindString, func(string) {})
		require.ErrorIs(t, err, ErrSchemaKindMismatch)
	})

	t.Run("nil configurator", func(t *testing.T) {
		s, err := configureSchema(KindString, nil)
		require.NoError(t, err)
		assert.IsType(t, &StringSchemaBuilder{}, s)
	})
}

func TestObjectSchemaBuilder(t *testing.T) {
	t.Run("required omitted when empty", func(t *testing.T) {
		schema, err := NewObjectSchema("Empty").Render()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"object","properties":{}}`, mustJSON(t, schema))
	})

	t.Run("required kept in insertion order", func(t *testing.T) {
		schema, err := NewObjectSchema("Pet").
			Required("name").
			Required("id", "tag").
			Properties(func(p *PropertyBuilder) { p.Name("id").Type(TypeInteger) }).
			Render()
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "id", "tag"}, schema.Required)
	})

	t.Run("test object with two properties", func(t *testing.T) {
		schema, err := NewObjectSchema("Test").Properties(
			func(p *PropertyBuilder) {
				p.Name("test").Type(TypeInteger).Enum(1, 2).MinLength(2).Format("binary").Deprecated(true)
			},
			func(p *PropertyBuilder) {
				p.Name("name").Type(TypeString).MaxLength(40).MinLength(5).Example("Arthur van Leeuwen").Deprecated(false)
			},
		).Render()
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"type": "object",
			"properties": {
				"test": {"type": "integer", "format": "binary", "minLength": 2, "enum": [1, 2], "deprecated": true},
				"name": {"type": "string", "maxLength": 40, "minLength": 5, "example": "Arthur van Leeuwen", "deprecated": false}
			}
		}`, mustJSON(t, schema))
	})

	t.Run("properties keep insertion order", func(t *testing.T) {
		schema, err := NewObjectSchema("Ordered").
			AddProperty(NewProperty("zeta").Type(TypeString)).
			AddProperty(NewProperty("alpha").Type(TypeString)).
			AddProperty(NewProperty("mid").Type(TypeString)).
			Render()
		require.NoError(t, err)

		var keys []string
		for k := range schema.Properties.Keys() {
			keys = append(keys, k)
		}
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
	})

	// Reproduces observed behavior: a duplicate property name is dropped
	// silently and the first definition is kept.
	t.Run("duplicate property keeps the first", func(t *testing.T) {
		schema, err := NewObjectSchema("Dup").
			AddProperty(NewProperty("id").Type(TypeInteger)).
			AddProperty(NewProperty("id").Type(TypeString)).
			Render()
		require.NoError(t, err)

		assert.Equal(t, 1, schema.Properties.Len())
		id, ok := schema.Properties.Get("id")
		require.True(t, ok)
		assert.Equal(t, "integer", id.Type)
	})

	t.Run("property renamed after adding keeps the first", func(t *testing.T) {
		renamed := NewProperty("other").Type(TypeString)
		builder := NewObjectSchema("Dup").
			AddProperty(NewProperty("id").Type(TypeInteger)).
			AddProperty(renamed)
		renamed.Name("id")

		schema, err := builder.Render()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"object","properties":{"id":{"type":"integer"}}}`, mustJSON(t, schema))
	})

	t.Run("property without name", func(t *testing.T) {
		_, err := NewObjectSchema("Broken").AddProperty(&PropertyBuilder{}).Render()
		require.ErrorIs(t, err, ErrMissingPropertyName)
	})
}

func TestStringSchemaBuilder(t *testing.T) {
	t.Run("only type when empty", func(t *testing.T) {
		assert.JSONEq(t, `{"type":"string"}`, mustJSON(t, NewStringSchema("").Render()))
	})

	t.Run("all fields", func(t *testing.T) {
		schema := NewStringSchema("Code").
			Format("password").
			Maximum(10).
			Minimum(1).
			Length(8).
			Pattern("^[a-z]+$").
			Enum("a", "b", "a").
			Example("abcdefgh").
			Deprecated(true).
			Render()

		assert.JSONEq(t, `{
			"type": "string",
			"format": "password",
			"maximum": 10,
			"minimum": 1,
			"maxLength": 8,
			"minLength": 8,
			"pattern": "^[a-z]+$",
			"enum": ["a", "b"],
			"example": "abcdefgh",
			"deprecated": true
		}`, mustJSON(t, schema))
	})
}

func TestReferenceSchemaBuilder(t *testing.T) {
	t.Run("direct reference", func(t *testing.T) {
		schema, err := NewReference(Ref(RefSchemas, "ErrorModel")).Render()
		require.NoError(t, err)
		assert.JSONEq(t, `{"$ref":"#/components/schemas/ErrorModel"}`, mustJSON(t, schema))
	})

	t.Run("item reference", func(t *testing.T) {
		schema, err := NewItemReference(Ref(RefSchemas, "Pet")).Render()
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":{"$ref":"#/components/schemas/Pet"}}`, mustJSON(t, schema))
	})

	t.Run("switch kind", func(t *testing.T) {
		schema, err := NewReference("#/components/schemas/Pet").As(KindItemReference).Render()
		require.NoError(t, err)
		assert.Empty(t, schema.Ref)
		assert.Equal(t, "#/components/schemas/Pet", schema.Items.Ref)
	})

	t.Run("missing ref", func(t *testing.T) {
		_, err := NewReference("").Render()
		require.ErrorIs(t, err, ErrMissingReference)
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := (&ReferenceSchemaBuilder{}).Ref("#/components/schemas/Pet").Render()
		require.ErrorIs(t, err, ErrMissingReferenceKind)
	})

	t.Run("kind of another variant", func(t *testing.T) {
		_, err := NewReference("#/components/schemas/Pet").As(KindObject).Render()
		require.ErrorIs(t, err, ErrUnknownSchemaKind)
	})
}

func TestRef(t *testing.T) {
	tests := []struct {
		category RefCategory
		want     string
	}{
		{RefSecuritySchemes, "#/components/securitySchemes/Pet"},
		{RefSchemas, "#/components/schemas/Pet"},
		{RefRequests, "#/components/requests/Pet"},
		{RefResponses, "#/components/responses/Pet"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, Ref(tt.category, "Pet"))
		})
	}
}

func TestSecuritySchemaBuilder(t *testing.T) {
	t.Run("x-linkTo present when tagged", func(t *testing.T) {
		scheme, err := NewSecuritySchema("api_key").
			Style(SecurityAPIKey).
			Name("X-API-Key").
			In(InHeader).
			Description("Key issued per client.").
			Tag("Authentication").
			Render()
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"type": "apiKey",
			"description": "Key issued per client.",
			"name": "X-API-Key",
			"in": "header",
			"x-linkTo": "tag/Authentication"
		}`, mustJSON(t, scheme))
	})

	t.Run("x-linkTo absent without tag", func(t *testing.T) {
		scheme, err := NewSecuritySchema("bearer").
			Style(SecurityHTTP).
			Scheme("bearer").
			BearerFormat("JWT").
			Render()
		require.NoError(t, err)

		assert.JSONEq(t, `{"type":"http","scheme":"bearer","bearerFormat":"JWT"}`, mustJSON(t, scheme))
	})

	t.Run("openid connect", func(t *testing.T) {
		scheme, err := NewSecuritySchema("oidc").
			Style(SecurityOpenIDConnect).
			OpenIDConnectURL("https://id.example.com/.well-known/openid-configuration").
			Render()
		require.NoError(t, err)
		assert.Equal(t, "https://id.example.com/.well-known/openid-configuration", scheme.OpenIDConnectURL)
	})

	t.Run("missing style", func(t *testing.T) {
		_, err := NewSecuritySchema("none").Render()
		require.ErrorIs(t, err, ErrMissingSecurityType)
	})

	t.Run("rejected as data schema", func(t *testing.T) {
		_, err := renderDataSchema(NewSecuritySchema("api_key").Style(SecurityAPIKey))
		require.ErrorIs(t, err, ErrSecuritySchemaInline)
	})
}

func TestSchemaRenderIdempotent(t *testing.T) {
	object := NewObjectSchema("Pet").
		Required("id").
		Properties(
			func(p *PropertyBuilder) { p.Name("id").Type(TypeInteger).Format("int64") },
			func(p *PropertyBuilder) { p.Name("tags").Type(TypeArray).ArrayType(TypeString).Enum("a", "b") },
		)
	str := NewStringSchema("").Length(32).Format("uuid").Enum("x").Example("x")
	ref := NewItemReference(Ref(RefSchemas, "Pet"))
	security := NewSecuritySchema("api_key").Style(SecurityAPIKey).In(InHeader).Name("X-Key").Tag("Auth")

	t.Run("object", func(t *testing.T) {
		first, err := object.Render()
		require.NoError(t, err)
		second, err := object.Render()
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, str.Render(), str.Render())
	})

	t.Run("reference", func(t *testing.T) {
		first, err := ref.Render()
		require.NoError(t, err)
		second, err := ref.Render()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("security", func(t *testing.T) {
		first, err := security.Render()
		require.NoError(t, err)
		second, err := security.Render()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rendered values do not alias the builder", func(t *testing.T) {
		first := str.Render()
		first.Enum[0] = "changed"
		*first.MaxLength = 1

		second := str.Render()
		assert.Equal(t, []any{"x"}, second.Enum)
		assert.Equal(t, 32, *second.MaxLength)
	})
}
