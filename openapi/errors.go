package openapi

import "errors"

var (
	// ErrUnknownSchemaKind is returned when a schema kind tag does not name a known variant.
	ErrUnknownSchemaKind = errors.New("openapi: unknown schema kind")

	// ErrSchemaKindMismatch is returned when a configurator does not accept the variant built for a kind.
	ErrSchemaKindMismatch = errors.New("openapi: configurator does not match schema kind")

	// ErrMissingReference is returned when a reference schema has no ref.
	ErrMissingReference = errors.New("openapi: reference schema has no ref")

	// ErrMissingReferenceKind is returned when a reference schema has no kind tag.
	ErrMissingReferenceKind = errors.New("openapi: reference schema has no kind")

	// ErrSecuritySchemaInline is returned when a security schema is used where a data schema is expected.
	ErrSecuritySchemaInline = errors.New("openapi: security schema cannot describe data")

	// ErrMissingSecurityType is returned when a security schema has no style.
	ErrMissingSecurityType = errors.New("openapi: security schema has no type")

	// ErrMissingKeyName is returned when a root schema has no key name.
	ErrMissingKeyName = errors.New("openapi: schema has no key name")

	// ErrMissingPropertyName is returned when an object property has no name.
	ErrMissingPropertyName = errors.New("openapi: property has no name")

	// ErrMissingMediaType is returned when content has a schema but no media type.
	ErrMissingMediaType = errors.New("openapi: media type must be set")

	// ErrMissingSchema is returned when content has a media type but no schema.
	ErrMissingSchema = errors.New("openapi: schema must be set")

	// ErrMissingStatusCode is returned when a response has no status code.
	ErrMissingStatusCode = errors.New("openapi: response has no status code")

	// ErrMissingMethod is returned when an operation has no HTTP method.
	ErrMissingMethod = errors.New("openapi: operation has no method")

	// ErrUnknownMethod is returned when an operation method is not an HTTP method.
	ErrUnknownMethod = errors.New("openapi: unknown operation method")

	// ErrMissingPath is returned when a path builder has no path template.
	ErrMissingPath = errors.New("openapi: path has no template")
)
