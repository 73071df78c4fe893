// Package importer converts validation schema descriptions into object
// schemas of the openapi package.
//
// The input is a normalized list of fields (see Definition). Conversion is
// best effort and narrow: primitive kinds, arrays of primitives or enums,
// and the usual string and number refinements. Anything else fails and no
// partial schema is returned.
package importer

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/vitalvas/redocgen/openapi"
)

var (
	// ErrUnknownKind is returned for a definition kind without a schema type.
	ErrUnknownKind = errors.New("importer: unknown definition kind")

	// ErrNestedArray is returned for arrays of arrays or of objects.
	ErrNestedArray = errors.New("importer: array elements must be primitive")

	// ErrMissingIPVersion is returned for an ip check without a version.
	ErrMissingIPVersion = errors.New("importer: ip check has no version")

	// ErrUnknownIPVersion is returned for an ip check with a version other than v4 or v6.
	ErrUnknownIPVersion = errors.New("importer: unknown ip version")

	// ErrInvalidCheckValue is returned when a check value has the wrong type.
	ErrInvalidCheckValue = errors.New("importer: invalid check value")
)

// kindTypes maps definition kinds to schema types.
var kindTypes = map[Kind]openapi.DataType{
	KindString:  openapi.TypeString,
	KindNumber:  openapi.TypeNumber,
	KindInteger: openapi.TypeInteger,
	KindBoolean: openapi.TypeBoolean,
	KindDate:    openapi.TypeString,
	KindArray:   openapi.TypeArray,
	KindObject:  openapi.TypeObject,
}

// Import builds an object schema registered under keyName with one
// property per field. Fields are required unless marked Optional.
func Import(keyName string, fields []Field) (*openapi.ObjectSchemaBuilder, error) {
	schema := openapi.NewObjectSchema(keyName)

	var required []string
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		prop, err := importField(field)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		if seen[field.Name] {
			continue
		}
		seen[field.Name] = true
		schema.AddProperty(prop)

		if !field.Definition.Optional {
			required = append(required, field.Name)
		}
	}
	if len(required) > 0 {
		schema.Required(required...)
	}

	return schema, nil
}

func importField(field Field) (*openapi.PropertyBuilder, error) {
	outer := &field.Definition

	def, err := unwrap(outer)
	if err != nil {
		return nil, err
	}

	p := &property{}
	if err := p.setType(def); err != nil {
		return nil, err
	}
	if err := p.applyChecks(def.Checks); err != nil {
		return nil, err
	}

	prop := p.build(field.Name)
	if outer.Description != "" {
		prop.Description(outer.Description)
	} else if def.Description != "" {
		prop.Description(def.Description)
	}
	if outer.Nullable || def.Nullable {
		prop.Nullable(true)
	}
	return prop, nil
}

// unwrap follows effects wrappers to the definition that carries the
// type and checks. An effects wrapper without inner definition is a string.
func unwrap(def *Definition) (*Definition, error) {
	for def.Kind == KindEffects {
		if def.Inner == nil {
			return &Definition{Kind: KindString, Description: def.Description}, nil
		}
		def = def.Inner
	}
	if def.Kind == KindEnum {
		return def, nil
	}
	if _, ok := kindTypes[def.Kind]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}
	return def, nil
}

// setType resolves the property type, format, items and enum from the
// unwrapped definition.
func (p *property) setType(def *Definition) error {
	switch def.Kind {
	case KindEnum:
		p.dataType = openapi.TypeArray
		p.arrayType = valueType(def.Values)
		p.enum = def.Values
		return nil
	case KindDate:
		p.dataType = openapi.TypeString
		p.format = "date-time"
		return nil
	case KindArray:
		p.dataType = openapi.TypeArray
		if def.Element == nil {
			return nil
		}
		elem, err := unwrap(def.Element)
		if err != nil {
			return fmt.Errorf("array element: %w", err)
		}
		if elem.Kind == KindEnum {
			p.arrayType = valueType(elem.Values)
			p.enum = elem.Values
			return nil
		}
		t := kindTypes[elem.Kind]
		if t == openapi.TypeArray || t == openapi.TypeObject {
			return fmt.Errorf("%w: %s", ErrNestedArray, elem.Kind)
		}
		p.arrayType = t
		return nil
	}

	p.dataType = kindTypes[def.Kind]
	return nil
}

// valueType is the schema type of the first enum value.
func valueType(values []any) openapi.DataType {
	if len(values) == 0 {
		return openapi.TypeString
	}
	switch reflect.ValueOf(values[0]).Kind() {
	case reflect.Bool:
		return openapi.TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return openapi.TypeNumber
	}
	return openapi.TypeString
}
