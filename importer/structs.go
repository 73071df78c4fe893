package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/vitalvas/redocgen/openapi"
)

// ErrNotStruct is returned by FromStruct for values that are not structs.
var ErrNotStruct = errors.New("importer: value is not a struct")

// ErrUnsupportedType is returned by FromStruct for field types without a
// definition kind, such as channels and functions.
var ErrUnsupportedType = errors.New("importer: unsupported field type")

var timeType = reflect.TypeOf(time.Time{})

// FromStruct describes the exported fields of a struct as definitions.
//
// Field names follow the json tag. Pointer fields and fields tagged
// omitempty are optional. Integers become numbers with an int check,
// time.Time a date, and slices arrays. Refinements come from the schema
// tag, a comma-separated list of checks:
//
//	type Player struct {
//	    DiscordID string    `json:"discord_id" schema:"len=18,description=Discord snowflake"`
//	    Email     *string   `json:"email" schema:"email"`
//	    Hobbies   []string  `json:"hobbies" schema:"enum=Sports|Reading"`
//	    Address   string    `json:"address" schema:"ip=v4"`
//	    Nick      string    `json:"nick" schema:"min=3,max=16,regex=^[a-z]+$"`
//	}
//
// regex consumes the rest of the tag, so it must come last.
// Embedded structs without a json name are inlined.
func FromStruct(v any) ([]Field, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, v)
	}

	var fields []Field
	if err := collectFields(t, &fields, false); err != nil {
		return nil, err
	}
	return fields, nil
}

// ImportStruct combines FromStruct and Import.
func ImportStruct(keyName string, v any) (*openapi.ObjectSchemaBuilder, error) {
	fields, err := FromStruct(v)
	if err != nil {
		return nil, err
	}
	return Import(keyName, fields)
}

// collectFields appends the definitions of the fields of t. When
// allOptional is true every field is optional, as for fields inlined from
// an embedded pointer that may be nil.
func collectFields(t reflect.Type, fields *[]Field, allOptional bool) error {
	for i := range t.NumField() {
		field := t.Field(i)

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, omitempty := parseJSONTag(jsonTag)

		if field.Anonymous && name == "" {
			ft := field.Type
			isPtr := ft.Kind() == reflect.Pointer
			if isPtr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				if err := collectFields(ft, fields, allOptional || isPtr); err != nil {
					return err
				}
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		ft := field.Type
		optional := omitempty || allOptional
		if ft.Kind() == reflect.Pointer {
			optional = true
			ft = ft.Elem()
		}

		def, err := typeDefinition(ft)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		def.Optional = optional

		if err := applySchemaTag(&def, field.Tag.Get("schema")); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}

		*fields = append(*fields, Field{Name: name, Definition: def})
	}
	return nil
}

func parseJSONTag(tag string) (string, bool) {
	name, rest, _ := strings.Cut(tag, ",")
	return name, strings.Contains(rest, "omitempty") || strings.Contains(rest, "omitzero")
}

// typeDefinition maps a Go type to a definition.
func typeDefinition(t reflect.Type) (Definition, error) {
	if t == timeType {
		return Definition{Kind: KindDate}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return Definition{Kind: KindString}, nil

	case reflect.Bool:
		return Definition{Kind: KindBoolean}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Definition{Kind: KindNumber, Checks: []Check{{Kind: CheckInt}}}, nil

	case reflect.Float32, reflect.Float64:
		return Definition{Kind: KindNumber}, nil

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return Definition{Kind: KindString}, nil
		}
		elemType := t.Elem()
		if elemType.Kind() == reflect.Pointer {
			elemType = elemType.Elem()
		}
		elem, err := typeDefinition(elemType)
		if err != nil {
			return Definition{}, err
		}
		return Definition{Kind: KindArray, Element: &elem}, nil

	case reflect.Struct, reflect.Map:
		return Definition{Kind: KindObject}, nil
	}

	return Definition{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// applySchemaTag parses the schema struct tag into checks, description
// and enum values.
func applySchemaTag(def *Definition, tag string) error {
	rest := tag
	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ",")

		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)

		switch key {
		case "":
			continue
		case "description":
			def.Description = value
		case "nullable":
			def.Nullable = true
		case "enum":
			values := enumValues(value)
			if def.Kind == KindArray {
				def.Element = &Definition{Kind: KindEnum, Values: values}
			} else {
				def.Kind = KindEnum
				def.Values = values
			}
		case "regex":
			if rest != "" {
				value += "," + rest
				rest = ""
			}
			def.Checks = append(def.Checks, Check{Kind: CheckRegex, Regex: value})
		case "len", "min", "max":
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return fmt.Errorf("%w: %s=%s", ErrInvalidCheckValue, key, value)
			}
			kind := CheckKind(key)
			if key == "len" {
				kind = CheckLength
			}
			def.Checks = append(def.Checks, Check{Kind: kind, Value: n})
		case "ip":
			def.Checks = append(def.Checks, Check{Kind: CheckIP, Version: value})
		case "includes", "startsWith", "endsWith":
			def.Checks = append(def.Checks, Check{Kind: CheckKind(key), Value: value})
		default:
			def.Checks = append(def.Checks, Check{Kind: CheckKind(key)})
		}
	}
	return nil
}

// enumValues splits a|b|c. Values that parse as numbers are numbers.
func enumValues(s string) []any {
	parts := strings.Split(s, "|")
	values := make([]any, 0, len(parts))
	for _, part := range parts {
		if f, err := strconv.ParseFloat(part, 64); err == nil {
			values = append(values, f)
			continue
		}
		values = append(values, part)
	}
	return values
}
