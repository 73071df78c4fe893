package importer

import (
	"fmt"
	"math"
	"reflect"
	"regexp"

	"github.com/vitalvas/redocgen/openapi"
)

// slot is a property field that checks write to.
type slot int

const (
	slotType slot = iota
	slotFormat
	slotPattern
	slotMinLength
	slotMaxLength
	slotMinimum
	slotMaximum
)

// property accumulates the fields of one imported property.
type property struct {
	dataType  openapi.DataType
	arrayType openapi.DataType
	format    string
	pattern   string
	minLength *int
	maxLength *int
	minimum   *float64
	maximum   *float64
	enum      []any

	// owners records which check kind last wrote each slot.
	owners map[slot]CheckKind
}

// claim reports whether a check of kind may write s. A slot written by one
// check kind is not overwritten by another; the same kind overwrites.
func (p *property) claim(s slot, kind CheckKind) bool {
	if p.owners == nil {
		p.owners = make(map[slot]CheckKind)
	}
	if owner, ok := p.owners[s]; ok && owner != kind {
		return false
	}
	p.owners[s] = kind
	return true
}

func (p *property) setFormat(kind CheckKind, format string) {
	if p.claim(slotFormat, kind) {
		p.format = format
	}
}

func (p *property) setPattern(kind CheckKind, pattern string) {
	if p.claim(slotPattern, kind) {
		p.pattern = pattern
	}
}

func (p *property) setLength(s slot, kind CheckKind, n int) {
	if !p.claim(s, kind) {
		return
	}
	if s == slotMinLength {
		p.minLength = &n
	} else {
		p.maxLength = &n
	}
}

func (p *property) setBound(s slot, kind CheckKind, v float64) {
	if !p.claim(s, kind) {
		return
	}
	if s == slotMinimum {
		p.minimum = &v
	} else {
		p.maximum = &v
	}
}

func (p *property) applyChecks(checks []Check) error {
	for _, check := range checks {
		if err := p.applyCheck(check); err != nil {
			return fmt.Errorf("%s check: %w", check.Kind, err)
		}
	}
	return nil
}

func (p *property) applyCheck(check Check) error {
	switch check.Kind {
	case CheckLength:
		n, err := number(check.Value)
		if err != nil {
			return err
		}
		if p.dataType == openapi.TypeArray {
			p.setBound(slotMinimum, check.Kind, n)
			p.setBound(slotMaximum, check.Kind, n)
		} else {
			p.setLength(slotMinLength, check.Kind, int(n))
			p.setLength(slotMaxLength, check.Kind, int(n))
		}

	case CheckMax:
		n, err := number(check.Value)
		if err != nil {
			return err
		}
		if p.dataType == openapi.TypeString {
			p.setLength(slotMaxLength, check.Kind, int(n))
		} else {
			p.setBound(slotMaximum, check.Kind, n)
		}

	case CheckMin:
		n, err := number(check.Value)
		if err != nil {
			return err
		}
		if p.dataType == openapi.TypeString {
			p.setLength(slotMinLength, check.Kind, int(n))
		} else {
			p.setBound(slotMinimum, check.Kind, n)
		}

	case CheckEmail:
		p.setFormat(check.Kind, "email")
	case CheckURL:
		p.setFormat(check.Kind, "uri")
	case CheckUUID:
		p.setFormat(check.Kind, "uuid")
	case CheckDatetime:
		p.setFormat(check.Kind, "date-time")

	case CheckIP:
		switch check.Version {
		case "":
			return ErrMissingIPVersion
		case IPv4:
			p.setFormat(check.Kind, "ipv4")
		case IPv6:
			p.setFormat(check.Kind, "ipv6")
		default:
			return fmt.Errorf("%w: %q", ErrUnknownIPVersion, check.Version)
		}

	case CheckRegex:
		p.setPattern(check.Kind, check.Regex)

	case CheckIncludes, CheckStartsWith, CheckEndsWith:
		text, ok := check.Value.(string)
		if !ok {
			return fmt.Errorf("%w: %T", ErrInvalidCheckValue, check.Value)
		}
		pattern := regexp.QuoteMeta(text)
		switch check.Kind {
		case CheckStartsWith:
			pattern = "^" + pattern
		case CheckEndsWith:
			pattern += "$"
		}
		p.setPattern(check.Kind, pattern)

	case CheckInt:
		if p.dataType == openapi.TypeNumber && p.claim(slotType, check.Kind) {
			p.dataType = openapi.TypeInteger
		}

	case CheckTrim, CheckToLowerCase, CheckToUpperCase:
		// Transformations, nothing to describe.
	}

	return nil
}

// number converts a numeric check value to float64.
func number(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidCheckValue, f)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrInvalidCheckValue, v)
}

// build creates the property builder with every field that was set.
func (p *property) build(name string) *openapi.PropertyBuilder {
	prop := openapi.NewProperty(name).Type(p.dataType)
	if p.arrayType != "" {
		prop.ArrayType(p.arrayType)
	}
	if p.format != "" {
		prop.Format(p.format)
	}
	if p.pattern != "" {
		prop.Pattern(p.pattern)
	}
	if p.minLength != nil {
		prop.MinLength(*p.minLength)
	}
	if p.maxLength != nil {
		prop.MaxLength(*p.maxLength)
	}
	if p.minimum != nil {
		prop.Minimum(*p.minimum)
	}
	if p.maximum != nil {
		prop.Maximum(*p.maximum)
	}
	if len(p.enum) > 0 {
		prop.Enum(p.enum...)
	}
	return prop
}
