package openapi

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// decimalLiteral is the decimal number grammar of JavaScript's Number().
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// appendEnum appends each value not already present in values.
// Values are compared with looseEqual.
func appendEnum(values []any, add ...any) []any {
	for _, v := range add {
		if !containsLoose(values, v) {
			values = append(values, v)
		}
	}
	return values
}

func containsLoose(values []any, v any) bool {
	for _, existing := range values {
		if looseEqual(existing, v) {
			return true
		}
	}
	return false
}

// looseEqual compares enum values like JavaScript's == operator does for
// primitives: numbers and booleans compare numerically, and a string equals
// a number when its trimmed text parses to the same value (the empty string
// is zero). Other values compare with ==.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as == bs
	}

	af, aNum := toNumber(a)
	bf, bNum := toNumber(b)
	switch {
	case aNum && bNum:
		return af == bf
	case aNum && bStr:
		f, ok := parseNumber(bs)
		return ok && f == af
	case aStr && bNum:
		f, ok := parseNumber(as)
		return ok && f == bf
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// parseNumber converts text the way JavaScript's Number() does: decimal
// literals, Infinity with an optional sign, and unsigned 0x, 0o and 0b
// integers. Anything else is NaN and reported as false.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if strings.ContainsRune(s, '_') {
			return 0, false
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
