package importer

// Kind is the primitive kind of a validation definition.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
	KindArray   Kind = "array"
	KindEnum    Kind = "enum"
	KindObject  Kind = "object"

	// KindEffects wraps a refined or transformed definition. Type and
	// checks are taken from Inner.
	KindEffects Kind = "effects"
)

// CheckKind is the kind of a refinement check.
type CheckKind string

const (
	CheckLength      CheckKind = "length"
	CheckMax         CheckKind = "max"
	CheckMin         CheckKind = "min"
	CheckEmail       CheckKind = "email"
	CheckURL         CheckKind = "url"
	CheckUUID        CheckKind = "uuid"
	CheckIP          CheckKind = "ip"
	CheckDatetime    CheckKind = "datetime"
	CheckRegex       CheckKind = "regex"
	CheckIncludes    CheckKind = "includes"
	CheckStartsWith  CheckKind = "startsWith"
	CheckEndsWith    CheckKind = "endsWith"
	CheckInt         CheckKind = "int"
	CheckTrim        CheckKind = "trim"
	CheckToLowerCase CheckKind = "toLowerCase"
	CheckToUpperCase CheckKind = "toUpperCase"
)

// IP versions accepted by CheckIP.
const (
	IPv4 = "v4"
	IPv6 = "v6"
)

// Definition is the normalized description of one field of a validation
// schema. Adapters for concrete validation libraries produce it; the
// importer never inspects those libraries directly.
type Definition struct {
	Kind        Kind
	Optional    bool
	Nullable    bool
	Description string
	Checks      []Check

	// Inner is the wrapped definition of KindEffects.
	Inner *Definition

	// Element is the item definition of KindArray.
	Element *Definition

	// Values are the allowed values of KindEnum.
	Values []any
}

// Check is one refinement check. Value carries numbers for length, max and
// min and text for includes, startsWith and endsWith; Regex and Version
// are used by the regex and ip checks.
type Check struct {
	Kind    CheckKind
	Value   any
	Regex   string
	Version string
	Message string
}

// Field is a named definition. Field order is property order.
type Field struct {
	Name       string
	Definition Definition
}
