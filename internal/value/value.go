package value

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Type uint8

const (
	NilType Type = iota
	BoolType
	NumberType
	StringType
	ListType
	RecordType
	ColorType
	ResultType
	VariantType
	FunctionType
)

var typeNames = [...]string{
	NilType:      "nil",
	BoolType:     "bool",
	NumberType:   "number",
	StringType:   "string",
	ListType:     "list",
	RecordType:   "record",
	ColorType:    "color",
	ResultType:   "result",
	VariantType:  "variant",
	FunctionType: "function",
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Value is the runtime representation shared by every stdlib module.
// Values are immutable: operations that "modify" a value return a new one.
//
// Producers must never construct a NaN or infinite Number; a computation that
// would do so fails with a runtime error instead.
type Value interface {
	Type() Type
	fmt.Stringer
}

type (
	Nil    struct{}
	Bool   bool
	Number float64
	String string
	List   []Value

	Color struct {
		R, G, B, A float64
	}

	// Variant is a sum type variant such as Shape.Circle(5). Fields is empty
	// for unit variants.
	Variant struct {
		TypeName string
		Name     string
		Fields   []Value
	}
)

var (
	NilValue         = Nil{}
	TrueValue        = Bool(true)
	FalseValue       = Bool(false)
	EmptyStringValue = String("")
)

// Type implements Value.
func (Nil) Type() Type {
	return NilType
}

// Type implements Value.
func (Bool) Type() Type {
	return BoolType
}

// Type implements Value.
func (Number) Type() Type {
	return NumberType
}

// Type implements Value.
func (String) Type() Type {
	return StringType
}

// Type implements Value.
func (List) Type() Type {
	return ListType
}

// Type implements Value.
func (Color) Type() Type {
	return ColorType
}

// Type implements Value.
func (Variant) Type() Type {
	return VariantType
}

func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func UnitVariant(typeName, name string) Variant {
	return Variant{TypeName: typeName, Name: name}
}

// NewVariant copies fields.
func NewVariant(typeName, name string, fields ...Value) Variant {
	return Variant{TypeName: typeName, Name: name, Fields: slices.Clone(fields)}
}

// TypeName returns the name reported by core.type_of: the kind name, or the
// declared type for named records and sum variants.
func TypeName(v Value) string {
	switch v := v.(type) {
	case Record:
		if v.typeName != "" {
			return v.typeName
		}
	case Variant:
		return v.TypeName
	case nil:
		return NilType.String()
	}
	return v.Type().String()
}

// DeclaredTypeName returns the explicit type name of named records and sum
// variants.
func DeclaredTypeName(v Value) (string, bool) {
	switch v := v.(type) {
	case Record:
		return v.typeName, v.typeName != ""
	case Variant:
		return v.TypeName, true
	}
	return "", false
}

// Truthy reports the conditional value of v: false, nil, 0 and "" are falsy,
// everything else (empty lists and records included) is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	case Number:
		return v != 0
	case String:
		return v != ""
	}
	return true
}

var (
	_ Value = Nil{}
	_ Value = Bool(false)
	_ Value = Number(0)
	_ Value = String("")
	_ Value = List(nil)
	_ Value = Record{}
	_ Value = Color{}
	_ Value = Result{}
	_ Value = Variant{}
	_ Value = Function{}
)
