// Package value implements espyscript's value model: the tagged union of
// primitive, composite, and type-valued forms that the interpreter produces
// and the host exchanges with a running program.
//
// Every tag is a distinct Go type implementing Value, one concrete type
// per tag (common/types/int.go, bool.go, string.go, ...). Composite
// payloads that the source shares via Rc are ordinary Go pointers here:
// the garbage collector gives cheap, safe aliasing for free, so no
// manual refcounting is written anywhere in this package.
package value

// Kind identifies a Value's tag. The set is closed.
type Kind int

const (
	KindUnit Kind = iota
	KindTuple
	KindBorrow
	KindI64
	KindBool
	KindString
	KindFunction
	KindEnumVariant
	KindSome
	KindNone
	KindAny
	KindI64Type
	KindBoolType
	KindStringType
	KindStructType
	KindEnumType
	KindOption
	KindType
)

var kindNames = [...]string{
	KindUnit:        "Unit",
	KindTuple:       "Tuple",
	KindBorrow:      "Borrow",
	KindI64:         "I64",
	KindBool:        "Bool",
	KindString:      "String",
	KindFunction:    "Function",
	KindEnumVariant: "EnumVariant",
	KindSome:        "Some",
	KindNone:        "None",
	KindAny:         "Any",
	KindI64Type:     "I64Type",
	KindBoolType:    "BoolType",
	KindStringType:  "StringType",
	KindStructType:  "StructType",
	KindEnumType:    "EnumType",
	KindOption:      "Option",
	KindType:        "Type",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is the common interface every tag implements.
type Value interface {
	Kind() Kind
	String() string
}

// Unit is the empty tuple, the empty named tuple, and its own type: typeof
// Unit == Unit. It has a single inhabitant.
type Unit struct{}

func (Unit) Kind() Kind     { return KindUnit }
func (Unit) String() string { return "()" }

// Any is the universal supertype: every value conforms to it.
type Any struct{}

func (Any) Kind() Kind     { return KindAny }
func (Any) String() string { return "Any" }

// I64Type is the primitive marker type that I64 values conform to.
type I64Type struct{}

func (I64Type) Kind() Kind     { return KindI64Type }
func (I64Type) String() string { return "I64" }

// BoolType is the primitive marker type that Bool values conform to.
type BoolType struct{}

func (BoolType) Kind() Kind     { return KindBoolType }
func (BoolType) String() string { return "Bool" }

// StringType is the primitive marker type that String values conform to.
type StringType struct{}

func (StringType) Kind() Kind     { return KindStringType }
func (StringType) String() string { return "String" }

// OptionType is the singleton option type (the "Option" tag).
type OptionType struct{}

func (OptionType) Kind() Kind     { return KindOption }
func (OptionType) String() string { return "Option" }

// TypeKind is the kind of types (the "Type" tag). Named TypeKind rather
// than Type to avoid colliding with Go's "type" keyword and this
// package's own exported Kind concept.
type TypeKind struct{}

func (TypeKind) Kind() Kind     { return KindType }
func (TypeKind) String() string { return "Type" }
