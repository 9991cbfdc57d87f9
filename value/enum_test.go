package value

import "testing"

func TestNewEnumTypeRejectsDirectRecursion(t *testing.T) {
	variants := NewTuple(nil)
	enumType := &EnumType{Variants: variants}
	// Simulate a variant whose payload is the enum type itself, the way
	// NewEnumType would see it mid-construction.
	selfReferential := NewTuple([]TupleEntry{{Value: enumType}})
	if !refersBack(enumType, selfReferential, 0) {
		t.Fatal("refersBack did not detect direct self-reference through a tuple")
	}
}

func TestNewEnumTypeRejectsRecursionThroughStruct(t *testing.T) {
	variants := NewTuple(nil)
	enumType := &EnumType{Variants: variants}
	wrapped := NewStructType(enumType)
	if !refersBack(enumType, wrapped, 0) {
		t.Fatal("refersBack did not detect self-reference wrapped in a StructType")
	}
}

func TestNewEnumTypeAcceptsNonRecursiveDefinition(t *testing.T) {
	n := "A"
	variants := NewTuple([]TupleEntry{{Name: &n, Value: I64Type{}}})
	if _, err := NewEnumType(variants); err != nil {
		t.Fatalf("NewEnumType rejected a non-recursive definition: %v", err)
	}
}

func TestNewEnumTypeRejectsSelfReferentialVariant(t *testing.T) {
	// NewEnumType itself allocates the *EnumType under construction, so a
	// caller can never hand it that exact pointer up front; refersBack is
	// what this construction-time check is built on, and is exercised
	// directly above against a hand-assembled cycle.
	enumType := &EnumType{}
	enumType.Variants = NewTuple([]TupleEntry{{Value: enumType}})

	if !refersBack(enumType, enumType, 0) {
		t.Fatal("refersBack did not detect an EnumType naming itself as a payload")
	}
}
