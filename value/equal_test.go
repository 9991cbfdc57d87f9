package value

import "testing"

func TestEqualReflexiveAndSymmetric(t *testing.T) {
	tup := NewTuple([]TupleEntry{{Value: I64(1)}, {Value: Bool(true)}})
	cases := []Value{
		Unit{},
		I64(42),
		Bool(false),
		Any{},
		I64Type{},
		BoolType{},
		StringType{},
		OptionType{},
		TypeKind{},
		None{},
		tup,
	}
	for _, v := range cases {
		eq, err := Equal(v, v)
		if err != nil {
			t.Errorf("Equal(%v, %v) returned error: %v", v, v, err)
			continue
		}
		if !eq {
			t.Errorf("Equal(%v, %v) = false, want true", v, v)
		}
	}
}

func TestEqualStringAlwaysIncomparable(t *testing.T) {
	_, err := Equal(String("a"), String("a"))
	if err == nil {
		t.Fatal("Equal(String, String) did not error")
	}
	if _, ok := err.(*IncomparableValuesError); !ok {
		t.Fatalf("Equal(String, String) error = %T, want *IncomparableValuesError", err)
	}
}

func TestEqualTupleIgnoresNames(t *testing.T) {
	n := "x"
	named := NewTuple([]TupleEntry{{Name: &n, Value: I64(1)}})
	unnamed := NewTuple([]TupleEntry{{Value: I64(1)}})
	eq, err := Equal(named, unnamed)
	if err != nil {
		t.Fatalf("Equal returned error: %v", err)
	}
	if !eq {
		t.Fatal("Equal(named tuple, unnamed tuple) = false, want true (names ignored)")
	}
}

func TestEqualEnumVariantComparesDefinitionIdentity(t *testing.T) {
	n := "A"
	variants := NewTuple([]TupleEntry{{Name: &n, Value: Unit{}}})
	def1, err := NewEnumType(variants)
	if err != nil {
		t.Fatalf("NewEnumType: %v", err)
	}
	def2, err := NewEnumType(variants)
	if err != nil {
		t.Fatalf("NewEnumType: %v", err)
	}
	v1 := &EnumVariant{Contents: Unit{}, VariantIndex: 0, Definition: def1}
	v2 := &EnumVariant{Contents: Unit{}, VariantIndex: 0, Definition: def2}

	eq, err := Equal(v1, v2)
	if err != nil {
		t.Fatalf("Equal returned error: %v", err)
	}
	if eq {
		t.Fatal("Equal(variant of def1, variant of def2) = true, want false (distinct definitions)")
	}
}

func TestEqualIncomparableKinds(t *testing.T) {
	_, err := Equal(I64(1), Bool(true))
	if err == nil {
		t.Fatal("Equal(I64, Bool) did not error")
	}
	if _, ok := err.(*IncomparableValuesError); !ok {
		t.Fatalf("Equal(I64, Bool) error = %T, want *IncomparableValuesError", err)
	}
}
