package value

import "testing"

func TestConcatUnitIsIdentity(t *testing.T) {
	v := I64(5)
	if got := Concat(Unit{}, v); got != Value(v) {
		t.Errorf("Concat(Unit, v) = %v, want v", got)
	}
	if got := Concat(v, Unit{}); got != Value(v) {
		t.Errorf("Concat(v, Unit) = %v, want v", got)
	}
}

func TestConcatScalarsBuildUnnamedTuple(t *testing.T) {
	got := Concat(I64(1), I64(2))
	tup, ok := got.(*Tuple)
	if !ok {
		t.Fatalf("Concat(scalar, scalar) = %T, want *Tuple", got)
	}
	if tup.Len() != 2 {
		t.Fatalf("tuple length = %d, want 2", tup.Len())
	}
	for i := 0; i < 2; i++ {
		if _, named := tup.Name(i); named {
			t.Errorf("entry %d unexpectedly named", i)
		}
	}
}

func TestConcatDropsNameOnSingletonAppend(t *testing.T) {
	n := "x"
	named := NewTuple([]TupleEntry{{Name: &n, Value: I64(1)}})
	got := Concat(named, I64(2))
	tup, ok := got.(*Tuple)
	if !ok {
		t.Fatalf("Concat(tuple, scalar) = %T, want *Tuple", got)
	}
	if _, named := tup.Name(0); !named {
		t.Error("expected the original tuple's entry to keep its name")
	}
	if _, named := tup.Name(1); named {
		t.Error("appended scalar unexpectedly kept a name")
	}
}

func TestConcatAssociativeInShape(t *testing.T) {
	a, b, c := I64(1), I64(2), I64(3)
	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))
	eq, err := Equal(left, right)
	if err != nil {
		t.Fatalf("Equal returned error: %v", err)
	}
	if !eq {
		t.Errorf("Concat is not associative in shape: %v != %v", left, right)
	}
}

func TestConcatTupleTuple(t *testing.T) {
	l := NewTuple([]TupleEntry{{Value: I64(1)}})
	r := NewTuple([]TupleEntry{{Value: I64(2)}, {Value: I64(3)}})
	got := Concat(l, r).(*Tuple)
	if got.Len() != 3 {
		t.Fatalf("tuple length = %d, want 3", got.Len())
	}
	for i, want := range []I64{1, 2, 3} {
		v, _ := got.Value(i)
		if v != Value(want) {
			t.Errorf("entry %d = %v, want %v", i, v, want)
		}
	}
}
