package value

import "testing"

func TestTupleFindValueReturnsFirstMatch(t *testing.T) {
	n := "x"
	tup := NewTuple([]TupleEntry{
		{Name: &n, Value: I64(1)},
		{Name: &n, Value: I64(2)},
	})
	got, ok := tup.FindValue("x")
	if !ok {
		t.Fatal("FindValue(x) not found")
	}
	if got != Value(I64(1)) {
		t.Errorf("FindValue(x) = %v, want first match I64(1)", got)
	}
}

func TestTupleFindValueMissing(t *testing.T) {
	tup := NewTuple([]TupleEntry{{Value: I64(1)}})
	if _, ok := tup.FindValue("missing"); ok {
		t.Error("FindValue(missing) unexpectedly found a value")
	}
}

func TestTupleValueOutOfRange(t *testing.T) {
	tup := NewTuple([]TupleEntry{{Value: I64(1)}})
	if _, ok := tup.Value(5); ok {
		t.Error("Value(5) unexpectedly found a value in a length-1 tuple")
	}
	if _, ok := tup.Value(-1); ok {
		t.Error("Value(-1) unexpectedly found a value")
	}
}

func TestTupleIsEmpty(t *testing.T) {
	if !NewTuple(nil).IsEmpty() {
		t.Error("empty tuple reports non-empty")
	}
	if NewTuple([]TupleEntry{{Value: Unit{}}}).IsEmpty() {
		t.Error("one-element tuple reports empty")
	}
}
