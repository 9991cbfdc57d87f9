package stdlib

import (
	"bytes"
	"testing"

	"github.com/evie-calico/espyscript/value"
)

func index(t *testing.T, host value.Extern, name string) value.Extern {
	t.Helper()
	got, err := host.Index(value.String(name))
	if err != nil {
		t.Fatalf("Index(%q): %v", name, err)
	}
	borrow, ok := got.(value.Borrow)
	if !ok {
		t.Fatalf("Index(%q) = %T, want value.Borrow", name, got)
	}
	return borrow.Host
}

func TestIoPrintWritesLineToWriter(t *testing.T) {
	var buf bytes.Buffer
	std := stdHost(t, New(&buf))
	print := index(t, index(t, std, "io"), "print")

	result, err := print.Call(value.String("hello"))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if _, ok := result.(value.Unit); !ok {
		t.Fatalf("result = %T, want value.Unit", result)
	}
	if buf.String() != "hello\n" {
		t.Errorf("buf = %q, want %q", buf.String(), "hello\n")
	}
}

func TestIoPrintRejectsNonString(t *testing.T) {
	var buf bytes.Buffer
	std := stdHost(t, New(&buf))
	print := index(t, index(t, std, "io"), "print")

	_, err := print.Call(value.I64(1))
	if err == nil {
		t.Fatal("print.Call(I64) did not error")
	}
	if _, ok := err.(*value.TypeError); !ok {
		t.Fatalf("error = %T, want *value.TypeError", err)
	}
}

func TestStringConcatJoinsTuple(t *testing.T) {
	var buf bytes.Buffer
	std := stdHost(t, New(&buf))
	concat := index(t, index(t, std, "string"), "concat")

	result, err := concat.Call(value.NewTuple([]value.TupleEntry{
		{Value: value.String("foo")},
		{Value: value.String("bar")},
	}))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if result != value.Value(value.String("foobar")) {
		t.Errorf("result = %v, want \"foobar\"", result)
	}
}

func TestStringConcatRejectsNonStringMember(t *testing.T) {
	var buf bytes.Buffer
	std := stdHost(t, New(&buf))
	concat := index(t, index(t, std, "string"), "concat")

	_, err := concat.Call(value.NewTuple([]value.TupleEntry{
		{Value: value.String("foo")},
		{Value: value.I64(1)},
	}))
	if err == nil {
		t.Fatal("concat.Call with a non-String member did not error")
	}
}

func TestRootIndexUnknownName(t *testing.T) {
	var buf bytes.Buffer
	std := stdHost(t, New(&buf))
	if _, err := std.Index(value.String("nope")); err == nil {
		t.Fatal("Index(unknown) did not error")
	}
}

func stdHost(t *testing.T, v value.Value) value.Extern {
	t.Helper()
	borrow, ok := v.(value.Borrow)
	if !ok {
		t.Fatalf("New returned %T, want value.Borrow", v)
	}
	return borrow.Host
}
