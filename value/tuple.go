package value

import "strings"

// TupleEntry is one (optional name, Value) pair. Names are optional per
// entry and uniqueness is not enforced.
type TupleEntry struct {
	Name  *string
	Value Value
}

// Tuple is an ordered, immutable sequence of TupleEntry. Sharing a *Tuple
// across holders is the Go-GC equivalent of the source's Rc<[...]>; once
// built, a Tuple's entries are never mutated.
type Tuple struct {
	entries []TupleEntry
}

// NewTuple takes ownership of entries; callers must not mutate the slice
// afterwards.
func NewTuple(entries []TupleEntry) *Tuple {
	return &Tuple{entries: entries}
}

func (t *Tuple) Len() int { return len(t.entries) }

func (t *Tuple) IsEmpty() bool { return len(t.entries) == 0 }

// Value returns the value at a positional index.
func (t *Tuple) Value(i int) (Value, bool) {
	if i < 0 || i >= len(t.entries) {
		return nil, false
	}
	return t.entries[i].Value, true
}

// Name returns the entry's name at a positional index, if any.
func (t *Tuple) Name(i int) (string, bool) {
	if i < 0 || i >= len(t.entries) || t.entries[i].Name == nil {
		return "", false
	}
	return *t.entries[i].Name, true
}

// FindValue returns the value of the first entry named name: named
// access always returns the first match.
func (t *Tuple) FindValue(name string) (Value, bool) {
	for _, e := range t.entries {
		if e.Name != nil && *e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Values returns a fresh slice of the tuple's values in order.
func (t *Tuple) Values() []Value {
	vals := make([]Value, len(t.entries))
	for i, e := range t.entries {
		vals[i] = e.Value
	}
	return vals
}

func (t *Tuple) Kind() Kind { return KindTuple }

func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range t.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		if e.Name != nil {
			b.WriteString(*e.Name)
			b.WriteString(": ")
		}
		b.WriteString(e.Value.String())
	}
	b.WriteByte(')')
	return b.String()
}
