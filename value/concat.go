package value

// Concat implements tuple concatenation: an associative
// append with Unit as both left and right identity. A singleton appended
// to either side always receives no name, even if it had one — there is
// no path in the source that preserves a single value's name.
func Concat(l, r Value) Value {
	if _, ok := l.(Unit); ok {
		return r
	}
	if _, ok := r.(Unit); ok {
		return l
	}
	lt, lIsTuple := l.(*Tuple)
	rt, rIsTuple := r.(*Tuple)
	switch {
	case lIsTuple && rIsTuple:
		entries := make([]TupleEntry, 0, lt.Len()+rt.Len())
		entries = append(entries, lt.entries...)
		entries = append(entries, rt.entries...)
		return NewTuple(entries)
	case lIsTuple:
		entries := make([]TupleEntry, 0, lt.Len()+1)
		entries = append(entries, lt.entries...)
		entries = append(entries, TupleEntry{Value: r})
		return NewTuple(entries)
	case rIsTuple:
		entries := make([]TupleEntry, 0, rt.Len()+1)
		entries = append(entries, TupleEntry{Value: l})
		entries = append(entries, rt.entries...)
		return NewTuple(entries)
	default:
		return NewTuple([]TupleEntry{{Value: l}, {Value: r}})
	}
}
