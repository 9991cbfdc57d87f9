package value

import "strconv"

// String is shared immutable UTF-8 text. Go strings are already immutable
// and share their backing bytes on copy, which is exactly the Rc<str>
// sharing the source specifies — no wrapper type is needed.
//
// String is deliberately absent from Equal's dispatch table: the source
// does not compare strings for equality, so two String
// values always raise IncomparableValuesError, matching the source
// faithfully rather than "fixing" what reads like an omission.
type String string

func (String) Kind() Kind       { return KindString }
func (s String) String() string { return strconv.Quote(string(s)) }
