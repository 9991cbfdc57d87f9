package value

import "strconv"

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
