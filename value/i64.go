package value

import "strconv"

// I64 is a 64-bit signed integer value. Grounded on common/types/int.go's
// one-concrete-type-per-tag convention; espyscript has no arithmetic
// operator traits, so only Kind/String are needed here: overflow
// semantics are the bytecode producer's concern, not this type's.
type I64 int64

func (I64) Kind() Kind         { return KindI64 }
func (i I64) String() string   { return strconv.FormatInt(int64(i), 10) }
