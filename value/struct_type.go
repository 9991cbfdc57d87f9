package value

import "fmt"

// StructType is a nominal struct type. Identity is by pointer, not by the
// shape of Inner. Go gives this for free: two *StructType built from
// identical Inner values are never ==.
type StructType struct {
	Inner Value
}

// NewStructType allocates a fresh, uniquely-identified struct type.
func NewStructType(inner Value) *StructType {
	return &StructType{Inner: inner}
}

func (*StructType) Kind() Kind { return KindStructType }

func (t *StructType) String() string {
	return fmt.Sprintf("StructType(%s)", t.Inner)
}
