package value

import "fmt"

// EnumType is a nominal enum type: an ordered Tuple of (variant name,
// payload type) entries. Identity is by pointer,
// exactly like StructType.
type EnumType struct {
	Variants *Tuple
}

// maxRecursionProbeDepth bounds the structural walk NewEnumType performs
// to detect a variant payload referring back to the enum under
// construction. espyscript forbids recursive enum types outright; this
// walk only needs to catch a type closing a cycle back to itself through
// Struct/Tuple wrapping, not arbitrarily deep mutual
// recursion across many distinct enums.
const maxRecursionProbeDepth = 64

func refersBack(root *EnumType, v Value, depth int) bool {
	if depth > maxRecursionProbeDepth {
		return true
	}
	switch vv := v.(type) {
	case *EnumType:
		return vv == root
	case *StructType:
		return refersBack(root, vv.Inner, depth+1)
	case *Tuple:
		for _, entry := range vv.Values() {
			if refersBack(root, entry, depth+1) {
				return true
			}
		}
	}
	return false
}

// NewEnumType allocates a fresh, uniquely-identified enum type. It rejects
// a definition whose variants payload types refer back to the enum being
// defined, since espyscript has no public constructor that can close such
// a cycle safely.
func NewEnumType(variants *Tuple) (*EnumType, error) {
	enumType := &EnumType{Variants: variants}
	for _, payload := range variants.Values() {
		if refersBack(enumType, payload, 0) {
			return nil, &RecursiveTypeError{Definition: enumType}
		}
	}
	return enumType, nil
}

func (*EnumType) Kind() Kind { return KindEnumType }

func (t *EnumType) String() string {
	return fmt.Sprintf("EnumType(%s)", t.Variants)
}

// EnumVariant is an inhabitant of an EnumType. VariantIndex must stay
// below len(Definition.Variants); that's guaranteed by construction via
// FunctionAction's Enum action, never by this type itself.
type EnumVariant struct {
	Contents     Value
	VariantIndex int
	Definition   *EnumType
}

func (*EnumVariant) Kind() Kind { return KindEnumVariant }

func (v *EnumVariant) String() string {
	name, ok := v.Definition.Variants.Name(v.VariantIndex)
	if !ok {
		name = fmt.Sprintf("#%d", v.VariantIndex)
	}
	return fmt.Sprintf("%s(%s)", name, v.Contents)
}
