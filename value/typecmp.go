package value

// TypeConforms implements espyscript's type-conformance relation,
// distinct from Equal.
//
// The conformant-to-Type set is reproduced exactly as the source
// enumerates it (Type, Any, Unit, I64Type, *EnumType) even though
// StructType and BoolType/StringType are conspicuously absent. That
// asymmetry is a likely oversight in the source, kept here for
// behavioral parity rather than "fixed".
func TypeConforms(v Value, ty Value) bool {
	if _, ok := ty.(Any); ok {
		return true
	}
	if _, ok := ty.(TypeKind); ok {
		switch v.(type) {
		case TypeKind, Any, Unit, I64Type, *EnumType:
			return true
		default:
			return false
		}
	}
	switch vv := v.(type) {
	case Unit:
		_, ok := ty.(Unit)
		return ok
	case I64:
		_, ok := ty.(I64Type)
		return ok
	case Bool:
		_, ok := ty.(BoolType)
		return ok
	case String:
		_, ok := ty.(StringType)
		return ok
	case *EnumVariant:
		t, ok := ty.(*EnumType)
		return ok && vv.Definition == t
	}
	return false
}
