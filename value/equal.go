package value

// Equal implements espyscript's structural equality relation.
// Names are never compared within Tuple entries; String is
// deliberately absent from the matching tags, so two strings always raise
// IncomparableValuesError, matching the source exactly rather than adding
// an equality the source never defines.
func Equal(l, r Value) (bool, error) {
	switch lv := l.(type) {
	case Unit:
		if _, ok := r.(Unit); ok {
			return true, nil
		}
	case *Tuple:
		if rv, ok := r.(*Tuple); ok {
			if lv.Len() != rv.Len() {
				return false, nil
			}
			for i := 0; i < lv.Len(); i++ {
				lval, _ := lv.Value(i)
				rval, _ := rv.Value(i)
				eq, err := Equal(lval, rval)
				if err != nil {
					return false, err
				}
				if !eq {
					return false, nil
				}
			}
			return true, nil
		}
	case I64:
		if rv, ok := r.(I64); ok {
			return lv == rv, nil
		}
	case Bool:
		if rv, ok := r.(Bool); ok {
			return lv == rv, nil
		}
	case *EnumVariant:
		if rv, ok := r.(*EnumVariant); ok {
			if lv.VariantIndex != rv.VariantIndex || lv.Definition != rv.Definition {
				return false, nil
			}
			return Equal(lv.Contents, rv.Contents)
		}
	case *Some:
		if rv, ok := r.(*Some); ok {
			return Equal(lv.Inner, rv.Inner)
		}
	case None:
		if _, ok := r.(None); ok {
			return true, nil
		}
	case Any:
		if _, ok := r.(Any); ok {
			return true, nil
		}
	case I64Type:
		if _, ok := r.(I64Type); ok {
			return true, nil
		}
	case BoolType:
		if _, ok := r.(BoolType); ok {
			return true, nil
		}
	case StringType:
		if _, ok := r.(StringType); ok {
			return true, nil
		}
	case *StructType:
		if rv, ok := r.(*StructType); ok {
			return lv == rv, nil
		}
	case *EnumType:
		if rv, ok := r.(*EnumType); ok {
			return lv == rv, nil
		}
	case OptionType:
		if _, ok := r.(OptionType); ok {
			return true, nil
		}
	case TypeKind:
		if _, ok := r.(TypeKind); ok {
			return true, nil
		}
	}
	return false, &IncomparableValuesError{Left: l, Right: r}
}
