package stdlib

import (
	"strings"

	"github.com/evie-calico/espyscript/value"
)

// stringLib is std.string: index("concat") only.
type stringLib struct {
	value.BaseExtern
	concat *concatFn
}

func (l *stringLib) Index(index value.Value) (value.Value, error) {
	name, ok := index.(value.String)
	if !ok || name != "concat" {
		return nil, &value.IndexNotFoundError{Index: index, Container: value.NewBorrow(l)}
	}
	if l.concat == nil {
		l.concat = &concatFn{}
	}
	return value.NewBorrow(l.concat), nil
}

func (l *stringLib) Debug() string { return "std.string" }

// concatFn is std.string.concat: joins a tuple of Strings into one
// String, in positional order. Grounded on StringConcatFn::call in
// original_source/espygarten/src/lib.rs, which folds a tuple argument the
// same way; a bare String argument is treated as a single-element tuple
// so std.string.concat("a") is accepted as well as tuples.
type concatFn struct {
	value.BaseExtern
}

func (f *concatFn) Call(argument value.Value) (value.Value, error) {
	if s, ok := argument.(value.String); ok {
		return s, nil
	}
	tuple, err := value.IntoTuple(argument)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, v := range tuple.Values() {
		s, ok := v.(value.String)
		if !ok {
			return nil, &value.TypeError{Value: v, Want: value.StringType{}}
		}
		b.WriteString(string(s))
	}
	return value.String(b.String()), nil
}

func (f *concatFn) Debug() string { return "std.string.concat" }
