// Package stdlib provides a small host-side standard library for programs
// evaluated by the espyscript runtime: std.io.print and std.string.concat.
//
// It is grounded directly on original_source/espygarten/src/lib.rs's
// StdLib/IoLib/IoPrintFn/StringLib/StringConcatFn. That source hosts the
// library behind a wasm web shim, which this module doesn't carry; the
// library itself is kept and generalized to write to an io.Writer the
// embedding host supplies, rather than a captured string buffer meant
// for a single web page render.
package stdlib

import (
	"io"

	"github.com/evie-calico/espyscript/value"
)

// New returns a Borrow exposing std.io.print and std.string.concat to a
// running program. Output from print is written to w.
func New(w io.Writer) value.Value {
	return value.NewBorrow(&root{io: &ioLib{print: &printFn{out: w}}, str: &stringLib{}})
}

// root is the top-level "std" module: index("io") / index("string").
type root struct {
	value.BaseExtern
	io  *ioLib
	str *stringLib
}

func (r *root) Index(index value.Value) (value.Value, error) {
	name, ok := index.(value.String)
	if !ok {
		return nil, &value.IndexNotFoundError{Index: index, Container: value.NewBorrow(r)}
	}
	switch name {
	case "io":
		return value.NewBorrow(r.io), nil
	case "string":
		return value.NewBorrow(r.str), nil
	default:
		return nil, &value.IndexNotFoundError{Index: index, Container: value.NewBorrow(r)}
	}
}

func (r *root) Debug() string { return "std module" }
