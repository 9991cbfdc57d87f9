package stdlib

import (
	"fmt"
	"io"

	"github.com/evie-calico/espyscript/value"
)

// ioLib is std.io: index("print") only.
type ioLib struct {
	value.BaseExtern
	print *printFn
}

func (l *ioLib) Index(index value.Value) (value.Value, error) {
	name, ok := index.(value.String)
	if !ok || name != "print" {
		return nil, &value.IndexNotFoundError{Index: index, Container: value.NewBorrow(l)}
	}
	return value.NewBorrow(l.print), nil
}

func (l *ioLib) Debug() string { return "std.io" }

// printFn is std.io.print: writes its String argument followed by a
// newline to the host-supplied writer, and returns Unit. Grounded on
// IoPrintFn::call in original_source/espygarten/src/lib.rs, which writes
// into a buffer the wasm shim later reads back for the page; here the
// destination is an io.Writer the embedding host chooses.
type printFn struct {
	value.BaseExtern
	out io.Writer
}

func (p *printFn) Call(argument value.Value) (value.Value, error) {
	s, ok := argument.(value.String)
	if !ok {
		return nil, &value.TypeError{Value: argument, Want: value.StringType{}}
	}
	if _, err := fmt.Fprintln(p.out, string(s)); err != nil {
		return nil, &value.ExternError{Kind: value.ExternOther, Err: err}
	}
	return value.Unit{}, nil
}

func (p *printFn) Debug() string { return "std.io.print" }
