package value

import "fmt"

// Extern is the capability set a host object exposes to the interpreter:
// indexable, callable, mutably-callable, and debuggable. A host type
// implements only the capabilities it supports; embedding BaseExtern
// supplies a documented default for the rest, the same way generated
// service stubs embed an "Unimplemented..." base to satisfy an interface
// without hand-writing every method.
type Extern interface {
	// Index performs a field or member lookup, typically by String name.
	Index(index Value) (Value, error)
	// Call invokes the extern as a function.
	Call(argument Value) (Value, error)
	// CallMut is like Call but with interior-mutable access to host
	// state; implementations must detect re-entrancy and return
	// ErrBorrowMutError rather than corrupting state.
	CallMut(argument Value) (Value, error)
	// Debug returns a human-readable label for diagnostics.
	Debug() string
}

// BaseExtern implements every Extern capability with the contract's
// documented default, so a host type need only embed it and override the
// capabilities it actually provides.
type BaseExtern struct{}

func (BaseExtern) Index(Value) (Value, error)    { return nil, ErrMissingIndexImpl() }
func (BaseExtern) Call(Value) (Value, error)     { return nil, ErrMissingFunctionImpl() }
func (BaseExtern) CallMut(Value) (Value, error)  { return nil, ErrMissingFunctionImpl() }
func (BaseExtern) Debug() string                 { return "extern" }

// Borrow is an opaque reference to host-owned data honoring the Extern
// capability set. Its lifetime is bound to the host scope that produced
// it; espyscript places no restriction on how long a Borrow may be held
// beyond what the host's own Extern implementation permits.
type Borrow struct {
	Host Extern
}

// NewBorrow wraps a host object as a Borrow value.
func NewBorrow(host Extern) Borrow { return Borrow{Host: host} }

func (Borrow) Kind() Kind { return KindBorrow }

func (b Borrow) String() string { return fmt.Sprintf("Borrow(%s)", b.Host.Debug()) }

// ExternCell is a lightweight, single-threaded re-entrancy guard, the Go
// equivalent of the source's RefCell-backed runtime borrow check. It is
// not safe for concurrent use — the interpreter is
// single-threaded and non-suspending, so no atomic or mutex
// is needed, only detection of CallMut re-entering its own Extern.
type ExternCell struct {
	held bool
}

// Enter marks the cell held and returns a release func, or
// ErrBorrowMutError if the cell is already held.
func (c *ExternCell) Enter() (release func(), err error) {
	if c.held {
		return nil, ErrBorrowMutError()
	}
	c.held = true
	return func() { c.held = false }, nil
}

// funcExtern adapts a plain Go function into an Extern whose only
// capability is Call (the source's "function" adapter).
type funcExtern struct {
	BaseExtern
	label string
	fn    func(Value) (Value, error)
}

// FromFunc adapts fn into an Extern exposing only Call.
func FromFunc(label string, fn func(Value) (Value, error)) Extern {
	return &funcExtern{label: label, fn: fn}
}

func (f *funcExtern) Call(argument Value) (Value, error) { return f.fn(argument) }
func (f *funcExtern) Debug() string                      { return f.label }

// ExternMut adapts a mutably-capturing Go function into an Extern whose
// only capability is CallMut (the source's "function_mut" adapter),
// guarded by an ExternCell against re-entrant mutable calls.
type ExternMut struct {
	BaseExtern
	label string
	cell  ExternCell
	fn    func(Value) (Value, error)
}

// FromFuncMut adapts fn into an Extern exposing only CallMut.
func FromFuncMut(label string, fn func(Value) (Value, error)) *ExternMut {
	return &ExternMut{label: label, fn: fn}
}

func (f *ExternMut) CallMut(argument Value) (Value, error) {
	release, err := f.cell.Enter()
	if err != nil {
		return nil, err
	}
	defer release()
	return f.fn(argument)
}

func (f *ExternMut) Debug() string { return f.label }
