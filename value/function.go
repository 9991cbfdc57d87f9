package value

// BlockEvaluator is implemented by bytecode.Program. It is declared here,
// rather than value importing the bytecode package directly, to break the
// mutual dependency a Block action otherwise creates: a Function's Block
// action holds a program and calls back into it, while Program.EvalBlock
// produces a Value. common/types/ref uses the same seam to keep
// common/types independent of interpreter: the interface lives on the
// consumer side, and the producer package supplies the concrete type.
type BlockEvaluator interface {
	EvalBlock(blockID int, captures []Value) (Value, error)
}

// FunctionAction is one of the four callable shapes a Function wraps.
type FunctionAction interface {
	eval(argument Value) (Value, error)
}

// BlockAction invokes a bytecode block with its captured lexical
// environment plus the function's accumulated argument appended as the
// final capture.
type BlockAction struct {
	Program  BlockEvaluator
	BlockID  int
	Captures []Value
}

func (a BlockAction) eval(argument Value) (Value, error) {
	captures := make([]Value, len(a.Captures)+1)
	copy(captures, a.Captures)
	captures[len(a.Captures)] = argument
	return a.Program.EvalBlock(a.BlockID, captures)
}

// EnumAction constructs an EnumVariant for one variant of an EnumType.
type EnumAction struct {
	VariantIndex int
	Definition   *EnumType
}

func (a EnumAction) eval(argument Value) (Value, error) {
	payloadType, ok := a.Definition.Variants.Value(a.VariantIndex)
	if !ok {
		// The interpreter checks the variant index when it builds an
		// EnumAction (bytecode.OpMakeFunctionEnum), so an index out of
		// range here comes from a caller that built the action by hand:
		// a bug in that caller, not a reportable runtime error — mirrors
		// the source's own
		// `.expect("enum variant must not be missing")`.
		panic("value: enum variant index out of range")
	}
	if !TypeConforms(argument, payloadType) {
		return nil, &TypeError{Value: argument, Want: payloadType}
	}
	return &EnumVariant{Contents: argument, VariantIndex: a.VariantIndex, Definition: a.Definition}, nil
}

// SomeAction constructs a Some value from its argument, unconditionally.
type SomeAction struct{}

func (SomeAction) eval(argument Value) (Value, error) {
	return &Some{Inner: argument}, nil
}

// NoneAction constructs None, requiring its argument conform to Unit.
type NoneAction struct{}

func (NoneAction) eval(argument Value) (Value, error) {
	if !TypeConforms(argument, Unit{}) {
		return nil, &TypeError{Value: argument, Want: Unit{}}
	}
	return None{}, nil
}

// Function is a first-class callable: an action plus its pending
// argument, accumulated via piping.
type Function struct {
	Action   FunctionAction
	Argument Value
}

// NewFunction wraps action with an empty (Unit) pending argument.
func NewFunction(action FunctionAction) *Function {
	return &Function{Action: action, Argument: Unit{}}
}

func (*Function) Kind() Kind { return KindFunction }

func (f *Function) String() string { return "Function" }

// Eval invokes the function's action against its accumulated argument.
func (f *Function) Eval() (Value, error) {
	return f.Action.eval(f.Argument)
}

// Pipe appends argument onto the function's pending argument in place,
// via Concat.
func (f *Function) Pipe(argument Value) {
	f.Argument = Concat(f.Argument, argument)
}

// Piped returns a new Function with argument appended onto the pending
// argument, leaving f unmodified.
func (f *Function) Piped(argument Value) *Function {
	return &Function{Action: f.Action, Argument: Concat(f.Argument, argument)}
}
