package bytecode

// Opcode identifies a single instruction's operation. The instruction
// set's names and encodings are this implementation's own choice; only
// the observable semantics of each operation are fixed. This is a
// minimal set covering every value-model operation the interpreter
// needs, plus two that let Borrow values actually be called (index alone
// cannot reach a host function's call capability).
type Opcode byte

const (
	// OpConstUnit pushes Unit. No operand.
	OpConstUnit Opcode = iota
	// OpConstI64 pushes an I64 immediate. Operand: a zigzag varint.
	OpConstI64
	// OpConstBool pushes a Bool immediate. Operand: one byte, 0 or 1.
	OpConstBool
	// OpConstString pushes a String looked up by id in the string pool.
	// Operand: a varint string id.
	OpConstString
	// OpLoadCapture copies a value from the capture vector onto the
	// stack. Operand: a varint capture index.
	OpLoadCapture
	// OpPop discards the top of the operand stack. No operand.
	OpPop
	// OpEq pops two values and pushes their Bool structural equality,
	// per value.Equal. No operand.
	OpEq
	// OpMakeTuple pops count values and pushes a Tuple built from them
	// in push order. Operand: a varint count, followed by count
	// varints, each either 0 (no name) or stringID+1.
	OpMakeTuple
	// OpConcat pops r then l and pushes value.Concat(l, r). No operand.
	OpConcat
	// OpProjectIndex pops a Tuple and pushes its value at a positional
	// index, or raises IndexNotFoundError. Operand: a varint index.
	OpProjectIndex
	// OpProjectName pops a Tuple and pushes the value of its first
	// entry named by a pooled string, or raises IndexNotFoundError.
	// Operand: a varint string id.
	OpProjectName
	// OpMakeFunctionBlock pops captureCount values (the closure's
	// captured environment, in push order) and pushes a Function
	// wrapping a BlockAction bound to this program. Operand: a varint
	// block id, then a varint capture count.
	OpMakeFunctionBlock
	// OpMakeFunctionEnum pops an EnumType and pushes a Function
	// wrapping an EnumAction for one of its variants, or raises
	// IndexNotFoundError if the index is out of range. Operand: a
	// varint variant index.
	OpMakeFunctionEnum
	// OpMakeFunctionSome pushes a Function wrapping SomeAction. No
	// operand.
	OpMakeFunctionSome
	// OpMakeFunctionNone pushes a Function wrapping NoneAction. No
	// operand.
	OpMakeFunctionNone
	// OpApply pops a Function and pushes the result of evaluating it
	// against its already-accumulated argument. No
	// operand.
	OpApply
	// OpPipe pops an argument then a Function, and pushes the Function
	// piped with that argument. No
	// operand.
	OpPipe
	// OpMakeEnumType pops a Tuple of (variant name, payload type)
	// entries and pushes a freshly allocated EnumType, or raises
	// RecursiveTypeError. No operand.
	OpMakeEnumType
	// OpMakeStructType pops a value and pushes a freshly allocated
	// StructType wrapping it. No operand.
	OpMakeStructType
	// OpIndexBorrow pops an index then a Borrow, and pushes the result
	// of the host's Index capability. No operand.
	OpIndexBorrow
	// OpCallBorrow pops an argument then a Borrow, and pushes the
	// result of the host's Call capability. No operand.
	OpCallBorrow
	// OpCallMutBorrow is OpCallBorrow using the host's CallMut
	// capability instead. No operand.
	OpCallMutBorrow
	// OpReturn ends the block early: pops the result and returns it,
	// rather than falling off the block's byte range. No operand.
	OpReturn

	opcodeCount
)

func (op Opcode) valid() bool { return op < opcodeCount }
