package bytecode

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/evie-calico/espyscript/value"
)

// Block describes one callable unit of bytecode: where it starts, how
// many values it expects as captures, and an advisory stack budget.
type Block struct {
	EntryPoint   int
	EndPoint     int
	CaptureCount int
	StackBudget  int
}

// Program is an immutable, cheaply clonable handle to loaded bytecode: a
// block table, a string pool, and the instruction byte stream. A
// *Program implements value.BlockEvaluator, so it can back a
// value.BlockAction without value importing this package.
type Program struct {
	blocks       []Block
	strings      []string
	instructions []byte
}

var _ value.BlockEvaluator = (*Program)(nil)

// utf8Error wraps a strict UTF-8 validation failure so bytecode.Error can
// report it without depending on golang.org/x/text in its public surface.
type utf8Error struct{ cause error }

func (e *utf8Error) Error() string { return e.cause.Error() }
func (e *utf8Error) Unwrap() error { return e.cause }

// validateUTF8 strictly validates b as UTF-8, returning an error on the
// first invalid byte sequence rather than substituting replacement
// characters, using golang.org/x/text/encoding/unicode's UTF8Validator
// transformer rather than unicode/utf8.ValidString.
func validateUTF8(b []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.UTF8Validator, b)
	if err != nil {
		return "", &utf8Error{cause: err}
	}
	return string(out), nil
}

// Parse decodes a Program from a byte buffer following the wire format
// used throughout this package: a varint block count; per block, a
// varint entry point, capture count, and stack budget; a varint string
// count; per string, a length-delimited UTF-8 run; then the remaining
// bytes are the instruction stream.
//
// Any truncation or any block entry point outside the instruction stream
// raises a malformed-header *Error; a string run that fails UTF-8
// validation raises an ErrUtf8Error *Error.
func Parse(source []byte) (*Program, error) {
	b := source

	blockCount, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return nil, newError(ErrMalformedHeader)
	}
	b = b[n:]

	rawBlocks := make([]struct{ entry, captures, stack uint64 }, blockCount)
	for i := range rawBlocks {
		entry, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, newError(ErrMalformedHeader)
		}
		b = b[n:]
		captures, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, newError(ErrMalformedHeader)
		}
		b = b[n:]
		stack, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, newError(ErrMalformedHeader)
		}
		b = b[n:]
		rawBlocks[i] = struct{ entry, captures, stack uint64 }{entry, captures, stack}
	}

	stringCount, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return nil, newError(ErrMalformedHeader)
	}
	b = b[n:]

	strings := make([]string, stringCount)
	for i := range strings {
		raw, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, newError(ErrMalformedHeader)
		}
		b = b[n:]
		s, err := validateUTF8(raw)
		if err != nil {
			return nil, wrapError(ErrUtf8Error, err)
		}
		strings[i] = s
	}

	instructions := b

	blocks := make([]Block, blockCount)
	for i, rb := range rawBlocks {
		if rb.entry > uint64(len(instructions)) {
			return nil, newError(ErrMalformedHeader)
		}
		blocks[i] = Block{
			EntryPoint:   int(rb.entry),
			CaptureCount: int(rb.captures),
			StackBudget:  int(rb.stack),
		}
	}
	// A block's end is the next block's entry point in byte order, or
	// the end of the instruction stream for the block with the
	// greatest entry point. Blocks need not be declared in entry-point
	// order, so this is computed rather than assumed from table order.
	for i := range blocks {
		end := len(instructions)
		for j := range blocks {
			if blocks[j].EntryPoint > blocks[i].EntryPoint && blocks[j].EntryPoint < end {
				end = blocks[j].EntryPoint
			}
		}
		blocks[i].EndPoint = end
	}

	return &Program{blocks: blocks, strings: strings, instructions: instructions}, nil
}

// Eval invokes block 0 with an empty capture vector.
func (p *Program) Eval() (value.Value, error) {
	return p.EvalBlock(0, nil)
}

// EvalBlock invokes a specific block with the given captures. It
// implements value.BlockEvaluator, so a BlockAction can call back into
// the program that produced it.
func (p *Program) EvalBlock(blockID int, captures []value.Value) (value.Value, error) {
	if blockID < 0 || blockID >= len(p.blocks) {
		return nil, newError(ErrMalformedHeader)
	}
	return runBlock(p, &p.blocks[blockID], captures)
}

func (p *Program) stringAt(id int) (string, error) {
	if id < 0 || id >= len(p.strings) {
		return "", newError(ErrUnexpectedStringId)
	}
	return p.strings[id], nil
}
