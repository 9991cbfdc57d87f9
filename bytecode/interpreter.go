package bytecode

import (
	"github.com/golang/glog"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/evie-calico/espyscript/value"
)

// stack is a frame-local operand stack of value.Value. It is never shared
// across invocations: each call to runBlock allocates a
// fresh one.
type stack struct {
	values []value.Value
}

func newStack(budget int) *stack {
	if budget < 0 {
		budget = 0
	}
	return &stack{values: make([]value.Value, 0, budget)}
}

func (s *stack) push(v value.Value) { s.values = append(s.values, v) }

func (s *stack) pop() (value.Value, error) {
	if len(s.values) == 0 {
		return nil, newError(ErrStackUnderflow)
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

func (s *stack) top() (value.Value, error) {
	if len(s.values) == 0 {
		return nil, newError(ErrStackUnderflow)
	}
	return s.values[len(s.values)-1], nil
}

// runBlock is the stack-machine evaluator: it decodes one
// instruction at a time from p.instructions within block's byte range,
// operating on a frame-local operand stack and a read-only capture
// vector, until it returns explicitly or falls exactly one byte past the
// block's last instruction.
func runBlock(p *Program, block *Block, captures []value.Value) (value.Value, error) {
	s := newStack(block.StackBudget)
	code := p.instructions
	pc := block.EntryPoint
	end := block.EndPoint

	readVarint := func() (uint64, error) {
		v, n := protowire.ConsumeVarint(code[pc:])
		if n < 0 {
			return 0, newError(ErrMalformedHeader)
		}
		pc += n
		return v, nil
	}

	for pc < end {
		op := Opcode(code[pc])
		pc++
		if !op.valid() {
			return nil, newError(ErrInvalidInstruction)
		}
		if glog.V(2) {
			glog.Infof("espyscript: pc=%d op=%d stack_depth=%d", pc-1, op, len(s.values))
		}

		switch op {
		case OpConstUnit:
			s.push(value.Unit{})

		case OpConstI64:
			raw, err := readVarint()
			if err != nil {
				return nil, err
			}
			s.push(value.I64(protowire.DecodeZigZag(raw)))

		case OpConstBool:
			if pc >= end {
				return nil, newError(ErrProgramOutOfBounds)
			}
			b := code[pc]
			pc++
			s.push(value.Bool(b != 0))

		case OpConstString:
			id, err := readVarint()
			if err != nil {
				return nil, err
			}
			str, err := p.stringAt(int(id))
			if err != nil {
				return nil, err
			}
			s.push(value.String(str))

		case OpLoadCapture:
			idx, err := readVarint()
			if err != nil {
				return nil, err
			}
			if int(idx) >= len(captures) {
				return nil, newError(ErrStackOutOfBounds)
			}
			s.push(captures[idx])

		case OpPop:
			if _, err := s.pop(); err != nil {
				return nil, err
			}

		case OpEq:
			r, err := s.pop()
			if err != nil {
				return nil, err
			}
			l, err := s.pop()
			if err != nil {
				return nil, err
			}
			eq, err := value.Equal(l, r)
			if err != nil {
				return nil, err
			}
			s.push(value.Bool(eq))

		case OpMakeTuple:
			count, err := readVarint()
			if err != nil {
				return nil, err
			}
			names := make([]*string, count)
			for i := range names {
				nameID, err := readVarint()
				if err != nil {
					return nil, err
				}
				if nameID != 0 {
					str, err := p.stringAt(int(nameID - 1))
					if err != nil {
						return nil, err
					}
					names[i] = &str
				}
			}
			entries := make([]value.TupleEntry, count)
			for i := int(count) - 1; i >= 0; i-- {
				v, err := s.pop()
				if err != nil {
					return nil, err
				}
				entries[i] = value.TupleEntry{Name: names[i], Value: v}
			}
			s.push(value.NewTuple(entries))

		case OpConcat:
			r, err := s.pop()
			if err != nil {
				return nil, err
			}
			l, err := s.pop()
			if err != nil {
				return nil, err
			}
			s.push(value.Concat(l, r))

		case OpProjectIndex:
			idx, err := readVarint()
			if err != nil {
				return nil, err
			}
			container, err := s.pop()
			if err != nil {
				return nil, err
			}
			tuple, err := value.IntoTuple(container)
			if err != nil {
				return nil, err
			}
			v, ok := tuple.Value(int(idx))
			if !ok {
				return nil, &value.IndexNotFoundError{Index: value.I64(idx), Container: container}
			}
			s.push(v)

		case OpProjectName:
			id, err := readVarint()
			if err != nil {
				return nil, err
			}
			name, err := p.stringAt(int(id))
			if err != nil {
				return nil, err
			}
			container, err := s.pop()
			if err != nil {
				return nil, err
			}
			tuple, err := value.IntoTuple(container)
			if err != nil {
				return nil, err
			}
			v, ok := tuple.FindValue(name)
			if !ok {
				return nil, &value.IndexNotFoundError{Index: value.String(name), Container: container}
			}
			s.push(v)

		case OpMakeFunctionBlock:
			blockID, err := readVarint()
			if err != nil {
				return nil, err
			}
			captureCount, err := readVarint()
			if err != nil {
				return nil, err
			}
			captured := make([]value.Value, captureCount)
			for i := int(captureCount) - 1; i >= 0; i-- {
				v, err := s.pop()
				if err != nil {
					return nil, err
				}
				captured[i] = v
			}
			s.push(value.NewFunction(value.BlockAction{Program: p, BlockID: int(blockID), Captures: captured}))

		case OpMakeFunctionEnum:
			variantIndex, err := readVarint()
			if err != nil {
				return nil, err
			}
			defVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			definition, err := value.IntoEnumType(defVal)
			if err != nil {
				return nil, err
			}
			if variantIndex >= uint64(definition.Variants.Len()) {
				return nil, &value.IndexNotFoundError{Index: value.I64(variantIndex), Container: defVal}
			}
			s.push(value.NewFunction(value.EnumAction{VariantIndex: int(variantIndex), Definition: definition}))

		case OpMakeFunctionSome:
			s.push(value.NewFunction(value.SomeAction{}))

		case OpMakeFunctionNone:
			s.push(value.NewFunction(value.NoneAction{}))

		case OpApply:
			fnVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			fn, err := value.IntoFunction(fnVal)
			if err != nil {
				return nil, err
			}
			result, err := fn.Eval()
			if err != nil {
				return nil, err
			}
			s.push(result)

		case OpPipe:
			arg, err := s.pop()
			if err != nil {
				return nil, err
			}
			fnVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			fn, err := value.IntoFunction(fnVal)
			if err != nil {
				return nil, err
			}
			s.push(fn.Piped(arg))

		case OpMakeEnumType:
			variantsVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			variants, err := value.IntoTuple(variantsVal)
			if err != nil {
				return nil, err
			}
			enumType, err := value.NewEnumType(variants)
			if err != nil {
				return nil, err
			}
			s.push(enumType)

		case OpMakeStructType:
			inner, err := s.pop()
			if err != nil {
				return nil, err
			}
			s.push(value.NewStructType(inner))

		case OpIndexBorrow:
			idx, err := s.pop()
			if err != nil {
				return nil, err
			}
			borrowVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			borrow, ok := borrowVal.(value.Borrow)
			if !ok {
				return nil, &value.ExpectedBorrowError{Value: borrowVal}
			}
			result, err := borrow.Host.Index(idx)
			if err != nil {
				glog.Warningf("espyscript: host index failed: %v", err)
				return nil, err
			}
			s.push(result)

		case OpCallBorrow:
			arg, err := s.pop()
			if err != nil {
				return nil, err
			}
			borrowVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			borrow, ok := borrowVal.(value.Borrow)
			if !ok {
				return nil, &value.ExpectedBorrowError{Value: borrowVal}
			}
			result, err := borrow.Host.Call(arg)
			if err != nil {
				glog.Warningf("espyscript: host call failed: %v", err)
				return nil, err
			}
			s.push(result)

		case OpCallMutBorrow:
			arg, err := s.pop()
			if err != nil {
				return nil, err
			}
			borrowVal, err := s.pop()
			if err != nil {
				return nil, err
			}
			borrow, ok := borrowVal.(value.Borrow)
			if !ok {
				return nil, &value.ExpectedBorrowError{Value: borrowVal}
			}
			result, err := borrow.Host.CallMut(arg)
			if err != nil {
				glog.Warningf("espyscript: host call_mut failed: %v", err)
				return nil, err
			}
			s.push(result)

		case OpReturn:
			return s.pop()
		}

		if pc > end {
			return nil, newError(ErrProgramOutOfBounds)
		}
	}

	return s.top()
}
