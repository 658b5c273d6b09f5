package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opIdiv
)

func (in *Interpreter) execArith(inst program.Instruction, op arithOp) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	y, err := in.resolveSymbol(inst.Args[2])
	if err != nil {
		return err
	}
	a, ok := x.(types.Int)
	if !ok {
		return newErr(53, "arithmetic: left operand must be int, got %s", x.Tag())
	}
	b, ok := y.(types.Int)
	if !ok {
		return newErr(53, "arithmetic: right operand must be int, got %s", y.Tag())
	}

	var result int64
	switch op {
	case opAdd:
		result = int64(a) + int64(b)
	case opSub:
		result = int64(a) - int64(b)
	case opMul:
		result = int64(a) * int64(b)
	case opIdiv:
		if b == 0 {
			return newErr(57, "IDIV: division by zero")
		}
		result = floorDiv(int64(a), int64(b))
	}
	return in.frames.Write(*inst.Args[0].Var, types.Int(result))
}

// floorDiv computes integer division rounded toward negative infinity,
// IPPcode22's chosen division convention (see the design notes on IDIV).
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
