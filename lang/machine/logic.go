package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

type logicOp uint8

const (
	logicAnd logicOp = iota
	logicOr
)

func (in *Interpreter) execLogic(inst program.Instruction, op logicOp) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	y, err := in.resolveSymbol(inst.Args[2])
	if err != nil {
		return err
	}
	a, ok := x.(types.Bool)
	if !ok {
		return newErr(53, "logic: left operand must be bool, got %s", x.Tag())
	}
	b, ok := y.(types.Bool)
	if !ok {
		return newErr(53, "logic: right operand must be bool, got %s", y.Tag())
	}

	var result bool
	if op == logicAnd {
		result = bool(a) && bool(b)
	} else {
		result = bool(a) || bool(b)
	}
	return in.frames.Write(*inst.Args[0].Var, types.Bool(result))
}

func (in *Interpreter) execNot(inst program.Instruction) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	a, ok := x.(types.Bool)
	if !ok {
		return newErr(53, "NOT: operand must be bool, got %s", x.Tag())
	}
	return in.frames.Write(*inst.Args[0].Var, types.Bool(!a))
}
