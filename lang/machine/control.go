package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

// execExit validates EXIT's operand and returns the numeric exit code.
func (in *Interpreter) execExit(inst program.Instruction) (int, *RuntimeError) {
	val, err := in.resolveSymbol(inst.Args[0])
	if err != nil {
		return 0, err
	}
	n, ok := val.(types.Int)
	if !ok {
		return 0, newErr(53, "EXIT: operand must be int, got %s", val.Tag())
	}
	if n < 0 || n > 49 {
		return 0, newErr(57, "EXIT: code %d out of range [0, 49]", int64(n))
	}
	return int(n), nil
}

// evalEqNeq resolves both <symb> operands of JUMPIFEQ/JUMPIFNEQ and
// EQ and reports whether they are equal, enforcing that their tags match
// or that at least one of them is nil.
func (in *Interpreter) evalEqNeq(a, b program.Argument) (bool, *RuntimeError) {
	x, err := in.resolveSymbol(a)
	if err != nil {
		return false, err
	}
	y, err := in.resolveSymbol(b)
	if err != nil {
		return false, err
	}
	if x.Tag() != y.Tag() && x.Tag() != types.TagNil && y.Tag() != types.TagNil {
		return false, newErr(53, "incompatible operand types %s and %s", x.Tag(), y.Tag())
	}
	return valuesEqual(x, y), nil
}

func valuesEqual(x, y types.Value) bool {
	if x.Tag() != y.Tag() {
		return false
	}
	switch x.Tag() {
	case types.TagNil:
		return true
	case types.TagBool:
		return x.(types.Bool) == y.(types.Bool)
	case types.TagInt:
		return x.(types.Int) == y.(types.Int)
	case types.TagString:
		return x.(types.Str) == y.(types.Str)
	default:
		return false
	}
}
