package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

type compareOp uint8

const (
	cmpLT compareOp = iota
	cmpGT
	cmpEQ
)

func (in *Interpreter) execCompare(inst program.Instruction, op compareOp) *RuntimeError {
	var result bool

	if op == cmpEQ {
		eq, err := in.evalEqNeq(inst.Args[1], inst.Args[2])
		if err != nil {
			return err
		}
		result = eq
	} else {
		x, err := in.resolveSymbol(inst.Args[1])
		if err != nil {
			return err
		}
		y, err := in.resolveSymbol(inst.Args[2])
		if err != nil {
			return err
		}
		if x.Tag() == types.TagNil || y.Tag() == types.TagNil {
			return newErr(53, "%s: nil is not an ordered operand", op)
		}
		if x.Tag() != y.Tag() {
			return newErr(53, "%s: incompatible operand types %s and %s", op, x.Tag(), y.Tag())
		}
		cmp, cerr := compareOrdered(x, y)
		if cerr != nil {
			return cerr
		}
		if op == cmpLT {
			result = cmp < 0
		} else {
			result = cmp > 0
		}
	}

	return in.frames.Write(*inst.Args[0].Var, types.Bool(result))
}

// compareOrdered returns negative/zero/positive when x is less
// than/equal/greater than y. Strings compare lexicographically, ints
// numerically, and for bool, false < true.
func compareOrdered(x, y types.Value) (int, *RuntimeError) {
	switch x.Tag() {
	case types.TagInt:
		a, b := int64(x.(types.Int)), int64(y.(types.Int))
		return cmpInt(a, b), nil
	case types.TagString:
		a, b := string(x.(types.Str)), string(y.(types.Str))
		return strCmp(a, b), nil
	case types.TagBool:
		a, b := bool(x.(types.Bool)), bool(y.(types.Bool))
		if a == b {
			return 0, nil
		}
		if !a && b {
			return -1, nil
		}
		return 1, nil
	default:
		return 0, newErr(53, "ordering is not defined for tag %s", x.Tag())
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func strCmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (op compareOp) String() string {
	switch op {
	case cmpLT:
		return "LT"
	case cmpGT:
		return "GT"
	case cmpEQ:
		return "EQ"
	default:
		return "?"
	}
}
