package machine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

func (in *Interpreter) execRead(inst program.Instruction) *RuntimeError {
	typeArg := inst.Args[1].Lit
	if inst.Args[1].IsVar() || typeArg.Kind != program.LitType {
		return newErr(53, "READ: second operand must be a type literal")
	}

	line, ok := in.input.ReadLine()
	if !ok {
		return in.frames.Write(*inst.Args[0].Var, types.Nil)
	}

	var val types.Value
	switch typeArg.Ttype {
	case program.LitBool:
		val = types.Bool(strings.EqualFold(line, "true"))
	case program.LitInt:
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			val = types.Nil
		} else {
			val = types.Int(n)
		}
	case program.LitString:
		val = types.Str(line)
	default:
		return newErr(99, "internal error: unexpected READ type %v", typeArg.Ttype)
	}

	return in.frames.Write(*inst.Args[0].Var, val)
}

func (in *Interpreter) execWrite(inst program.Instruction) *RuntimeError {
	val, err := in.resolveSymbol(inst.Args[0])
	if err != nil {
		return err
	}
	if val.Tag() == types.TagNil {
		return nil
	}
	fmt.Fprint(in.stdout, val.String())
	return nil
}
