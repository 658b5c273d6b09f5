package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

func (in *Interpreter) execType(inst program.Instruction) *RuntimeError {
	arg := inst.Args[1]
	if !arg.IsVar() {
		val, err := literalValue(arg.Lit)
		if err != nil {
			return err
		}
		return in.frames.Write(*inst.Args[0].Var, types.Str(val.Tag().String()))
	}

	tag, ok, err := in.frames.ReadTag(*arg.Var, true)
	if err != nil {
		return err
	}
	if !ok {
		return in.frames.Write(*inst.Args[0].Var, types.Str(""))
	}
	return in.frames.Write(*inst.Args[0].Var, types.Str(tag.String()))
}
