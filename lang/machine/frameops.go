package machine

import "github.com/mna/ippcode22/lang/program"

func (in *Interpreter) execMove(inst program.Instruction) *RuntimeError {
	val, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	return in.frames.Write(*inst.Args[0].Var, val)
}

func (in *Interpreter) execDefvar(inst program.Instruction) *RuntimeError {
	return in.frames.Declare(*inst.Args[0].Var)
}
