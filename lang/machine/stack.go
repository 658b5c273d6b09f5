package machine

import "github.com/mna/ippcode22/lang/program"

func (in *Interpreter) execPushs(inst program.Instruction) *RuntimeError {
	val, err := in.resolveSymbol(inst.Args[0])
	if err != nil {
		return err
	}
	in.dataStack = append(in.dataStack, val)
	return nil
}

func (in *Interpreter) execPops(inst program.Instruction) *RuntimeError {
	if len(in.dataStack) == 0 {
		return newErr(56, "POPS: data stack is empty")
	}
	n := len(in.dataStack) - 1
	val := in.dataStack[n]
	in.dataStack = in.dataStack[:n]
	return in.frames.Write(*inst.Args[0].Var, val)
}
