package machine

import (
	"context"
	"fmt"

	"github.com/mna/ippcode22/lang/program"
)

// Run executes the loaded program to completion, fetching, decoding and
// dispatching one instruction at a time. It returns the process exit code
// (0 on falling off the end of the program, or the operand of an EXIT
// instruction) and a non-nil error — always a *RuntimeError — for any
// opcode that failed.
func (in *Interpreter) Run(ctx context.Context) (int, error) {
	in.init()

	insts := in.prog.Instructions
	for {
		select {
		case <-ctx.Done():
			return 0, newErr(99, "interpreter cancelled: %s", ctx.Err())
		default:
		}

		if in.ic >= len(insts) {
			return 0, nil
		}

		in.steps++
		if in.MaxSteps > 0 && in.steps > in.MaxSteps {
			return 0, newErr(99, "exceeded maximum instruction step count (%d)", in.MaxSteps)
		}

		inst := insts[in.ic]
		if in.Trace {
			fmt.Fprintf(in.stderr, "trace: ic=%d opcode=%s\n", in.ic, inst.Opcode)
		}

		var rerr *RuntimeError
		jumped := false
		exitCode := -1

		switch inst.Opcode {
		case program.MOVE:
			rerr = in.execMove(inst)
		case program.CREATEFRAME:
			in.frames.CreateFrame()
		case program.PUSHFRAME:
			rerr = in.frames.PushFrame()
		case program.POPFRAME:
			rerr = in.frames.PopFrame()
		case program.DEFVAR:
			rerr = in.execDefvar(inst)

		case program.CALL:
			target, lerr := in.resolveLabel(inst.Args[0])
			if lerr != nil {
				rerr = lerr
				break
			}
			in.callStack = append(in.callStack, in.ic)
			in.ic = target
			jumped = true
		case program.RETURN:
			if len(in.callStack) == 0 {
				rerr = newErr(56, "RETURN: call stack is empty")
				break
			}
			n := len(in.callStack) - 1
			in.ic = in.callStack[n] + 1
			in.callStack = in.callStack[:n]
			jumped = true
		case program.JUMP:
			target, lerr := in.resolveLabel(inst.Args[0])
			if lerr != nil {
				rerr = lerr
				break
			}
			in.ic = target
			jumped = true
		case program.JUMPIFEQ, program.JUMPIFNEQ:
			target, lerr := in.resolveLabel(inst.Args[0])
			if lerr != nil {
				rerr = lerr
				break
			}
			eq, eerr := in.evalEqNeq(inst.Args[1], inst.Args[2])
			if eerr != nil {
				rerr = eerr
				break
			}
			cond := eq
			if inst.Opcode == program.JUMPIFNEQ {
				cond = !eq
			}
			if cond {
				in.ic = target
				jumped = true
			}
		case program.LABEL:
			// no-op at execution time

		case program.EXIT:
			code, eerr := in.execExit(inst)
			if eerr != nil {
				rerr = eerr
				break
			}
			exitCode = code

		case program.PUSHS:
			rerr = in.execPushs(inst)
		case program.POPS:
			rerr = in.execPops(inst)

		case program.ADD:
			rerr = in.execArith(inst, opAdd)
		case program.SUB:
			rerr = in.execArith(inst, opSub)
		case program.MUL:
			rerr = in.execArith(inst, opMul)
		case program.IDIV:
			rerr = in.execArith(inst, opIdiv)

		case program.LT:
			rerr = in.execCompare(inst, cmpLT)
		case program.GT:
			rerr = in.execCompare(inst, cmpGT)
		case program.EQ:
			rerr = in.execCompare(inst, cmpEQ)

		case program.AND:
			rerr = in.execLogic(inst, logicAnd)
		case program.OR:
			rerr = in.execLogic(inst, logicOr)
		case program.NOT:
			rerr = in.execNot(inst)

		case program.INT2CHAR:
			rerr = in.execInt2char(inst)
		case program.STRI2INT:
			rerr = in.execStri2int(inst)

		case program.READ:
			rerr = in.execRead(inst)
		case program.WRITE:
			rerr = in.execWrite(inst)

		case program.CONCAT:
			rerr = in.execConcat(inst)
		case program.STRLEN:
			rerr = in.execStrlen(inst)
		case program.GETCHAR:
			rerr = in.execGetchar(inst)
		case program.SETCHAR:
			rerr = in.execSetchar(inst)

		case program.TYPE:
			rerr = in.execType(inst)

		case program.DPRINT:
			rerr = in.execDprint(inst)
		case program.BREAK:
			rerr = in.execBreak(inst)

		default:
			rerr = newErr(32, "unknown opcode %s", inst.Opcode)
		}

		if rerr != nil {
			return 0, rerr
		}
		if exitCode >= 0 {
			return exitCode, nil
		}
		if !jumped {
			in.ic++
		}
	}
}
