package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

// resolveSymbol evaluates a <symb> operand: a variable reference resolves
// through the frame system, a literal yields its payload directly.
func (in *Interpreter) resolveSymbol(arg program.Argument) (types.Value, *RuntimeError) {
	if arg.IsVar() {
		return in.frames.ReadValue(*arg.Var)
	}
	return literalValue(arg.Lit)
}

func literalValue(lit *program.Literal) (types.Value, *RuntimeError) {
	switch lit.Kind {
	case program.LitInt:
		return types.Int(lit.Int), nil
	case program.LitBool:
		return types.Bool(lit.Bool), nil
	case program.LitString:
		return types.Str(lit.Str), nil
	case program.LitNil:
		return types.Nil, nil
	default:
		return nil, newErr(99, "internal error: literal kind %v is not value-bearing", lit.Kind)
	}
}

// resolveLabel looks up a <label> operand's instruction index.
func (in *Interpreter) resolveLabel(arg program.Argument) (int, *RuntimeError) {
	if arg.IsVar() || arg.Lit.Kind != program.LitLabel {
		return 0, newErr(99, "internal error: expected a label operand")
	}
	pos, ok := in.prog.Labels[arg.Lit.Str]
	if !ok {
		return 0, newErr(52, "undefined label %q", arg.Lit.Str)
	}
	return pos, nil
}
