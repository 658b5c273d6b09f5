package loader

import (
	"strconv"
	"strings"

	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

// build translates normalized instructions into a *program.Program: an
// Instruction sequence with uppercased opcodes and typed arguments, plus the
// label table built in a single pre-pass, as described by the loader's
// component design.
func build(insts []normalizedInstruction) (*program.Program, error) {
	out := make([]program.Instruction, len(insts))
	for i, ni := range insts {
		op, ok := program.Lookup(ni.opcode)
		if !ok {
			return nil, newError(32, "unknown opcode %q", ni.opcode)
		}

		args := make([]program.Argument, len(ni.args))
		for j, raw := range ni.args {
			arg, err := buildArgument(raw)
			if err != nil {
				return nil, err
			}
			args[j] = arg
		}

		if want := op.NumArgs(); want >= 0 && want != len(args) {
			return nil, newError(32, "%s: expected %d argument(s), got %d", op, want, len(args))
		}

		out[i] = program.Instruction{Opcode: op, Args: args, SourceOrder: ni.order}
	}

	labels, err := collectLabels(out)
	if err != nil {
		return nil, err
	}

	return &program.Program{Instructions: out, Labels: labels}, nil
}

func buildArgument(raw xmlArg) (program.Argument, error) {
	switch raw.Type {
	case "var":
		ref, err := parseVarRef(raw.Text)
		if err != nil {
			return program.Argument{}, err
		}
		return program.Argument{Var: ref}, nil

	case "int":
		n, err := strconv.ParseInt(strings.TrimSpace(raw.Text), 10, 64)
		if err != nil {
			return program.Argument{}, newError(32, "invalid int literal %q: %s", raw.Text, err)
		}
		return program.Argument{Lit: &program.Literal{Kind: program.LitInt, Int: n}}, nil

	case "bool":
		switch strings.TrimSpace(raw.Text) {
		case "true":
			return program.Argument{Lit: &program.Literal{Kind: program.LitBool, Bool: true}}, nil
		case "false":
			return program.Argument{Lit: &program.Literal{Kind: program.LitBool, Bool: false}}, nil
		default:
			return program.Argument{}, newError(32, "invalid bool literal %q", raw.Text)
		}

	case "string":
		decoded, err := types.DecodeEscapes(raw.Text)
		if err != nil {
			return program.Argument{}, newError(32, "invalid string literal %q: %s", raw.Text, err)
		}
		return program.Argument{Lit: &program.Literal{Kind: program.LitString, Str: decoded}}, nil

	case "nil":
		return program.Argument{Lit: &program.Literal{Kind: program.LitNil}}, nil

	case "label":
		return program.Argument{Lit: &program.Literal{Kind: program.LitLabel, Str: raw.Text}}, nil

	case "type":
		kind, ok := parseTypeLiteral(raw.Text)
		if !ok {
			return program.Argument{}, newError(32, "invalid type literal %q", raw.Text)
		}
		return program.Argument{Lit: &program.Literal{Kind: program.LitType, Ttype: kind}}, nil

	default:
		return program.Argument{}, newError(32, "unrecognized argument type %q", raw.Type)
	}
}

func parseVarRef(text string) (*program.VarRef, error) {
	var tag program.FrameTag
	switch {
	case strings.HasPrefix(text, "GF@"):
		tag = program.FrameGlobal
	case strings.HasPrefix(text, "LF@"):
		tag = program.FrameLocal
	case strings.HasPrefix(text, "TF@"):
		tag = program.FrameTemporary
	default:
		return nil, newError(32, "invalid variable token %q: must start with GF@, LF@ or TF@", text)
	}
	return &program.VarRef{Frame: tag, Name: text[3:]}, nil
}

func parseTypeLiteral(text string) (program.LitKind, bool) {
	switch strings.TrimSpace(text) {
	case "int":
		return program.LitInt, true
	case "bool":
		return program.LitBool, true
	case "string":
		return program.LitString, true
	case "nil":
		return program.LitNil, true
	default:
		return 0, false
	}
}

// collectLabels performs the single pre-pass over the already-sorted
// instructions that registers every LABEL's name against its position
// index, rejecting duplicates.
func collectLabels(insts []program.Instruction) (map[string]int, error) {
	labels := make(map[string]int)
	for pos, inst := range insts {
		if inst.Opcode != program.LABEL {
			continue
		}
		if len(inst.Args) != 1 || inst.Args[0].Lit == nil || inst.Args[0].Lit.Kind != program.LitLabel {
			return nil, newError(32, "LABEL instruction at position %d is missing its label argument", pos)
		}
		name := inst.Args[0].Lit.Str
		if _, dup := labels[name]; dup {
			return nil, newError(52, "duplicate label %q", name)
		}
		labels[name] = pos
	}
	return labels, nil
}
