package loader

import (
	"sort"
	"strconv"
	"strings"
)

// normalizedInstruction is one instruction after order/argument sorting and
// structural validation, still holding raw XML argument text.
type normalizedInstruction struct {
	order  int
	opcode string
	args   []xmlArg // sorted by argument index, dense 1..len(args)
}

// normalize sorts xp's instructions by their "order" attribute and each
// instruction's arguments by their arg1/arg2/arg3 tag, validating structural
// conformance as it goes. Any failure is a code-32 error.
func normalize(xp *xmlProgram) ([]normalizedInstruction, error) {
	type ordered struct {
		order int
		inst  xmlInstruction
	}

	ords := make([]ordered, len(xp.Instructions))
	seen := make(map[int]bool, len(xp.Instructions))
	for i, inst := range xp.Instructions {
		n, err := strconv.Atoi(strings.TrimSpace(inst.Order))
		if err != nil || n <= 0 {
			return nil, newError(32, "instruction %d: order %q is not a strictly positive integer", i, inst.Order)
		}
		if seen[n] {
			return nil, newError(32, "duplicate instruction order %d", n)
		}
		seen[n] = true
		ords[i] = ordered{order: n, inst: inst}
	}

	sort.Slice(ords, func(i, j int) bool { return ords[i].order < ords[j].order })

	out := make([]normalizedInstruction, len(ords))
	for i, o := range ords {
		args, err := sortArgs(o.inst.Args)
		if err != nil {
			return nil, err
		}
		out[i] = normalizedInstruction{
			order:  o.order,
			opcode: strings.ToUpper(strings.TrimSpace(o.inst.Opcode)),
			args:   args,
		}
	}
	return out, nil
}

var argIndex = map[string]int{"arg1": 1, "arg2": 2, "arg3": 3}

// sortArgs sorts an instruction's argument elements by their declared index
// (the arg1/arg2/arg3 tag name) and validates that, once sorted, the
// indices form a dense prefix 1..k with no gaps or duplicates.
func sortArgs(raw []xmlArg) ([]xmlArg, error) {
	type indexed struct {
		index int
		arg   xmlArg
	}

	idx := make([]indexed, 0, len(raw))
	for _, a := range raw {
		n, ok := argIndex[a.XMLName.Local]
		if !ok {
			return nil, newError(32, "unrecognized argument element %q", a.XMLName.Local)
		}
		idx = append(idx, indexed{index: n, arg: a})
	}

	sort.Slice(idx, func(i, j int) bool { return idx[i].index < idx[j].index })

	out := make([]xmlArg, len(idx))
	for i, e := range idx {
		if e.index != i+1 {
			return nil, newError(32, "argument indices must form a dense prefix 1..k, got gap at position %d", i+1)
		}
		out[i] = e.arg
	}
	return out, nil
}
