package program

// FrameTag identifies which frame a variable reference targets.
type FrameTag uint8

const (
	FrameGlobal FrameTag = iota
	FrameLocal
	FrameTemporary
)

func (f FrameTag) String() string {
	switch f {
	case FrameGlobal:
		return "GF"
	case FrameLocal:
		return "LF"
	case FrameTemporary:
		return "TF"
	default:
		return "?F"
	}
}

// VarRef is a reference to a variable: the frame it lives in and its name.
type VarRef struct {
	Frame FrameTag
	Name  string
}

// LitKind identifies the kind of a non-variable argument. It covers every
// type="..." value an XML argument element may carry, which is a superset
// of types.Tag (it also admits "label" and "type" literals).
type LitKind uint8

const (
	LitInt LitKind = iota
	LitBool
	LitString
	LitNil
	LitLabel
	LitType
)

// Literal is a non-variable operand: an int/bool/string/nil constant, a
// label reference, or a type-tag constant (the operand of TYPE's argument
// position is never a <type> literal, but READ's second argument is).
type Literal struct {
	Kind LitKind

	Int   int64
	Bool  bool
	Str   string // decoded payload for LitString, label name for LitLabel
	Ttype LitKind // which of int/bool/string/nil, for LitType
}

// Argument is one operand of an Instruction. Exactly one of Var or Lit is
// set.
type Argument struct {
	Var *VarRef
	Lit *Literal
}

// IsVar reports whether the argument is a variable reference.
func (a Argument) IsVar() bool { return a.Var != nil }
