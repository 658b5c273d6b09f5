package machine

import (
	"unicode/utf8"

	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

func (in *Interpreter) execConcat(inst program.Instruction) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	y, err := in.resolveSymbol(inst.Args[2])
	if err != nil {
		return err
	}
	a, ok := x.(types.Str)
	if !ok {
		return newErr(53, "CONCAT: left operand must be string, got %s", x.Tag())
	}
	b, ok := y.(types.Str)
	if !ok {
		return newErr(53, "CONCAT: right operand must be string, got %s", y.Tag())
	}
	return in.frames.Write(*inst.Args[0].Var, a+b)
}

func (in *Interpreter) execStrlen(inst program.Instruction) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	s, ok := x.(types.Str)
	if !ok {
		return newErr(53, "STRLEN: operand must be string, got %s", x.Tag())
	}
	return in.frames.Write(*inst.Args[0].Var, types.Int(len(s.Runes())))
}

func (in *Interpreter) execGetchar(inst program.Instruction) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	y, err := in.resolveSymbol(inst.Args[2])
	if err != nil {
		return err
	}
	s, ok := x.(types.Str)
	if !ok {
		return newErr(53, "GETCHAR: first operand must be string, got %s", x.Tag())
	}
	idx, ok := y.(types.Int)
	if !ok {
		return newErr(53, "GETCHAR: second operand must be int, got %s", y.Tag())
	}

	runes := s.Runes()
	pos := int(idx)
	if pos < 0 || pos >= len(runes) {
		return newErr(58, "GETCHAR: index %d out of range [0, %d)", pos, len(runes))
	}
	return in.frames.Write(*inst.Args[0].Var, types.Str(string(runes[pos])))
}

func (in *Interpreter) execSetchar(inst program.Instruction) *RuntimeError {
	ref := *inst.Args[0].Var
	cur, err := in.frames.ReadValue(ref)
	if err != nil {
		return err
	}
	target, ok := cur.(types.Str)
	if !ok {
		return newErr(53, "SETCHAR: target variable must hold a string, got %s", cur.Tag())
	}

	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	idx, ok := x.(types.Int)
	if !ok {
		return newErr(53, "SETCHAR: first operand must be int, got %s", x.Tag())
	}

	y, err := in.resolveSymbol(inst.Args[2])
	if err != nil {
		return err
	}
	repl, ok := y.(types.Str)
	if !ok {
		return newErr(53, "SETCHAR: second operand must be string, got %s", y.Tag())
	}

	runes := target.Runes()
	replRunes := repl.Runes()
	pos := int(idx)
	if len(runes) == 0 || len(replRunes) == 0 || pos < 0 || pos >= len(runes) {
		return newErr(58, "SETCHAR: index %d out of range, or empty target/replacement", pos)
	}

	runes[pos] = replRunes[0]
	return in.frames.Write(ref, types.Str(runes))
}

func (in *Interpreter) execStri2int(inst program.Instruction) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	y, err := in.resolveSymbol(inst.Args[2])
	if err != nil {
		return err
	}
	s, ok := x.(types.Str)
	if !ok {
		return newErr(53, "STRI2INT: first operand must be string, got %s", x.Tag())
	}
	idx, ok := y.(types.Int)
	if !ok {
		return newErr(53, "STRI2INT: second operand must be int, got %s", y.Tag())
	}

	runes := s.Runes()
	pos := int(idx)
	if pos < 0 || pos >= len(runes) {
		return newErr(58, "STRI2INT: index %d out of range [0, %d)", pos, len(runes))
	}
	return in.frames.Write(*inst.Args[0].Var, types.Int(runes[pos]))
}

func (in *Interpreter) execInt2char(inst program.Instruction) *RuntimeError {
	x, err := in.resolveSymbol(inst.Args[1])
	if err != nil {
		return err
	}
	n, ok := x.(types.Int)
	if !ok {
		return newErr(53, "INT2CHAR: operand must be int, got %s", x.Tag())
	}
	// Validate in int64 space before narrowing to rune (int32): a value like
	// 2^32 would otherwise truncate to a valid-looking rune and silently
	// produce the wrong character instead of failing.
	v := int64(n)
	if v < 0 || v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) || !utf8.ValidRune(rune(v)) {
		return newErr(58, "INT2CHAR: %d is not a valid Unicode scalar value", v)
	}
	return in.frames.Write(*inst.Args[0].Var, types.Str(string(rune(v))))
}
