package types

// Str is a string value: a sequence of Unicode code points. Any "\ddd"
// escape sequence present in the authoring source has already been decoded,
// by DecodeEscapes, to the code point with that ordinal before the Str was
// constructed, so Runes, STRLEN, GETCHAR and SETCHAR all operate on the
// logical string, not the escaped authoring form.
type Str string

var _ Value = Str("")

func (Str) Tag() Tag         { return TagString }
func (s Str) String() string { return string(s) }

// Runes returns the code points making up the string.
func (s Str) Runes() []rune { return []rune(s) }
