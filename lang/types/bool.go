package types

// Bool is a boolean value, displayed in its canonical "true"/"false" form.
type Bool bool

var _ Value = Bool(false)

func (Bool) Tag() Tag { return TagBool }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
