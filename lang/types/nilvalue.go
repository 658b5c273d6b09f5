package types

// NilValue is the type of Nil. Its only legal value is Nil. It is distinct
// from an uninitialized variable: a Variable with no Value at all (a nil
// Value interface) has never been written to, while a Variable holding Nil
// has been explicitly assigned the nil value.
type NilValue struct{}

// Nil is the singleton nil value.
var Nil = NilValue{}

var _ Value = Nil

func (NilValue) Tag() Tag      { return TagNil }
func (NilValue) String() string { return "" }
