package machine

import (
	"github.com/dolthub/swiss"
	"github.com/mna/ippcode22/lang/types"
)

// Variable is a named slot that may or may not hold a value. A Variable
// whose Value is nil is declared-but-uninitialized; reading it is an error
// everywhere except TYPE's permissive mode.
type Variable struct {
	Name  string
	Value types.Value
}

// Frame is a mapping from variable name to Variable, backed by a
// swiss-table hash map rather than a built-in Go map.
type Frame struct {
	vars *swiss.Map[string, *Variable]
}

// NewFrame returns a new, empty frame.
func NewFrame() *Frame {
	return &Frame{vars: swiss.NewMap[string, *Variable](8)}
}

// Declare creates a new variable named name in the frame. It fails if the
// name is already declared in this frame.
func (f *Frame) Declare(name string) bool {
	if _, ok := f.vars.Get(name); ok {
		return false
	}
	f.vars.Put(name, &Variable{Name: name})
	return true
}

// Lookup returns the variable named name, if declared.
func (f *Frame) Lookup(name string) (*Variable, bool) {
	return f.vars.Get(name)
}
