package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

// Frames is the frame system of a running program: a global frame that
// always exists, a temporary frame that exists after CREATEFRAME or POPFRAME
// until its consumption by PUSHFRAME, and a stack of local frames whose top
// is the current local frame.
type Frames struct {
	global *Frame
	temp   *Frame // nil when absent
	stack  []*Frame
}

// NewFrames returns a fresh frame system with just the (empty) global
// frame; no temporary frame and an empty frame stack.
func NewFrames() *Frames {
	return &Frames{global: NewFrame()}
}

// StackDepth reports the number of frames on the local frame stack.
func (fs *Frames) StackDepth() int { return len(fs.stack) }

// HasTemp reports whether the temporary frame currently exists.
func (fs *Frames) HasTemp() bool { return fs.temp != nil }

func (fs *Frames) frameFor(tag program.FrameTag) (*Frame, *RuntimeError) {
	switch tag {
	case program.FrameGlobal:
		return fs.global, nil
	case program.FrameTemporary:
		if fs.temp == nil {
			return nil, newErr(55, "temporary frame does not exist")
		}
		return fs.temp, nil
	case program.FrameLocal:
		if len(fs.stack) == 0 {
			return nil, newErr(55, "no local frame exists")
		}
		return fs.stack[len(fs.stack)-1], nil
	default:
		return nil, newErr(99, "internal error: unknown frame tag %v", tag)
	}
}

// CreateFrame unconditionally replaces the temporary frame with a fresh,
// empty one, discarding any prior content.
func (fs *Frames) CreateFrame() {
	fs.temp = NewFrame()
}

// PushFrame moves the temporary frame onto the frame stack; it becomes the
// new local frame. The temporary frame becomes absent.
func (fs *Frames) PushFrame() *RuntimeError {
	if fs.temp == nil {
		return newErr(55, "PUSHFRAME: temporary frame does not exist")
	}
	fs.stack = append(fs.stack, fs.temp)
	fs.temp = nil
	return nil
}

// PopFrame removes the top of the frame stack and places it into the
// temporary frame.
func (fs *Frames) PopFrame() *RuntimeError {
	if len(fs.stack) == 0 {
		return newErr(55, "POPFRAME: frame stack is empty")
	}
	n := len(fs.stack) - 1
	fs.temp = fs.stack[n]
	fs.stack = fs.stack[:n]
	return nil
}

// Declare creates variable ref in its target frame, failing with code 55 if
// the frame does not exist or code 52 if the name is already declared.
func (fs *Frames) Declare(ref program.VarRef) *RuntimeError {
	f, err := fs.frameFor(ref.Frame)
	if err != nil {
		return err
	}
	if !f.Declare(ref.Name) {
		return newErr(52, "variable %s@%s is already declared", ref.Frame, ref.Name)
	}
	return nil
}

func (fs *Frames) variable(ref program.VarRef) (*Variable, *RuntimeError) {
	f, err := fs.frameFor(ref.Frame)
	if err != nil {
		return nil, err
	}
	v, ok := f.Lookup(ref.Name)
	if !ok {
		return nil, newErr(54, "access to undeclared variable %s@%s", ref.Frame, ref.Name)
	}
	return v, nil
}

// Write stores val (with its tag) into the declared variable ref.
func (fs *Frames) Write(ref program.VarRef, val types.Value) *RuntimeError {
	v, err := fs.variable(ref)
	if err != nil {
		return err
	}
	v.Value = val
	return nil
}

// ReadValue returns the value held by variable ref, failing with code 56 if
// it is declared but uninitialized.
func (fs *Frames) ReadValue(ref program.VarRef) (types.Value, *RuntimeError) {
	v, err := fs.variable(ref)
	if err != nil {
		return nil, err
	}
	if v.Value == nil {
		return nil, newErr(56, "missing value: variable %s@%s is uninitialized", ref.Frame, ref.Name)
	}
	return v.Value, nil
}

// ReadTag returns the tag of the value held by variable ref. In permissive
// mode (used only by TYPE) an uninitialized variable yields ok=false
// instead of a code-56 error.
func (fs *Frames) ReadTag(ref program.VarRef, permissive bool) (tag types.Tag, ok bool, err *RuntimeError) {
	v, rerr := fs.variable(ref)
	if rerr != nil {
		return 0, false, rerr
	}
	if v.Value == nil {
		if permissive {
			return 0, false, nil
		}
		return 0, false, newErr(56, "missing value: variable %s@%s is uninitialized", ref.Frame, ref.Name)
	}
	return v.Value.Tag(), true, nil
}
