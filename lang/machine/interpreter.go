package machine

import (
	"io"
	"os"

	"github.com/mna/ippcode22/lang/program"
	"github.com/mna/ippcode22/lang/types"
)

// Interpreter is the runtime object owning one program execution: its
// instruction sequence and label table, its frame system, its data and call
// stacks, and the instruction counter. It plays the same role the teacher
// lineage's Thread type plays for its own bytecode: the single load-bearing
// object a caller configures once and then runs.
type Interpreter struct {
	// Stdout and Stderr are the program's output streams. If nil, os.Stdout
	// and os.Stderr are used.
	Stdout io.Writer
	Stderr io.Writer

	// Input is the line-oriented reader bound to READ. If nil, READ falls
	// back to reading from standard input directly.
	Input *LineReader

	// MaxSteps is the maximum number of instructions to execute before the
	// interpreter aborts with a code-99 internal error. Zero means no limit.
	MaxSteps int

	// Trace, when true, summarizes every instruction fetch to Stderr before
	// it executes. It never affects Stdout or the exit code.
	Trace bool

	prog   *program.Program
	frames *Frames

	dataStack []types.Value
	callStack []int

	ic    int
	steps int

	stdout io.Writer
	stderr io.Writer
	input  *LineReader
}

// New returns an Interpreter ready to run p.
func New(p *program.Program) *Interpreter {
	return &Interpreter{
		prog:   p,
		frames: NewFrames(),
	}
}

func (in *Interpreter) init() {
	in.stdout = in.Stdout
	if in.stdout == nil {
		in.stdout = os.Stdout
	}
	in.stderr = in.Stderr
	if in.stderr == nil {
		in.stderr = os.Stderr
	}
	in.input = in.Input
	if in.input == nil {
		in.input = NewLineReader(os.Stdin)
	}
}
