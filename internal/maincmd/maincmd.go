// Package maincmd wires the command line to the loader and the machine: it
// owns flag parsing, file/stdin selection, and the translation from a
// *loader.Error / *machine.RuntimeError into the process exit code.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mna/ippcode22/internal/config"
	"github.com/mna/ippcode22/lang/loader"
	"github.com/mna/ippcode22/lang/machine"
	"github.com/mna/mainer"
)

const binName = "ippcode22"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [--source <path>] [--input <path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [--source <path>] [--input <path>]
       %[1]s -h|--help
       %[1]s -v|--version

Interprets an IPPcode22 XML program.

At least one of --source/--input must be given. Omitting --source reads
the XML program from standard input; omitting --input makes READ consume
standard input.

Valid flag options are:
       --source <path>           Path to the IPPcode22 XML source.
       --input <path>            Path to the file READ consumes.
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Environment variables:
       IPPCODE22_MAX_STEPS       Abort with exit code 99 after this many
                                 instructions (0, the default, means no
                                 limit).
       IPPCODE22_TRACE           When "true", summarize every instruction
                                 fetch on standard error.
`, binName)
)

// Cmd is the ippcode22 command, populated from the command line by
// mainer.Parser.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Source string `flag:"source"`
	Input  string `flag:"input"`

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if c.Source == "" && c.Input == "" {
		return errMissingArgs
	}
	return nil
}

var errMissingArgs = errors.New("at least one of --source or --input must be given")

// Main parses args, runs the interpreter, and returns the process exit
// code: 0 on a clean EXIT or falling off the end of the program, the
// operand of EXIT otherwise, or a code from the spec's error taxonomy
// (10/11/31/32/52-58/99) on failure.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) int {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return 10
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return 0
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return 0
	}

	if err := c.Validate(); err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n%s", err, shortUsage)
		return 10
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid configuration: %s\n", err)
		return 99
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	return c.run(ctx, stdio, cfg)
}

func (c *Cmd) run(ctx context.Context, stdio mainer.Stdio, cfg *config.Config) int {
	source, closeSource, err := openOrStdin(c.Source, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "cannot open source: %s\n", err)
		return 11
	}
	defer closeSource()

	prog, err := loader.Load(source)
	if err != nil {
		var lerr *loader.Error
		if errors.As(err, &lerr) {
			fmt.Fprintf(stdio.Stderr, "%s\n", lerr)
			return lerr.Code
		}
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return 99
	}

	ip := machine.New(prog)
	ip.Stdout = stdio.Stdout
	ip.Stderr = stdio.Stderr
	ip.MaxSteps = cfg.MaxSteps
	ip.Trace = cfg.Trace

	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "cannot open input: %s\n", err)
			return 11
		}
		defer f.Close()
		ip.Input = machine.NewLineReader(f)
	} else {
		ip.Input = machine.NewLineReader(stdio.Stdin)
	}

	code, err := ip.Run(ctx)
	if err != nil {
		var rerr *machine.RuntimeError
		if errors.As(err, &rerr) {
			fmt.Fprintf(stdio.Stderr, "%s\n", rerr)
			return rerr.Code
		}
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return 99
	}
	return code
}

// openOrStdin opens path, or returns stdin unchanged (with a no-op close)
// when path is empty.
func openOrStdin(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
