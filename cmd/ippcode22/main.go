// Command ippcode22 interprets an IPPcode22 XML program.
package main

import (
	"os"

	"github.com/mna/ippcode22/internal/maincmd"
	"github.com/mna/mainer"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(c.Main(os.Args, mainer.CurrentStdio()))
}
