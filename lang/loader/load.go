// Package loader turns a parsed IPPcode22 XML document into an immutable
// *program.Program: it normalizes instruction and argument ordering,
// validates structural conformance, and builds the instruction sequence and
// label table the machine executes.
package loader

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/mna/ippcode22/lang/program"
)

// Load reads and validates an IPPcode22 XML document from r and returns the
// resulting Program. Malformed XML is reported as a code-31 *Error; a
// missing/wrong root element, a bad language attribute, duplicate order,
// malformed variable tokens and unknown opcodes are all code 32; duplicate
// labels are code 52.
func Load(r io.Reader) (*program.Program, error) {
	var xp xmlProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&xp); err != nil {
		return nil, newError(31, "XML is not well-formed: %s", err)
	}

	if xp.XMLName.Local != "program" {
		return nil, newError(32, "root element must be <program>, got %q", xp.XMLName.Local)
	}

	if !strings.EqualFold(xp.Language, "ippcode22") {
		return nil, newError(32, "unsupported or missing language attribute %q", xp.Language)
	}

	normalized, err := normalize(&xp)
	if err != nil {
		return nil, err
	}

	return build(normalized)
}
