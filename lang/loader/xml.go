package loader

import "encoding/xml"

// xmlProgram mirrors the structure of an IPPcode22 source document:
//
//	<program language="IPPcode22">
//	  <instruction order="1" opcode="MOVE">
//	    <arg1 type="var">GF@x</arg1>
//	    <arg2 type="int">1</arg2>
//	  </instruction>
//	  ...
//	</program>
type xmlProgram struct {
	// XMLName is deliberately untagged: a tagged `xml:"program"` makes
	// Decode itself fail on a root-element mismatch, indistinguishable from
	// malformed XML. The root element name is checked explicitly by Load so
	// a wrong-or-missing root element is reported as the code-32 structural
	// error spec.md requires, not code 31.
	XMLName      xml.Name
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  string   `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

// xmlArg captures an arg1/arg2/arg3 child element generically: its local
// tag name gives the argument's declared index, its type attribute gives
// the operand kind, and its character data is the operand's text.
type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}
