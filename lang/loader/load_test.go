package loader_test

import (
	"strings"
	"testing"

	"github.com/mna/ippcode22/lang/loader"
	"github.com/mna/ippcode22/lang/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHello(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode22">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">GF@h</arg1>
  </instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@h</arg1>
    <arg2 type="string">Hello</arg2>
  </instruction>
  <instruction order="3" opcode="WRITE">
    <arg1 type="var">GF@h</arg1>
  </instruction>
</program>`

	p, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Instructions, 3)
	assert.Equal(t, program.DEFVAR, p.Instructions[0].Opcode)
	assert.Equal(t, program.MOVE, p.Instructions[1].Opcode)
	assert.Equal(t, program.WRITE, p.Instructions[2].Opcode)
	assert.Equal(t, "h", p.Instructions[0].Args[0].Var.Name)
	assert.Equal(t, program.FrameGlobal, p.Instructions[0].Args[0].Var.Frame)
}

func TestLoadSortsByOrder(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="5" opcode="LABEL"><arg1 type="label">l</arg1></instruction>
  <instruction order="1" opcode="JUMP"><arg1 type="label">l</arg1></instruction>
</program>`
	p, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Instructions, 2)
	assert.Equal(t, program.JUMP, p.Instructions[0].Opcode)
	assert.Equal(t, program.LABEL, p.Instructions[1].Opcode)
	assert.Equal(t, 1, p.Labels["l"])
}

func TestLoadSortsArgsByIndex(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="ADD">
    <arg3 type="int">2</arg3>
    <arg1 type="var">GF@r</arg1>
    <arg2 type="int">1</arg2>
  </instruction>
</program>`
	p, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Instructions[0].Args, 3)
	assert.True(t, p.Instructions[0].Args[0].IsVar())
	assert.Equal(t, int64(1), p.Instructions[0].Args[1].Lit.Int)
	assert.Equal(t, int64(2), p.Instructions[0].Args[2].Lit.Int)
}

func TestLoadMalformedXML(t *testing.T) {
	_, err := loader.Load(strings.NewReader(`<program language="ippcode22">`))
	requireCode(t, err, 31)
}

func TestLoadWrongRootElement(t *testing.T) {
	_, err := loader.Load(strings.NewReader(`<notprogram language="ippcode22"></notprogram>`))
	requireCode(t, err, 32)
}

func TestLoadBadLanguage(t *testing.T) {
	_, err := loader.Load(strings.NewReader(`<program language="other"></program>`))
	requireCode(t, err, 32)
}

func TestLoadDuplicateOrder(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="CREATEFRAME"></instruction>
  <instruction order="1" opcode="PUSHFRAME"></instruction>
</program>`
	_, err := loader.Load(strings.NewReader(src))
	requireCode(t, err, 32)
}

func TestLoadGapInArgIndex(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="WRITE">
    <arg2 type="int">1</arg2>
  </instruction>
</program>`
	_, err := loader.Load(strings.NewReader(src))
	requireCode(t, err, 32)
}

func TestLoadBadVarToken(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">XX@oops</arg1>
  </instruction>
</program>`
	_, err := loader.Load(strings.NewReader(src))
	requireCode(t, err, 32)
}

func TestLoadDuplicateLabel(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="LABEL"><arg1 type="label">l</arg1></instruction>
  <instruction order="2" opcode="LABEL"><arg1 type="label">l</arg1></instruction>
</program>`
	_, err := loader.Load(strings.NewReader(src))
	requireCode(t, err, 52)
}

func TestLoadUnknownOpcode(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="FROB"></instruction>
</program>`
	_, err := loader.Load(strings.NewReader(src))
	requireCode(t, err, 32)
}

func TestLoadEmptyStringLiteral(t *testing.T) {
	src := `<program language="ippcode22">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@s</arg1></instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@s</arg1>
    <arg2 type="string"></arg2>
  </instruction>
</program>`
	p, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "", p.Instructions[1].Args[1].Lit.Str)
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var lerr *loader.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, code, lerr.Code)
}
