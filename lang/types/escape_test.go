package types_test

import (
	"testing"

	"github.com/mna/ippcode22/lang/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEscapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "hello", "hello"},
		{"space escape", `hello\032world`, "hello world"},
		{"backslash escape", `a\092b`, `a\b`},
		{"leading escape", `\065BC`, "ABC"},
		{"multiple escapes", `\065\066\067`, "ABC"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := types.DecodeEscapes(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeEscapesErrors(t *testing.T) {
	_, err := types.DecodeEscapes(`trailing\09`)
	assert.Error(t, err)

	_, err = types.DecodeEscapes(`bad\abc`)
	assert.Error(t, err)
}

func TestValueTags(t *testing.T) {
	assert.Equal(t, types.TagInt, types.Int(5).Tag())
	assert.Equal(t, types.TagBool, types.Bool(true).Tag())
	assert.Equal(t, types.TagString, types.Str("x").Tag())
	assert.Equal(t, types.TagNil, types.Nil.Tag())

	assert.Equal(t, "true", types.Bool(true).String())
	assert.Equal(t, "false", types.Bool(false).String())
	assert.Equal(t, "", types.Nil.String())
	assert.Equal(t, "42", types.Int(42).String())
}
