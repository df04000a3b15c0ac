package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		kind    types.ScalarKind
		in      string
		want    types.Value
		wantErr bool
	}{
		{types.KindFloat32, "120.5", types.FloatValue(120.5), false},
		{types.KindFloat32, " 1e2 ", types.FloatValue(100), false},
		{types.KindFloat32, "abc", types.Value{}, true},
		{types.KindFloat32, "", types.Value{}, true},
		{types.KindInt32, "-42", types.IntValue(types.KindInt32, -42), false},
		{types.KindInt32, "0x10", types.IntValue(types.KindInt32, 16), false},
		{types.KindInt32, "-0x10", types.IntValue(types.KindInt32, -16), false},
		{types.KindInt32, "0x", types.Value{}, true},
		{types.KindInt32, "--1", types.Value{}, true},
		{types.KindUint32, "4294967295", types.IntValue(types.KindUint32, 4294967295), false},
		{types.KindUint32, "1.5", types.Value{}, true},
		{types.KindUint32, "18446744073709551617", types.IntValue(types.KindUint32, 1), false},
		{types.KindUint32, "0x1FFFFFFFFFFFFFFFF", types.IntValue(types.KindUint32, -1), false},
		{types.KindInt32, "-18446744073709551617", types.IntValue(types.KindInt32, -1), false},
		{types.KindUint32, "12a", types.Value{}, true},
		{types.KindUint8, "0xFF", types.IntValue(types.KindUint8, 255), false},
		{types.KindUint8, "ff", types.Value{}, true},
		{types.KindBool32, "true", types.BoolValue(true), false},
		{types.KindBool32, "FALSE", types.BoolValue(false), false},
		{types.KindBool32, "7", types.BoolValue(true), false},
		{types.KindBool32, "maybe", types.Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseLiteral(tt.kind, tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrParse)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseFieldLiteral_Enum(t *testing.T) {
	def := types.FieldDef{
		Name: "EngineType", Kind: types.KindUint32,
		Enum: types.Enumeration{0: "Inline", 1: "V", 2: "Flat (Boxer)"},
	}

	v, err := ParseFieldLiteral(def, "1 (V)")
	require.NoError(t, err)
	require.Equal(t, int64(1), v.I)

	v, err = ParseFieldLiteral(def, "inline")
	require.NoError(t, err)
	require.Equal(t, int64(0), v.I)

	v, err = ParseFieldLiteral(def, "Flat (Boxer)")
	require.NoError(t, err)
	require.Equal(t, int64(2), v.I)

	v, err = ParseFieldLiteral(def, "9")
	require.NoError(t, err)
	require.Equal(t, int64(9), v.I)

	_, err = ParseFieldLiteral(def, "Rotary")
	require.ErrorIs(t, err, types.ErrParse)
}

func TestCoerce(t *testing.T) {
	v, err := Coerce(types.KindFloat32, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(2), v.F)

	v, err = Coerce(types.KindInt32, 3.9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.I)

	v, err = Coerce(types.KindBool32, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.I)

	v, err = Coerce(types.KindUint8, "0x20")
	require.NoError(t, err)
	assert.Equal(t, int64(0x20), v.I)

	// integer targets truncate the exact float64, not a float32 rounding of it
	v, err = Coerce(types.KindUint32, 16777217.0)
	require.NoError(t, err)
	assert.Equal(t, int64(16777217), v.I)

	v, err = Coerce(types.KindUint32, 1e20)
	require.NoError(t, err)
	b := make([]byte, 4)
	_, err = Encode(b, 0, types.KindUint32, v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x10, 0x63}, b)

	_, err = Coerce(types.KindUint32, []int{1})
	require.ErrorIs(t, err, types.ErrParse)
}

func TestParseHexBytes(t *testing.T) {
	b, err := ParseHexBytes("DE AD be ef")
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b)

	b, err = ParseHexBytes("1,2, A")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0xA}, b)

	b, err = ParseHexBytes("   ")
	require.NoError(t, err)
	require.Empty(t, b)

	_, err = ParseHexBytes("DEAD")
	require.ErrorIs(t, err, types.ErrParse)

	_, err = ParseHexBytes("ZZ")
	require.ErrorIs(t, err, types.ErrParse)
}

func TestParseOffset(t *testing.T) {
	off, err := ParseOffset("A4")
	require.NoError(t, err)
	require.Equal(t, 0xA4, off)

	off, err = ParseOffset("0x1fc")
	require.NoError(t, err)
	require.Equal(t, 0x1FC, off)

	off, err = ParseOffset("10")
	require.NoError(t, err)
	require.Equal(t, 0x10, off)

	_, err = ParseOffset("0x")
	require.ErrorIs(t, err, types.ErrParse)

	_, err = ParseOffset("-4")
	require.ErrorIs(t, err, types.ErrParse)
}
