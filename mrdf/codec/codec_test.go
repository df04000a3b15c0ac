package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

func TestDecodeEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind types.ScalarKind
		v    types.Value
	}{
		{"float32", types.KindFloat32, types.FloatValue(120.5)},
		{"float32 negative", types.KindFloat32, types.FloatValue(-0.25)},
		{"int32", types.KindInt32, types.IntValue(types.KindInt32, -123456)},
		{"uint32", types.KindUint32, types.IntValue(types.KindUint32, 0xDEADBEEF)},
		{"bool32 true", types.KindBool32, types.BoolValue(true)},
		{"bool32 false", types.KindBool32, types.BoolValue(false)},
		{"uint8", types.KindUint8, types.IntValue(types.KindUint8, 0xAB)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := make([]byte, 16)
			raw, err := Encode(b, 8, tt.kind, tt.v)
			require.NoError(t, err)
			require.Len(t, raw, tt.kind.Width())
			require.Len(t, b, 16)

			got, gotRaw, err := Decode(b, 8, tt.kind)
			require.NoError(t, err)
			require.True(t, tt.v.Equal(got), "got %v want %v", got, tt.v)
			require.Equal(t, raw, gotRaw)
		})
	}
}

func TestDecode_RawIsCopy(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	_, raw, err := Decode(b, 0, types.KindUint32)
	require.NoError(t, err)
	raw[0] = 0xFF
	require.Equal(t, byte(1), b[0])
}

func TestDecode_OutOfBounds(t *testing.T) {
	b := make([]byte, 0x200)
	_, _, err := Decode(b, len(b)-2, types.KindUint32)
	require.ErrorIs(t, err, types.ErrOutOfBounds)

	_, _, err = Decode(b, -1, types.KindUint8)
	require.ErrorIs(t, err, types.ErrOutOfBounds)

	_, _, err = Decode(b, len(b)-1, types.KindUint8)
	require.NoError(t, err)
}

func TestEncode_OutOfBoundsLeavesBufferUntouched(t *testing.T) {
	b := []byte{9, 9, 9}
	_, err := Encode(b, 0, types.KindFloat32, types.FloatValue(1))
	require.ErrorIs(t, err, types.ErrOutOfBounds)
	require.Equal(t, []byte{9, 9, 9}, b)
}

func TestDecode_Bool32Normalizes(t *testing.T) {
	v, _, err := Decode([]byte{0x00, 0x02, 0x00, 0x00}, 0, types.KindBool32)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.I)
}

func TestEncode_Masking(t *testing.T) {
	b := make([]byte, 4)

	_, err := Encode(b, 0, types.KindUint8, types.IntValue(types.KindUint8, 0x1FF))
	require.NoError(t, err)
	require.Equal(t, byte(0xFF), b[0])

	_, err = Encode(b, 0, types.KindUint32, types.IntValue(types.KindUint32, 0x1_0000_0002))
	require.NoError(t, err)
	require.Equal(t, []byte{2, 0, 0, 0}, b)

	_, err = Encode(b, 0, types.KindBool32, types.Value{Kind: types.KindInt32, I: 42})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 0, 0}, b)

	_, err = Encode(b, 0, types.KindInt32, types.IntValue(types.KindInt32, -1))
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, b)
}

func TestEncode_CrossKind(t *testing.T) {
	b := make([]byte, 4)
	_, err := Encode(b, 0, types.KindInt32, types.FloatValue(-2.9))
	require.NoError(t, err)
	v, _, _ := Decode(b, 0, types.KindInt32)
	require.Equal(t, int64(-2), v.I)

	_, err = Encode(b, 0, types.KindFloat32, types.IntValue(types.KindInt32, 7))
	require.NoError(t, err)
	v, _, _ = Decode(b, 0, types.KindFloat32)
	require.Equal(t, float32(7), v.F)
}

func TestZeroBuffer_FloatAt0x20(t *testing.T) {
	b := make([]byte, 0x200)
	v, _, err := Decode(b, 0x20, types.KindFloat32)
	require.NoError(t, err)
	require.Equal(t, float32(0), v.F)

	_, err = Encode(b, 0x20, types.KindFloat32, types.FloatValue(120.5))
	require.NoError(t, err)
	v, _, err = Decode(b, 0x20, types.KindFloat32)
	require.NoError(t, err)
	require.Equal(t, float32(120.5), v.F)
	require.Len(t, b, 0x200)
}

func TestNormalize(t *testing.T) {
	v := Normalize(types.KindUint8, types.IntValue(types.KindUint8, 0x1FF))
	assert.Equal(t, int64(0xFF), v.I)

	v = Normalize(types.KindFloat32, types.FloatValue(math.Pi))
	assert.Equal(t, float32(math.Pi), v.F)
}
