// Package codec translates MRDF scalars between little-endian bytes and typed values.
//
// Every operation bounds-checks before it touches a buffer, and Encode writes
// exactly the kind's width so a buffer's length never changes.
package codec

import (
	"github.com/joshuapare/mrdfkit/internal/buf"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Decode reads the scalar of the given kind at off. The returned raw slice is
// a copy of the kind's bytes.
func Decode(b []byte, off int, kind types.ScalarKind) (types.Value, []byte, error) {
	w := kind.Width()
	if w == 0 {
		return types.Value{}, nil, &types.Error{Kind: types.ErrKindConfig, Msg: "cannot decode " + kind.String()}
	}
	s, ok := buf.Slice(b, off, w)
	if !ok {
		return types.Value{}, nil, types.OutOfBounds(off, w, len(b))
	}
	raw := append([]byte(nil), s...)

	switch kind {
	case types.KindFloat32:
		return types.Value{Kind: kind, F: buf.F32LE(raw)}, raw, nil
	case types.KindInt32:
		return types.Value{Kind: kind, I: int64(buf.I32LE(raw))}, raw, nil
	case types.KindUint32:
		return types.Value{Kind: kind, I: int64(buf.U32LE(raw))}, raw, nil
	case types.KindBool32:
		return types.BoolValue(buf.U32LE(raw) != 0), raw, nil
	default: // KindUint8
		return types.Value{Kind: kind, I: int64(raw[0])}, raw, nil
	}
}

// Encode writes v into b at off using kind's encoding and returns a copy of the
// bytes written. Integer kinds keep only their low bits; float sources written
// to integer kinds truncate toward zero. b is untouched on error.
func Encode(b []byte, off int, kind types.ScalarKind, v types.Value) ([]byte, error) {
	w := kind.Width()
	if w == 0 {
		return nil, &types.Error{Kind: types.ErrKindConfig, Msg: "cannot encode " + kind.String()}
	}
	dst, ok := buf.Slice(b, off, w)
	if !ok {
		return nil, types.OutOfBounds(off, w, len(b))
	}

	switch kind {
	case types.KindFloat32:
		buf.PutF32LE(dst, float32(v.Float64()))
	case types.KindUint8:
		dst[0] = byte(v.Int64() & 0xFF)
	case types.KindBool32:
		var word uint32
		if v.Bool() {
			word = 1
		}
		buf.PutU32LE(dst, word)
	default: // int32, uint32
		buf.PutU32LE(dst, uint32(v.Int64()&0xFFFFFFFF))
	}
	return append([]byte(nil), dst...), nil
}

// Normalize returns v as it would read back after Encode with kind.
func Normalize(kind types.ScalarKind, v types.Value) types.Value {
	var scratch [4]byte
	if _, err := Encode(scratch[:], 0, kind, v); err != nil {
		return v
	}
	out, _, err := Decode(scratch[:], 0, kind)
	if err != nil {
		return v
	}
	return out
}
