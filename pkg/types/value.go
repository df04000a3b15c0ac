package types

import (
	"math"
	"strconv"
)

// Value is a decoded scalar. Float32 values carry their payload in F; every
// other kind carries it in I (bool32 is always 0 or 1).
type Value struct {
	Kind ScalarKind
	F    float32
	I    int64
}

// FloatValue returns a float32 Value. The argument is rounded to single precision.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat32, F: float32(f)}
}

// IntValue returns an integer Value of the given kind. No masking happens here;
// the codec applies the kind's truncation rules when the value is encoded.
func IntValue(kind ScalarKind, i int64) Value {
	if kind == KindBool32 {
		return BoolValue(i != 0)
	}
	return Value{Kind: kind, I: i}
}

// BoolValue returns a bool32 Value.
func BoolValue(b bool) Value {
	if b {
		return Value{Kind: KindBool32, I: 1}
	}
	return Value{Kind: KindBool32}
}

// Float64 returns the value as a float64. Integer kinds convert exactly.
func (v Value) Float64() float64 {
	if v.Kind == KindFloat32 {
		return float64(v.F)
	}
	return float64(v.I)
}

// Int64 returns the value as an int64. Floats convert as TruncInt64.
func (v Value) Int64() int64 {
	if v.Kind != KindFloat32 {
		return v.I
	}
	return TruncInt64(float64(v.F))
}

// TruncInt64 truncates f toward zero and wraps the result modulo 2^64, so the
// low bits match the exact integer part. NaN and infinities yield 0.
func TruncInt64(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Trunc(f)
	if t >= -(1<<63) && t < 1<<63 {
		return int64(t)
	}
	r := math.Mod(t, 1<<64)
	switch {
	case r >= 1<<63:
		r -= 1 << 64
	case r < -(1 << 63):
		r += 1 << 64
	}
	return int64(r)
}

// Bool reports whether the value is nonzero.
func (v Value) Bool() bool {
	if v.Kind == KindFloat32 {
		return v.F != 0
	}
	return v.I != 0
}

// String renders floats with six significant digits and integers in decimal.
func (v Value) String() string {
	if v.Kind == KindFloat32 {
		return strconv.FormatFloat(float64(v.F), 'g', 6, 32)
	}
	return strconv.FormatInt(v.I, 10)
}

// Equal compares kind and payload. Float payloads compare by bit pattern so
// NaN equals itself.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == KindFloat32 {
		return math.Float32bits(v.F) == math.Float32bits(o.F)
	}
	return v.I == o.I
}
