// Package buf contains bounds-checked little-endian helpers for MRDF scalars.
package buf

import (
	"encoding/binary"
	"math"
)

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// F32LE reads a little-endian IEEE-754 float32 from b. Returns 0 when b is too short.
func F32LE(b []byte) float32 {
	if len(b) < 4 {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// F32At reads the float32 at off, reporting false when it does not fit.
func F32At(b []byte, off int) (float32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return F32LE(s), true
}

// PutU32LE writes v into b[0:4]. Returns false, leaving b untouched, when b is too short.
func PutU32LE(b []byte, v uint32) bool {
	if len(b) < 4 {
		return false
	}
	binary.LittleEndian.PutUint32(b, v)
	return true
}

// PutF32LE writes v into b[0:4]. Returns false, leaving b untouched, when b is too short.
func PutF32LE(b []byte, v float32) bool {
	return PutU32LE(b, math.Float32bits(v))
}
