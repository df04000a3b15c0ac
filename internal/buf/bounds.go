package buf

import (
	"math"

	"golang.org/x/exp/constraints"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// InRange reports whether [off, off+n) lies within a buffer of size bytes.
// Negative offsets or lengths and overflowing ends are never in range.
func InRange(size, off, n int) bool {
	if off < 0 || n < 0 || off > size {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= size
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if !InRange(len(b), off, n) {
		return nil, false
	}
	return b[off : off+n], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	return InRange(len(b), off, n)
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// AlignDown rounds v down to a multiple of step. step must be positive.
func AlignDown[T constraints.Integer](v, step T) T {
	if step <= 0 {
		return v
	}
	return (v / step) * step
}
