package edit

import (
	"slices"
	"sort"
)

const defaultRangeCapacity = 16

// Range is a touched byte range of the working buffer.
type Range struct {
	Off int
	Len int
}

// End returns the exclusive end offset.
func (r Range) End() int { return r.Off + r.Len }

// Ledger holds touched ranges sorted by offset, merging overlapping and
// adjacent ranges as they are added.
//
// NOT thread-safe.
type Ledger struct {
	ranges []Range
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{ranges: make([]Range, 0, defaultRangeCapacity)}
}

// Add records a touched range. Empty ranges are ignored.
func (l *Ledger) Add(off, length int) {
	if length <= 0 {
		return
	}
	r := Range{Off: off, Len: length}
	i := sort.Search(len(l.ranges), func(k int) bool { return l.ranges[k].End() >= r.Off })
	j := i
	for ; j < len(l.ranges) && l.ranges[j].Off <= r.End(); j++ {
		end := max(r.End(), l.ranges[j].End())
		r.Off = min(r.Off, l.ranges[j].Off)
		r.Len = end - r.Off
	}
	if i == j {
		l.ranges = slices.Insert(l.ranges, i, r)
		return
	}
	l.ranges[i] = r
	l.ranges = slices.Delete(l.ranges, i+1, j)
}

// Reset clears all ranges.
func (l *Ledger) Reset() {
	l.ranges = l.ranges[:0]
}

// Len returns the number of disjoint ranges.
func (l *Ledger) Len() int { return len(l.ranges) }

// Ranges returns a copy of the sorted, non-overlapping ranges.
func (l *Ledger) Ranges() []Range {
	if len(l.ranges) == 0 {
		return nil
	}
	return slices.Clone(l.ranges)
}

// diffRanges splits each range into the maximal sub-ranges where a and b differ.
func diffRanges(ranges []Range, a, b []byte) []Range {
	var out []Range
	for _, r := range ranges {
		start := -1
		for i := r.Off; i < r.End() && i < len(a) && i < len(b); i++ {
			if a[i] != b[i] {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				out = append(out, Range{Off: start, Len: i - start})
				start = -1
			}
		}
		if start >= 0 {
			end := r.End()
			if end > len(a) {
				end = len(a)
			}
			out = append(out, Range{Off: start, Len: end - start})
		}
	}
	return out
}
