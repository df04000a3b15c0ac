package detect

import (
	"fmt"
	"strings"

	"github.com/joshuapare/mrdfkit/internal/buf"
)

// Rule votes for one profile key. Rules never fail; anything that cannot be
// evaluated is a non-match.
type Rule interface {
	// Name identifies the rule in Explain output.
	Name() string
	// Key is the profile the rule selects.
	Key() string
	Match(path string, b []byte) bool
}

// PathRule matches on the file path. Hints match anywhere in the lower-cased
// path; Segments must equal a whole directory name.
type PathRule struct {
	Profile  string
	Hints    []string
	Segments []string
}

func (r PathRule) Name() string { return "path:" + r.Profile }
func (r PathRule) Key() string  { return r.Profile }

func (r PathRule) Match(path string, _ []byte) bool {
	if path == "" {
		return false
	}
	lower := strings.ToLower(path)
	for _, h := range r.Hints {
		if h != "" && strings.Contains(lower, strings.ToLower(h)) {
			return true
		}
	}
	if len(r.Segments) == 0 {
		return false
	}
	dirs := strings.FieldsFunc(lower, func(c rune) bool { return c == '/' || c == '\\' })
	if len(dirs) > 0 {
		// the last element is the file name
		dirs = dirs[:len(dirs)-1]
	}
	for _, d := range dirs {
		for _, s := range r.Segments {
			if d == strings.ToLower(s) {
				return true
			}
		}
	}
	return false
}

// Interval is a numeric range. Open intervals exclude both ends.
type Interval struct {
	Lo, Hi float64
	Closed bool
}

// Open returns the interval (lo, hi).
func Open(lo, hi float64) Interval { return Interval{Lo: lo, Hi: hi} }

// Closed returns the interval [lo, hi].
func Closed(lo, hi float64) Interval { return Interval{Lo: lo, Hi: hi, Closed: true} }

// Contains reports whether v lies in the interval. NaN is never contained.
func (i Interval) Contains(v float64) bool {
	if i.Closed {
		return v >= i.Lo && v <= i.Hi
	}
	return v > i.Lo && v < i.Hi
}

func (i Interval) String() string {
	if i.Closed {
		return fmt.Sprintf("[%g, %g]", i.Lo, i.Hi)
	}
	return fmt.Sprintf("(%g, %g)", i.Lo, i.Hi)
}

// FloatCheck requires the float32 at Offset to lie in Range.
type FloatCheck struct {
	Offset int
	Range  Interval
}

// RangeRule matches when every check passes.
type RangeRule struct {
	Label   string
	Profile string
	Checks  []FloatCheck
}

func (r RangeRule) Name() string { return "range:" + r.Label }
func (r RangeRule) Key() string  { return r.Profile }

func (r RangeRule) Match(_ string, b []byte) bool {
	if len(r.Checks) == 0 {
		return false
	}
	for _, c := range r.Checks {
		v, ok := buf.F32At(b, c.Offset)
		if !ok || !c.Range.Contains(float64(v)) {
			return false
		}
	}
	return true
}
