package mrdf

import (
	"bytes"

	"github.com/joshuapare/mrdfkit/mrdf/record"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// FieldDiff is one field whose bytes differ between two buffers. A side that
// could not decode the field is nil.
type FieldDiff struct {
	Def  types.FieldDef
	A, B *types.FieldInstance
}

// DiffFields compares a and b field by field under p. Fields are reported in
// record order.
func DiffFields(a, b []byte, p types.Profile) []FieldDiff {
	ra := record.Parse(a, p.Fields())
	rb := record.Parse(b, p.Fields())

	var out []FieldDiff
	seen := make(map[string]bool)
	for _, fa := range ra.Fields {
		fa := fa
		seen[fa.Def.Name] = true
		fb, ok := rb.ByName(fa.Def.Name)
		if !ok {
			out = append(out, FieldDiff{Def: fa.Def, A: &fa})
			continue
		}
		if !bytes.Equal(fa.Raw, fb.Raw) {
			out = append(out, FieldDiff{Def: fa.Def, A: &fa, B: &fb})
		}
	}
	for _, fb := range rb.Fields {
		fb := fb
		if !seen[fb.Def.Name] {
			out = append(out, FieldDiff{Def: fb.Def, B: &fb})
		}
	}
	return out
}

// UnmappedDiff returns the byte ranges that differ between a and b and are not
// covered by any field of p. Only the common prefix is compared.
func UnmappedDiff(a, b []byte, p types.Profile) [][2]int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	covered := make([]bool, n)
	for _, d := range p.Fields() {
		for i := d.Offset; i < d.End() && i < n; i++ {
			covered[i] = true
		}
	}

	var out [][2]int
	start := -1
	for i := 0; i <= n; i++ {
		differs := i < n && !covered[i] && a[i] != b[i]
		switch {
		case differs && start < 0:
			start = i
		case !differs && start >= 0:
			out = append(out, [2]int{start, i - start})
			start = -1
		}
	}
	return out
}
