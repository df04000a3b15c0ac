// Package record decodes a buffer against a field table.
package record

import (
	"sort"
	"strings"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Skip records a field that could not be decoded.
type Skip struct {
	Def types.FieldDef
	Err error
}

// Result is the outcome of Parse. Fields are ordered by (section, offset).
type Result struct {
	Fields  []types.FieldInstance
	Skipped []Skip
}

// Parse decodes every field of defs from b. Fields that fail to decode are
// listed in Skipped instead of aborting the parse.
func Parse(b []byte, defs []types.FieldDef) Result {
	var res Result
	res.Fields = make([]types.FieldInstance, 0, len(defs))
	for _, d := range defs {
		v, raw, err := codec.Decode(b, d.Offset, d.Kind)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Def: d, Err: err})
			continue
		}
		res.Fields = append(res.Fields, types.FieldInstance{Def: d, Offset: d.Offset, Raw: raw, Value: v})
	}
	sort.SliceStable(res.Fields, func(i, j int) bool {
		a, b := res.Fields[i], res.Fields[j]
		if a.Def.Section != b.Def.Section {
			return a.Def.Section < b.Def.Section
		}
		return a.Offset < b.Offset
	})
	return res
}

// SkipCount returns how many fields were omitted.
func (r Result) SkipCount() int { return len(r.Skipped) }

// Filter keeps fields whose section or name contains q, ignoring case. An
// empty query returns r unchanged.
func (r Result) Filter(q string) Result {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return r
	}
	out := Result{Skipped: r.Skipped}
	for _, f := range r.Fields {
		if strings.Contains(strings.ToLower(f.Def.Section), q) || strings.Contains(strings.ToLower(f.Def.Name), q) {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}

// Section is a run of fields sharing a section name.
type Section struct {
	Name   string
	Fields []types.FieldInstance
}

// Sections groups the fields by section, preserving order.
func (r Result) Sections() []Section {
	var out []Section
	for _, f := range r.Fields {
		if n := len(out); n > 0 && out[n-1].Name == f.Def.Section {
			out[n-1].Fields = append(out[n-1].Fields, f)
			continue
		}
		out = append(out, Section{Name: f.Def.Section, Fields: []types.FieldInstance{f}})
	}
	return out
}

// ByOffset returns the field starting at off.
func (r Result) ByOffset(off int) (types.FieldInstance, bool) {
	for _, f := range r.Fields {
		if f.Offset == off {
			return f, true
		}
	}
	return types.FieldInstance{}, false
}

// ByName returns the named field.
func (r Result) ByName(name string) (types.FieldInstance, bool) {
	for _, f := range r.Fields {
		if f.Def.Name == name {
			return f, true
		}
	}
	return types.FieldInstance{}, false
}

// Covering returns the field whose bytes include off.
func (r Result) Covering(off int) (types.FieldInstance, bool) {
	for _, f := range r.Fields {
		if f.Def.Overlaps(off, 1) {
			return f, true
		}
	}
	return types.FieldInstance{}, false
}
