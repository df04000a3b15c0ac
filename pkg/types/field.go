package types

import (
	"fmt"
	"sort"
	"strings"
)

// Enumeration maps integer field values to display labels. It serves both
// enumerated fields (engine type, drivetrain) and simple 0/1 legends.
type Enumeration map[int64]string

// UnknownLabel is shown for values that an Enumeration does not list.
const UnknownLabel = "Unknown"

// Label returns the display label for v, or UnknownLabel.
func (e Enumeration) Label(v int64) string {
	if l, ok := e[v]; ok {
		return l
	}
	return UnknownLabel
}

// EnumEntry is one value/label pair of an Enumeration.
type EnumEntry struct {
	Value int64
	Label string
}

// Entries returns the pairs sorted by value.
func (e Enumeration) Entries() []EnumEntry {
	out := make([]EnumEntry, 0, len(e))
	for v, l := range e {
		out = append(out, EnumEntry{Value: v, Label: l})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Lookup finds the value whose label matches name case-insensitively.
func (e Enumeration) Lookup(name string) (int64, bool) {
	name = strings.TrimSpace(name)
	for _, ent := range e.Entries() {
		if strings.EqualFold(ent.Label, name) {
			return ent.Value, true
		}
	}
	return 0, false
}

// Bit is one entry of a bitmask legend.
type Bit struct {
	Mask  uint32
	Label string
}

// FieldDef describes where one scalar lives inside an MRDF record.
// Values are treated as immutable once placed in a Profile.
type FieldDef struct {
	Name    string
	Section string
	Offset  int
	Kind    ScalarKind
	Note    string
	Enum    Enumeration // optional
	Bits    []Bit       // optional bitmask legend
}

// Width returns the byte width of the field's scalar kind.
func (d FieldDef) Width() int { return d.Kind.Width() }

// End returns the exclusive end offset of the field.
func (d FieldDef) End() int { return d.Offset + d.Width() }

// IsBitmask reports whether the field carries a bitmask legend.
func (d FieldDef) IsBitmask() bool { return len(d.Bits) > 0 }

// IsEnum reports whether the field carries an enumeration.
func (d FieldDef) IsEnum() bool { return len(d.Enum) > 0 }

// Overlaps reports whether [start, start+length) intersects the field's bytes.
func (d FieldDef) Overlaps(start, length int) bool {
	return start < d.End() && d.Offset < start+length
}

func (d FieldDef) String() string {
	return fmt.Sprintf("%s/%s@%#x(%s)", d.Section, d.Name, d.Offset, d.Kind)
}

// FieldInstance is a field decoded from a concrete buffer. Raw always has
// the kind's width and Value always has the field's kind.
type FieldInstance struct {
	Def    FieldDef
	Offset int
	Raw    []byte
	Value  Value
}
