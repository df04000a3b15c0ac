package types

import "fmt"

// Profile is a named field table: one interpretation of an MRDF buffer's layout.
type Profile struct {
	key    string
	label  string
	fields []FieldDef
}

// NewProfile validates and builds a Profile. Field names must be unique,
// offsets non-negative and kinds valid. The field slice is copied.
func NewProfile(key, label string, fields []FieldDef) (Profile, error) {
	if key == "" {
		return Profile{}, &Error{Kind: ErrKindConfig, Msg: "profile key is empty", Err: ErrInvalidProfile}
	}
	if label == "" {
		label = key
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return Profile{}, profileErr(key, "field at %#x has no name", f.Offset)
		}
		if _, dup := seen[f.Name]; dup {
			return Profile{}, profileErr(key, "duplicate field name %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Offset < 0 {
			return Profile{}, profileErr(key, "field %q has negative offset %d", f.Name, f.Offset)
		}
		if !f.Kind.Valid() {
			return Profile{}, profileErr(key, "field %q has invalid kind %s", f.Name, f.Kind)
		}
	}
	cp := make([]FieldDef, len(fields))
	copy(cp, fields)
	return Profile{key: key, label: label, fields: cp}, nil
}

// MustProfile is NewProfile for static tables; it panics on invalid input.
func MustProfile(key, label string, fields []FieldDef) Profile {
	p, err := NewProfile(key, label, fields)
	if err != nil {
		panic(err)
	}
	return p
}

func profileErr(key, format string, args ...any) error {
	return &Error{
		Kind: ErrKindConfig,
		Msg:  fmt.Sprintf("profile %q: %s", key, fmt.Sprintf(format, args...)),
		Err:  ErrInvalidProfile,
	}
}

// Key returns the profile's identifier.
func (p Profile) Key() string { return p.key }

// Label returns the display label.
func (p Profile) Label() string { return p.label }

// Len returns the number of fields.
func (p Profile) Len() int { return len(p.fields) }

// IsZero reports whether p is the zero Profile.
func (p Profile) IsZero() bool { return p.key == "" }

// Fields returns a copy of the field table in declaration order.
func (p Profile) Fields() []FieldDef {
	cp := make([]FieldDef, len(p.fields))
	copy(cp, p.fields)
	return cp
}

// Field looks up a field by name.
func (p Profile) Field(name string) (FieldDef, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldAt returns the field starting at off.
func (p Profile) FieldAt(off int) (FieldDef, bool) {
	for _, f := range p.fields {
		if f.Offset == off {
			return f, true
		}
	}
	return FieldDef{}, false
}

// MinSize returns the smallest buffer length in which every field decodes.
func (p Profile) MinSize() int {
	n := 0
	for _, f := range p.fields {
		if e := f.End(); e > n {
			n = e
		}
	}
	return n
}

func (p Profile) String() string { return p.label }
