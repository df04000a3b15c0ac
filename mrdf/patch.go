package mrdf

import (
	"os"
	"sort"

	"github.com/vuuvv/errors"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/mrdfkit/internal/buf"
	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/edit"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Patch is a batch of edits for one file, usually read from YAML:
//
//	profile: stats
//	fields:
//	  TopSpeed_mps: 90.5
//	  EngineType: V8
//	bytes:
//	  - {offset: "A4", hex: "01 00 00 00"}
type Patch struct {
	Profile string         `yaml:"profile"`
	Fields  map[string]any `yaml:"fields"`
	Bytes   []BytePatch    `yaml:"bytes"`
}

// BytePatch overwrites len(Hex bytes) bytes at a hex Offset.
type BytePatch struct {
	Offset string `yaml:"offset"`
	Hex    string `yaml:"hex"`
}

// LoadPatch reads a YAML patch document.
func LoadPatch(path string) (*Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var p Patch
	if err := yaml.NewDecoder(f).Decode(&p); err != nil {
		return nil, errors.Wrapf(err, "parse patch %s", path)
	}
	return &p, nil
}

type plannedField struct {
	def types.FieldDef
	v   types.Value
}

type plannedBytes struct {
	off  int
	data []byte
}

// ApplyPatch validates every entry of p and then applies them: the profile
// switch first, then field values in name order, then byte overwrites. Nothing
// is written if any entry is invalid. It returns the number of edits applied.
func (s *Session) ApplyPatch(p *Patch) (int, error) {
	if s.buf == nil {
		return 0, types.ErrNoFile
	}
	target := s.profile
	if p.Profile != "" {
		t, ok := s.reg.Lookup(p.Profile)
		if !ok {
			return 0, types.NotFound("profile", p.Profile)
		}
		target = t
	}

	names := make([]string, 0, len(p.Fields))
	for name := range p.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]plannedField, 0, len(names))
	for _, name := range names {
		d, ok := target.Field(name)
		if !ok {
			return 0, types.NotFound("field", name)
		}
		v, err := patchValue(d, p.Fields[name])
		if err != nil {
			return 0, err
		}
		if !buf.InRange(s.buf.Len(), d.Offset, d.Width()) {
			return 0, types.OutOfBounds(d.Offset, d.Width(), s.buf.Len())
		}
		fields = append(fields, plannedField{def: d, v: v})
	}

	raws := make([]plannedBytes, 0, len(p.Bytes))
	for _, bp := range p.Bytes {
		off, err := codec.ParseOffset(bp.Offset)
		if err != nil {
			return 0, err
		}
		data, err := codec.ParseHexBytes(bp.Hex)
		if err != nil {
			return 0, err
		}
		if !buf.InRange(s.buf.Len(), off, len(data)) {
			return 0, types.OutOfBounds(off, len(data), s.buf.Len())
		}
		raws = append(raws, plannedBytes{off: off, data: data})
	}

	if target.Key() != s.profile.Key() {
		if err := s.SetProfile(target.Key()); err != nil {
			return 0, err
		}
	}
	n := 0
	for _, f := range fields {
		if err := s.ApplyValue(f.def.Name, f.v); err != nil {
			return n, err
		}
		n++
	}
	for _, r := range raws {
		err := s.mutate("overwrite", []any{"offset", r.off, "length", len(r.data)}, func(b *edit.Buffer) error {
			return b.OverwriteRange(r.off, len(r.data), r.data)
		})
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func patchValue(d types.FieldDef, x any) (types.Value, error) {
	if s, ok := x.(string); ok {
		return codec.ParseFieldLiteral(d, s)
	}
	return codec.Coerce(d.Kind, x)
}
