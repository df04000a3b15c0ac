package profile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vuuvv/errors"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Detect describes how a user-supplied profile is recognised.
type Detect struct {
	// PathHints match when the lower-cased path contains any hint.
	PathHints []string `yaml:"path_hints"`
	// PathSegments match a whole directory name, case-insensitively. The file
	// name itself is never compared.
	PathSegments []string `yaml:"path_segments"`
	// Check is a CEL expression over fields.<Name>, decoded with this profile.
	Check string `yaml:"check"`
}

// IsZero reports whether d has no rules.
func (d Detect) IsZero() bool {
	return len(d.PathHints) == 0 && len(d.PathSegments) == 0 && d.Check == ""
}

// Spec is a profile loaded from YAML together with its detection rules.
type Spec struct {
	Profile types.Profile
	Detect  Detect
	Source  string
}

type yamlDoc struct {
	Key    string      `yaml:"key"`
	Label  string      `yaml:"label"`
	Detect Detect      `yaml:"detect"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name    string           `yaml:"name"`
	Section string           `yaml:"section"`
	Offset  yamlOffset       `yaml:"offset"`
	Type    string           `yaml:"type"`
	Note    string           `yaml:"note"`
	Enum    map[int64]string `yaml:"enum"`
	Bits    []yamlBit        `yaml:"bits"`
}

type yamlBit struct {
	Mask  yamlOffset `yaml:"mask"`
	Label string     `yaml:"label"`
}

// yamlOffset accepts YAML integers (decimal or 0x) and bare hex strings such as "A4".
type yamlOffset int

func (o *yamlOffset) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: offset must be a scalar", n.Line)
	}
	if n.Tag == "!!int" {
		v, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
		if err != nil {
			return errors.Wrapf(err, "line %d: bad offset %q", n.Line, n.Value)
		}
		*o = yamlOffset(v)
		return nil
	}
	v, err := codec.ParseOffset(n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d: bad offset %q", n.Line, n.Value)
	}
	*o = yamlOffset(v)
	return nil
}

// Load decodes every YAML document in data into a Spec.
func Load(data []byte) ([]Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var specs []Spec
	for {
		var doc yamlDoc
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		spec, err := doc.build()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, errors.New("no profile documents found")
	}
	return specs, nil
}

// LoadFile reads a YAML profile file.
func LoadFile(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	specs, err := Load(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load profile %s", path)
	}
	for i := range specs {
		specs[i].Source = path
	}
	return specs, nil
}

// LoadDir loads every *.yaml and *.yml file in dir, in name order. A missing
// directory yields no specs.
func LoadDir(dir string) ([]Spec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []Spec
	for _, name := range names {
		specs, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, specs...)
	}
	return out, nil
}

func (d yamlDoc) build() (Spec, error) {
	defs := make([]types.FieldDef, 0, len(d.Fields))
	for _, f := range d.Fields {
		kind, err := types.ParseScalarKind(f.Type)
		if err != nil {
			return Spec{}, errors.Wrapf(err, "profile %s field %s", d.Key, f.Name)
		}
		def := types.FieldDef{
			Name:    f.Name,
			Section: strings.ToUpper(f.Section),
			Offset:  int(f.Offset),
			Kind:    kind,
			Note:    f.Note,
		}
		if len(f.Enum) > 0 {
			def.Enum = types.Enumeration(f.Enum)
		}
		for _, b := range f.Bits {
			def.Bits = append(def.Bits, types.Bit{Mask: uint32(b.Mask), Label: b.Label})
		}
		defs = append(defs, def)
	}
	p, err := types.NewProfile(d.Key, d.Label, defs)
	if err != nil {
		return Spec{}, errors.WithStack(err)
	}
	return Spec{Profile: p, Detect: d.Detect}, nil
}
