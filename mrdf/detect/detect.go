// Package detect picks the profile that best fits an unknown MRDF buffer.
//
// Rules are tried in order and the first match wins:
//
//  1. physics path hints ("physicstweaker", a "physics" directory)
//  2. path hints from loaded profiles
//  3. physics brake-glow floats at 0x30..0x3C in plausible ranges
//  4. check expressions from loaded profiles
//  5. stats wheelbase float at 0x84 in (1, 6)
//  6. the registry's default profile
package detect

import (
	"github.com/joshuapare/mrdfkit/mrdf/profile"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// DefaultRule names the fallback in Explain output.
const DefaultRule = "default"

// Built-in rules.
var (
	PhysicsPath = PathRule{
		Profile:  profile.PhysicsKey,
		Hints:    []string{"physicstweaker"},
		Segments: []string{"physics"},
	}
	BrakeGlow = RangeRule{
		Label:   "brake-glow",
		Profile: profile.PhysicsKey,
		Checks: []FloatCheck{
			{Offset: 0x30, Range: Open(100, 5000)},
			{Offset: 0x34, Range: Open(100, 10000)},
			{Offset: 0x38, Range: Closed(0, 10)},
			{Offset: 0x3C, Range: Closed(0, 10)},
		},
	}
	Wheelbase = RangeRule{
		Label:   "wheelbase",
		Profile: profile.StatsKey,
		Checks:  []FloatCheck{{Offset: 0x84, Range: Open(1, 6)}},
	}
)

// Detector runs an ordered rule list against a registry.
type Detector struct {
	reg   *profile.Registry
	rules []Rule
}

// Match is the outcome of Explain.
type Match struct {
	Profile types.Profile
	Rule    string
}

// New builds a detector over reg. Detection rules carried by specs are slotted
// in after the matching built-in stage.
func New(reg *profile.Registry, specs ...profile.Spec) (*Detector, error) {
	var paths, checks []Rule
	for _, s := range specs {
		key := s.Profile.Key()
		if len(s.Detect.PathHints) > 0 || len(s.Detect.PathSegments) > 0 {
			paths = append(paths, PathRule{Profile: key, Hints: s.Detect.PathHints, Segments: s.Detect.PathSegments})
		}
		if s.Detect.Check != "" {
			r, err := NewCheckRule(s.Profile, s.Detect.Check)
			if err != nil {
				return nil, err
			}
			checks = append(checks, r)
		}
	}

	rules := []Rule{PhysicsPath}
	rules = append(rules, paths...)
	rules = append(rules, BrakeGlow)
	rules = append(rules, checks...)
	rules = append(rules, Wheelbase)
	return &Detector{reg: reg, rules: rules}, nil
}

// Rules returns the rule list in evaluation order.
func (d *Detector) Rules() []Rule { return append([]Rule(nil), d.rules...) }

// Detect returns the profile for a buffer read from path. It never fails;
// an empty registry yields the zero Profile.
func (d *Detector) Detect(path string, b []byte) types.Profile {
	return d.Explain(path, b).Profile
}

// Explain is Detect plus the name of the rule that decided.
func (d *Detector) Explain(path string, b []byte) Match {
	for _, r := range d.rules {
		p, ok := d.reg.Lookup(r.Key())
		if !ok {
			continue
		}
		if r.Match(path, b) {
			return Match{Profile: p, Rule: r.Name()}
		}
	}
	return Match{Profile: d.reg.Default(), Rule: DefaultRule}
}

// Detect classifies b against the built-in profiles.
func Detect(path string, b []byte) types.Profile {
	d, _ := New(profile.Builtin())
	return d.Detect(path, b)
}
