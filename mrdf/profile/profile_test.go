package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

func TestBuiltinTables(t *testing.T) {
	require.Equal(t, "Statistics MRDF", Stats.Label())
	require.Equal(t, "Physics Tweaker MRDF", Physics.Label())

	wb, ok := Stats.Field("Wheelbase_m")
	require.True(t, ok)
	require.Equal(t, 0x84, wb.Offset)
	require.Equal(t, types.KindFloat32, wb.Kind)

	tyres, ok := Stats.FieldAt(0xBC)
	require.True(t, ok)
	require.True(t, tyres.IsBitmask())
	require.Len(t, tyres.Bits, 7)

	eng, ok := Stats.Field("EngineType")
	require.True(t, ok)
	require.Equal(t, "V8", eng.Enum.Label(2))

	tick, ok := Physics.Field("PhysicsTickRate")
	require.True(t, ok)
	require.Equal(t, "360 Hz", tick.Enum.Label(360))

	require.Equal(t, 0xC8, Stats.MinSize())
	require.Equal(t, 0x3DC, Physics.MinSize())
}

func TestBuiltinTables_NoOverlaps(t *testing.T) {
	for _, p := range []types.Profile{Stats, Physics} {
		fields := p.Fields()
		for i := range fields {
			for j := i + 1; j < len(fields); j++ {
				require.False(t, fields[i].Overlaps(fields[j].Offset, fields[j].Width()),
					"%s: %s overlaps %s", p.Key(), fields[i].Name, fields[j].Name)
			}
		}
	}
}

func TestRegistry(t *testing.T) {
	r := Builtin()
	require.Equal(t, 2, r.Len())
	require.Equal(t, StatsKey, r.Default().Key())

	p, ok := r.Lookup(PhysicsKey)
	require.True(t, ok)
	require.Equal(t, PhysicsKey, p.Key())

	_, ok = r.Lookup("nope")
	require.False(t, ok)
	require.Equal(t, StatsKey, r.Resolve("nope").Key())

	p, ok = r.ByLabel("Physics Tweaker MRDF")
	require.True(t, ok)
	require.Equal(t, PhysicsKey, p.Key())

	require.Equal(t, PhysicsKey, r.Next(StatsKey).Key())
	require.Equal(t, StatsKey, r.Next(PhysicsKey).Key())

	err := r.Register(Stats)
	require.ErrorIs(t, err, types.ErrInvalidProfile)

	all := r.All()
	all[0] = Physics
	require.Equal(t, StatsKey, r.Default().Key(), "All must return a copy")
}

func TestRegistry_Empty(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.True(t, r.Default().IsZero())
	require.True(t, r.Resolve("x").IsZero())
	require.True(t, r.Next("x").IsZero())
}

const customYAML = `
key: garage
label: Garage Table
detect:
  path_hints: [garage]
  path_segments: [tuning]
  check: "fields.Ratio > 0.5"
fields:
  - name: Ratio
    section: gearing
    offset: 16
    type: float
    note: final drive
  - name: Mode
    section: gearing
    offset: "1C"
    type: uint32
    enum:
      0: Road
      1: Track
  - name: Flags
    section: misc
    offset: 32
    type: uint8
    bits:
      - {mask: 1, label: A}
      - {mask: 2, label: B}
---
key: tiny
fields:
  - name: Only
    offset: 0
    type: u8
`

func TestLoad(t *testing.T) {
	specs, err := Load([]byte(customYAML))
	require.NoError(t, err)
	require.Len(t, specs, 2)

	g := specs[0]
	require.Equal(t, "garage", g.Profile.Key())
	require.Equal(t, "Garage Table", g.Profile.Label())
	require.Equal(t, []string{"garage"}, g.Detect.PathHints)
	require.Equal(t, []string{"tuning"}, g.Detect.PathSegments)
	require.Equal(t, "fields.Ratio > 0.5", g.Detect.Check)

	ratio, ok := g.Profile.Field("Ratio")
	require.True(t, ok)
	require.Equal(t, 16, ratio.Offset)
	require.Equal(t, "GEARING", ratio.Section)
	require.Equal(t, types.KindFloat32, ratio.Kind)

	mode, ok := g.Profile.Field("Mode")
	require.True(t, ok)
	require.Equal(t, 0x1C, mode.Offset)
	require.Equal(t, "Track", mode.Enum.Label(1))

	flags, ok := g.Profile.Field("Flags")
	require.True(t, ok)
	require.Len(t, flags.Bits, 2)
	require.Equal(t, uint32(2), flags.Bits[1].Mask)

	require.Equal(t, "tiny", specs[1].Profile.Label())
	require.True(t, specs[1].Detect.IsZero())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load([]byte("key: bad\nfields:\n  - {name: X, offset: 0, type: double}\n"))
	require.Error(t, err)

	_, err = Load([]byte("key: dup\nfields:\n  - {name: X, offset: 0, type: u8}\n  - {name: X, offset: 1, type: u8}\n"))
	require.Error(t, err)

	_, err = Load([]byte("key: off\nfields:\n  - {name: X, offset: zz, type: u8}\n"))
	require.Error(t, err)

	_, err = Load([]byte(""))
	require.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("key: b\nfields:\n  - {name: X, offset: 0, type: u8}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("key: a\nfields:\n  - {name: X, offset: 0, type: u8}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	specs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	require.Equal(t, "a", specs[0].Profile.Key())
	require.Equal(t, "b", specs[1].Profile.Key())
	require.Equal(t, filepath.Join(dir, "a.yaml"), specs[0].Source)

	specs, err = LoadDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Empty(t, specs)
}
