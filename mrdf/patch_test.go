package mrdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/profile"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

func TestApplyPatch(t *testing.T) {
	s := newSession(t)
	s.Load("", statsBlob(t))

	p := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
fields:
  TopSpeed_mps: 90.5
  NumGears: 6
  EngineType: "V10"
  ABS: true
bytes:
  - {offset: "C0", hex: "01 00"}
`), 0o644))

	patch, err := LoadPatch(p)
	require.NoError(t, err)
	n, err := s.ApplyPatch(patch)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	w := s.Buffer().View()
	v, _, _ := codec.Decode(w, 0x20, types.KindFloat32)
	require.Equal(t, float32(90.5), v.F)
	v, _, _ = codec.Decode(w, 0x40, types.KindUint32)
	require.Equal(t, int64(6), v.I)
	v, _, _ = codec.Decode(w, 0x64, types.KindUint32)
	require.Equal(t, int64(3), v.I)
	v, _, _ = codec.Decode(w, 0x8C, types.KindBool32)
	require.Equal(t, int64(1), v.I)
	require.Equal(t, byte(1), w[0xC0])
}

func TestApplyPatch_InvalidWritesNothing(t *testing.T) {
	tests := map[string]*Patch{
		"unknown field":   {Fields: map[string]any{"TopSpeed_mps": 1.0, "Nope": 1}},
		"bad value":       {Fields: map[string]any{"TopSpeed_mps": 1.0, "NumGears": "six"}},
		"bad hex":         {Fields: map[string]any{"TopSpeed_mps": 1.0}, Bytes: []BytePatch{{Offset: "0", Hex: "XYZ"}}},
		"out of range":    {Fields: map[string]any{"TopSpeed_mps": 1.0}, Bytes: []BytePatch{{Offset: "1FF", Hex: "01 02"}}},
		"unknown profile": {Profile: "nope", Fields: map[string]any{"TopSpeed_mps": 1.0}},
	}
	for name, p := range tests {
		t.Run(name, func(t *testing.T) {
			s := newSession(t)
			orig := statsBlob(t)
			s.Load("", orig)
			_, err := s.ApplyPatch(p)
			require.Error(t, err)
			require.Equal(t, orig, s.Buffer().Working())
			require.Equal(t, profile.StatsKey, s.Profile().Key())
		})
	}
}

func TestApplyPatch_SwitchesProfile(t *testing.T) {
	s := newSession(t)
	s.Load("", statsBlob(t))
	n, err := s.ApplyPatch(&Patch{Profile: profile.PhysicsKey, Fields: map[string]any{"PhysicsTickRate": 360}})
	require.ErrorIs(t, err, types.ErrOutOfBounds, "0x380 is beyond a 0x200 buffer")
	require.Zero(t, n)

	s.Load("", physicsBlob(t))
	require.NoError(t, s.SetProfile(profile.StatsKey))
	n, err = s.ApplyPatch(&Patch{Profile: profile.PhysicsKey, Fields: map[string]any{"PhysicsTickRate": "360 Hz"}})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, profile.PhysicsKey, s.Profile().Key())
	f, err := s.Field("PhysicsTickRate")
	require.NoError(t, err)
	require.Equal(t, int64(360), f.Value.I)
}

func TestDiffFields(t *testing.T) {
	a := statsBlob(t)
	b := statsBlob(t)
	_, err := codec.Encode(b, 0x20, types.KindFloat32, types.FloatValue(50))
	require.NoError(t, err)
	b[0x10] = 0xFF
	b[0x11] = 0xFF

	diffs := DiffFields(a, b, profile.Stats)
	require.Len(t, diffs, 1)
	require.Equal(t, "TopSpeed_mps", diffs[0].Def.Name)
	require.Equal(t, float32(50), diffs[0].B.Value.F)

	require.Equal(t, [][2]int{{0x10, 2}}, UnmappedDiff(a, b, profile.Stats))

	short := a[:0x84]
	diffs = DiffFields(a, short, profile.Stats)
	require.NotEmpty(t, diffs)
	for _, d := range diffs {
		require.Nil(t, d.B)
		require.NotNil(t, d.A)
	}
}
