package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/profile"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

var testDefs = []types.FieldDef{
	{Name: "Zeta", Section: "B", Offset: 0x08, Kind: types.KindFloat32},
	{Name: "Alpha", Section: "A", Offset: 0x04, Kind: types.KindUint32},
	{Name: "Beta", Section: "A", Offset: 0x00, Kind: types.KindUint8},
	{Name: "Tail", Section: "A", Offset: 0x0E, Kind: types.KindUint32},
	{Name: "Gamma", Section: "B", Offset: 0x01, Kind: types.KindUint8},
}

func TestParse_OrderAndSkips(t *testing.T) {
	b := make([]byte, 0x10)
	b[0] = 7
	res := Parse(b, testDefs)

	require.Equal(t, 1, res.SkipCount())
	require.Equal(t, "Tail", res.Skipped[0].Def.Name)
	require.ErrorIs(t, res.Skipped[0].Err, types.ErrOutOfBounds)

	var names []string
	for _, f := range res.Fields {
		names = append(names, f.Def.Name)
		require.Len(t, f.Raw, f.Def.Width())
		require.Equal(t, f.Def.Kind, f.Value.Kind)
	}
	require.Equal(t, []string{"Beta", "Alpha", "Gamma", "Zeta"}, names)
	require.Equal(t, int64(7), res.Fields[0].Value.I)
}

func TestParse_Deterministic(t *testing.T) {
	b := make([]byte, 0x400)
	_, err := codec.Encode(b, 0x30, types.KindFloat32, types.FloatValue(600))
	require.NoError(t, err)

	first := Parse(b, profile.Physics.Fields())
	for i := 0; i < 5; i++ {
		again := Parse(b, profile.Physics.Fields())
		require.Equal(t, first, again)
	}
}

func TestParse_StatsOnShortBuffer(t *testing.T) {
	b := make([]byte, 0x88)
	res := Parse(b, profile.Stats.Fields())
	for _, s := range res.Skipped {
		require.GreaterOrEqual(t, s.Def.End(), 0x88)
	}
	_, ok := res.ByName("Wheelbase_m")
	require.True(t, ok)
	_, ok = res.ByName("RearWeightDistribution")
	require.False(t, ok)
}

func TestResult_FilterSectionsLookup(t *testing.T) {
	res := Parse(make([]byte, 0x10), testDefs)

	f := res.Filter("  a ")
	require.Len(t, f.Fields, 4, "section A and names containing 'a'")

	f = res.Filter("gam")
	require.Len(t, f.Fields, 1)
	require.Equal(t, "Gamma", f.Fields[0].Def.Name)

	require.Equal(t, res, res.Filter(""))

	secs := res.Sections()
	require.Len(t, secs, 2)
	require.Equal(t, "A", secs[0].Name)
	require.Len(t, secs[0].Fields, 2)
	require.Equal(t, "B", secs[1].Name)

	fi, ok := res.ByOffset(0x04)
	require.True(t, ok)
	require.Equal(t, "Alpha", fi.Def.Name)
	_, ok = res.ByOffset(0x05)
	require.False(t, ok)

	fi, ok = res.Covering(0x0A)
	require.True(t, ok)
	require.Equal(t, "Zeta", fi.Def.Name)
	_, ok = res.Covering(0x0D)
	require.False(t, ok)
}
