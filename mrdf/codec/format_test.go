package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

func TestFormatValue(t *testing.T) {
	tyres := types.FieldDef{
		Name: "TyreAvailability", Kind: types.KindUint32,
		Bits: []types.Bit{{Mask: 0x01, Label: "Slick"}, {Mask: 0x04, Label: "Wet"}},
	}
	drive := types.FieldDef{
		Name: "Drivetrain", Kind: types.KindUint32,
		Enum: types.Enumeration{0: "RWD", 1: "FWD", 2: "AWD"},
	}
	plain := types.FieldDef{Name: "Mass", Kind: types.KindFloat32}

	tests := []struct {
		name string
		def  types.FieldDef
		v    types.Value
		want string
	}{
		{"bitmask", tyres, types.IntValue(types.KindUint32, 5), "0x05 (Slick, Wet)"},
		{"bitmask none", tyres, types.IntValue(types.KindUint32, 0), "0x00 (None)"},
		{"bitmask low byte", tyres, types.IntValue(types.KindUint32, 0x104), "0x04 (Wet)"},
		{"enum", drive, types.IntValue(types.KindUint32, 2), "2 (AWD)"},
		{"enum unknown", drive, types.IntValue(types.KindUint32, 7), "7 (Unknown)"},
		{"float", plain, types.FloatValue(1234.5678), "1234.57"},
		{"float small", plain, types.FloatValue(0.5), "0.5"},
		{"int", types.FieldDef{Kind: types.KindInt32}, types.IntValue(types.KindInt32, -3), "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.def, tt.v))
		})
	}
}

func TestFormatRawAndEditable(t *testing.T) {
	assert.Equal(t, "DE AD BE EF", FormatRaw([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
	assert.Equal(t, "", FormatRaw(nil))
	assert.Equal(t, "120.5", FormatEditable(types.FloatValue(120.5)))
	assert.Equal(t, "42", FormatEditable(types.IntValue(types.KindUint8, 42)))
}
