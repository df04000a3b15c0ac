package edit

import (
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// ComposeBitmask ORs the masks of the checked bits. Masks not present in bits
// are ignored.
func ComposeBitmask(bits []types.Bit, checked []uint32) uint32 {
	var v uint32
	for _, c := range checked {
		for _, b := range bits {
			if b.Mask == c {
				v |= b.Mask
				break
			}
		}
	}
	return v
}

// CheckedBits returns the legend masks set in v.
func CheckedBits(def types.FieldDef, v types.Value) []uint32 {
	n := uint32(v.Int64())
	var out []uint32
	for _, b := range def.Bits {
		if n&b.Mask != 0 {
			out = append(out, b.Mask)
		}
	}
	return out
}

// ApplyBitmask composes the checked bits of def and applies the result.
func (b *Buffer) ApplyBitmask(def types.FieldDef, checked []uint32) error {
	if !def.IsBitmask() {
		return &types.Error{Kind: types.ErrKindParse, Msg: "field " + def.Name + " is not a bitmask"}
	}
	return b.ApplyField(def, types.IntValue(def.Kind, int64(ComposeBitmask(def.Bits, checked))))
}
