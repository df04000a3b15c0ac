package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

// FormatValue renders v for display under def.
//
//	bitmask:    0x11 (Soft / Semi Slick, Wet)   or 0x00 (None)
//	enumerated: 2 (V8)                          or 9 (Unknown)
//	float32:    six significant digits
//	integers:   decimal
func FormatValue(def types.FieldDef, v types.Value) string {
	switch {
	case def.IsBitmask():
		mask := byte(v.Int64() & 0xFF)
		var labels []string
		for _, b := range def.Bits {
			if uint32(mask)&b.Mask != 0 {
				labels = append(labels, b.Label)
			}
		}
		if len(labels) == 0 {
			return fmt.Sprintf("0x%02X (None)", mask)
		}
		return fmt.Sprintf("0x%02X (%s)", mask, strings.Join(labels, ", "))
	case def.IsEnum():
		n := v.Int64()
		return fmt.Sprintf("%d (%s)", n, def.Enum.Label(n))
	case v.Kind == types.KindFloat32:
		return strconv.FormatFloat(v.Float64(), 'g', 6, 64)
	default:
		return strconv.FormatInt(v.Int64(), 10)
	}
}

// FormatEditable renders v the way an edit box should be seeded: floats keep
// full float32 precision and integers stay decimal.
func FormatEditable(v types.Value) string {
	if v.Kind == types.KindFloat32 {
		return strconv.FormatFloat(v.Float64(), 'g', -1, 32)
	}
	return strconv.FormatInt(v.Int64(), 10)
}

// FormatRaw renders bytes as space-separated upper-case hex pairs.
func FormatRaw(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw) * 3)
	for i, b := range raw {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
