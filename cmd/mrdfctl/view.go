package main

import (
	"fmt"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// fieldView is the JSON shape of a decoded field.
type fieldView struct {
	Name    string `json:"name"`
	Section string `json:"section"`
	Offset  string `json:"offset"`
	Type    string `json:"type"`
	Value   any    `json:"value"`
	Display string `json:"display"`
	Raw     string `json:"raw"`
	Note    string `json:"note,omitempty"`
	Pending bool   `json:"pending,omitempty"`
}

func newFieldView(f types.FieldInstance) fieldView {
	var v any = f.Value.Int64()
	if f.Value.Kind == types.KindFloat32 {
		v = f.Value.Float64()
	}
	return fieldView{
		Name:    f.Def.Name,
		Section: f.Def.Section,
		Offset:  hexOffset(f.Offset),
		Type:    f.Def.Kind.String(),
		Value:   v,
		Display: codec.FormatValue(f.Def, f.Value),
		Raw:     codec.FormatRaw(f.Raw),
		Note:    f.Def.Note,
	}
}

func hexOffset(off int) string {
	return fmt.Sprintf("0x%04X", off)
}
