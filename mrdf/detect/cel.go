package detect

import (
	"github.com/google/cel-go/cel"
	"github.com/vuuvv/errors"

	"github.com/joshuapare/mrdfkit/mrdf/record"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// CheckRule evaluates a boolean CEL expression over the fields of a buffer
// decoded with Layout. Floats are exposed as double, every other kind as int.
type CheckRule struct {
	Layout types.Profile
	Expr   string
	prg    cel.Program
}

// NewCheckRule compiles expr. The expression sees a single variable, fields,
// mapping field names to decoded values.
func NewCheckRule(layout types.Profile, expr string) (*CheckRule, error) {
	env, err := cel.NewEnv(
		cel.Variable("fields", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrapf(issues.Err(), "profile %s: check %q", layout.Key(), expr)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &CheckRule{Layout: layout, Expr: expr, prg: prg}, nil
}

func (r *CheckRule) Name() string { return "check:" + r.Layout.Key() }
func (r *CheckRule) Key() string  { return r.Layout.Key() }

func (r *CheckRule) Match(_ string, b []byte) bool {
	out, _, err := r.prg.Eval(map[string]any{"fields": Fields(b, r.Layout)})
	if err != nil {
		return false
	}
	ok, isBool := out.Value().(bool)
	return isBool && ok
}

// Fields decodes b with p into the map handed to check expressions. Fields
// that do not fit in b are absent.
func Fields(b []byte, p types.Profile) map[string]any {
	res := record.Parse(b, p.Fields())
	m := make(map[string]any, len(res.Fields))
	for _, f := range res.Fields {
		if f.Value.Kind == types.KindFloat32 {
			m[f.Def.Name] = f.Value.Float64()
		} else {
			m[f.Def.Name] = f.Value.Int64()
		}
	}
	return m
}
