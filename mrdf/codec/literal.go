package codec

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/joshuapare/mrdfkit/pkg/types"
)

var errEmpty = errors.New("empty literal")

// ParseLiteral converts user text into a Value of kind. Floats use the usual
// decimal or exponent forms. Integer kinds accept decimal or 0x-prefixed hex
// with an optional sign; bool32 also accepts true and false.
func ParseLiteral(kind types.ScalarKind, s string) (types.Value, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return types.Value{}, types.ParseErr(kind, s, errEmpty)
	}
	switch kind {
	case types.KindFloat32:
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return types.Value{}, types.ParseErr(kind, s, unwrapNum(err))
		}
		return types.FloatValue(f), nil
	case types.KindBool32:
		switch strings.ToLower(lit) {
		case "true", "yes", "on":
			return types.BoolValue(true), nil
		case "false", "no", "off":
			return types.BoolValue(false), nil
		}
		fallthrough
	case types.KindInt32, types.KindUint32, types.KindUint8:
		i, err := parseInt(lit)
		if err != nil {
			return types.Value{}, types.ParseErr(kind, s, err)
		}
		return types.IntValue(kind, i), nil
	}
	return types.Value{}, types.ParseErr(kind, s, fmt.Errorf("unsupported kind %s", kind))
}

var wrap64 = new(big.Int).Lsh(big.NewInt(1), 64)

// parseInt parses a signed decimal or 0x literal. Values of any magnitude are
// accepted and wrapped modulo 2^64; encoding then masks to the field width.
func parseInt(lit string) (int64, error) {
	neg := false
	switch {
	case strings.HasPrefix(lit, "-"):
		neg, lit = true, lit[1:]
	case strings.HasPrefix(lit, "+"):
		lit = lit[1:]
	}
	base := 10
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		base, lit = 16, lit[2:]
	}
	if lit == "" || strings.HasPrefix(lit, "-") || strings.HasPrefix(lit, "+") {
		return 0, errors.New("missing digits")
	}
	n, ok := new(big.Int).SetString(lit, base)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	if neg {
		n.Neg(n)
	}
	return int64(n.Mod(n, wrap64).Uint64()), nil
}

func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

// ParseFieldLiteral parses s for def. Enumerated fields additionally accept
// "N (Label)" and a bare label matched case-insensitively.
func ParseFieldLiteral(def types.FieldDef, s string) (types.Value, error) {
	if !def.IsEnum() {
		return ParseLiteral(def.Kind, s)
	}
	lit := strings.TrimSpace(s)
	if i := strings.IndexByte(lit, '('); i > 0 && strings.HasSuffix(lit, ")") {
		if v, err := ParseLiteral(def.Kind, lit[:i]); err == nil {
			return v, nil
		}
	}
	if v, err := ParseLiteral(def.Kind, lit); err == nil {
		return v, nil
	}
	if n, ok := def.Enum.Lookup(lit); ok {
		return types.IntValue(def.Kind, n), nil
	}
	return types.Value{}, types.ParseErr(def.Kind, s, fmt.Errorf("not a value or label of %s", def.Name))
}

// Coerce converts a loosely typed value, such as one decoded from YAML, into a
// Value of kind. Strings go through ParseLiteral.
func Coerce(kind types.ScalarKind, x any) (types.Value, error) {
	if s, ok := x.(string); ok {
		return ParseLiteral(kind, s)
	}
	switch kind {
	case types.KindFloat32:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return types.Value{}, types.ParseErr(kind, fmt.Sprint(x), err)
		}
		return types.FloatValue(f), nil
	case types.KindBool32:
		if b, ok := x.(bool); ok {
			return types.BoolValue(b), nil
		}
		fallthrough
	case types.KindInt32, types.KindUint32, types.KindUint8:
		switch f := x.(type) {
		case float64:
			return types.IntValue(kind, types.TruncInt64(f)), nil
		case float32:
			return types.IntValue(kind, types.TruncInt64(float64(f))), nil
		}
		i, err := cast.ToInt64E(x)
		if err != nil {
			return types.Value{}, types.ParseErr(kind, fmt.Sprint(x), err)
		}
		return types.IntValue(kind, i), nil
	}
	return types.Value{}, types.ParseErr(kind, fmt.Sprint(x), fmt.Errorf("unsupported kind %s", kind))
}

// ParseHexBytes parses whitespace or comma separated hex tokens such as
// "DE AD BE EF". Each token is one or two hex digits. An empty string yields
// no bytes.
func ParseHexBytes(s string) ([]byte, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	out := make([]byte, 0, len(fields))
	for _, tok := range fields {
		if len(tok) > 2 {
			return nil, hexErr(s, fmt.Errorf("token %q is longer than one byte", tok))
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, hexErr(s, fmt.Errorf("token %q: %w", tok, unwrapNum(err)))
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func hexErr(lit string, cause error) error {
	return &types.Error{
		Kind: types.ErrKindParse,
		Msg:  fmt.Sprintf("cannot parse %q as hex bytes (expected e.g. 'DE AD BE EF')", lit),
		Err:  cause,
	}
}

// ParseOffset parses a byte offset. Offsets are always hexadecimal; the 0x
// prefix is optional, so "A4" and "0xA4" are the same offset.
func ParseOffset(s string) (int, error) {
	lit := strings.TrimSpace(s)
	lit = strings.TrimPrefix(strings.TrimPrefix(lit, "0x"), "0X")
	if lit == "" {
		return 0, &types.Error{Kind: types.ErrKindParse, Msg: fmt.Sprintf("cannot parse %q as offset", s), Err: errEmpty}
	}
	v, err := strconv.ParseUint(lit, 16, 31)
	if err != nil {
		return 0, &types.Error{Kind: types.ErrKindParse, Msg: fmt.Sprintf("cannot parse %q as offset", s), Err: unwrapNum(err)}
	}
	return int(v), nil
}
