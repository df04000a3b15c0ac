package types

import (
	"fmt"
	"strings"
)

// ScalarKind enumerates the fixed primitive encodings an MRDF field can use.
// All multi-byte kinds are little-endian.
type ScalarKind uint8

const (
	KindInvalid ScalarKind = iota
	KindFloat32            // IEEE-754 single precision
	KindInt32              // two's complement
	KindUint32             // unsigned
	KindBool32             // uint32 slot holding 0 or 1
	KindUint8              // single byte
)

var scalarNames = map[ScalarKind]string{
	KindFloat32: "float32",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindBool32:  "bool32",
	KindUint8:   "uint8",
}

// ScalarKinds lists every valid kind in declaration order.
func ScalarKinds() []ScalarKind {
	return []ScalarKind{KindFloat32, KindInt32, KindUint32, KindBool32, KindUint8}
}

func (k ScalarKind) String() string {
	if s, ok := scalarNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ScalarKind(%d)", uint8(k))
}

// Width returns the number of bytes the kind occupies, or 0 for an invalid kind.
func (k ScalarKind) Width() int {
	switch k {
	case KindFloat32, KindInt32, KindUint32, KindBool32:
		return 4
	case KindUint8:
		return 1
	default:
		return 0
	}
}

// Valid reports whether k is one of the supported kinds.
func (k ScalarKind) Valid() bool { return k.Width() > 0 }

// IsInteger reports whether values of k are carried as integers.
func (k ScalarKind) IsInteger() bool { return k.Valid() && k != KindFloat32 }

// ParseScalarKind maps a kind name to its ScalarKind. "float" is accepted as an
// alias for float32, and "u8"/"u32"/"i32"/"bool" as shorthands.
func ParseScalarKind(s string) (ScalarKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float32", "float", "f32":
		return KindFloat32, nil
	case "int32", "i32", "s32":
		return KindInt32, nil
	case "uint32", "u32":
		return KindUint32, nil
	case "bool32", "bool":
		return KindBool32, nil
	case "uint8", "u8", "byte":
		return KindUint8, nil
	}
	return KindInvalid, &Error{Kind: ErrKindConfig, Msg: fmt.Sprintf("unknown scalar kind %q", s)}
}
