package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOutOfBounds    ErrKind = iota + 1 // offset/length exceeds the buffer
	ErrKindParse                             // literal cannot be converted to the target kind
	ErrKindLengthMismatch                    // raw overwrite byte count differs from the range
	ErrKindNotFound                          // unknown field or profile
	ErrKindState                             // invalid operation for current state (e.g., nothing open)
	ErrKindConfig                            // malformed profile table or configuration
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOutOfBounds:
		return "out of bounds"
	case ErrKindParse:
		return "parse error"
	case ErrKindLengthMismatch:
		return "length mismatch"
	case ErrKindNotFound:
		return "not found"
	case ErrKindState:
		return "invalid state"
	case ErrKindConfig:
		return "invalid configuration"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrOutOfBounds)
// holds for every bounds failure regardless of its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons.
var (
	// ErrOutOfBounds indicates a read, write or revert beyond the buffer.
	ErrOutOfBounds = &Error{Kind: ErrKindOutOfBounds, Msg: "out of bounds"}
	// ErrParse indicates a user literal that does not fit the field's scalar kind.
	ErrParse = &Error{Kind: ErrKindParse, Msg: "cannot parse value"}
	// ErrLengthMismatch indicates a raw overwrite whose byte count differs from the target range.
	ErrLengthMismatch = &Error{Kind: ErrKindLengthMismatch, Msg: "byte count mismatch"}
	// ErrNotFound indicates an unknown field or profile name.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrNoFile indicates an operation that needs an open buffer.
	ErrNoFile = &Error{Kind: ErrKindState, Msg: "no file open"}
	// ErrSizeChanged indicates the working buffer no longer matches the size at open.
	ErrSizeChanged = &Error{Kind: ErrKindState, Msg: "buffer size changed"}
	// ErrInvalidProfile indicates a malformed field table.
	ErrInvalidProfile = &Error{Kind: ErrKindConfig, Msg: "invalid profile"}
)

// OutOfBounds builds a bounds error for an access of n bytes at off in a buffer of size.
func OutOfBounds(off, n, size int) error {
	return &Error{
		Kind: ErrKindOutOfBounds,
		Msg:  fmt.Sprintf("out of bounds access at %#x (%d bytes, buffer is %d bytes)", off, n, size),
	}
}

// ParseErr builds a parse error for literal lit targeting kind.
func ParseErr(kind ScalarKind, lit string, cause error) error {
	return &Error{
		Kind: ErrKindParse,
		Msg:  fmt.Sprintf("cannot parse %q as %s", lit, kind),
		Err:  cause,
	}
}

// LengthMismatch builds the error returned when a raw overwrite supplies got bytes for a want-byte range.
func LengthMismatch(want, got int) error {
	return &Error{
		Kind: ErrKindLengthMismatch,
		Msg:  fmt.Sprintf("byte count mismatch: target is %d bytes but %d were provided", want, got),
	}
}

// NotFound builds a not-found error for the named thing.
func NotFound(what, name string) error {
	return &Error{Kind: ErrKindNotFound, Msg: fmt.Sprintf("%s %q not found", what, name)}
}

// KindOf returns the ErrKind carried by err, or zero when err is not typed.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
