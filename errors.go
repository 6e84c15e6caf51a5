package textlocale

import (
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this module match one of these with
// errors.Is, and carry details which may be extracted with errors.As.
var (
	ErrMalformedText        = errors.New("malformed text")
	ErrUnknownLocale        = errors.New("unknown locale")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// MalformedTextError flags input which is not a well-formed sequence of
// Unicode code-points. Offset is the byte offset of the first offending
// sequence, or the rune index if the input has been given as a rune slice.
type MalformedTextError struct {
	Offset int
	Reason string
}

func (e *MalformedTextError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed text at offset %d", e.Offset)
	}
	return fmt.Sprintf("malformed text at offset %d: %s", e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedText.
func (e *MalformedTextError) Is(target error) bool {
	return target == ErrMalformedText
}

// UnknownLocaleError flags a locale identifier which does not resolve to a
// known rule set.
type UnknownLocaleError struct {
	Locale string
	Err    error // underlying parse error, if any
}

func (e *UnknownLocaleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown locale %q: %v", e.Locale, e.Err)
	}
	return fmt.Sprintf("unknown locale %q", e.Locale)
}

// Is reports whether target is ErrUnknownLocale.
func (e *UnknownLocaleError) Is(target error) bool {
	return target == ErrUnknownLocale
}

func (e *UnknownLocaleError) Unwrap() error {
	return e.Err
}

// UnsupportedOperationError flags an operation which is not defined for a
// locale, e.g. title-casing for a script without case distinction.
type UnsupportedOperationError struct {
	Op     string
	Locale string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %s not supported for locale %q", e.Op, e.Locale)
}

// Is reports whether target is ErrUnsupportedOperation.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}
