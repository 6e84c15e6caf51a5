package textlocale

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// Validate checks that s is well-formed UTF-8. It returns a *MalformedTextError
// pointing to the first invalid byte sequence, or nil. Surrogate halves encoded
// as UTF-8 are invalid.
func Validate(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return &MalformedTextError{Offset: i, Reason: "invalid UTF-8 sequence"}
		}
		i += size
	}
	return nil // not reached for invalid input
}

// FromBytes creates a string from a byte slice holding UTF-8 encoded text.
// The input is validated and copied.
func FromBytes(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", Validate(string(b))
	}
	return string(b), nil
}

// FromRunes creates a string from a sequence of code-points. Surrogate
// code-points and values outside of the Unicode range are rejected with a
// *MalformedTextError, where Offset is the index into rs.
func FromRunes(rs []rune) (string, error) {
	for i, r := range rs {
		if !utf8.ValidRune(r) {
			return "", &MalformedTextError{
				Offset: i,
				Reason: fmt.Sprintf("invalid code-point %#x", r),
			}
		}
	}
	return string(rs), nil
}

// FromEncoding decodes text of a legacy or non-UTF-8 encoding, identified by
// its IANA charset name (e.g. "ISO-8859-1", "windows-1252", "UTF-16LE").
// Unknown charset names result in an error. If the decoded result is not
// well-formed, a *MalformedTextError is returned and no partial result.
func FromEncoding(b []byte, charset string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return "", fmt.Errorf("charset %q: %w", charset, err)
	}
	if enc == nil {
		return "", fmt.Errorf("charset %q is known but not supported", charset)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		CT().Errorf("decoding from %s failed: %v", charset, err)
		return "", &MalformedTextError{Reason: fmt.Sprintf("cannot decode %s: %v", charset, err)}
	}
	return FromBytes(out)
}
