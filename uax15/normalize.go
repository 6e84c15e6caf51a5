package uax15

import (
	"fmt"

	"github.com/npillmayer/textlocale"
	"golang.org/x/text/unicode/norm"
)

// Normalized is a text in canonical normalization form. Values of this type
// are produced by the functions of this package only.
type Normalized string

func (n Normalized) String() string {
	return string(n)
}

// Form is one of the four Unicode normalization forms.
type Form int8

// Normalization forms as defined in UAX#15.
const (
	NFC  Form = iota // canonical decomposition, followed by canonical composition
	NFD              // canonical decomposition
	NFKC             // compatibility decomposition, followed by canonical composition
	NFKD             // compatibility decomposition
)

func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f Form) norm() (norm.Form, bool) {
	switch f {
	case NFC:
		return norm.NFC, true
	case NFD:
		return norm.NFD, true
	case NFKC:
		return norm.NFKC, true
	case NFKD:
		return norm.NFKD, true
	}
	return norm.NFC, false
}

// Normalize converts text to its canonical representative (NFC).
// Texts which are canonically equivalent produce identical results, and
//
//	Normalize(Normalize(x)) == Normalize(x)
//
// holds for every well-formed x.
//
// Normalize returns a *textlocale.MalformedTextError if text is not
// well-formed UTF-8. It never fails for valid code-points, however unusual.
func Normalize(text string) (Normalized, error) {
	if err := textlocale.Validate(text); err != nil {
		return "", err
	}
	return Normalized(norm.NFC.String(text)), nil
}

// NormalizeTo converts text to the normalization form f.
// Compatibility forms NFKC and NFKD are lossy (e.g., “ﬁ” becomes “fi”) and are
// not used for comparisons within this module.
func NormalizeTo(text string, f Form) (string, error) {
	nf, ok := f.norm()
	if !ok {
		return "", fmt.Errorf("uax15: unknown normalization form %v", f)
	}
	if err := textlocale.Validate(text); err != nil {
		return "", err
	}
	return nf.String(text), nil
}

// IsNormalized reports whether text already is in canonical form (NFC).
func IsNormalized(text string) (bool, error) {
	if err := textlocale.Validate(text); err != nil {
		return false, err
	}
	return norm.NFC.IsNormalString(text), nil
}

// Equivalent reports whether a and b are canonically equivalent, i.e. whether
// they are different encodings of the same text.
func Equivalent(a, b string) (bool, error) {
	na, err := Normalize(a)
	if err != nil {
		return false, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return false, err
	}
	return na == nb, nil
}
