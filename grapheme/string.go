package grapheme

import (
	"fmt"
	"math"

	"github.com/npillmayer/textlocale"
	"github.com/rivo/uniseg"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
}

// StringFromString creates a grapheme string from a Go string. If s is not
// well-formed UTF-8, a *textlocale.MalformedTextError is returned.
//
// Short strings (the common case) are stored with compact break tables.
func StringFromString(s string) (String, error) {
	if err := textlocale.Validate(s); err != nil {
		return nil, err
	}
	if len(s) < math.MaxUint8 {
		return makeShortString(s), nil
	} else if len(s) < math.MaxUint16 {
		return makeMidString(s), nil
	}
	return makeLongString(s), nil
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
func StringFromBytes(b []byte) (String, error) {
	return StringFromString(string(b))
}

// breakpoints calls emit with the end position of every grapheme of s.
func breakpoints(s string, emit func(int)) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		emit(to)
	}
}

// --- Short version ---------------------------------------------------------

type shortString struct {
	content string
	breaks  []uint8
}

func makeShortString(s string) String {
	gstr := &shortString{content: s}
	if s == "" {
		return gstr
	}
	gstr.breaks = make([]uint8, 1, len(s)/2+2)
	breakpoints(s, func(pos int) {
		gstr.breaks = append(gstr.breaks, uint8(pos))
	})
	return gstr
}

func (gstr *shortString) Nth(n int) string {
	checkIndex(n, gstr.Len())
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *shortString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// --- Mid version -----------------------------------------------------------

type midString struct {
	content string
	breaks  []uint16
}

func makeMidString(s string) String {
	gstr := &midString{content: s}
	gstr.breaks = make([]uint16, 1, len(s)/4)
	breakpoints(s, func(pos int) {
		gstr.breaks = append(gstr.breaks, uint16(pos))
	})
	return gstr
}

func (gstr *midString) Nth(n int) string {
	checkIndex(n, gstr.Len())
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *midString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// --- Long version ----------------------------------------------------------

type longString struct {
	content string
	breaks  []int
}

func makeLongString(s string) String {
	tracer().Debugf("creating grapheme string from %d bytes", len(s))
	gstr := &longString{content: s}
	gstr.breaks = make([]int, 1, len(s)/4)
	breakpoints(s, func(pos int) {
		gstr.breaks = append(gstr.breaks, pos)
	})
	return gstr
}

func (gstr *longString) Nth(n int) string {
	checkIndex(n, gstr.Len())
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *longString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// ---------------------------------------------------------------------------

func checkIndex(n, l int) {
	if n < 0 || n >= l {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]", n, l))
	}
}
