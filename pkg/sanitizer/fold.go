package sanitizer

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep internal state, so each goroutine borrows its own.
var (
	lowerPool = sync.Pool{New: func() any { c := cases.Lower(language.Spanish); return &c }}
	titlePool = sync.Pool{New: func() any { c := cases.Title(language.Spanish); return &c }}
)

// FoldCase lower-cases s using Spanish casing rules ("ÁLVAREZ" -> "álvarez").
func FoldCase(s string) string {
	if isLowerASCII(s) {
		return s
	}
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	return c.String(s)
}

// TitleName title-cases a personal name after collapsing whitespace
// ("  maría  JOSÉ " -> "María José").
func TitleName(s string) string {
	s = NormalizeWhitespace(s)
	if s == "" {
		return s
	}
	c := titlePool.Get().(*cases.Caser)
	defer titlePool.Put(c)
	return c.String(s)
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
