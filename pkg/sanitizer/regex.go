package sanitizer

import "regexp"

var (
	dotRegex        = regexp.MustCompile(`\.+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
