package sanitizer

import (
	"strings"
)

// NormalizeWhitespace collapses runs of whitespace into one space and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeEmail trims and lower-cases an address and collapses repeated dots
// in the local part. Input without exactly one "@" is returned trimmed and
// lower-cased only.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// MaskEmail hides the local part of an address except its first rune
// ("maria@otec.cl" -> "m****@otec.cl").
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	r := []rune(local)
	return string(r[0]) + strings.Repeat("*", len(r)-1) + "@" + domain
}

// NormalizePhone formats a Chilean phone number as "+56 9 1234 5678".
// Numbers that are neither 8 or 9 local digits nor prefixed with 56 are
// returned as digits only.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	digits = strings.TrimPrefix(digits, "00")
	if len(digits) == 11 && strings.HasPrefix(digits, "56") {
		digits = digits[2:]
	}
	if len(digits) == 8 {
		digits = "9" + digits
	}
	if len(digits) != 9 {
		return digits
	}
	return "+56 " + digits[:1] + " " + digits[1:5] + " " + digits[5:]
}
