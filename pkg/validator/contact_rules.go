package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// Chilean numbers: 9 digits after the optional +56 prefix, mobiles start with 9.
var phoneRegex = regexp.MustCompile(`^(\+?56)?[2-9]\d{8}$`)

var phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// ValidEmail validates an address with net/mail and additionally requires a
// dotted domain and no display name.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Error: fieldError(field, "validation.email", "must be a valid email address"),
	}
}

// ValidPhone validates a Chilean phone number, ignoring spaces, dashes,
// dots and parentheses.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool { return phoneRegex.MatchString(phoneStrip.Replace(value)) },
		Error: fieldError(field, "validation.phone", "must be a valid phone number"),
	}
}
