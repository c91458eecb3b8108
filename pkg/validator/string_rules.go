package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: fieldError(field, "validation.required", "field is required"),
	}
}

// MinLen counts runes, so "Ñuñoa" has length 5.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Error: fieldError(field, "validation.min_length",
			fmt.Sprintf("must be at least %d characters long", min), "min", min),
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: fieldError(field, "validation.max_length",
			fmt.Sprintf("must be at most %d characters long", max), "max", max),
	}
}

// InList validates that value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: fieldError(field, "validation.in_list",
			fmt.Sprintf("must be one of: %v", allowed), "allowed", fmt.Sprint(allowed)),
	}
}
