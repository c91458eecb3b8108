package validator

import "fmt"

// MinNum validates value >= min.
func MinNum[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: fieldError(field, "validation.min", fmt.Sprintf("must be at least %v", min), "min", min),
	}
}

// MaxNum validates value <= max.
func MaxNum[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: fieldError(field, "validation.max", fmt.Sprintf("must be at most %v", max), "max", max),
	}
}

// InRange validates min <= value <= max. Grades use InRange("nota", n, 1.0, 7.0).
func InRange[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: fieldError(field, "validation.range",
			fmt.Sprintf("must be between %v and %v", min, max), "min", min, "max", max),
	}
}
