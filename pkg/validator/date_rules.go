package validator

import (
	"time"
)

// NotFuture validates that value is not after now. Zero times pass.
func NotFuture(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool { return value.IsZero() || !value.After(now) },
		Error: fieldError(field, "validation.date_not_future", "date must not be in the future"),
	}
}

// DateBetween validates start <= value <= end, inclusive on calendar dates.
func DateBetween(field string, value, start, end time.Time) Rule {
	from, to := start.Format(time.DateOnly), end.Format(time.DateOnly)
	return Rule{
		Check: func() bool {
			d := value.Format(time.DateOnly)
			return d >= from && d <= to
		},
		Error: fieldError(field, "validation.date_between",
			"date must be between "+from+" and "+to, "start", from, "end", to),
	}
}
