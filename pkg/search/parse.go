package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseValues converts raw string filter values, such as CLI flags or query
// parameters, into typed values according to specs.
//
//	select:  "activo" or "activo,inactivo"
//	boolean: "true", "false", "sí", "no", "1", "0"
//	number:  "42"
//	date:    "2024-03-15"
//	range:   "4..7", "4..", "..7"
//
// Keys without a spec are kept as plain strings. Malformed values are left
// out of the result and reported in the returned error.
func ParseValues(specs Specs, raw map[string]string) (Values, error) {
	values := make(Values, len(raw))
	var errs []error

	for key, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		spec, ok := specs.Get(key)
		if !ok {
			values[key] = s
			continue
		}

		v, err := parseValue(spec.Type(), s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalidFilterValue, key, s, err))
			continue
		}
		values[key] = v
	}

	return values, errors.Join(errs...)
}

func parseValue(t FilterType, s string) (any, error) {
	switch t {
	case FilterSelect:
		parts := strings.Split(s, ",")
		if len(parts) == 1 {
			return s, nil
		}
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	case FilterBoolean:
		return truthy(s), nil
	case FilterNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New("not a number")
		}
		return f, nil
	case FilterDate:
		tm, ok := parseTime(s)
		if !ok {
			return nil, errors.New("not a date")
		}
		return tm, nil
	case FilterRange:
		return parseRange(s)
	}
	return s, nil
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "..")
	if !ok {
		return Range{}, errors.New("expected min..max")
	}

	var r Range
	if lo = strings.TrimSpace(lo); lo != "" {
		f, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return Range{}, errors.New("invalid lower bound")
		}
		r.Min = &f
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		f, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return Range{}, errors.New("invalid upper bound")
		}
		r.Max = &f
	}
	if r.Min == nil && r.Max == nil {
		return Range{}, errors.New("empty range")
	}
	return r, nil
}
