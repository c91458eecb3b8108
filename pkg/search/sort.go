package search

import (
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/otec/pkg/sanitizer"
)

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec selects the single active sort key. The zero value disables sorting.
type SortSpec struct {
	Key       string    `json:"key,omitempty" yaml:"key,omitempty"`
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// IsZero reports whether no sort key is set.
func (s SortSpec) IsZero() bool {
	return s.Key == ""
}

// Toggle returns the spec after a click on key: the same key flips the
// direction, a different key starts ascending.
func (s SortSpec) Toggle(key string) SortSpec {
	if s.Key == key {
		if s.Direction == Desc {
			return SortSpec{Key: key, Direction: Asc}
		}
		return SortSpec{Key: key, Direction: Desc}
	}
	return SortSpec{Key: key, Direction: Asc}
}

// String renders the spec the way ParseSort reads it ("-key" for descending).
func (s SortSpec) String() string {
	if s.IsZero() {
		return ""
	}
	if s.Direction == Desc {
		return "-" + s.Key
	}
	return s.Key
}

// ParseSort reads "key", "+key", "-key", "key:asc" or "key:desc".
func ParseSort(s string) SortSpec {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortSpec{}
	}
	if key, dir, ok := strings.Cut(s, ":"); ok {
		d := Asc
		if strings.EqualFold(strings.TrimSpace(dir), string(Desc)) {
			d = Desc
		}
		return SortSpec{Key: strings.TrimSpace(key), Direction: d}
	}
	switch s[0] {
	case '-':
		return SortSpec{Key: s[1:], Direction: Desc}
	case '+':
		return SortSpec{Key: s[1:], Direction: Asc}
	}
	return SortSpec{Key: s, Direction: Asc}
}

// Compare orders two field values ascending and returns -1, 0 or 1.
// Missing values sort last. Numbers and times compare by value, anything
// else by case-insensitive text.
func Compare(a, b any) int {
	a, aok := deref(a)
	b, bok := deref(b)
	return compare(a, aok, b, bok, Asc)
}

func compare(a any, aok bool, b any, bok bool, dir Direction) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	c := compareValues(a, b)
	if dir == Desc {
		return -c
	}
	return c
}

func compareValues(a, b any) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return sign(fa - fb)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return sign(float64(ta.UnixMilli() - tb.UnixMilli()))
		}
	}
	return strings.Compare(sanitizer.FoldCase(text(a)), sanitizer.FoldCase(text(b)))
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// Sort returns a stably sorted copy of items. items itself is left untouched.
func Sort[T any](items []T, get Getter[T], spec SortSpec) []T {
	out := slices.Clone(items)
	sortInPlace(out, get, spec)
	return out
}

func sortInPlace[T any](items []T, get Getter[T], spec SortSpec) {
	if spec.IsZero() || len(items) < 2 {
		return
	}
	slices.SortStableFunc(items, func(x, y T) int {
		a, aok := lookup(get, x, spec.Key)
		b, bok := lookup(get, y, spec.Key)
		return compare(a, aok, b, bok, spec.Direction)
	})
}
