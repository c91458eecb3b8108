package search

import (
	"strings"

	"github.com/dmitrymomot/otec/pkg/sanitizer"
)

// TextOptions tunes free-text matching.
type TextOptions struct {
	// CaseSensitive disables lower-casing of the term and field values.
	CaseSensitive bool
	// ExactMatch requires a field to equal the term instead of containing it.
	ExactMatch bool
}

// Matches reports whether any of fields of record matches term.
// A blank term matches every record; missing values never match.
func Matches[T any](record T, get Getter[T], term string, fields []string, opts TextOptions) bool {
	m, ok := newMatcher(term, opts)
	if !ok {
		return true
	}
	return matchRecord(m, record, get, fields)
}

// matcher holds a prepared term so it is folded once per query, not once per record.
type matcher struct {
	term string
	opts TextOptions
}

// newMatcher reports false when term is blank and therefore matches everything.
func newMatcher(term string, opts TextOptions) (matcher, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return matcher{}, false
	}
	if !opts.CaseSensitive {
		term = sanitizer.FoldCase(term)
	}
	return matcher{term: term, opts: opts}, true
}

func (m matcher) value(v any) bool {
	s := text(v)
	if !m.opts.CaseSensitive {
		s = sanitizer.FoldCase(s)
	}
	if m.opts.ExactMatch {
		return s == m.term
	}
	return strings.Contains(s, m.term)
}

func matchRecord[T any](m matcher, record T, get Getter[T], fields []string) bool {
	for _, field := range fields {
		v, ok := lookup(get, record, field)
		if ok && m.value(v) {
			return true
		}
	}
	return false
}
