package search

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/otec/pkg/sanitizer"
)

// positional bonuses for a term found at the start, near the start, or elsewhere in a field.
const (
	bonusPrefix = 10
	bonusNear   = 5
	bonusOther  = 1
	nearWindow  = 4
)

// Hit is one record found by GlobalSearch.
type Hit struct {
	Dataset   string
	Index     int
	Record    any
	Label     string
	Fields    []string
	Relevance int
}

// Source is a collection that can take part in a global search.
// Dataset is the only implementation.
type Source interface {
	name() string
	scan(term string, emit func(Hit))
}

// Dataset is a named collection searched by GlobalSearch.
type Dataset[T any] struct {
	Name   string
	Items  []T
	Fields []string
	Get    Getter[T]
	// Label renders a record for display. Optional.
	Label func(T) string
}

func (d Dataset[T]) name() string { return d.Name }

func (d Dataset[T]) scan(term string, emit func(Hit)) {
	if d.Get == nil {
		return
	}
	for i, rec := range d.Items {
		hit, ok := d.score(rec, term)
		if !ok {
			continue
		}
		hit.Dataset = d.Name
		hit.Index = i
		hit.Record = rec
		if d.Label != nil {
			hit.Label = d.Label(rec)
		}
		emit(hit)
	}
}

// score sums positional bonuses over every matching field and adds one per match.
func (d Dataset[T]) score(rec T, term string) (Hit, bool) {
	var hit Hit
	bonus := 0
	for _, field := range d.Fields {
		v, ok := lookup(d.Get, rec, field)
		if !ok {
			continue
		}
		s := sanitizer.FoldCase(text(v))
		idx := strings.Index(s, term)
		if idx < 0 {
			continue
		}
		idx = utf8.RuneCountInString(s[:idx])
		hit.Fields = append(hit.Fields, field)
		switch {
		case idx == 0:
			bonus += bonusPrefix
		case idx <= nearWindow:
			bonus += bonusNear
		default:
			bonus += bonusOther
		}
	}
	if len(hit.Fields) == 0 {
		return Hit{}, false
	}
	hit.Relevance = len(hit.Fields) + bonus
	return hit, true
}

// GlobalSearch finds term across all sources and ranks hits by relevance,
// highest first. Ties keep source order, then record order.
func GlobalSearch(term string, sources ...Source) []Hit {
	term = sanitizer.FoldCase(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var hits []Hit
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.scan(term, func(h Hit) { hits = append(hits, h) })
	}

	slices.SortStableFunc(hits, func(a, b Hit) int {
		return b.Relevance - a.Relevance
	})
	return hits
}

// Group collects the hits of one dataset.
type Group struct {
	Dataset string
	Hits    []Hit
}

// GroupByDataset groups hits by dataset in order of first appearance,
// keeping the relative order of hits inside each group.
func GroupByDataset(hits []Hit) []Group {
	var groups []Group
	pos := make(map[string]int)
	for _, h := range hits {
		i, ok := pos[h.Dataset]
		if !ok {
			i = len(groups)
			pos[h.Dataset] = i
			groups = append(groups, Group{Dataset: h.Dataset})
		}
		groups[i].Hits = append(groups[i].Hits, h)
	}
	return groups
}
