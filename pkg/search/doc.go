// Package search is a generic in-memory query engine for the tables of the
// back office: free-text search, typed filter predicates, stable sorting,
// pagination arithmetic and relevance-ranked search across several
// collections at once.
//
// The engine never mutates the records it receives and keeps no state
// between calls, so a single Engine can serve any number of goroutines.
//
// # Field access
//
// Records are read through a Getter, a function that returns the value of a
// named field. Types that already expose their fields can implement Fielder
// and use FielderGetter; map[string]any records can use MapGetter.
//
// # Pipeline
//
// Engine.Query always runs the same stages in the same order:
//
//  1. text search over the configured fields (OR across fields)
//  2. typed filter predicates (AND across active filters)
//  3. stable sort on a single key
//
// Sorting only ever touches the filtered subset.
//
//	engine := search.New(getter,
//	    search.WithFields[Participant]("nombre", "rut", "email"),
//	    search.WithFilters[Participant](
//	        search.SelectFilter{Field: "estado"},
//	        search.RangeFilter{Field: "nota"},
//	    ),
//	)
//
//	res := engine.Query(participants, search.Query{
//	    Term:    "garcía",
//	    Filters: search.Values{"estado": "activo"},
//	    Sort:    search.SortSpec{Key: "fechaRegistro", Direction: search.Desc},
//	})
//	items, page := search.Page(res.Items, 15, 1)
//
// # Filters
//
// FilterSpec is a closed set of variants (TextFilter, SelectFilter,
// BooleanFilter, NumberFilter, DateFilter, RangeFilter). Each variant defines
// its own comparison semantics. Filter values that are nil, empty strings or
// empty slices are inactive, and values for keys without a spec are ignored.
//
// # Host helpers
//
// Memo caches query results keyed by their inputs, and Session holds the
// interactive state of one table (debounced term, filters, sort toggling,
// current page and selection), resetting the page whenever the term or the
// filters change.
package search
