package search

// Query describes one evaluation of the pipeline.
type Query struct {
	Term    string      `json:"term,omitempty" yaml:"term,omitempty"`
	Text    TextOptions `json:"text" yaml:"text"`
	Filters Values      `json:"filters,omitempty" yaml:"filters,omitempty"`
	Sort    SortSpec    `json:"sort" yaml:"sort"`
}

// Stats summarizes a result for display.
type Stats struct {
	Total         int `json:"total"`
	Filtered      int `json:"filtered"`
	Selected      int `json:"selected"`
	ActiveFilters int `json:"active_filters"`
}

// Result is the filtered and sorted view of a collection.
type Result[T any] struct {
	Items []T
	Stats Stats
}

// Engine evaluates queries over collections of T.
type Engine[T any] struct {
	get    Getter[T]
	fields []string
	specs  Specs
	index  map[string]FilterSpec
}

// EngineOption configures an Engine.
type EngineOption[T any] func(*Engine[T])

// WithFields sets the fields scanned by free-text search.
func WithFields[T any](fields ...string) EngineOption[T] {
	return func(e *Engine[T]) {
		e.fields = append(e.fields, fields...)
	}
}

// WithFilters registers filter specs. Later specs replace earlier ones with the same key.
func WithFilters[T any](specs ...FilterSpec) EngineOption[T] {
	return func(e *Engine[T]) {
		for _, spec := range specs {
			if spec != nil {
				e.specs = append(e.specs, spec)
			}
		}
	}
}

// New builds an Engine reading fields through get.
// Panics when get is nil: an engine without field access is a programming error.
func New[T any](get Getter[T], opts ...EngineOption[T]) *Engine[T] {
	if get == nil {
		panic(ErrNilGetter)
	}
	e := &Engine[T]{get: get}
	for _, opt := range opts {
		opt(e)
	}
	e.index = e.specs.index()
	return e
}

// Fields returns the configured search fields.
func (e *Engine[T]) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Specs returns the configured filter specs.
func (e *Engine[T]) Specs() Specs {
	return append(Specs(nil), e.specs...)
}

// Getter returns the field accessor of the engine.
func (e *Engine[T]) Getter() Getter[T] {
	return e.get
}

// Query runs text search, then filters, then sorting over data.
// data and its elements are never modified; identical inputs yield identical output.
func (e *Engine[T]) Query(data []T, q Query) Result[T] {
	m, hasTerm := newMatcher(q.Term, q.Text)

	items := make([]T, 0, len(data))
	for _, rec := range data {
		if hasTerm && !matchRecord(m, rec, e.get, e.fields) {
			continue
		}
		if !passes(rec, e.get, q.Filters, e.index) {
			continue
		}
		items = append(items, rec)
	}

	sortInPlace(items, e.get, q.Sort)

	return Result[T]{
		Items: items,
		Stats: Stats{
			Total:         len(data),
			Filtered:      len(items),
			ActiveFilters: q.Filters.Active(),
		},
	}
}

// Filter applies text search and filters without sorting.
func Filter[T any](data []T, get Getter[T], term string, fields []string, opts TextOptions, values Values, specs Specs) []T {
	m, hasTerm := newMatcher(term, opts)
	index := specs.index()

	out := make([]T, 0, len(data))
	for _, rec := range data {
		if hasTerm && !matchRecord(m, rec, get, fields) {
			continue
		}
		if passes(rec, get, values, index) {
			out = append(out, rec)
		}
	}
	return out
}
