package search

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/romdo/go-debounce"
)

// DefaultDebounce is the delay between the last keystroke and the search it triggers.
const DefaultDebounce = 300 * time.Millisecond

// Snapshot is the state of a Session after a change: the visible page plus
// everything needed to render the table header and pager.
type Snapshot[T any] struct {
	Items   []T
	Stats   Stats
	Page    PageInfo
	Term    string
	Filters Values
	Sort    SortSpec
}

// Session holds the interactive state of one table: the search term (applied
// after a debounce delay), filter values, sort key, current page and the set
// of selected records. Changing the term or the filters resets the page to 1.
//
// A Session is safe for concurrent use. Call Close to stop the pending debounce timer.
type Session[T any] struct {
	mu       sync.Mutex
	engine   *Engine[T]
	memo     *Memo[T]
	data     []T
	pending  string
	query    Query
	page     int
	perPage  int
	selected map[string]struct{}

	identity func(T) string
	onChange func(Snapshot[T])
	logger   *slog.Logger
	wait     time.Duration
	memoSize int

	debounced func()
	cancel    func()
}

// SessionOption configures a Session.
type SessionOption[T any] func(*Session[T])

// WithDebounce sets the term debounce delay. Non-positive values keep the default.
func WithDebounce[T any](d time.Duration) SessionOption[T] {
	return func(s *Session[T]) {
		if d > 0 {
			s.wait = d
		}
	}
}

// WithPerPage sets the page size.
func WithPerPage[T any](n int) SessionOption[T] {
	return func(s *Session[T]) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// WithSort sets the initial sort.
func WithSort[T any](spec SortSpec) SessionOption[T] {
	return func(s *Session[T]) {
		s.query.Sort = spec
	}
}

// WithTextOptions sets the initial text matching options.
func WithTextOptions[T any](opts TextOptions) SessionOption[T] {
	return func(s *Session[T]) {
		s.query.Text = opts
	}
}

// WithIdentity sets the function that identifies records for selection.
// Without it SelectPage is a no-op.
func WithIdentity[T any](fn func(T) string) SessionOption[T] {
	return func(s *Session[T]) {
		s.identity = fn
	}
}

// WithOnChange registers a callback invoked after every state change,
// including debounced term changes. It runs outside the session lock.
func WithOnChange[T any](fn func(Snapshot[T])) SessionOption[T] {
	return func(s *Session[T]) {
		s.onChange = fn
	}
}

// WithSessionLogger sets the logger used for debug output.
func WithSessionLogger[T any](l *slog.Logger) SessionOption[T] {
	return func(s *Session[T]) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMemoSize enables result memoization with an LRU of n entries.
func WithMemoSize[T any](n int) SessionOption[T] {
	return func(s *Session[T]) {
		s.memoSize = n
	}
}

// NewSession creates a session over data.
func NewSession[T any](engine *Engine[T], data []T, opts ...SessionOption[T]) (*Session[T], error) {
	s := &Session[T]{
		engine:   engine,
		data:     data,
		page:     1,
		perPage:  DefaultPerPage,
		selected: make(map[string]struct{}),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		wait:     DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.memoSize > 0 {
		memo, err := NewMemo(engine, s.memoSize)
		if err != nil {
			return nil, err
		}
		s.memo = memo
	}

	s.debounced, s.cancel = debounce.New(s.wait, s.flushPending)
	return s, nil
}

// Close cancels a pending debounced search.
func (s *Session[T]) Close() {
	s.cancel()
}

// SetTerm schedules term to be applied after the debounce delay.
func (s *Session[T]) SetTerm(term string) {
	s.mu.Lock()
	s.pending = term
	s.mu.Unlock()
	s.debounced()
}

// FlushTerm applies a pending term immediately.
func (s *Session[T]) FlushTerm() Snapshot[T] {
	return s.update(func() bool { return s.applyTerm() })
}

// SetFilter sets the value of one filter and resets the page.
// A nil or empty value deactivates the filter.
func (s *Session[T]) SetFilter(key string, value any) Snapshot[T] {
	return s.update(func() bool {
		filters := s.query.Filters.Clone()
		if isActive(value) {
			filters[key] = value
		} else {
			delete(filters, key)
		}
		s.query.Filters = filters
		s.page = 1
		return true
	})
}

// ClearFilters removes every filter value and resets the page.
func (s *Session[T]) ClearFilters() Snapshot[T] {
	return s.update(func() bool {
		s.query.Filters = nil
		s.page = 1
		return true
	})
}

// SetTextOptions changes how the term is matched and resets the page.
func (s *Session[T]) SetTextOptions(opts TextOptions) Snapshot[T] {
	return s.update(func() bool {
		s.query.Text = opts
		s.page = 1
		return true
	})
}

// ToggleSort flips the direction when key is already sorted, otherwise sorts
// ascending by key.
func (s *Session[T]) ToggleSort(key string) Snapshot[T] {
	return s.update(func() bool {
		s.query.Sort = s.query.Sort.Toggle(key)
		return true
	})
}

// SetSort replaces the sort spec.
func (s *Session[T]) SetSort(spec SortSpec) Snapshot[T] {
	return s.update(func() bool {
		s.query.Sort = spec
		return true
	})
}

// SetPage moves to page n, clamped to the available pages.
func (s *Session[T]) SetPage(n int) Snapshot[T] {
	return s.update(func() bool {
		s.page = n
		return true
	})
}

// NextPage moves one page forward, staying on the last page.
func (s *Session[T]) NextPage() Snapshot[T] {
	return s.update(func() bool {
		s.page++
		return true
	})
}

// PrevPage moves one page back, staying on the first page.
func (s *Session[T]) PrevPage() Snapshot[T] {
	return s.update(func() bool {
		s.page--
		return true
	})
}

// SetPerPage changes the page size and returns to the first page.
func (s *Session[T]) SetPerPage(n int) Snapshot[T] {
	return s.update(func() bool {
		if n <= 0 {
			n = DefaultPerPage
		}
		s.perPage = n
		s.page = 1
		return true
	})
}

// SetData replaces the underlying collection. The current page is kept when still valid.
func (s *Session[T]) SetData(data []T) Snapshot[T] {
	return s.update(func() bool {
		s.data = data
		if s.memo != nil {
			s.memo.Purge()
		}
		return true
	})
}

// Select marks ids as selected.
func (s *Session[T]) Select(ids ...string) Snapshot[T] {
	return s.update(func() bool {
		for _, id := range ids {
			s.selected[id] = struct{}{}
		}
		return len(ids) > 0
	})
}

// Deselect removes ids from the selection.
func (s *Session[T]) Deselect(ids ...string) Snapshot[T] {
	return s.update(func() bool {
		for _, id := range ids {
			delete(s.selected, id)
		}
		return len(ids) > 0
	})
}

// ToggleSelection flips the selection state of id.
func (s *Session[T]) ToggleSelection(id string) Snapshot[T] {
	return s.update(func() bool {
		if _, ok := s.selected[id]; ok {
			delete(s.selected, id)
		} else {
			s.selected[id] = struct{}{}
		}
		return true
	})
}

// SelectPage selects every record on the current page.
func (s *Session[T]) SelectPage() Snapshot[T] {
	return s.update(func() bool {
		if s.identity == nil {
			return false
		}
		for _, rec := range s.snapshotLocked().Items {
			s.selected[s.identity(rec)] = struct{}{}
		}
		return true
	})
}

// ClearSelection empties the selection.
func (s *Session[T]) ClearSelection() Snapshot[T] {
	return s.update(func() bool {
		changed := len(s.selected) > 0
		clear(s.selected)
		return changed
	})
}

// IsSelected reports whether id is selected.
func (s *Session[T]) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected ids in no particular order.
func (s *Session[T]) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	return ids
}

// Query returns the query currently applied.
func (s *Session[T]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.query
	q.Filters = q.Filters.Clone()
	return q
}

// Snapshot returns the current state without changing it.
func (s *Session[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session[T]) flushPending() {
	s.update(func() bool { return s.applyTerm() })
}

// update applies fn under the lock and notifies listeners when fn reports a change.
func (s *Session[T]) update(fn func() bool) Snapshot[T] {
	s.mu.Lock()
	changed := fn()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.logger.Debug("search session updated",
			slog.String("term", snap.Term),
			slog.String("sort", snap.Sort.String()),
			slog.Int("page", snap.Page.Page),
			slog.Int("filtered", snap.Stats.Filtered),
		)
		if s.onChange != nil {
			s.onChange(snap)
		}
	}
	return snap
}

func (s *Session[T]) applyTerm() bool {
	if s.pending == s.query.Term {
		return false
	}
	s.query.Term = s.pending
	s.page = 1
	return true
}

func (s *Session[T]) run() Result[T] {
	if s.memo != nil {
		return s.memo.Query(s.data, s.query)
	}
	return s.engine.Query(s.data, s.query)
}

func (s *Session[T]) snapshotLocked() Snapshot[T] {
	res := s.run()
	info := Paginate(res.Stats.Filtered, s.perPage, s.page)
	s.page = info.Page

	stats := res.Stats
	stats.Selected = len(s.selected)

	return Snapshot[T]{
		Items:   PageSlice(res.Items, info),
		Stats:   stats,
		Page:    info,
		Term:    s.query.Term,
		Filters: s.query.Filters.Clone(),
		Sort:    s.query.Sort,
	}
}
