package search

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo caches Engine.Query results keyed by the identity of the data slice
// and the query. Mutating a slice in place does not change its identity, so
// callers that do so must call Purge.
//
// Cached results are shared: callers must not modify Result.Items.
type Memo[T any] struct {
	engine *Engine[T]
	cache  *lru.Cache[uint64, memoEntry[T]]
}

// memoEntry keeps the source slice alive so its address cannot be reused by
// another slice while the entry is cached.
type memoEntry[T any] struct {
	data []T
	res  Result[T]
}

func (e memoEntry[T]) holds(data []T) bool {
	return unsafe.SliceData(e.data) == unsafe.SliceData(data) && len(e.data) == len(data)
}

// NewMemo wraps engine with an LRU cache holding up to size results.
func NewMemo[T any](engine *Engine[T], size int) (*Memo[T], error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	cache, err := lru.New[uint64, memoEntry[T]](size)
	if err != nil {
		return nil, fmt.Errorf("search: init memo cache: %w", err)
	}
	return &Memo[T]{engine: engine, cache: cache}, nil
}

// Engine returns the wrapped engine.
func (m *Memo[T]) Engine() *Engine[T] {
	return m.engine
}

// Query returns the cached result for (data, q) or computes and stores it.
// Queries whose filter values cannot be encoded are computed without caching.
func (m *Memo[T]) Query(data []T, q Query) Result[T] {
	key, ok := memoKey(data, q)
	if !ok {
		return m.engine.Query(data, q)
	}
	if e, ok := m.cache.Get(key); ok && e.holds(data) {
		return e.res
	}
	res := m.engine.Query(data, q)
	m.cache.Add(key, memoEntry[T]{data: data, res: res})
	return res
}

// Len returns the number of cached results.
func (m *Memo[T]) Len() int {
	return m.cache.Len()
}

// Purge drops every cached result.
func (m *Memo[T]) Purge() {
	m.cache.Purge()
}

// memoKeyParts is hashed as JSON so every part is delimited unambiguously.
type memoKeyParts struct {
	Data    uintptr     `json:"d"`
	Len     int         `json:"n"`
	Term    string      `json:"t"`
	Text    TextOptions `json:"o"`
	Sort    SortSpec    `json:"s"`
	Filters Values      `json:"f"`
}

func memoKey[T any](data []T, q Query) (uint64, bool) {
	b, err := json.Marshal(memoKeyParts{
		Data:    uintptr(unsafe.Pointer(unsafe.SliceData(data))),
		Len:     len(data),
		Term:    q.Term,
		Text:    q.Text,
		Sort:    q.Sort,
		Filters: q.Filters,
	})
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(b), true
}
