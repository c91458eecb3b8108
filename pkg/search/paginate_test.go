package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/otec/pkg/search"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name               string
		total, per, page   int
		wantPage, wantTot  int
		wantStart, wantEnd int
		wantPrev, wantNext bool
	}{
		{name: "first page", total: 23, per: 10, page: 1, wantPage: 1, wantTot: 3, wantStart: 0, wantEnd: 10, wantNext: true},
		{name: "middle page", total: 23, per: 10, page: 2, wantPage: 2, wantTot: 3, wantStart: 10, wantEnd: 20, wantPrev: true, wantNext: true},
		{name: "beyond last clamps", total: 23, per: 10, page: 99, wantPage: 3, wantTot: 3, wantStart: 20, wantEnd: 23, wantPrev: true},
		{name: "zero clamps to first", total: 23, per: 10, page: 0, wantPage: 1, wantTot: 3, wantStart: 0, wantEnd: 10, wantNext: true},
		{name: "negative clamps to first", total: 23, per: 10, page: -4, wantPage: 1, wantTot: 3, wantStart: 0, wantEnd: 10, wantNext: true},
		{name: "exact multiple", total: 30, per: 10, page: 3, wantPage: 3, wantTot: 3, wantStart: 20, wantEnd: 30, wantPrev: true},
		{name: "empty collection", total: 0, per: 10, page: 5, wantPage: 1, wantTot: 0, wantStart: 0, wantEnd: 0},
		{name: "default page size", total: 25, per: 0, page: 3, wantPage: 3, wantTot: 3, wantStart: 20, wantEnd: 25, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := search.Paginate(tt.total, tt.per, tt.page)
			assert.Equal(t, tt.wantPage, info.Page)
			assert.Equal(t, tt.wantTot, info.TotalPages)
			assert.Equal(t, tt.wantStart, info.StartIndex)
			assert.Equal(t, tt.wantEnd, info.EndIndex)
			assert.Equal(t, tt.wantPrev, info.HasPrev)
			assert.Equal(t, tt.wantNext, info.HasNext)
		})
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	got, info := search.Page(items, 3, 3)
	assert.Equal(t, []int{7}, got)
	assert.Equal(t, 3, info.Page)

	got, _ = search.Page(items, 3, 42)
	assert.Equal(t, []int{7}, got)

	got, info = search.Page([]int(nil), 3, 1)
	assert.Empty(t, got)
	assert.Equal(t, 0, info.TotalPages)
}

func TestPageSliceIsBounded(t *testing.T) {
	items := []string{"a", "b"}
	info := search.PageInfo{StartIndex: 1, EndIndex: 10}
	assert.Equal(t, []string{"b"}, search.PageSlice(items, info))

	page := search.PageSlice(items, search.PageInfo{StartIndex: 0, EndIndex: 1})
	page = append(page, "z")
	assert.Equal(t, []string{"a", "b"}, items, "appending to a page must not overwrite the source")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, search.ClampPage(0, 0))
	assert.Equal(t, 4, search.ClampPage(9, 4))
	assert.Equal(t, 2, search.ClampPage(2, 4))
}
