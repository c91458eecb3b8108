package search

// DefaultPerPage is used when a non-positive page size is requested.
const DefaultPerPage = 10

// PageInfo describes one page of a result.
// EndIndex is exclusive, so items[StartIndex:EndIndex] is the page.
type PageInfo struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	StartIndex int  `json:"start_index"`
	EndIndex   int  `json:"end_index"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Paginate computes page bounds. page is clamped into [1, TotalPages].
func Paginate(totalItems, perPage, page int) PageInfo {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	totalItems = max(totalItems, 0)

	totalPages := (totalItems + perPage - 1) / perPage
	page = ClampPage(page, totalPages)

	start := min((page-1)*perPage, totalItems)
	end := min(start+perPage, totalItems)

	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		StartIndex: start,
		EndIndex:   end,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// ClampPage bounds page to [1, totalPages]. With no pages the result is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// PageSlice returns the items covered by info.
func PageSlice[T any](items []T, info PageInfo) []T {
	start := min(max(info.StartIndex, 0), len(items))
	end := min(max(info.EndIndex, start), len(items))
	return items[start:end:end]
}

// Page paginates items in one call.
func Page[T any](items []T, perPage, page int) ([]T, PageInfo) {
	info := Paginate(len(items), perPage, page)
	return PageSlice(items, info), info
}
