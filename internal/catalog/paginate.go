package catalog

import "realty/pkg/model"

const defaultPageSize = 5

// Paginate returns the page-th slice of size elements, clamped to the
// collection bounds. A nil or non-positive size falls back to 5, a nil
// or negative page to 0; an out-of-range page yields an empty slice.
func Paginate(items []model.Listing, page, size *int) []model.Listing {
	if items == nil {
		return []model.Listing{}
	}

	effSize := defaultPageSize
	if size != nil && *size > 0 {
		effSize = *size
	}
	effPage := 0
	if page != nil && *page > 0 {
		effPage = *page
	}

	from := min(effPage*effSize, len(items))
	to := min(from+effSize, len(items))
	return items[from:to]
}
