// Package pagination implements 1-based page windows over counted result sets.
package pagination

// Window describes the slice of rows to fetch for one page.
type Window struct {
	// Page is the resolved page number after clamping.
	Page int
	// TotalPages is the number of available pages, at least 1.
	TotalPages int
	// Limit and Offset feed directly into the query.
	Limit  int
	Offset int
}

// Resolve computes the window for the requested 1-based page over total rows.
// A page past the end resolves to the last valid page rather than failing, and
// anything below 1 resolves to the first page. An empty result set still has
// one (empty) page so callers always render a valid page.
func Resolve(total int64, page, perPage int) Window {
	if perPage <= 0 {
		perPage = 1
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Window{
		Page:       page,
		TotalPages: totalPages,
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
	}
}
