package explore

// Page is one slice of a paginated list together with the page arithmetic
// the navigation controls need.
type Page[T any] struct {
	Items []T
	// TotalPages is at least 1, even for an empty list, so page navigation
	// never has to handle a zero-page state.
	TotalPages int
	// PageNumber is the requested page clamped into [1, TotalPages].
	PageNumber int
}

// Paginate slices items into the requested 1-based page. Out-of-range page
// numbers are clamped, never rejected; a non-positive page size is treated
// as 1.
func Paginate[T any](items []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	} else if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		TotalPages: totalPages,
		PageNumber: pageNumber,
	}
}
