package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Slice applies the parameters to a slice length and returns the [lo, hi)
// bounds of the page, clamped to the slice.
func (p PaginationParams) Slice(total int) (lo, hi int) {
	lo = p.Offset()
	if lo > total {
		lo = total
	}
	hi = lo + p.PageSize
	if p.PageSize <= 0 || hi > total {
		hi = total
	}
	return lo, hi
}
