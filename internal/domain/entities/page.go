package entities

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// NewPage computes the page count for total items split into pageSize pages.
func NewPage[T any](items []T, page, pageSize, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: pages,
	}
}
