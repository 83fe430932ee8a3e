// Package paginate slices an already-loaded result list into pages.
package paginate

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100
)

// Page is one slice of a larger result set plus the metadata to navigate it.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// Paginate returns the requested page of items. Out-of-range arguments clamp
// to the defaults; a page number past the last page yields an empty item
// slice with the totals intact, never an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 || size > MaxSize {
		size = DefaultSize
	}

	total := len(items)
	pages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items: items[start:end],
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}
