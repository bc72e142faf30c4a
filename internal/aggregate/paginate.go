package aggregate

import "github.com/trackwise-dev/trackwise/internal/model"

// TotalPages returns the page count for n items, never less than one.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the page-th slice (1-based) of pageSize items. An
// out-of-range page yields an empty slice, never an error.
func Paginate(txns []model.Transaction, page, pageSize int) []model.Transaction {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(txns) {
		return nil
	}
	end := start + pageSize
	if end > len(txns) {
		end = len(txns)
	}
	return txns[start:end]
}
