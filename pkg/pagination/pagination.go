// Package pagination slices ordered result sequences into fixed-size pages.
package pagination

// Page returns the 1-based page of items. An out-of-range page or a
// non-positive page size yields an empty slice, never an error.
func Page[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
