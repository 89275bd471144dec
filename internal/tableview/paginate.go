package tableview

// pageCount returns the number of pages needed for n records at the given
// page size. An empty collection still has one (empty) page.
func pageCount(n, size int) int {
	if size <= 0 {
		size = 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// clampPage forces page into [1, pages].
func clampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// pageWindow slices out the 1-based page from rows. The caller is expected
// to have clamped page already; out-of-range inputs yield an empty window.
func pageWindow[T any](rows []row[T], page, size int) []row[T] {
	if size <= 0 {
		return rows
	}
	start := (page - 1) * size
	if start < 0 || start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
