// Package pagination holds the page-window arithmetic shared by the list
// endpoints and the table controller.
package pagination

// PageCount returns ceil(totalRows/pageSize). Zero when there are no rows.
func PageCount(totalRows int64, pageSize int) int {
	if pageSize <= 0 || totalRows <= 0 {
		return 0
	}
	return int((totalRows + int64(pageSize) - 1) / int64(pageSize))
}

// Window returns the inclusive row range [from, to] for a zero-based page index.
func Window(pageIndex, pageSize int) (from, to int) {
	from = pageIndex * pageSize
	to = from + pageSize - 1
	return
}

// CanPrev reports whether a previous page exists.
func CanPrev(pageIndex int) bool {
	return pageIndex > 0
}

// CanNext reports whether a next page exists.
func CanNext(pageIndex int, totalRows int64, pageSize int) bool {
	return pageIndex < PageCount(totalRows, pageSize)-1
}
