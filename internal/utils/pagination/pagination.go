package pagination

// PageMeta carries the metadata of one result page. Page is 0-based.
type PageMeta struct {
	Page       int
	Count      int
	TotalPages int
	First      bool
	Last       bool
}

// NewPageMeta derives page metadata from the page request and the total number
// of matching rows. A page past the end yields Count 0 and Last true.
func NewPageMeta(page, size, count int, total int64) PageMeta {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return PageMeta{
		Page:       page,
		Count:      count,
		TotalPages: totalPages,
		First:      page == 0,
		Last:       page >= totalPages-1,
	}
}

// Clamp normalizes a page/size request: negative pages become 0, non-positive
// or oversized page sizes fall back to the default.
func Clamp(page, size, defaultSize, maxSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > maxSize {
		size = defaultSize
	}
	return page, size
}
