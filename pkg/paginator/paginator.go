package paginator

import "strconv"

// Page describes one window over an ordered listing.
type Page struct {
	Number   int   `json:"number"`
	PageSize int   `json:"page_size"`
	NumPages int   `json:"num_pages"`
	Count    int64 `json:"count"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
}

// Resolve clamps a raw page query value against the total item count.
// Out-of-range or unparsable values never error: anything below the first
// page resolves to page 1, anything past the end resolves to the last page.
// An empty listing still has exactly one (empty) page.
func Resolve(raw string, pageSize int, count int64) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	numPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if numPages < 1 {
		numPages = 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		n = 1
	}
	if n > numPages {
		n = numPages
	}
	return Page{
		Number:   n,
		PageSize: pageSize,
		NumPages: numPages,
		Count:    count,
		HasNext:  n < numPages,
		HasPrev:  n > 1,
	}
}

// Offset is the item offset of the page start.
func (p Page) Offset() int { return (p.Number - 1) * p.PageSize }
