// Package pagination implements fixed-size page arithmetic over an ordered
// record set.
package pagination

import "strconv"

// Pager computes page boundaries for a fixed page size over a known total.
// A zero total is the explicit empty state: no page exists, and callers must
// check Empty before asking for one.
type Pager struct {
	total    int
	pageSize int
}

// New creates a Pager. A non-positive pageSize is forced to 1 and a negative
// total to 0 so the arithmetic below never divides by zero.
func New(total, pageSize int) Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	return Pager{total: total, pageSize: pageSize}
}

// Empty reports whether there are no records and therefore no pages.
func (p Pager) Empty() bool {
	return p.total == 0
}

// Total returns the record count the Pager was built with.
func (p Pager) Total() int {
	return p.total
}

// PageSize returns the fixed page size.
func (p Pager) PageSize() int {
	return p.pageSize
}

// TotalPages returns ceil(total/pageSize); 0 when the set is empty.
func (p Pager) TotalPages() int {
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Clamp forces page into [1, TotalPages]. On an empty set it returns 0.
func (p Pager) Clamp(page int) int {
	if p.Empty() {
		return 0
	}
	if page < 1 {
		return 1
	}
	if last := p.TotalPages(); page > last {
		return last
	}
	return page
}

// Resolve maps the raw page parameter to a concrete page number. An absent or
// malformed parameter defaults to the last page so newly added records are
// visible without navigation; out-of-range values clamp to [1, TotalPages].
// A bad parameter is never an error, only a normalization. Resolve on an
// empty set returns 0.
func (p Pager) Resolve(param string) int {
	if p.Empty() {
		return 0
	}
	if param == "" {
		return p.TotalPages()
	}
	page, err := strconv.Atoi(param)
	if err != nil {
		return p.TotalPages()
	}
	return p.Clamp(page)
}

// Bounds returns the 0-based half-open index range [start, end) covered by
// page within the ascending record order. The final page may be partial.
func (p Pager) Bounds(page int) (start, end int) {
	if p.Empty() {
		return 0, 0
	}
	page = p.Clamp(page)
	start = (page - 1) * p.pageSize
	end = start + p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Prev returns the page before current; staying on page 1 is a no-op.
func (p Pager) Prev(current int) int {
	return p.Clamp(current - 1)
}

// Next returns the page after current; staying on the last page is a no-op.
func (p Pager) Next(current int) int {
	return p.Clamp(current + 1)
}
