package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ItemsPerPage is the catalog page size.
const ItemsPerPage = 2

// Page is the result of clamping a page request against a total item count.
type Page struct {
	Number          int
	Size            int
	Offset          int
	TotalItems      int
	LastPage        int
	HasNextPage     bool
	HasPreviousPage bool
}

// NextPage is the page after Number. Only meaningful when HasNextPage is set.
func (p Page) NextPage() int { return p.Number + 1 }

// PreviousPage is the page before Number. Only meaningful when HasPreviousPage is set.
func (p Page) PreviousPage() int { return p.Number - 1 }

// Limit is the maximum number of records to fetch for the page.
func (p Page) Limit() int { return p.Size }

// LastPageFor returns max(1, ceil(total/pageSize)).
func LastPageFor(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = ItemsPerPage
	}
	if totalItems <= 0 {
		return 1
	}
	last := totalItems / pageSize
	if totalItems%pageSize != 0 {
		last++
	}
	return last
}

// Paginate clamps requested into [1, LastPageFor(total, pageSize)] and derives
// the offset and navigation flags. Fractional requests are floored; NaN is page 1.
func Paginate(totalItems int, requested float64, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = ItemsPerPage
	}
	if totalItems < 0 {
		totalItems = 0
	}
	last := LastPageFor(totalItems, pageSize)

	number := 1
	switch f := math.Floor(requested); {
	case math.IsNaN(f), f < 1:
		number = 1
	case f >= float64(last):
		number = last
	default:
		number = int(f)
	}

	return Page{
		Number:          number,
		Size:            pageSize,
		Offset:          (number - 1) * pageSize,
		TotalItems:      totalItems,
		LastPage:        last,
		HasNextPage:     number*pageSize < totalItems,
		HasPreviousPage: number > 1,
	}
}

// PaginateRaw is Paginate for an unparsed request value such as a query
// parameter. Absent or non-numeric input means page 1.
func PaginateRaw(totalItems int, raw string, pageSize int) Page {
	return Paginate(totalItems, ParsePageNumber(raw), pageSize)
}

// ParsePageNumber parses raw as a number. Absent, unparsable and NaN input
// becomes 1. Infinite and out-of-range values are kept as ±Inf so Paginate
// clamps them like any other number.
func ParsePageNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	if math.IsNaN(f) {
		return 1
	}
	return f
}
