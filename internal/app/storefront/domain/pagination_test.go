package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastPageFor(t *testing.T) {
	assert.Equal(t, 1, LastPageFor(0, 2))
	assert.Equal(t, 1, LastPageFor(2, 2))
	assert.Equal(t, 2, LastPageFor(3, 2))
	assert.Equal(t, 6, LastPageFor(12, 2))
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		requested float64
		wantPage  int
		wantOff   int
		wantNext  bool
		wantPrev  bool
	}{
		{"first page", 12, 1, 1, 0, true, false},
		{"middle page", 12, 3, 3, 4, true, true},
		{"last page", 12, 6, 6, 10, false, true},
		{"beyond last clamps", 12, 10, 6, 10, false, true},
		{"zero clamps to first", 12, 0, 1, 0, true, false},
		{"negative clamps to first", 12, -4, 1, 0, true, false},
		{"fraction floors", 12, 2.7, 2, 2, true, true},
		{"NaN is first", 12, math.NaN(), 1, 0, true, false},
		{"empty catalog", 0, 5, 1, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.requested, ItemsPerPage)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, tt.wantOff, p.Offset)
			assert.Equal(t, tt.wantNext, p.HasNextPage)
			assert.Equal(t, tt.wantPrev, p.HasPreviousPage)
			assert.Equal(t, ItemsPerPage, p.Limit())
		})
	}
}

func TestPaginate_NavigationNumbers(t *testing.T) {
	p := Paginate(12, 3, 2)
	assert.Equal(t, 4, p.NextPage())
	assert.Equal(t, 2, p.PreviousPage())
	assert.Equal(t, 6, p.LastPage)
	assert.Equal(t, 12, p.TotalItems)
}

func TestPaginate_DefaultsInvalidSize(t *testing.T) {
	p := Paginate(5, 1, 0)
	assert.Equal(t, ItemsPerPage, p.Size)
}

func TestPaginateRaw(t *testing.T) {
	assert.Equal(t, 1, PaginateRaw(12, "", 2).Number)
	assert.Equal(t, 1, PaginateRaw(12, "abc", 2).Number)
	assert.Equal(t, 1, PaginateRaw(12, "NaN", 2).Number)
	assert.Equal(t, 4, PaginateRaw(12, "4", 2).Number)
	assert.Equal(t, 6, PaginateRaw(12, "99", 2).Number)
}

func TestPaginateRaw_InfiniteAndOutOfRange(t *testing.T) {
	tests := []struct {
		raw      string
		wantPage int
	}{
		{"Inf", 6},
		{"+Inf", 6},
		{"1e400", 6},
		{"-Inf", 1},
		{"-1e400", 1},
		{"1e-400", 1},
		{"-0", 1},
		{"9223372036854775807", 6},
		{"2.9", 2},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := PaginateRaw(12, tt.raw, 2)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, (tt.wantPage-1)*2, p.Offset)
		})
	}

	last := PaginateRaw(12, "1e400", 2)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPreviousPage)
}

func TestPaginate_AlwaysWithinRange(t *testing.T) {
	totals := []int{0, 1, 2, 3, 11, 12, 13, 1000, math.MaxInt32}
	requested := []float64{
		math.Inf(1), math.Inf(-1), math.NaN(), math.Copysign(0, -1),
		-1e308, -1, 0, 0.5, 1, 1.999, 2, 6, 7, 1e9,
		float64(math.MaxInt64), -float64(math.MaxInt64), math.MaxFloat64,
	}
	for _, size := range []int{1, 2, 5} {
		for _, total := range totals {
			for _, req := range requested {
				p := Paginate(total, req, size)
				assert.GreaterOrEqual(t, p.Number, 1, "total=%d req=%v size=%d", total, req, size)
				assert.LessOrEqual(t, p.Number, p.LastPage, "total=%d req=%v size=%d", total, req, size)
				assert.Equal(t, LastPageFor(total, size), p.LastPage)
				assert.Equal(t, (p.Number-1)*size, p.Offset)
			}
		}
	}
}
