package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		params   *PaginationParams
		want     []int
		pages    int
		hasNext  bool
		hasPrev  bool
		wantPage int
	}{
		{"first page", &PaginationParams{Page: 1, PerPage: 3}, []int{1, 2, 3}, 3, true, false, 1},
		{"last partial page", &PaginationParams{Page: 3, PerPage: 3}, []int{7}, 3, false, true, 3},
		{"beyond the end", &PaginationParams{Page: 9, PerPage: 3}, []int{}, 3, false, true, 9},
		{"nil params use defaults", nil, items, 1, false, false, 1},
		{"invalid values are clamped", &PaginationParams{Page: 0, PerPage: 0}, items, 1, false, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Paginate(items, tt.params)
			assert.Equal(t, tt.want, result.Items)
			assert.Equal(t, int64(len(items)), result.Pagination.Total)
			assert.Equal(t, tt.pages, result.Pagination.TotalPages)
			assert.Equal(t, tt.hasNext, result.Pagination.HasNext)
			assert.Equal(t, tt.hasPrev, result.Pagination.HasPrev)
			assert.Equal(t, tt.wantPage, result.Pagination.CurrentPage)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	result := Paginate([]string{}, DefaultPagination())

	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}

func TestValidateCapsPerPage(t *testing.T) {
	p := &PaginationParams{Page: 2, PerPage: 500}
	p.Validate()

	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 100, p.Offset())
}
