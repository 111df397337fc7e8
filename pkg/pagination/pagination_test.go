package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	params := &PaginationParams{Page: 0, PerPage: 0}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)

	params = &PaginationParams{Page: -3, PerPage: 500}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PerPage)

	params = &PaginationParams{Page: 4, PerPage: 25}
	params.Validate()
	assert.Equal(t, 4, params.Page)
	assert.Equal(t, 25, params.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	params := &PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, params.Offset())

	params = &PaginationParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 50)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(1, 15, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = NewPagination(1, 15, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
}
