package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		p := Pagination{}
		p.Normalize()
		assert.Equal(t, DefaultPage, p.Page)
		assert.Equal(t, DefaultLimit, p.Limit)
	})

	t.Run("negative values corrected", func(t *testing.T) {
		p := Pagination{Page: -3, Limit: -1}
		p.Normalize()
		assert.Equal(t, DefaultPage, p.Page)
		assert.Equal(t, DefaultLimit, p.Limit)
	})

	t.Run("limit capped", func(t *testing.T) {
		p := Pagination{Page: 2, Limit: 5000}
		p.Normalize()
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, MaxLimit, p.Limit)
	})
}

func TestNewPageResult(t *testing.T) {
	p := Pagination{Page: 2, Limit: 20}
	result := NewPageResult([]string{"a", "b"}, 42, p)

	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Len(t, result.List, 2)
}
