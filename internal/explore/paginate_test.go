package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_EmptyList(t *testing.T) {
	page := Paginate([]int{}, 25, 5)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.PageNumber)
}

func TestPaginate_FirstPage(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}
	page := Paginate(items, 25, 1)
	assert.Len(t, page.Items, 25)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 0, page.Items[0])
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}
	page := Paginate(items, 25, 99)
	assert.Equal(t, 2, page.PageNumber)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 25, page.Items[0])

	page = Paginate(items, 25, 0)
	assert.Equal(t, 1, page.PageNumber)

	page = Paginate(items, 25, -3)
	assert.Equal(t, 1, page.PageNumber)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page := Paginate([]string{"a", "b", "c", "d"}, 2, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []string{"c", "d"}, page.Items)
}

func TestPaginate_NonPositivePageSize(t *testing.T) {
	page := Paginate([]int{1, 2, 3}, 0, 2)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []int{2}, page.Items)
}
