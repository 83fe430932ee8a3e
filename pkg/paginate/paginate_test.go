package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 120)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name     string
		page     int
		size     int
		wantLen  int
		wantPage int
	}{
		{"first page full", 1, 50, 50, 1},
		{"middle page full", 2, 50, 50, 2},
		{"last page partial", 3, 50, 20, 3},
		{"page past the end is empty, not an error", 4, 50, 0, 4},
		{"zero page clamps to default", 0, 50, 50, 1},
		{"negative page clamps to default", -3, 50, 50, 1},
		{"zero size clamps to default", 1, 0, 50, 1},
		{"oversized size clamps to default", 1, 1000, 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, tt.page, tt.size)

			assert.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, 120, page.Total)
			assert.Equal(t, 3, page.Pages)
			assert.Equal(t, tt.wantPage, page.Page)
		})
	}
}

func TestPaginateKeepsOrderWithinPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Paginate(items, 2, 2)

	assert.Equal(t, []string{"c", "d"}, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate([]string{}, 1, 50)

	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.Pages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Size)
}
