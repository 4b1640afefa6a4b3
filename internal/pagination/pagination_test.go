package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPage   int
		wantTotal  int
		wantLimit  int
		wantOffset int
	}{
		{
			name:  "first page of several",
			total: 25, page: 1, perPage: 10,
			wantPage: 1, wantTotal: 3, wantLimit: 10, wantOffset: 0,
		},
		{
			name:  "middle page",
			total: 25, page: 2, perPage: 10,
			wantPage: 2, wantTotal: 3, wantLimit: 10, wantOffset: 10,
		},
		{
			name:  "page past the end clamps to last",
			total: 25, page: 99, perPage: 10,
			wantPage: 3, wantTotal: 3, wantLimit: 10, wantOffset: 20,
		},
		{
			name:  "page below one clamps to first",
			total: 25, page: 0, perPage: 10,
			wantPage: 1, wantTotal: 3, wantLimit: 10, wantOffset: 0,
		},
		{
			name:  "empty result set still has one page",
			total: 0, page: 5, perPage: 10,
			wantPage: 1, wantTotal: 1, wantLimit: 10, wantOffset: 0,
		},
		{
			name:  "exact multiple of page size",
			total: 20, page: 3, perPage: 10,
			wantPage: 2, wantTotal: 2, wantLimit: 10, wantOffset: 10,
		},
		{
			name:  "single short page",
			total: 3, page: 1, perPage: 10,
			wantPage: 1, wantTotal: 1, wantLimit: 10, wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Resolve(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, w.Page)
			assert.Equal(t, tt.wantTotal, w.TotalPages)
			assert.Equal(t, tt.wantLimit, w.Limit)
			assert.Equal(t, tt.wantOffset, w.Offset)
		})
	}
}
