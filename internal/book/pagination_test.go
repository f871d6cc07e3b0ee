package book

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindow(t *testing.T) {
	const (
		defaultPerPage = 10
		maxPerPage     = 100
	)

	tests := []struct {
		name       string
		page       string
		perPage    string
		total      int
		wantPage   int
		wantPer    int
		wantOffset int
		wantPrev   bool
		wantNext   bool
	}{
		{
			name: "last page of 25 rows at 10 per page",
			page: "3", perPage: "10", total: 25,
			wantPage: 3, wantPer: 10, wantOffset: 20,
			wantPrev: true, wantNext: false,
		},
		{
			name: "middle page has both neighbours",
			page: "2", perPage: "10", total: 25,
			wantPage: 2, wantPer: 10, wantOffset: 10,
			wantPrev: true, wantNext: true,
		},
		{
			name: "absent page defaults to 1",
			page: "", perPage: "10", total: 25,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: true,
		},
		{
			name: "zero page behaves as page 1",
			page: "0", perPage: "10", total: 25,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: true,
		},
		{
			name: "negative page behaves as page 1",
			page: "-3", perPage: "10", total: 25,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: true,
		},
		{
			name: "non-numeric page behaves as page 1",
			page: "abc", perPage: "10", total: 25,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: true,
		},
		{
			name: "absent per_page uses the default",
			page: "1", perPage: "", total: 25,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: true,
		},
		{
			name: "per_page above max is capped",
			page: "1", perPage: "500", total: 25,
			wantPage: 1, wantPer: 100, wantOffset: 0,
			wantPrev: false, wantNext: false,
		},
		{
			name: "non-positive per_page uses the default",
			page: "1", perPage: "0", total: 25,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: true,
		},
		{
			name: "empty result set",
			page: "1", perPage: "10", total: 0,
			wantPage: 1, wantPer: 10, wantOffset: 0,
			wantPrev: false, wantNext: false,
		},
	}

	t.Run("huge page lands past the result set instead of wrapping", func(t *testing.T) {
		w := NewWindow("922337203685477581", "10", 25, defaultPerPage, maxPerPage)

		assert.Greater(t, w.Offset, w.Total)
		assert.True(t, w.HasPrevious())
		assert.False(t, w.HasNext())
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.page, tt.perPage, tt.total, defaultPerPage, maxPerPage)

			assert.Equal(t, tt.wantPage, w.Page)
			assert.Equal(t, tt.wantPer, w.PerPage)
			assert.Equal(t, tt.wantOffset, w.Offset)
			assert.Equal(t, tt.total, w.Total)
			assert.Equal(t, tt.wantPrev, w.HasPrevious())
			assert.Equal(t, tt.wantNext, w.HasNext())
		})
	}
}

func TestWindowLinks(t *testing.T) {
	t.Run("middle page gets prev and next with only page replaced", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://example.com/books?author=Homer&page=2&per_page=10", nil)
		w := NewWindow("2", "10", 25, 10, 100)

		links := w.Links(r)

		assert.Equal(t, "http://example.com", links.Base)
		assert.Equal(t, "", links.Context)
		assert.Equal(t, "http://example.com/books?author=Homer&page=2&per_page=10", links.Self)
		assert.Equal(t, "/books?author=Homer&page=1&per_page=10", links.Prev)
		assert.Equal(t, "/books?author=Homer&page=3&per_page=10", links.Next)
	})

	t.Run("first page omits prev", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://example.com/books", nil)
		w := NewWindow("", "", 25, 10, 100)

		links := w.Links(r)

		assert.Empty(t, links.Prev)
		assert.Equal(t, "/books?page=2", links.Next)
	})

	t.Run("other parameters keep their original order", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://example.com/books?per_page=10&author=Homer&page=2", nil)
		w := NewWindow("2", "10", 25, 10, 100)

		links := w.Links(r)

		assert.Equal(t, "/books?per_page=10&author=Homer&page=1", links.Prev)
		assert.Equal(t, "/books?per_page=10&author=Homer&page=3", links.Next)
	})

	t.Run("page is appended when the request had none", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://example.com/books?author=Homer", nil)
		w := NewWindow("", "10", 25, 10, 100)

		links := w.Links(r)

		assert.Equal(t, "/books?author=Homer&page=2", links.Next)
	})

	t.Run("last page omits next", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://example.com/books?page=3", nil)
		w := NewWindow("3", "10", 25, 10, 100)

		links := w.Links(r)

		assert.Equal(t, "/books?page=2", links.Prev)
		assert.Empty(t, links.Next)
	})
}
