package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"realty/pkg/model"
)

func numberedListings(n int) []model.Listing {
	items := make([]model.Listing, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, model.LandSale{
			ID:      fmt.Sprintf("land-%02d", i),
			WhatUse: "residential",
			Data:    model.SaleData{Area: 100, FullPrice: 1000},
		})
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := numberedListings(12)

	tests := []struct {
		name string
		page *int
		size *int
		want []string
	}{
		{"defaults", nil, nil, []string{"land-00", "land-01", "land-02", "land-03", "land-04"}},
		{"second page default size", intPtr(1), nil, []string{"land-05", "land-06", "land-07", "land-08", "land-09"}},
		{"explicit size", intPtr(0), intPtr(3), []string{"land-00", "land-01", "land-02"}},
		{"partial last page", intPtr(2), nil, []string{"land-10", "land-11"}},
		{"page past end", intPtr(5), nil, []string{}},
		{"negative page treated as first", intPtr(-2), intPtr(4), []string{"land-00", "land-01", "land-02", "land-03"}},
		{"zero size falls back to default", nil, intPtr(0), []string{"land-00", "land-01", "land-02", "land-03", "land-04"}},
		{"negative size falls back to default", nil, intPtr(-3), []string{"land-00", "land-01", "land-02", "land-03", "land-04"}},
		{"size beyond collection", nil, intPtr(50), []string{
			"land-00", "land-01", "land-02", "land-03", "land-04", "land-05",
			"land-06", "land-07", "land-08", "land-09", "land-10", "land-11",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.size)
			assert.Equal(t, tt.want, listingIDs(got))
		})
	}
}

func TestPaginate_NilItems(t *testing.T) {
	got := Paginate(nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginate_PagesConcatenateToWhole(t *testing.T) {
	items := numberedListings(11)
	size := 4

	var combined []string
	for page := 0; page*size < len(items); page++ {
		combined = append(combined, listingIDs(Paginate(items, &page, &size))...)
	}
	assert.Equal(t, listingIDs(items), combined)
}
