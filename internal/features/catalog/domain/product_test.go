package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func testCatalog() []Product {
	return []Product{
		{ProductID: "1", ProductName: "Sparkling Stars Ring", Price: price(65), Material: "Sterling silver",
			Description: "A celestial ring", PrimaryCategory: "Rings", Category: []string{"Rings", "Pandora Timeless", "Stacking rings"}},
		{ProductID: "2", ProductName: "Snake Chain Bracelet", Price: price(55), Material: "Sterling silver",
			Description: "Ready for charms", PrimaryCategory: "Bracelets", Category: []string{"Bracelets", "Pandora Moments"}},
		{ProductID: "3", ProductName: "Halo Solitaire Ring", Price: nil, Material: "White gold",
			Description: "Lab-grown diamond", PrimaryCategory: "Rings", Category: []string{"Rings"}},
		{ProductID: "4", ProductName: "Logo Ring", Price: price(90), Material: "Gold plated",
			Description: "Signature logo", PrimaryCategory: "Rings", Category: []string{"Rings", "Pandora Signature", "Pandora Moments"}},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ProductID
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{"No filters", SearchFilter{}, []string{"1", "2", "3", "4"}},
		{"Material exact", SearchFilter{Material: "Sterling silver"}, []string{"1", "2"}},
		{"Material is case-sensitive", SearchFilter{Material: "sterling silver"}, []string{}},
		{"Collection tag", SearchFilter{Collection: "Pandora Moments"}, []string{"2", "4"}},
		{"Category substring on tags", SearchFilter{Category: "stacking"}, []string{"1"}},
		{"Category substring on primary", SearchFilter{Category: "RING"}, []string{"1", "3", "4"}},
		{"Min price excludes unpriced", SearchFilter{MinPrice: price(60)}, []string{"1", "4"}},
		{"Max price excludes unpriced", SearchFilter{MaxPrice: price(60)}, []string{"2"}},
		{"Query on name", SearchFilter{Query: "logo"}, []string{"4"}},
		{"Query on description", SearchFilter{Query: "DIAMOND"}, []string{"3"}},
		{"Limit stops early", SearchFilter{Category: "rings", Limit: 2}, []string{"1", "3"}},
		{"Combined", SearchFilter{Category: "rings", MaxPrice: price(70)}, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Search(testCatalog(), tt.filter)))
		})
	}
}

func TestSearch_LimitBounds(t *testing.T) {
	many := make([]Product, 60)
	for i := range many {
		many[i] = Product{ProductID: string(rune('a' + i%26)), Category: []string{}}
	}

	assert.Len(t, Search(many, SearchFilter{}), DefaultSearchLimit)
	assert.Len(t, Search(many, SearchFilter{Limit: 100}), MaxSearchLimit)
}

func TestDetectCollection(t *testing.T) {
	c := testCatalog()

	col, ok := DetectCollection(c[0])
	assert.True(t, ok)
	assert.Equal(t, "Pandora Timeless", col)

	// Priority follows the collection list, not tag order.
	col, ok = DetectCollection(c[3])
	assert.True(t, ok)
	assert.Equal(t, "Pandora Moments", col)

	_, ok = DetectCollection(c[2])
	assert.False(t, ok)
}
