package domain

import (
	"errors"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// Product is one catalog entry. Price is nil when the product has no list price.
type Product struct {
	ProductID       string   `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Price           *float64 `json:"price"`
	Material        string   `json:"material"`
	Description     string   `json:"description"`
	PrimaryCategory string   `json:"primary_category"`
	Category        []string `json:"category"`
}

// Materials lists the accepted material filter values.
var Materials = []string{
	"Gold",
	"Gold plated",
	"Grey",
	"No metal",
	"Rose gold plated",
	"Ruthenium plated",
	"Sterling silver",
	"Tri-tone",
	"Two-tone",
	"White gold",
}

// Collections lists the named collections in detection priority order.
var Collections = []string{
	"Pandora Moments",
	"Pandora ME",
	"Pandora Timeless",
	"Pandora Signature",
	"Pandora Disney",
}

// DetectCollection returns the first known collection tagged on the product.
func DetectCollection(p Product) (string, bool) {
	for _, col := range Collections {
		for _, tag := range p.Category {
			if tag == col {
				return col, true
			}
		}
	}
	return "", false
}

// SearchFilter narrows a catalog search. Empty fields do not filter.
type SearchFilter struct {
	Query      string
	Material   string
	Category   string
	Collection string
	MinPrice   *float64
	MaxPrice   *float64
	Limit      int
}

// Matches reports whether p passes every set filter.
func (f SearchFilter) Matches(p Product) bool {
	if f.Material != "" && p.Material != f.Material {
		return false
	}
	if f.Collection != "" && !hasTag(p.Category, f.Collection) {
		return false
	}
	if f.Category != "" {
		needle := strings.ToLower(f.Category)
		if !strings.Contains(strings.ToLower(p.PrimaryCategory), needle) && !anyTagContains(p.Category, needle) {
			return false
		}
	}
	// Price bounds exclude unpriced products.
	if f.MinPrice != nil && (p.Price == nil || *p.Price < *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && (p.Price == nil || *p.Price > *f.MaxPrice) {
		return false
	}
	if f.Query != "" {
		needle := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.ProductName), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}

// Search returns matching products in catalog order, stopping at the limit.
func Search(products []Product, f SearchFilter) []Product {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	out := []Product{}
	for _, p := range products {
		if !f.Matches(p) {
			continue
		}
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func anyTagContains(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
