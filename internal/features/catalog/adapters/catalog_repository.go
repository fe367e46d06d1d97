package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"shipment-tracker/data"
	"shipment-tracker/internal/features/catalog/domain"
)

// CatalogRepository implements ports.ProductRepository over a read-only product list.
// It is never mutated after construction, so it needs no locking.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewCatalogRepository indexes products by id.
func NewCatalogRepository(products []domain.Product) (*CatalogRepository, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ProductID == "" {
			return nil, fmt.Errorf("product %d: missing product_id", i)
		}
		if _, dup := byID[p.ProductID]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateProduct, p.ProductID)
		}
		if p.Category == nil {
			products[i].Category = []string{}
		}
		byID[p.ProductID] = i
	}
	return &CatalogRepository{products: products, byID: byID}, nil
}

// LoadCatalog reads the catalog from path, or the embedded catalog when path is empty.
func LoadCatalog(path string) (*CatalogRepository, error) {
	raw := data.Catalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		raw = b
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return NewCatalogRepository(products)
}

// All returns the products in catalog order.
func (r *CatalogRepository) All() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Get returns the product with the given id.
func (r *CatalogRepository) Get(productID string) (domain.Product, error) {
	i, ok := r.byID[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}
	return r.products[i], nil
}
