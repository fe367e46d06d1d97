package ports

import "shipment-tracker/internal/features/catalog/domain"

// CatalogService defines the primary port for catalog operations.
type CatalogService interface {
	Lookup(productID string) (domain.Product, error)
	Search(filter domain.SearchFilter) []domain.Product
}

// ProductRepository defines the secondary port for catalog storage.
type ProductRepository interface {
	All() []domain.Product
	Get(productID string) (domain.Product, error)
}
