package service

import (
	"shipment-tracker/internal/features/catalog/domain"
	"shipment-tracker/internal/features/catalog/ports"
)

// CatalogServiceImpl implements ports.CatalogService.
type CatalogServiceImpl struct {
	repo ports.ProductRepository
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(repo ports.ProductRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo: repo,
	}
}

// Lookup returns a single product.
func (s *CatalogServiceImpl) Lookup(productID string) (domain.Product, error) {
	return s.repo.Get(productID)
}

// Search filters the catalog.
func (s *CatalogServiceImpl) Search(filter domain.SearchFilter) []domain.Product {
	return domain.Search(s.repo.All(), filter)
}
