package service

import (
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"
)

// SearchService filters the ledger.
type SearchService struct {
	repo ports.ShipmentRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(repo ports.ShipmentRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search returns matching shipments in collection order.
func (s *SearchService) Search(f domain.SearchFilter) []domain.Shipment {
	return domain.Search(s.repo.List(), f)
}
