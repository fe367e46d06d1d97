package service

import (
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"
)

// CarrierReport is the per-carrier breakdown plus totals.
type CarrierReport struct {
	Carriers []domain.CarrierStats
	Summary  domain.CarrierSummary
}

// AnalyticsService aggregates carrier performance.
type AnalyticsService struct {
	repo ports.ShipmentRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo ports.ShipmentRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// CarrierPerformance aggregates every carrier, or only carrier when it is non-empty.
// An empty result is not an error.
func (s *AnalyticsService) CarrierPerformance(carrier string) (CarrierReport, error) {
	var filter domain.Carrier
	if carrier != "" {
		c, err := domain.ParseCarrier(carrier)
		if err != nil {
			return CarrierReport{}, err
		}
		filter = c
	}

	stats := domain.AggregateCarriers(s.repo.List(), filter)
	return CarrierReport{
		Carriers: stats,
		Summary:  domain.SummarizeCarriers(stats),
	}, nil
}
