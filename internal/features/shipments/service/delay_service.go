package service

import (
	"time"

	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"
)

// DelayReport is the outcome of one classifier run.
type DelayReport struct {
	ReferenceTime time.Time
	TotalFlagged  int
	BySeverity    domain.SeverityCounts
	Shipments     []domain.DelayedShipment
}

// DelayService classifies the ledger against a reference clock.
type DelayService struct {
	repo    ports.ShipmentRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

// NewDelayService creates a new DelayService. clk supplies the reference instant.
func NewDelayService(repo ports.ShipmentRepository, clk clock.Clock, m *metrics.Metrics) *DelayService {
	return &DelayService{
		repo:    repo,
		clock:   clk,
		metrics: m,
	}
}

// Detect classifies every shipment and publishes the per-tier counts.
func (s *DelayService) Detect(opts domain.ClassifyOptions) DelayReport {
	now := s.clock.Now()
	results := domain.Classify(s.repo.List(), now, opts)
	counts := domain.CountSeverities(results)

	s.metrics.SetFlagged(counts.Map())

	return DelayReport{
		ReferenceTime: now,
		TotalFlagged:  len(results),
		BySeverity:    counts,
		Shipments:     results,
	}
}
