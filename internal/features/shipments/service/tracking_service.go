package service

import (
	"errors"
	"fmt"

	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// Transition outcomes recorded on the status transition counter.
const (
	outcomeApplied  = "applied"
	outcomeRejected = "rejected"
	outcomeNotFound = "not_found"
)

// TrackingService resolves shipments and applies validated status transitions.
type TrackingService struct {
	repo    ports.ShipmentRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

// NewTrackingService creates a new TrackingService. clk stamps new tracking events.
func NewTrackingService(repo ports.ShipmentRepository, clk clock.Clock, m *metrics.Metrics) *TrackingService {
	return &TrackingService{
		repo:    repo,
		clock:   clk,
		metrics: m,
	}
}

// Track resolves a shipment id, order id or tracking number.
func (s *TrackingService) Track(identifier string) (domain.Shipment, error) {
	return s.repo.Find(identifier)
}

// UpdateStatusInput is a requested transition. Location and Notes are optional.
type UpdateStatusInput struct {
	ShipmentID string
	Status     string
	Location   string
	Notes      string
}

// UpdateStatusResult is the outcome of a successful transition.
type UpdateStatusResult struct {
	Shipment       domain.Shipment
	Event          domain.TrackingEvent
	PreviousStatus domain.Status
}

// UpdateStatus validates and applies a transition. The lookup, the check and
// the write happen atomically with respect to other updates.
func (s *TrackingService) UpdateStatus(in UpdateStatusInput) (*UpdateStatusResult, error) {
	to, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var (
		from  domain.Status
		event domain.TrackingEvent
	)
	updated, err := s.repo.Mutate(in.ShipmentID, func(sh *domain.Shipment) error {
		from = sh.Status
		ev, err := sh.ApplyTransition(to, s.clock.Now(), in.Location, in.Notes)
		if err != nil {
			return err
		}
		event = ev
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrShipmentNotFound):
		s.metrics.ObserveTransition("unknown", string(to), outcomeNotFound)
		return nil, err
	case errors.Is(err, domain.ErrInvalidTransition):
		s.metrics.ObserveTransition(string(from), string(to), outcomeRejected)
		return nil, err
	default:
		return nil, fmt.Errorf("service: failed to update shipment %s: %w", in.ShipmentID, err)
	}

	s.metrics.ObserveTransition(string(from), string(to), outcomeApplied)
	logger.Component("shipments").Info("Shipment status updated",
		zap.String("shipment_id", updated.ShipmentID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)

	return &UpdateStatusResult{
		Shipment:       updated,
		Event:          event,
		PreviousStatus: from,
	}, nil
}
