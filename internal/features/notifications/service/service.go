package service

import (
	"context"
	"fmt"

	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/features/notifications/domain"
	"shipment-tracker/internal/features/notifications/ports"

	"go.uber.org/zap"
)

// NotificationServiceImpl implements ports.NotificationService.
type NotificationServiceImpl struct {
	shipments ports.ShipmentReader
	log       ports.NotificationLog
	clock     clock.Clock
	metrics   *metrics.Metrics
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(shipments ports.ShipmentReader, log ports.NotificationLog, clk clock.Clock, m *metrics.Metrics) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		shipments: shipments,
		log:       log,
		clock:     clk,
		metrics:   m,
	}
}

// Notify records a mock notification about an existing shipment.
func (s *NotificationServiceImpl) Notify(ctx context.Context, in ports.NotifyInput) (*ports.Receipt, error) {
	shipment, err := s.shipments.Get(in.ShipmentID)
	if err != nil {
		return nil, err
	}

	draft, err := domain.NewNotification(shipment.ShipmentID, in.Channel, in.Audience, in.Message, s.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := s.log.Append(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("service: failed to record notification: %w", err)
	}

	s.metrics.ObserveNotification(string(saved.Channel), string(saved.Audience))
	logger.Component("notifications").Info("Notification recorded",
		zap.String("id", saved.ID),
		zap.String("shipment_id", saved.ShipmentID),
		zap.String("channel", string(saved.Channel)),
		zap.String("audience", string(saved.Audience)),
	)

	recipient := domain.OpsRecipient
	if saved.Audience == domain.AudienceCustomer {
		recipient = domain.Recipient{
			Name:  shipment.Customer.Name,
			Email: shipment.Customer.Email,
			Phone: shipment.Customer.Phone,
		}
	}

	return &ports.Receipt{
		Notification: saved,
		Recipient:    recipient,
		Shipment:     shipment,
	}, nil
}

// List returns the recorded notifications, optionally for one shipment.
func (s *NotificationServiceImpl) List(ctx context.Context, shipmentID string) ([]domain.Notification, error) {
	entries, err := s.log.List(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list notifications: %w", err)
	}
	return entries, nil
}
