package ports

import (
	"context"

	"shipment-tracker/internal/features/notifications/domain"
	shipdomain "shipment-tracker/internal/features/shipments/domain"
)

// NotifyInput is a request to record one notification.
type NotifyInput struct {
	ShipmentID string
	Channel    domain.Channel
	Audience   domain.Audience
	Message    string
}

// Receipt is returned after a notification is recorded.
type Receipt struct {
	Notification domain.Notification
	Recipient    domain.Recipient
	Shipment     shipdomain.Shipment
}

// NotificationService defines the primary port for notification operations.
type NotificationService interface {
	Notify(ctx context.Context, in NotifyInput) (*Receipt, error)
	List(ctx context.Context, shipmentID string) ([]domain.Notification, error)
}

// NotificationLog defines the secondary port for notification storage.
type NotificationLog interface {
	// Append assigns the next sequential ID and stores n.
	Append(ctx context.Context, n domain.Notification) (domain.Notification, error)
	// List returns entries in append order; an empty shipmentID returns all.
	List(ctx context.Context, shipmentID string) ([]domain.Notification, error)
}

// ShipmentReader resolves the shipment a notification is about.
type ShipmentReader interface {
	Get(shipmentID string) (shipdomain.Shipment, error)
}
