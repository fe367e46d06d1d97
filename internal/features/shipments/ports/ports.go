package ports

import "shipment-tracker/internal/features/shipments/domain"

// ShipmentRepository is the secondary port over the shipment ledger.
// Every returned shipment is a copy owned by the caller.
type ShipmentRepository interface {
	// List returns every shipment in collection order.
	List() []domain.Shipment
	// Get looks a shipment up by shipment id.
	Get(shipmentID string) (domain.Shipment, error)
	// Find resolves a shipment id, order id or tracking number, in that order.
	Find(identifier string) (domain.Shipment, error)
	// Mutate runs fn against the stored shipment under an exclusive lock and
	// commits the result only when fn succeeds.
	Mutate(shipmentID string, fn func(*domain.Shipment) error) (domain.Shipment, error)
}
