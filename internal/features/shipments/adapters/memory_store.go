package adapters

import (
	"fmt"
	"sync"

	"shipment-tracker/internal/features/shipments/domain"
)

// MemoryStore implements ports.ShipmentRepository over a slice with three unique indexes.
type MemoryStore struct {
	mu         sync.RWMutex
	shipments  []domain.Shipment
	byID       map[string]int
	byOrder    map[string]int
	byTracking map[string]int
}

// NewMemoryStore indexes shipments. Every identifier must be non-empty and unique
// across the collection.
func NewMemoryStore(shipments []domain.Shipment) (*MemoryStore, error) {
	s := &MemoryStore{
		shipments:  make([]domain.Shipment, len(shipments)),
		byID:       make(map[string]int, len(shipments)),
		byOrder:    make(map[string]int, len(shipments)),
		byTracking: make(map[string]int, len(shipments)),
	}

	for i, sh := range shipments {
		if err := index(s.byID, "shipment_id", sh.ShipmentID, i); err != nil {
			return nil, err
		}
		if err := index(s.byOrder, "order_id", sh.OrderID, i); err != nil {
			return nil, err
		}
		if err := index(s.byTracking, "tracking_number", sh.TrackingNumber, i); err != nil {
			return nil, err
		}
		s.shipments[i] = sh.Clone()
	}

	return s, nil
}

func index(m map[string]int, field, key string, pos int) error {
	if key == "" {
		return fmt.Errorf("%w: empty %s at position %d", domain.ErrDuplicateIdentifier, field, pos)
	}
	if prev, ok := m[key]; ok {
		return fmt.Errorf("%w: %s %q at positions %d and %d", domain.ErrDuplicateIdentifier, field, key, prev, pos)
	}
	m[key] = pos
	return nil
}

// Len returns the number of shipments.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shipments)
}

// List returns copies of every shipment in collection order.
func (s *MemoryStore) List() []domain.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Shipment, len(s.shipments))
	for i := range s.shipments {
		out[i] = s.shipments[i].Clone()
	}
	return out
}

// Get looks a shipment up by shipment id.
func (s *MemoryStore) Get(shipmentID string) (domain.Shipment, error) {
	return s.lookup(shipmentID, s.byID)
}

// GetByOrderID looks a shipment up by order id.
func (s *MemoryStore) GetByOrderID(orderID string) (domain.Shipment, error) {
	return s.lookup(orderID, s.byOrder)
}

// GetByTrackingNumber looks a shipment up by carrier tracking number.
func (s *MemoryStore) GetByTrackingNumber(trackingNumber string) (domain.Shipment, error) {
	return s.lookup(trackingNumber, s.byTracking)
}

// Find tries the shipment id, then the order id, then the tracking number.
func (s *MemoryStore) Find(identifier string) (domain.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, idx := range []map[string]int{s.byID, s.byOrder, s.byTracking} {
		if pos, ok := idx[identifier]; ok {
			return s.shipments[pos].Clone(), nil
		}
	}
	return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrShipmentNotFound, identifier)
}

func (s *MemoryStore) lookup(key string, idx map[string]int) (domain.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := idx[key]
	if !ok {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrShipmentNotFound, key)
	}
	return s.shipments[pos].Clone(), nil
}

// Mutate applies fn to a working copy under the write lock and swaps it in
// when fn succeeds and every identifier is unchanged.
func (s *MemoryStore) Mutate(shipmentID string, fn func(*domain.Shipment) error) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.byID[shipmentID]
	if !ok {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrShipmentNotFound, shipmentID)
	}

	current := s.shipments[pos]
	working := current.Clone()
	if err := fn(&working); err != nil {
		return domain.Shipment{}, err
	}

	if working.ShipmentID != current.ShipmentID ||
		working.OrderID != current.OrderID ||
		working.TrackingNumber != current.TrackingNumber {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrIdentifierChanged, shipmentID)
	}

	s.shipments[pos] = working
	return working.Clone(), nil
}
