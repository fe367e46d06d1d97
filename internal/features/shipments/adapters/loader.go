package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"shipment-tracker/data"
	"shipment-tracker/internal/features/shipments/domain"
)

// LoadSnapshot reads the shipment snapshot from path, or the embedded one when path is empty.
func LoadSnapshot(path string) ([]domain.Shipment, error) {
	raw := data.Shipments
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read shipment snapshot: %w", err)
		}
		raw = b
	}
	return DecodeSnapshot(raw)
}

// DecodeSnapshot parses a JSON array of shipments and checks statuses and carriers.
func DecodeSnapshot(raw []byte) ([]domain.Shipment, error) {
	var shipments []domain.Shipment
	if err := json.Unmarshal(raw, &shipments); err != nil {
		return nil, fmt.Errorf("failed to decode shipment snapshot: %w", err)
	}

	for i, s := range shipments {
		if _, err := domain.ParseStatus(string(s.Status)); err != nil {
			return nil, fmt.Errorf("shipment %d (%s): %w", i, s.ShipmentID, err)
		}
		if _, err := domain.ParseCarrier(string(s.Carrier)); err != nil {
			return nil, fmt.Errorf("shipment %d (%s): %w", i, s.ShipmentID, err)
		}
		if s.Dates.Ordered == "" {
			return nil, fmt.Errorf("shipment %d (%s): missing dates.ordered", i, s.ShipmentID)
		}
	}

	return shipments, nil
}

// NewStoreFromSnapshot loads a snapshot and indexes it.
func NewStoreFromSnapshot(path string) (*MemoryStore, error) {
	shipments, err := LoadSnapshot(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(shipments)
}
