package adapters

import (
	"context"
	"sync"

	"shipment-tracker/internal/features/notifications/domain"
)

// MemoryLog implements ports.NotificationLog in process memory.
type MemoryLog struct {
	mu      sync.RWMutex
	seq     int
	entries []domain.Notification
}

// NewMemoryLog creates an empty log; IDs start at NOTIF-0001.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Append(_ context.Context, n domain.Notification) (domain.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	n.ID = domain.FormatID(l.seq)
	l.entries = append(l.entries, n)
	return n, nil
}

func (l *MemoryLog) List(_ context.Context, shipmentID string) ([]domain.Notification, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Notification, 0, len(l.entries))
	for _, n := range l.entries {
		if shipmentID == "" || n.ShipmentID == shipmentID {
			out = append(out, n)
		}
	}
	return out, nil
}
