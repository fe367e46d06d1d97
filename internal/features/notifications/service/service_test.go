package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/features/notifications/adapters"
	"shipment-tracker/internal/features/notifications/domain"
	"shipment-tracker/internal/features/notifications/ports"
	shipdomain "shipment-tracker/internal/features/shipments/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShipmentReader is a mock implementation of ports.ShipmentReader.
type MockShipmentReader struct {
	mock.Mock
}

func (m *MockShipmentReader) Get(id string) (shipdomain.Shipment, error) {
	args := m.Called(id)
	return args.Get(0).(shipdomain.Shipment), args.Error(1)
}

// MockNotificationLog is a mock implementation of ports.NotificationLog.
type MockNotificationLog struct {
	mock.Mock
}

func (m *MockNotificationLog) Append(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *MockNotificationLog) List(ctx context.Context, shipmentID string) ([]domain.Notification, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

var now = time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

func giftShipment() shipdomain.Shipment {
	return shipdomain.Shipment{
		ShipmentID: "SHP-003",
		OrderID:    "ORD-10003",
		Status:     shipdomain.StatusException,
		Carrier:    shipdomain.CarrierHermesEvri,
		Customer:   shipdomain.Customer{Name: "Amelia Hart", Email: "amelia@example.com", Phone: "+44 7700 900123"},
		Flags:      shipdomain.Flags{Gift: true},
	}
}

func TestNotificationService_Notify(t *testing.T) {
	t.Run("Customer", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		m := metrics.New("test")
		svc := NewNotificationService(shipments, adapters.NewMemoryLog(), clock.Fixed{At: now}, m)

		shipments.On("Get", "SHP-003").Return(giftShipment(), nil).Once()

		receipt, err := svc.Notify(context.Background(), ports.NotifyInput{
			ShipmentID: "SHP-003",
			Channel:    domain.ChannelEmail,
			Audience:   domain.AudienceCustomer,
			Message:    "Sorry for the delay",
		})
		require.NoError(t, err)
		assert.Equal(t, "NOTIF-0001", receipt.Notification.ID)
		assert.Equal(t, "2026-02-28T12:00:00Z", receipt.Notification.Timestamp)
		assert.Equal(t, "amelia@example.com", receipt.Recipient.Email)
		assert.Empty(t, receipt.Recipient.Team)
		assert.True(t, receipt.Shipment.Flags.Gift)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsSent.WithLabelValues("email", "customer")))
		shipments.AssertExpectations(t)
	})

	t.Run("Ops", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		svc := NewNotificationService(shipments, adapters.NewMemoryLog(), clock.Fixed{At: now}, nil)

		shipments.On("Get", "SHP-003").Return(giftShipment(), nil).Once()

		receipt, err := svc.Notify(context.Background(), ports.NotifyInput{
			ShipmentID: "SHP-003",
			Channel:    domain.ChannelInternal,
			Audience:   domain.AudienceOps,
			Message:    "Chase Hermes",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OpsRecipient, receipt.Recipient)
	})

	t.Run("ShipmentNotFound", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		log := new(MockNotificationLog)
		svc := NewNotificationService(shipments, log, clock.Fixed{At: now}, nil)

		shipments.On("Get", "SHP-999").Return(shipdomain.Shipment{}, fmt.Errorf("%w: SHP-999", shipdomain.ErrShipmentNotFound)).Once()

		_, err := svc.Notify(context.Background(), ports.NotifyInput{ShipmentID: "SHP-999", Channel: domain.ChannelSMS, Audience: domain.AudienceOps, Message: "x"})
		assert.ErrorIs(t, err, shipdomain.ErrShipmentNotFound)
		log.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("InvalidChannel", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		log := new(MockNotificationLog)
		svc := NewNotificationService(shipments, log, clock.Fixed{At: now}, nil)

		shipments.On("Get", "SHP-003").Return(giftShipment(), nil).Once()

		_, err := svc.Notify(context.Background(), ports.NotifyInput{ShipmentID: "SHP-003", Channel: "fax", Audience: domain.AudienceOps, Message: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidChannel)
		log.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("LogFailure", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		log := new(MockNotificationLog)
		svc := NewNotificationService(shipments, log, clock.Fixed{At: now}, nil)

		shipments.On("Get", "SHP-003").Return(giftShipment(), nil).Once()
		log.On("Append", mock.Anything, mock.Anything).Return(domain.Notification{}, errors.New("disk full")).Once()

		_, err := svc.Notify(context.Background(), ports.NotifyInput{ShipmentID: "SHP-003", Channel: domain.ChannelSMS, Audience: domain.AudienceOps, Message: "x"})
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestNotificationService_List(t *testing.T) {
	log := new(MockNotificationLog)
	svc := NewNotificationService(new(MockShipmentReader), log, clock.Fixed{At: now}, nil)

	log.On("List", mock.Anything, "SHP-001").Return([]domain.Notification{{ID: "NOTIF-0001"}}, nil).Once()
	log.On("List", mock.Anything, "").Return(nil, errors.New("unavailable")).Once()

	entries, err := svc.List(context.Background(), "SHP-001")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.List(context.Background(), "")
	assert.Error(t, err)
	log.AssertExpectations(t)
}
