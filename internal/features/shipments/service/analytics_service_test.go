package service

import (
	"testing"

	"shipment-tracker/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_CarrierPerformance_Snapshot(t *testing.T) {
	store := newSnapshotStore(t)
	svc := NewAnalyticsService(store)

	report, err := svc.CarrierPerformance("")
	require.NoError(t, err)

	assert.Equal(t, []domain.CarrierStats{
		{Carrier: domain.CarrierRoyalMail, TotalShipments: 5, Delivered: 2, OnTimeRate: 100, AvgTransitDays: 2.5, DelayCount: 1},
		{Carrier: domain.CarrierDPD, TotalShipments: 6, Delivered: 1, OnTimeRate: 0, AvgTransitDays: 4, DelayCount: 1, ExceptionCount: 1},
		{Carrier: domain.CarrierHermesEvri, TotalShipments: 4, Delivered: 1, OnTimeRate: 100, AvgTransitDays: 3, DelayCount: 1, ExceptionCount: 1},
		{Carrier: domain.CarrierDHL, TotalShipments: 5, Delivered: 1, OnTimeRate: 0, AvgTransitDays: 4, ExceptionCount: 1},
		{Carrier: domain.CarrierFedEx, TotalShipments: 4, Delivered: 1, OnTimeRate: 100, AvgTransitDays: 2},
	}, report.Carriers)

	assert.Equal(t, store.Len(), report.Summary.TotalShipments)
	assert.Equal(t, domain.CarrierSummary{TotalShipments: 24, TotalDelivered: 6, TotalDelays: 3, TotalExceptions: 3}, report.Summary)
}

func TestAnalyticsService_CarrierPerformance_Filter(t *testing.T) {
	svc := NewAnalyticsService(newSnapshotStore(t))

	report, err := svc.CarrierPerformance("FedEx")
	require.NoError(t, err)
	require.Len(t, report.Carriers, 1)
	assert.Equal(t, domain.CarrierFedEx, report.Carriers[0].Carrier)

	_, err = svc.CarrierPerformance("UPS")
	assert.ErrorIs(t, err, domain.ErrInvalidCarrier)
}

func TestAnalyticsService_CarrierPerformance_Empty(t *testing.T) {
	repo := new(MockShipmentRepository)
	repo.On("List").Return([]domain.Shipment{})
	svc := NewAnalyticsService(repo)

	report, err := svc.CarrierPerformance("DHL")
	require.NoError(t, err)
	assert.Empty(t, report.Carriers)
	assert.Equal(t, domain.CarrierSummary{}, report.Summary)
	repo.AssertExpectations(t)
}

func TestSearchService_Search(t *testing.T) {
	svc := NewSearchService(newSnapshotStore(t))

	results := svc.Search(domain.SearchFilter{Status: domain.StatusInTransit, Carrier: domain.CarrierDHL})
	ids := make([]string, len(results))
	for i, s := range results {
		ids[i] = s.ShipmentID
	}
	assert.Equal(t, []string{"SHP-010", "SHP-022"}, ids)

	yes := true
	gifts := svc.Search(domain.SearchFilter{Gift: &yes, Limit: 2})
	assert.Len(t, gifts, 2)

	repo := new(MockShipmentRepository)
	repo.On("List").Return([]domain.Shipment(nil)).Once()
	assert.Empty(t, NewSearchService(repo).Search(domain.SearchFilter{}))
	repo.AssertExpectations(t)
}
