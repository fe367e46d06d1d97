package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/features/shipments/adapters"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceNow = time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := adapters.NewStoreFromSnapshot("")
	require.NoError(t, err)

	ref := clock.Fixed{At: referenceNow}
	h := NewShipmentHandler(
		service.NewTrackingService(store, clock.Fixed{At: referenceNow.Add(48 * time.Hour)}, nil),
		service.NewDelayService(store, ref, nil),
		service.NewAnalyticsService(store),
		service.NewSearchService(store),
	)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/shipments", h.SearchShipments)
	app.Get("/shipments/delayed", h.DetectDelayed)
	app.Get("/shipments/:identifier", h.TrackShipment)
	app.Patch("/shipments/:id/status", h.UpdateStatus)
	app.Get("/carriers/performance", h.CarrierPerformance)
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out interface{}) int {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func patchStatus(id, body string) *http.Request {
	req := httptest.NewRequest("PATCH", "/shipments/"+id+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSearchShipments(t *testing.T) {
	app := setupApp(t)

	t.Run("Default limit", func(t *testing.T) {
		var res SearchResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments", nil), &res)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, domain.DefaultSearchLimit, res.TotalResults)
		assert.Equal(t, "SHP-001", res.Shipments[0].ShipmentID)
	})

	t.Run("Carrier with space", func(t *testing.T) {
		var res SearchResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments?carrier=Royal%20Mail&limit=75", nil), &res)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 5, res.TotalResults)
		for _, s := range res.Shipments {
			assert.Equal(t, domain.CarrierRoyalMail, s.Carrier)
		}
	})

	t.Run("Gift orders", func(t *testing.T) {
		var res SearchResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments?gift=true", nil), &res)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 6, res.TotalResults)
	})

	t.Run("Invalid parameters", func(t *testing.T) {
		var res httperr.ErrorResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments?status=lost&limit=100&date_from=28-02-2026", nil), &res)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "test-ray-id", res.RayID)
		assert.Contains(t, res.Fields, "status")
		assert.Contains(t, res.Fields, "limit")
		assert.Contains(t, res.Fields, "date_from")
	})
}

func TestDetectDelayed(t *testing.T) {
	app := setupApp(t)

	t.Run("All signals", func(t *testing.T) {
		var res DelayedResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments/delayed", nil), &res)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 10, res.TotalFlagged)
		assert.Equal(t, domain.SeverityCounts{Critical: 3, High: 5, Medium: 2}, res.BySeverity)
		assert.Equal(t, "2026-02-28T12:00:00Z", res.ReferenceTime)
		assert.Equal(t, domain.SeverityCritical, res.Shipments[0].Severity)

		var gift DelayedShipment
		for _, s := range res.Shipments {
			if s.ShipmentID == "SHP-009" {
				gift = s
			}
		}
		assert.True(t, gift.IsGift)
		assert.Equal(t, "[GIFT ORDER] No tracking update for 50 hours", gift.Reason)
	})

	t.Run("Critical only", func(t *testing.T) {
		var res DelayedResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments/delayed?severity_threshold=critical", nil), &res)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 3, res.TotalFlagged)
		for _, s := range res.Shipments {
			assert.Equal(t, domain.SeverityCritical, s.Severity)
		}
	})

	t.Run("Without at-risk signals", func(t *testing.T) {
		var res DelayedResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments/delayed?include_at_risk=false", nil), &res)
		require.Equal(t, http.StatusOK, code)
		assert.Less(t, res.TotalFlagged, 10)
	})

	t.Run("Unknown severity", func(t *testing.T) {
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments/delayed?severity_threshold=urgent", nil), nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestTrackShipment(t *testing.T) {
	app := setupApp(t)

	for _, id := range []string{"SHP-001", "ORD-10001", "RM100007919GB"} {
		var s domain.Shipment
		code := doJSON(t, app, httptest.NewRequest("GET", "/shipments/"+id, nil), &s)
		assert.Equal(t, http.StatusOK, code, id)
		assert.Equal(t, "SHP-001", s.ShipmentID, id)
	}

	var nf NotFoundResponse
	code := doJSON(t, app, httptest.NewRequest("GET", "/shipments/SHP-999", nil), &nf)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "SHP-999", nf.Identifier)
	assert.Contains(t, nf.Suggestion, "SHP-XXX")
	assert.Equal(t, "test-ray-id", nf.RayID)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Valid transition", func(t *testing.T) {
		app := setupApp(t)

		var res UpdateStatusResponse
		code := doJSON(t, app, patchStatus("SHP-010", `{"status":"out_for_delivery","location":"Leeds depot"}`), &res)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "updated", res.Status)
		assert.Equal(t, domain.StatusInTransit, res.PreviousStatus)
		assert.Equal(t, domain.StatusOutForDelivery, res.Shipment.Status)
		assert.Equal(t, "Leeds depot", res.NewEvent.Location)
		assert.Equal(t, "2026-03-02T12:00:00Z", res.NewEvent.Timestamp)

		var tracked domain.Shipment
		doJSON(t, app, httptest.NewRequest("GET", "/shipments/SHP-010", nil), &tracked)
		assert.Equal(t, domain.StatusOutForDelivery, tracked.Status)
		assert.Equal(t, res.NewEvent, tracked.TrackingEvents[len(tracked.TrackingEvents)-1])
	})

	t.Run("Terminal status", func(t *testing.T) {
		app := setupApp(t)

		var res InvalidTransitionResponse
		code := doJSON(t, app, patchStatus("SHP-017", `{"status":"in_transit"}`), &res)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, domain.StatusReturned, res.CurrentStatus)
		assert.Equal(t, domain.StatusInTransit, res.RequestedStatus)
		assert.NotNil(t, res.AllowedTransitions)
		assert.Empty(t, res.AllowedTransitions)
	})

	t.Run("Unknown shipment", func(t *testing.T) {
		app := setupApp(t)
		code := doJSON(t, app, patchStatus("SHP-999", `{"status":"delivered"}`), nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("Invalid body", func(t *testing.T) {
		app := setupApp(t)

		var res httperr.ErrorResponse
		code := doJSON(t, app, patchStatus("SHP-010", `{"status":"lost"}`), &res)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, res.Fields, "status")

		code = doJSON(t, app, patchStatus("SHP-010", `{}`), &res)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "is required", res.Fields["status"])

		code = doJSON(t, app, patchStatus("SHP-010", `{"status":`), nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestCarrierPerformance(t *testing.T) {
	app := setupApp(t)

	t.Run("All carriers", func(t *testing.T) {
		var res PerformanceResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/carriers/performance", nil), &res)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, res.Carriers, 5)
		assert.Equal(t, domain.CarrierRoyalMail, res.Carriers[0].Carrier)
		assert.Equal(t, 24, res.Summary.TotalShipments)
		assert.Equal(t, 6, res.Summary.TotalDelivered)
	})

	t.Run("Single carrier", func(t *testing.T) {
		var res PerformanceResponse
		code := doJSON(t, app, httptest.NewRequest("GET", "/carriers/performance?carrier=DHL", nil), &res)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, res.Carriers, 1)
		assert.Equal(t, 5, res.Carriers[0].TotalShipments)
		assert.Equal(t, 0, res.Carriers[0].OnTimeRate)
	})

	t.Run("Unknown carrier", func(t *testing.T) {
		code := doJSON(t, app, httptest.NewRequest("GET", "/carriers/performance?carrier=UPS", nil), nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
