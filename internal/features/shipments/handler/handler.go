package handler

import (
	"errors"

	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/validation"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/service"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const identifierHint = "Use a shipment ID (SHP-XXX), order ID (ORD-XXXXX), or tracking number."

// ShipmentHandler handles HTTP requests for the shipment ledger.
type ShipmentHandler struct {
	tracking  *service.TrackingService
	delays    *service.DelayService
	analytics *service.AnalyticsService
	search    *service.SearchService
	validate  *validatorv10.Validate
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(
	tracking *service.TrackingService,
	delays *service.DelayService,
	analytics *service.AnalyticsService,
	search *service.SearchService,
) *ShipmentHandler {
	return &ShipmentHandler{
		tracking:  tracking,
		delays:    delays,
		analytics: analytics,
		search:    search,
		validate:  NewValidator(),
	}
}

// NewValidator returns a validator that knows the shipment enums.
func NewValidator() *validatorv10.Validate {
	return validation.New(
		validation.Enum{Tag: "shipment_status", Allowed: domain.StatusNames()},
		validation.Enum{Tag: "carrier", Allowed: domain.CarrierNames()},
		validation.Enum{Tag: "severity", Allowed: domain.SeverityNames()},
	)
}

// SearchQuery are the query parameters of GET /shipments.
type SearchQuery struct {
	Status            string `query:"status" validate:"omitempty,shipment_status"`
	Carrier           string `query:"carrier" validate:"omitempty,carrier"`
	CustomerEmail     string `query:"customer_email" validate:"omitempty,email"`
	DateFrom          string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo            string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Gift              *bool  `query:"gift"`
	SignatureRequired *bool  `query:"signature_required"`
	Limit             int    `query:"limit" validate:"omitempty,min=1,max=75"`
}

// SearchResponse is returned by GET /shipments.
type SearchResponse struct {
	TotalResults int               `json:"total_results"`
	Shipments    []domain.Shipment `json:"shipments"`
}

// SearchShipments godoc
// @Summary Search shipments
// @Description Filters the ledger by status, carrier, customer email, order date range and flags. Results keep ledger order.
// @Tags shipments
// @Produce json
// @Param status query string false "Shipment status"
// @Param carrier query string false "Carrier (Royal Mail, DPD, Hermes/Evri, DHL, FedEx)"
// @Param customer_email query string false "Customer email (case-insensitive)"
// @Param date_from query string false "Earliest order date (YYYY-MM-DD)"
// @Param date_to query string false "Latest order date (YYYY-MM-DD)"
// @Param gift query bool false "Gift orders only"
// @Param signature_required query bool false "Signature-required only"
// @Param limit query int false "Max results (1-75, default 20)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Router /shipments [get]
func (h *ShipmentHandler) SearchShipments(c *fiber.Ctx) error {
	var q SearchQuery
	if err := validation.Query(c, &q, h.validate); err != nil {
		return writeValidation(c, err)
	}

	results := h.search.Search(domain.SearchFilter{
		Status:            domain.Status(q.Status),
		Carrier:           domain.Carrier(q.Carrier),
		CustomerEmail:     q.CustomerEmail,
		DateFrom:          q.DateFrom,
		DateTo:            q.DateTo,
		Gift:              q.Gift,
		SignatureRequired: q.SignatureRequired,
		Limit:             q.Limit,
	})

	return c.JSON(SearchResponse{
		TotalResults: len(results),
		Shipments:    results,
	})
}

// DelayedQuery are the query parameters of GET /shipments/delayed.
type DelayedQuery struct {
	IncludeAtRisk     *bool  `query:"include_at_risk"`
	SeverityThreshold string `query:"severity_threshold" validate:"omitempty,severity"`
}

// DelayedShipment is the flattened view of one classified shipment.
type DelayedShipment struct {
	ShipmentID        string          `json:"shipment_id"`
	OrderID           string          `json:"order_id"`
	Status            domain.Status   `json:"status"`
	Carrier           domain.Carrier  `json:"carrier"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	Severity          domain.Severity `json:"severity"`
	Reason            string          `json:"reason"`
	DaysOverdue       int             `json:"days_overdue"`
	IsGift            bool            `json:"is_gift"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	DelayReason       string          `json:"delay_reason,omitempty"`
}

// DelayedResponse is returned by GET /shipments/delayed.
type DelayedResponse struct {
	ReferenceTime string                `json:"reference_time"`
	TotalFlagged  int                   `json:"total_flagged"`
	BySeverity    domain.SeverityCounts `json:"by_severity"`
	Shipments     []DelayedShipment     `json:"shipments"`
}

// DetectDelayed godoc
// @Summary Detect delayed and at-risk shipments
// @Description Classifies every shipment by severity (critical, high, medium, low), most severe first.
// @Tags shipments
// @Produce json
// @Param include_at_risk query bool false "Include stale-tracking and missed-ETA signals (default true)"
// @Param severity_threshold query string false "Minimum severity (default low)"
// @Success 200 {object} DelayedResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Router /shipments/delayed [get]
func (h *ShipmentHandler) DetectDelayed(c *fiber.Ctx) error {
	var q DelayedQuery
	if err := validation.Query(c, &q, h.validate); err != nil {
		return writeValidation(c, err)
	}

	opts := domain.ClassifyOptions{IncludeAtRisk: true, Threshold: domain.SeverityLow}
	if q.IncludeAtRisk != nil {
		opts.IncludeAtRisk = *q.IncludeAtRisk
	}
	if q.SeverityThreshold != "" {
		opts.Threshold = domain.Severity(q.SeverityThreshold)
	}

	report := h.delays.Detect(opts)

	out := make([]DelayedShipment, len(report.Shipments))
	for i, r := range report.Shipments {
		s := r.Shipment
		out[i] = DelayedShipment{
			ShipmentID:        s.ShipmentID,
			OrderID:           s.OrderID,
			Status:            s.Status,
			Carrier:           s.Carrier,
			CustomerName:      s.Customer.Name,
			CustomerEmail:     s.Customer.Email,
			Severity:          r.Severity,
			Reason:            r.Reason,
			DaysOverdue:       r.DaysOverdue,
			IsGift:            s.Flags.Gift,
			EstimatedDelivery: s.Dates.EstimatedDelivery,
			DelayReason:       s.DelayReason,
		}
	}

	return c.JSON(DelayedResponse{
		ReferenceTime: report.ReferenceTime.UTC().Format("2006-01-02T15:04:05Z07:00"),
		TotalFlagged:  report.TotalFlagged,
		BySeverity:    report.BySeverity,
		Shipments:     out,
	})
}

// NotFoundResponse adds the identifier and a format hint to the error envelope.
type NotFoundResponse struct {
	httperr.ErrorResponse
	Identifier string `json:"identifier"`
	Suggestion string `json:"suggestion"`
}

// TrackShipment godoc
// @Summary Track a shipment
// @Description Resolves a shipment ID, order ID or tracking number and returns the full record.
// @Tags shipments
// @Produce json
// @Param identifier path string true "Shipment ID, order ID or tracking number"
// @Success 200 {object} domain.Shipment
// @Failure 404 {object} NotFoundResponse
// @Router /shipments/{identifier} [get]
func (h *ShipmentHandler) TrackShipment(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	shipment, err := h.tracking.Track(identifier)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(NotFoundResponse{
				ErrorResponse: httperr.ErrorResponse{
					Message: "shipment not found",
					RayID:   httperr.RayID(c),
				},
				Identifier: identifier,
				Suggestion: "Check the identifier format. " + identifierHint,
			})
		}
		return writeInternal(c, "Failed to track shipment", err)
	}

	return c.JSON(shipment)
}

// UpdateStatusRequest is the body of PATCH /shipments/{id}/status.
type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,shipment_status"`
	Location string `json:"location" validate:"max=200"`
	Notes    string `json:"notes" validate:"max=500"`
}

// UpdateStatusResponse is returned after a successful transition.
type UpdateStatusResponse struct {
	Status         string               `json:"status"`
	PreviousStatus domain.Status        `json:"previous_status"`
	Shipment       domain.Shipment      `json:"shipment"`
	NewEvent       domain.TrackingEvent `json:"new_event"`
	Note           string               `json:"note"`
}

// InvalidTransitionResponse lists the statuses the shipment may move to.
type InvalidTransitionResponse struct {
	httperr.ErrorResponse
	CurrentStatus      domain.Status   `json:"current_status"`
	RequestedStatus    domain.Status   `json:"requested_status"`
	AllowedTransitions []domain.Status `json:"allowed_transitions"`
}

// UpdateStatus godoc
// @Summary Update shipment status
// @Description Applies a validated status transition and appends a tracking event. Changes are in-memory only.
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param body body UpdateStatusRequest true "Transition"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 409 {object} InvalidTransitionResponse
// @Router /shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := validation.Body(c, &req, h.validate); err != nil {
		return writeValidation(c, err)
	}

	res, err := h.tracking.UpdateStatus(service.UpdateStatusInput{
		ShipmentID: c.Params("id"),
		Status:     req.Status,
		Location:   req.Location,
		Notes:      req.Notes,
	})
	if err != nil {
		var ite *domain.InvalidTransitionError
		switch {
		case errors.As(err, &ite):
			return c.Status(fiber.StatusConflict).JSON(InvalidTransitionResponse{
				ErrorResponse: httperr.ErrorResponse{
					Message: "invalid status transition",
					RayID:   httperr.RayID(c),
				},
				CurrentStatus:      ite.Current,
				RequestedStatus:    ite.Requested,
				AllowedTransitions: ite.Allowed,
			})
		case errors.Is(err, domain.ErrShipmentNotFound):
			return httperr.Write(c, fiber.StatusNotFound, "shipment not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			return httperr.Write(c, fiber.StatusBadRequest, err.Error())
		default:
			return writeInternal(c, "Failed to update shipment status", err)
		}
	}

	return c.JSON(UpdateStatusResponse{
		Status:         "updated",
		PreviousStatus: res.PreviousStatus,
		Shipment:       res.Shipment,
		NewEvent:       res.Event,
		Note:           "This is an in-memory update; it resets on server restart.",
	})
}

// PerformanceQuery are the query parameters of GET /carriers/performance.
type PerformanceQuery struct {
	Carrier string `query:"carrier" validate:"omitempty,carrier"`
}

// PerformanceResponse is returned by GET /carriers/performance.
type PerformanceResponse struct {
	Summary  domain.CarrierSummary `json:"summary"`
	Carriers []domain.CarrierStats `json:"carriers"`
}

// CarrierPerformance godoc
// @Summary Carrier performance
// @Description Per-carrier totals, on-time rate and average transit days. Carriers without shipments are omitted.
// @Tags carriers
// @Produce json
// @Param carrier query string false "Carrier to report on"
// @Success 200 {object} PerformanceResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Router /carriers/performance [get]
func (h *ShipmentHandler) CarrierPerformance(c *fiber.Ctx) error {
	var q PerformanceQuery
	if err := validation.Query(c, &q, h.validate); err != nil {
		return writeValidation(c, err)
	}

	report, err := h.analytics.CarrierPerformance(q.Carrier)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCarrier) {
			return httperr.Write(c, fiber.StatusBadRequest, err.Error())
		}
		return writeInternal(c, "Failed to aggregate carriers", err)
	}

	return c.JSON(PerformanceResponse{
		Summary:  report.Summary,
		Carriers: report.Carriers,
	})
}

func writeValidation(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return httperr.WriteFields(c, "invalid request", verr.Fields)
	}
	return httperr.Write(c, fiber.StatusBadRequest, err.Error())
}

func writeInternal(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.String("ray_id", httperr.RayID(c)), zap.Error(err))
	return httperr.Write(c, fiber.StatusInternalServerError, "Internal server error")
}
