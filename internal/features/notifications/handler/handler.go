package handler

import (
	"errors"
	"net/http"

	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/validation"
	"shipment-tracker/internal/features/notifications/domain"
	"shipment-tracker/internal/features/notifications/ports"
	shipdomain "shipment-tracker/internal/features/shipments/domain"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const mockNote = "This is a mock notification; no actual message was sent."

// NotificationHandler handles HTTP requests for stakeholder notifications.
type NotificationHandler struct {
	service  ports.NotificationService
	validate *validatorv10.Validate
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		validate: validation.New(
			validation.Enum{Tag: "channel", Allowed: domain.ChannelNames()},
			validation.Enum{Tag: "audience", Allowed: domain.AudienceNames()},
		),
	}
}

// NotifyRequest represents the request body for POST /notifications.
type NotifyRequest struct {
	ShipmentID string `json:"shipment_id" validate:"required"`
	Channel    string `json:"channel" validate:"required,channel"`
	Audience   string `json:"audience" validate:"required,audience"`
	Message    string `json:"message" validate:"required,max=1000"`
}

// ShipmentSummary is the short shipment view attached to a notification.
type ShipmentSummary struct {
	ShipmentID string             `json:"shipment_id"`
	OrderID    string             `json:"order_id"`
	Status     shipdomain.Status  `json:"status"`
	Carrier    shipdomain.Carrier `json:"carrier"`
	IsGift     bool               `json:"is_gift"`
}

// NotifyResponse is returned after a notification is recorded.
type NotifyResponse struct {
	Status          string              `json:"status"`
	Notification    domain.Notification `json:"notification"`
	Recipient       domain.Recipient    `json:"recipient"`
	ShipmentSummary ShipmentSummary     `json:"shipment_summary"`
	Note            string              `json:"note"`
}

// ListResponse wraps the notification log.
type ListResponse struct {
	Total         int                   `json:"total"`
	Notifications []domain.Notification `json:"notifications"`
}

// Notify handles POST /notifications.
// @Summary Notify a stakeholder
// @Description Records a mock customer or ops notification about a shipment.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body NotifyRequest true "Notification"
// @Success 201 {object} NotifyResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) Notify(c *fiber.Ctx) error {
	var req NotifyRequest
	if err := validation.Body(c, &req, h.validate); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return httperr.WriteFields(c, "invalid notification", verr.Fields)
		}
		return httperr.Write(c, http.StatusBadRequest, err.Error())
	}

	receipt, err := h.service.Notify(c.UserContext(), ports.NotifyInput{
		ShipmentID: req.ShipmentID,
		Channel:    domain.Channel(req.Channel),
		Audience:   domain.Audience(req.Audience),
		Message:    req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, shipdomain.ErrShipmentNotFound):
			return httperr.Write(c, http.StatusNotFound, "shipment not found")
		case errors.Is(err, domain.ErrInvalidChannel),
			errors.Is(err, domain.ErrInvalidAudience),
			errors.Is(err, domain.ErrEmptyMessage):
			return httperr.Write(c, http.StatusBadRequest, err.Error())
		}
		logger.Get().Error("Failed to record notification", zap.String("ray_id", httperr.RayID(c)), zap.Error(err))
		return httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	}

	s := receipt.Shipment
	return c.Status(http.StatusCreated).JSON(NotifyResponse{
		Status:       domain.StatusSent,
		Notification: receipt.Notification,
		Recipient:    receipt.Recipient,
		ShipmentSummary: ShipmentSummary{
			ShipmentID: s.ShipmentID,
			OrderID:    s.OrderID,
			Status:     s.Status,
			Carrier:    s.Carrier,
			IsGift:     s.Flags.Gift,
		},
		Note: mockNote,
	})
}

// List handles GET /notifications.
// @Summary List notifications
// @Description Returns the in-memory notification log in send order.
// @Tags Notifications
// @Produce json
// @Param shipment_id query string false "Only notifications for this shipment"
// @Success 200 {object} ListResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext(), c.Query("shipment_id"))
	if err != nil {
		logger.Get().Error("Failed to list notifications", zap.Error(err))
		return httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(ListResponse{
		Total:         len(entries),
		Notifications: entries,
	})
}
