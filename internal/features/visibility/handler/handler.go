package handler

import (
	"errors"
	"net/http"

	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/validation"
	"shipment-tracker/internal/features/visibility/domain"
	"shipment-tracker/internal/features/visibility/ports"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VisibilityHandler handles HTTP requests for search visibility checks.
type VisibilityHandler struct {
	service  ports.VisibilityService
	validate *validatorv10.Validate
}

// NewVisibilityHandler creates a new VisibilityHandler.
func NewVisibilityHandler(service ports.VisibilityService) *VisibilityHandler {
	return &VisibilityHandler{
		service:  service,
		validate: validation.New(),
	}
}

// CheckRequest represents the request body for POST /visibility/check.
type CheckRequest struct {
	ProductName string   `json:"product_name" validate:"required,max=200"`
	Queries     []string `json:"queries" validate:"required,min=1,max=5,dive,required,max=200"`
}

// CompetitorRequest represents the request body for POST /visibility/competitors.
type CompetitorRequest struct {
	Brand      string `json:"brand" validate:"required,max=100"`
	Query      string `json:"query" validate:"required,max=200"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=5"`
}

// CheckVisibility handles POST /visibility/check.
// @Summary Check search visibility
// @Description Runs up to five queries against the search provider and reports where the brand and product appear.
// @Tags Visibility
// @Accept json
// @Produce json
// @Param request body CheckRequest true "Product and queries"
// @Success 200 {object} domain.VisibilityReport
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /visibility/check [post]
func (h *VisibilityHandler) CheckVisibility(c *fiber.Ctx) error {
	var req CheckRequest
	if err := validation.Body(c, &req, h.validate); err != nil {
		return writeValidation(c, err)
	}

	report, err := h.service.Check(c.UserContext(), req.ProductName, req.Queries)
	if err != nil {
		return writeProviderError(c, "Visibility check failed", err)
	}

	return c.Status(http.StatusOK).JSON(report)
}

// SearchCompetitors handles POST /visibility/competitors.
// @Summary Search competitor content
// @Description Searches "<brand> <query>" and extracts the text of the top result pages.
// @Tags Visibility
// @Accept json
// @Produce json
// @Param request body CompetitorRequest true "Brand and query"
// @Success 200 {object} domain.CompetitorReport
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 502 {object} httperr.ErrorResponse
// @Failure 503 {object} httperr.ErrorResponse
// @Router /visibility/competitors [post]
func (h *VisibilityHandler) SearchCompetitors(c *fiber.Ctx) error {
	var req CompetitorRequest
	if err := validation.Body(c, &req, h.validate); err != nil {
		return writeValidation(c, err)
	}

	report, err := h.service.Competitors(c.UserContext(), req.Brand, req.Query, req.MaxResults)
	if err != nil {
		return writeProviderError(c, "Competitor search failed", err)
	}

	return c.Status(http.StatusOK).JSON(report)
}

func writeValidation(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return httperr.WriteFields(c, "invalid request", verr.Fields)
	}
	return httperr.Write(c, http.StatusBadRequest, err.Error())
}

func writeProviderError(c *fiber.Ctx, msg string, err error) error {
	var perr *domain.ProviderError
	switch {
	case errors.Is(err, httpclient.ErrCircuitOpen):
		return httperr.Write(c, http.StatusServiceUnavailable, "Search provider temporarily unavailable")
	case errors.As(err, &perr), errors.Is(err, domain.ErrProviderUnavailable):
		logger.Get().Warn(msg, zap.String("ray_id", httperr.RayID(c)), zap.Error(err))
		return httperr.Write(c, http.StatusBadGateway, err.Error())
	}
	logger.Get().Error(msg, zap.String("ray_id", httperr.RayID(c)), zap.Error(err))
	return httperr.Write(c, http.StatusInternalServerError, "Internal server error")
}
