package handler

import (
	"errors"
	"net/http"
	"strings"

	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/aeo/domain"
	"shipment-tracker/internal/features/aeo/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PackageHandler handles HTTP requests for AEO packages.
type PackageHandler struct {
	service ports.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(service ports.PackageService) *PackageHandler {
	return &PackageHandler{
		service: service,
	}
}

// PackageListResponse lists the stored package keys of a product.
type PackageListResponse struct {
	ProductID string   `json:"product_id"`
	Keys      []string `json:"keys"`
}

// SavePackage handles POST /aeo/:productId.
// @Summary Save an AEO package
// @Description Persists a free-form AEO package. Without a blob store the package is returned inline with status "returned".
// @Tags AEO
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param package body object true "AEO package; summary is required"
// @Success 201 {object} domain.SaveResult
// @Success 200 {object} domain.SaveResult
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /aeo/{productId} [post]
func (h *PackageHandler) SavePackage(c *fiber.Ctx) error {
	var pkg domain.Package
	if err := c.BodyParser(&pkg); err != nil {
		return httperr.Write(c, http.StatusBadRequest, "Invalid request body")
	}

	productID := c.Params("productId")
	result, err := h.service.Save(c.UserContext(), productID, pkg)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSummary) || errors.Is(err, domain.ErrInvalidProductID) {
			return httperr.Write(c, http.StatusBadRequest, err.Error())
		}
		logger.Get().Error("Failed to save AEO package", zap.String("product_id", productID), zap.Error(err))
		return httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	}

	status := http.StatusOK
	if result.Status == domain.StatusSaved {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(result)
}

// GetPackage handles GET /aeo/*.
// A bare product id lists its keys; a full <productId>/<file>.json path loads one package.
// @Summary Load or list AEO packages
// @Description GET /aeo/{productId} lists saved keys; GET /aeo/{productId}/{file}.json returns the package.
// @Tags AEO
// @Produce json
// @Param path path string true "Product ID or <productId>/<file>.json"
// @Success 200 {object} PackageListResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 503 {object} httperr.ErrorResponse
// @Router /aeo/{path} [get]
func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	path := strings.Trim(c.Params("*"), "/")
	ctx := c.UserContext()

	if !strings.Contains(path, "/") {
		keys, err := h.service.List(ctx, path)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.Status(http.StatusOK).JSON(PackageListResponse{ProductID: path, Keys: keys})
	}

	pkg, err := h.service.Load(ctx, domain.KeyPrefix+path)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(pkg)
}

func (h *PackageHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrPackageNotFound):
		return httperr.Write(c, http.StatusNotFound, "AEO package not found")
	case errors.Is(err, domain.ErrInvalidProductID):
		return httperr.Write(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return httperr.Write(c, http.StatusServiceUnavailable, "Blob store not configured")
	}
	logger.Get().Error("Failed to read AEO packages", zap.Error(err))
	return httperr.Write(c, http.StatusInternalServerError, "Internal server error")
}
