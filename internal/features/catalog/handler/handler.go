package handler

import (
	"errors"
	"net/http"

	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/validation"
	"shipment-tracker/internal/features/catalog/domain"
	"shipment-tracker/internal/features/catalog/ports"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service  ports.CatalogService
	validate *validatorv10.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		validate: validation.New(
			validation.Enum{Tag: "material", Allowed: domain.Materials},
			validation.Enum{Tag: "collection", Allowed: domain.Collections},
		),
	}
}

// SearchRequest represents the query parameters for GET /products.
type SearchRequest struct {
	Query      string   `query:"query" json:"query,omitempty"`
	Material   string   `query:"material" json:"material,omitempty" validate:"omitempty,material"`
	Category   string   `query:"category" json:"category,omitempty"`
	Collection string   `query:"collection" json:"collection,omitempty" validate:"omitempty,collection"`
	MinPrice   *float64 `query:"min_price" json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice   *float64 `query:"max_price" json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Limit      int      `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

// SearchResponse echoes the applied filters next to the results.
type SearchResponse struct {
	TotalResults int              `json:"total_results"`
	Filters      SearchRequest    `json:"filters"`
	Products     []domain.Product `json:"products"`
}

// ProductResponse is a product with its detected collection.
type ProductResponse struct {
	domain.Product
	Collection string `json:"collection,omitempty"`
}

// SearchProducts handles GET /products.
// @Summary Search the catalog
// @Description Filters products by text, material, category, collection and price range.
// @Tags Catalog
// @Produce json
// @Param query query string false "Text search on name and description"
// @Param material query string false "Exact material"
// @Param category query string false "Category substring"
// @Param collection query string false "Collection"
// @Param min_price query number false "Minimum price (GBP)"
// @Param max_price query number false "Maximum price (GBP)"
// @Param limit query int false "Max results (1-50, default 10)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Router /products [get]
func (h *CatalogHandler) SearchProducts(c *fiber.Ctx) error {
	var req SearchRequest
	if err := validation.Query(c, &req, h.validate); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return httperr.WriteFields(c, "invalid search parameters", verr.Fields)
		}
		return httperr.Write(c, http.StatusBadRequest, err.Error())
	}

	products := h.service.Search(domain.SearchFilter{
		Query:      req.Query,
		Material:   req.Material,
		Category:   req.Category,
		Collection: req.Collection,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Limit:      req.Limit,
	})

	return c.Status(http.StatusOK).JSON(SearchResponse{
		TotalResults: len(products),
		Filters:      req,
		Products:     products,
	})
}

// ProductNotFoundResponse is returned for unknown product ids.
type ProductNotFoundResponse struct {
	httperr.ErrorResponse
	ProductID  string `json:"product_id"`
	Suggestion string `json:"suggestion"`
}

// LookupProduct handles GET /products/:id.
// @Summary Look up a product
// @Description Returns one product by id with its collection.
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID, e.g. 142784C01"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ProductNotFoundResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) LookupProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.service.Lookup(id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ProductNotFoundResponse{
				ErrorResponse: httperr.ErrorResponse{Message: "product not found", RayID: httperr.RayID(c)},
				ProductID:     id,
				Suggestion:    "Check the product ID format. Examples: 142784C01, 590719, 599657C00",
			})
		}
		logger.Get().Error("Failed to look up product", zap.String("product_id", id), zap.Error(err))
		return httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	}

	collection, _ := domain.DetectCollection(product)
	return c.Status(http.StatusOK).JSON(ProductResponse{
		Product:    product,
		Collection: collection,
	})
}
