package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipment-tracker/internal/core/httperr"
	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/features/visibility/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVisibilityService is a mock implementation of ports.VisibilityService.
type MockVisibilityService struct {
	mock.Mock
}

func (m *MockVisibilityService) Check(ctx context.Context, productName string, queries []string) (*domain.VisibilityReport, error) {
	args := m.Called(ctx, productName, queries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisibilityReport), args.Error(1)
}

func (m *MockVisibilityService) Competitors(ctx context.Context, brand, query string, maxResults int) (*domain.CompetitorReport, error) {
	args := m.Called(ctx, brand, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompetitorReport), args.Error(1)
}

func setupApp(service *MockVisibilityService) *fiber.App {
	app := fiber.New()
	handler := NewVisibilityHandler(service)
	app.Post("/visibility/check", handler.CheckVisibility)
	app.Post("/visibility/competitors", handler.SearchCompetitors)
	return app
}

func post(path string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestVisibilityHandler_CheckVisibility(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockVisibilityService)
		app := setupApp(mockService)

		queries := []string{"best charm bracelet", "silver bracelet uk"}
		mockService.On("Check", mock.Anything, "Moments Bracelet", queries).
			Return(&domain.VisibilityReport{Status: domain.StatusOK, ProductName: "Moments Bracelet"}, nil).Once()

		resp, err := app.Test(post("/visibility/check", CheckRequest{ProductName: "Moments Bracelet", Queries: queries}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("TooManyQueries", func(t *testing.T) {
		mockService := new(MockVisibilityService)
		app := setupApp(mockService)

		resp, err := app.Test(post("/visibility/check", CheckRequest{
			ProductName: "Ring",
			Queries:     []string{"1", "2", "3", "4", "5", "6"},
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body httperr.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "must be at most 5", body.Fields["queries"])
	})

	t.Run("NoQueries", func(t *testing.T) {
		mockService := new(MockVisibilityService)
		app := setupApp(mockService)

		resp, err := app.Test(post("/visibility/check", CheckRequest{ProductName: "Ring", Queries: []string{}}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "Check", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVisibilityHandler_SearchCompetitors(t *testing.T) {
	req := CompetitorRequest{Brand: "Swarovski", Query: "charm bracelet"}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockVisibilityService)
		app := setupApp(mockService)

		mockService.On("Competitors", mock.Anything, "Swarovski", "charm bracelet", 0).
			Return(&domain.CompetitorReport{Status: domain.StatusOK, Pages: []domain.CompetitorPage{}}, nil).Once()

		resp, err := app.Test(post("/visibility/competitors", req))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("MaxResultsOutOfRange", func(t *testing.T) {
		mockService := new(MockVisibilityService)
		app := setupApp(mockService)

		bad := req
		bad.MaxResults = 9
		resp, err := app.Test(post("/visibility/competitors", bad))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ProviderStatus", fmt.Errorf("service: competitor search failed: %w", &domain.ProviderError{StatusCode: 429}), http.StatusBadGateway},
		{"ProviderUnreachable", fmt.Errorf("%w: dial tcp", domain.ErrProviderUnavailable), http.StatusBadGateway},
		{"CircuitOpen", fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, httpclient.ErrCircuitOpen), http.StatusServiceUnavailable},
		{"Unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockVisibilityService)
			app := setupApp(mockService)

			mockService.On("Competitors", mock.Anything, "Swarovski", "charm bracelet", 0).Return(nil, tt.err).Once()

			resp, err := app.Test(post("/visibility/competitors", req))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
