package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/features/visibility/domain"
)

// SerperAdapter implements ports.SearchProvider using the Serper search API.
type SerperAdapter struct {
	// client is the HTTP client used for API requests.
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewSerperAdapter creates a new SerperAdapter with a circuit-breaking client.
func NewSerperAdapter(cfg config.SearchConfig) *SerperAdapter {
	return NewSerperAdapterWithClient(cfg, httpclient.NewResilientClient("serper", cfg.Timeout()))
}

// NewSerperAdapterWithClient creates a SerperAdapter over an existing client.
func NewSerperAdapterWithClient(cfg config.SearchConfig, client *http.Client) *SerperAdapter {
	return &SerperAdapter{
		client:  client,
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
	}
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// Search posts the query and decodes the organic results.
func (a *SerperAdapter) Search(ctx context.Context, query string, num int) (*domain.SearchResult, error) {
	body, err := json.Marshal(serperRequest{Q: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{StatusCode: resp.StatusCode}
	}

	var result domain.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if result.Organic == nil {
		result.Organic = []domain.OrganicResult{}
	}
	return &result, nil
}
