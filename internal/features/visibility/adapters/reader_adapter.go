package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/httpclient"
)

// ReaderAdapter implements ports.PageReader using a URL-prefix text reader such as r.jina.ai.
type ReaderAdapter struct {
	client  *http.Client
	baseURL string
}

// NewReaderAdapter creates a new ReaderAdapter with a circuit-breaking client.
func NewReaderAdapter(cfg config.SearchConfig) *ReaderAdapter {
	return NewReaderAdapterWithClient(cfg.ReaderURL, httpclient.NewResilientClient("reader", cfg.Timeout()))
}

// NewReaderAdapterWithClient creates a ReaderAdapter over an existing client.
func NewReaderAdapterWithClient(baseURL string, client *http.Client) *ReaderAdapter {
	return &ReaderAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// maxPageBytes bounds how much of a page body is read before truncation.
const maxPageBytes = 1 << 20

// Read fetches the page as plain text.
func (a *ReaderAdapter) Read(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/"+pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reader returned status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	return string(raw), nil
}
