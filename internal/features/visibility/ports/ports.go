package ports

import (
	"context"

	"shipment-tracker/internal/features/visibility/domain"
)

// VisibilityService defines the primary port for search visibility checks.
type VisibilityService interface {
	Check(ctx context.Context, productName string, queries []string) (*domain.VisibilityReport, error)
	Competitors(ctx context.Context, brand, query string, maxResults int) (*domain.CompetitorReport, error)
}

// SearchProvider runs a web search.
type SearchProvider interface {
	Search(ctx context.Context, query string, num int) (*domain.SearchResult, error)
}

// PageReader extracts the readable text of a web page.
type PageReader interface {
	Read(ctx context.Context, url string) (string, error)
}
