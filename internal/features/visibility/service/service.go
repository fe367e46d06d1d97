package service

import (
	"context"
	"fmt"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/visibility/domain"
	"shipment-tracker/internal/features/visibility/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const noKeyMessage = "Search requires the SERPER_API_KEY environment variable. Get a free key at https://serper.dev"

// VisibilityServiceImpl implements ports.VisibilityService.
// A nil search provider means no API key is configured.
type VisibilityServiceImpl struct {
	search ports.SearchProvider
	reader ports.PageReader
	brand  domain.Brand
}

// NewVisibilityService creates a new VisibilityServiceImpl.
func NewVisibilityService(search ports.SearchProvider, reader ports.PageReader, brand domain.Brand) *VisibilityServiceImpl {
	return &VisibilityServiceImpl{
		search: search,
		reader: reader,
		brand:  brand,
	}
}

// Check runs every query concurrently and scores the brand's presence.
// A failing query is reported on its own entry and does not fail the check.
func (s *VisibilityServiceImpl) Check(ctx context.Context, productName string, queries []string) (*domain.VisibilityReport, error) {
	results := make([]domain.QueryReport, len(queries))

	if s.search == nil {
		for i, q := range queries {
			results[i] = domain.Unevaluated(q, "")
		}
		return &domain.VisibilityReport{
			Status:      domain.StatusNoAPIKey,
			Message:     noKeyMessage,
			ProductName: productName,
			Results:     results,
		}, nil
	}

	log := logger.Component("visibility")
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			res, err := s.search.Search(gctx, q, domain.VisibilityResultsPerQuery)
			if err != nil {
				log.Warn("Visibility query failed", zap.String("query", q), zap.Error(err))
				results[i] = domain.Unevaluated(q, err.Error())
				return nil
			}
			results[i] = domain.Analyze(q, productName, *res, s.brand)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.VisibilityReport{
		Status:      domain.StatusOK,
		ProductName: productName,
		Results:     results,
	}, nil
}

// Competitors searches "<brand> <query>" and extracts the text of each result page.
func (s *VisibilityServiceImpl) Competitors(ctx context.Context, brand, query string, maxResults int) (*domain.CompetitorReport, error) {
	if maxResults <= 0 {
		maxResults = domain.DefaultCompetitorResults
	}
	if maxResults > domain.MaxCompetitorResults {
		maxResults = domain.MaxCompetitorResults
	}

	report := &domain.CompetitorReport{
		Brand: brand,
		Query: query,
		Pages: []domain.CompetitorPage{},
	}

	if s.search == nil {
		report.Status = domain.StatusNoAPIKey
		report.Message = noKeyMessage
		report.ManualAction = fmt.Sprintf("Search Google for: %q and analyze the top product pages manually.", brand+" "+query)
		return report, nil
	}

	res, err := s.search.Search(ctx, brand+" "+query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("service: competitor search failed: %w", err)
	}

	organic := res.Organic
	if len(organic) > maxResults {
		organic = organic[:maxResults]
	}

	pages := make([]domain.CompetitorPage, len(organic))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range organic {
		i, r := i, r
		g.Go(func() error {
			pages[i] = domain.CompetitorPage{
				URL:     r.Link,
				Title:   r.Title,
				Snippet: r.Snippet,
				Content: s.readPage(gctx, r.Link),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Status = domain.StatusOK
	report.Pages = pages
	return report, nil
}

func (s *VisibilityServiceImpl) readPage(ctx context.Context, url string) string {
	if s.reader == nil || url == "" {
		return domain.PageReadFailed
	}
	text, err := s.reader.Read(ctx, url)
	if err != nil {
		logger.Component("visibility").Debug("Page read failed", zap.String("url", url), zap.Error(err))
		return domain.PageReadFailed
	}
	return domain.Truncate(text, domain.MaxPageContentRunes)
}
