package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/features/aeo/domain"
	"shipment-tracker/internal/features/aeo/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgNotConfigured = "Blob store not configured. AEO package returned directly. Set REDIS_URL to enable persistence."
	msgWriteFailed   = "Blob store write failed. AEO package returned directly."
)

// PackageServiceImpl implements ports.PackageService.
// A nil store puts the service in fallback mode: packages are echoed back instead of saved.
type PackageServiceImpl struct {
	store   ports.BlobStore
	clock   clock.Clock
	metrics *metrics.Metrics
	newID   func() string
}

// NewPackageService creates a new PackageServiceImpl.
func NewPackageService(store ports.BlobStore, clk clock.Clock, m *metrics.Metrics) *PackageServiceImpl {
	return &PackageServiceImpl{
		store:   store,
		clock:   clk,
		metrics: m,
		newID:   uuid.NewString,
	}
}

// Save persists the package, or returns it when persistence is unavailable.
// Only invalid input produces an error.
func (s *PackageServiceImpl) Save(ctx context.Context, productID string, pkg domain.Package) (*domain.SaveResult, error) {
	if err := domain.ValidateProductID(productID); err != nil {
		return nil, err
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("service: failed to encode package: %w", err)
	}

	now := s.clock.Now().UTC()
	result := &domain.SaveResult{
		ProductID: productID,
		Size:      len(body),
		Timestamp: now.Format(time.RFC3339Nano),
	}

	if s.store == nil {
		s.metrics.ObserveBlobWrite(domain.StatusReturned)
		return returned(result, pkg, msgNotConfigured), nil
	}

	key := domain.Key(productID, now, s.newID())
	if err := s.store.Put(ctx, key, body); err != nil {
		logger.Component("aeo").Warn("Package write failed, returning it inline",
			zap.String("product_id", productID),
			zap.String("key", key),
			zap.Error(err),
		)
		s.metrics.ObserveBlobWrite(domain.StatusReturned)
		return returned(result, pkg, msgWriteFailed), nil
	}

	s.metrics.ObserveBlobWrite(domain.StatusSaved)
	result.Status = domain.StatusSaved
	result.Key = key
	return result, nil
}

func returned(r *domain.SaveResult, pkg domain.Package, msg string) *domain.SaveResult {
	r.Status = domain.StatusReturned
	r.Message = msg
	r.Package = pkg
	return r
}

// Load reads a saved package back by key.
func (s *PackageServiceImpl) Load(ctx context.Context, key string) (domain.Package, error) {
	if !strings.HasPrefix(key, domain.KeyPrefix) || !strings.HasSuffix(key, ".json") {
		return nil, fmt.Errorf("%w: %s", domain.ErrPackageNotFound, key)
	}
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var pkg domain.Package
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, fmt.Errorf("service: failed to decode package %s: %w", key, err)
	}
	return pkg, nil
}

// List returns the saved keys for one product, oldest first.
func (s *PackageServiceImpl) List(ctx context.Context, productID string) ([]string, error) {
	if err := domain.ValidateProductID(productID); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	keys, err := s.store.List(ctx, domain.ProductPrefix(productID))
	if err != nil {
		return nil, fmt.Errorf("service: failed to list packages: %w", err)
	}
	return keys, nil
}
