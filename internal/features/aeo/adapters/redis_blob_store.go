package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment-tracker/internal/core/cache"
	"shipment-tracker/internal/features/aeo/domain"
)

// RedisBlobStore implements ports.BlobStore using the cache adaptation.
type RedisBlobStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisBlobStore creates a new RedisBlobStore. A ttl of 0 keeps packages until deleted.
func NewRedisBlobStore(c cache.Cache, ttl time.Duration) *RedisBlobStore {
	return &RedisBlobStore{
		cache: c,
		ttl:   ttl,
	}
}

// Put stores a serialised package.
func (r *RedisBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save package to cache: %w", err)
	}
	return nil
}

// Get reads a serialised package.
func (r *RedisBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPackageNotFound, key)
		}
		return nil, fmt.Errorf("failed to get package from cache: %w", err)
	}
	return data, nil
}

// List returns the stored keys under prefix, oldest first.
func (r *RedisBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	keys, err := r.cache.Keys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return keys, nil
}
