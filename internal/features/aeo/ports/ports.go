package ports

import (
	"context"

	"shipment-tracker/internal/features/aeo/domain"
)

// PackageService defines the primary port for AEO package persistence.
type PackageService interface {
	Save(ctx context.Context, productID string, pkg domain.Package) (*domain.SaveResult, error)
	Load(ctx context.Context, key string) (domain.Package, error)
	List(ctx context.Context, productID string) ([]string, error)
}

// BlobStore defines the secondary port for package storage.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
