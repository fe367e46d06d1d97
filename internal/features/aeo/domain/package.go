package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPackageNotFound  = errors.New("aeo package not found")
	ErrMissingSummary   = errors.New("aeo package requires a non-empty summary")
	ErrInvalidProductID = errors.New("invalid product id")
	// ErrStoreUnavailable is returned by reads when no blob store is configured.
	ErrStoreUnavailable = errors.New("blob store not configured")
)

// KeyPrefix namespaces every stored package.
const KeyPrefix = "aeo/"

const (
	StatusSaved    = "saved"
	StatusReturned = "returned"
)

// Package is a free-form AEO optimisation package. Only "summary" is required.
type Package map[string]interface{}

// Validate checks that the package carries a summary string.
func (p Package) Validate() error {
	s, ok := p["summary"].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ErrMissingSummary
	}
	return nil
}

// ValidateProductID rejects ids that would break out of the product's key space.
func ValidateProductID(productID string) error {
	if productID == "" || strings.ContainsAny(productID, "/*?[] ") {
		return fmt.Errorf("%w: %q", ErrInvalidProductID, productID)
	}
	return nil
}

// Key builds the storage key aeo/<productId>/<unixMillis>-<id>.json.
func Key(productID string, at time.Time, id string) string {
	return fmt.Sprintf("%s%s/%d-%s.json", KeyPrefix, productID, at.UnixMilli(), id)
}

// ProductPrefix is the key prefix shared by all packages of one product.
func ProductPrefix(productID string) string {
	return KeyPrefix + productID + "/"
}

// SaveResult reports where a package ended up.
type SaveResult struct {
	Status    string  `json:"status"`
	ProductID string  `json:"product_id"`
	Key       string  `json:"key,omitempty"`
	Size      int     `json:"size"`
	Timestamp string  `json:"timestamp"`
	Message   string  `json:"message,omitempty"`
	Package   Package `json:"aeo_package,omitempty"`
}
