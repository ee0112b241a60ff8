package cache

import (
	"context"
	"errors"
)

// DefaultListingKey holds the storefront landing page listing. Anything that
// changes what that page shows, product writes and order stock movements
// alike, must drop this key.
const DefaultListingKey = "products:default"

// CatalogCache stores serialized catalog payloads keyed by query shape.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrCacheMiss = errors.New("cache miss")
