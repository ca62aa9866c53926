package ports

import "github.com/bindleio/bindle/internal/core/domain"

// Cache is the content-addressable store behind the processing pipeline. It
// maps deterministic keys to processed string content and, in a separate key
// space, to fully resolved asset sets.
//
// Implementations must allow concurrent readers and writers on distinct keys
// without blocking each other. Check-then-compute on the same key is not
// atomic: a racing duplicate computation is acceptable, corrupted content is
// not.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Name identifies the backend ("memory", "lru", ...).
	Name() string

	// GetContent returns cached string content for the key.
	GetContent(key string) (string, bool)

	// PutContent stores string content under the key, overwriting any
	// previous value.
	PutContent(key, content string)

	// GetAssets returns a cached resolved asset set for the key.
	GetAssets(key string) ([]domain.Asset, bool)

	// PutAssets stores a resolved asset set under the key.
	PutAssets(key string, assets []domain.Asset)
}
