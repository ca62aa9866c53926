package ports

import "github.com/bindleio/bindle/internal/core/domain"

// Compressor minifies asset content. Implementations must pass content of
// unsupported asset types through unchanged and must be deterministic: the
// same input always yields the same output.
//
//go:generate mockgen -source=compressor.go -destination=mocks/mock_compressor.go -package=mocks
type Compressor interface {
	// Compress returns the minified form of content. The name is used only
	// for diagnostics.
	Compress(t domain.AssetType, name, content string) (string, error)
}
