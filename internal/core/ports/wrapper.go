package ports

import "github.com/bindleio/bindle/internal/core/domain"

// LocationWrapper turns a raw location declaration of one kind into concrete,
// request-aware URLs and, on demand, the textual content behind them.
// Wrapping must be deterministic given the same asset and request.
//
//go:generate mockgen -source=wrapper.go -destination=mocks/mock_wrapper.go -package=mocks
type LocationWrapper interface {
	// LocationKey is the location kind this wrapper handles ("classpath",
	// "webapp", "cdn", "templated", ...).
	LocationKey() string

	// WrapLocations resolves the asset's raw location of this kind into one
	// or more final URLs. A wrapper may fan one declared asset out into
	// several delivered ones.
	WrapLocations(asset domain.Asset, req RequestContext) ([]string, error)

	// Content fetches the raw content behind the asset's location of this
	// kind.
	Content(asset domain.Asset, req RequestContext) (string, error)
}
