package ports

import "github.com/bindleio/bindle/internal/core/domain"

// Stage is one transform in the processing pipeline. Stages run lowest rank
// first and each consumes the full asset list the previous stage produced, so
// a stage may deduplicate, merge, or split assets. A stage must be
// idempotent for a given request context and storage state.
type Stage interface {
	// Name identifies the stage; it is mixed into cache keys.
	Name() string

	// Rank orders stage execution, lower first.
	Rank() int

	// Process transforms the asset list for one request.
	Process(req RequestContext, assets []domain.Asset) ([]domain.Asset, error)
}
