package ports

import (
	"context"

	"github.com/bindleio/bindle/internal/core/domain"
)

// DeclarationSource supplies asset declarations to the graph builder. How a
// source discovers its declarations (embedded files, directories, remote
// config) is its own concern; the builder only consumes components.
//
//go:generate mockgen -source=declaration_source.go -destination=mocks/mock_declaration_source.go -package=mocks
type DeclarationSource interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// LoadComponents returns every component the source declares. Called once
	// per ingestion pass.
	LoadComponents(ctx context.Context) ([]domain.Component, error)
}
