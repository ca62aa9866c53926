// Package resolver orchestrates per-request asset resolution: graph walk,
// filtering, pipeline execution, and result caching.
package resolver

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/keys"
	"github.com/bindleio/bindle/internal/engine/pipeline"
)

// StorageProvider returns the current bundle graph snapshot. The provider is
// called once per resolution so concurrent rebuilds are observed whole or not
// at all.
type StorageProvider func() *domain.Storage

// Resolver answers "which final assets does this request need".
type Resolver struct {
	storage  StorageProvider
	pipeline *pipeline.Pipeline
	cache    ports.Cache
	log      ports.Logger

	// devMode bypasses the per-request result cache so edited declarations
	// show up without a restart.
	devMode bool
}

// New creates a Resolver.
func New(storage StorageProvider, p *pipeline.Pipeline, cache ports.Cache, devMode bool, log ports.Logger) *Resolver {
	return &Resolver{
		storage:  storage,
		pipeline: p,
		cache:    cache,
		devMode:  devMode,
		log:      log,
	}
}

// Resolve returns the ordered, processed asset list for the requested
// bundles. Results are cached per canonical request URL; a pipeline failure
// fails only this resolution and leaves storage and previously cached entries
// untouched.
func (r *Resolver) Resolve(req ports.RequestContext, bundles, excludedAssets []string) ([]domain.Asset, error) {
	key := keys.SanitizeContext(req.CurrentURL())

	if !r.devMode {
		if assets, ok := r.cache.GetAssets(key); ok {
			return assets, nil
		}
	}

	storage := r.storage()
	if !storage.ContainsAnyAsset() {
		return nil, nil
	}

	assets := ExcludeByName(storage.AssetsFor(bundles...), excludedAssets...)

	processed, err := r.pipeline.Run(req, assets)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "asset resolution failed"), "request", req.CurrentURL())
	}

	r.cache.PutAssets(key, processed)
	return processed, nil
}

// ExcludeByName filters out assets whose name matches any of the given
// filters, case-insensitively. Pure function; the input slice is not
// modified.
func ExcludeByName(assets []domain.Asset, filters ...string) []domain.Asset {
	if len(filters) == 0 {
		return assets
	}

	excluded := make(map[string]bool, len(filters))
	for _, f := range filters {
		if f != "" {
			excluded[strings.ToLower(f)] = true
		}
	}

	out := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		if excluded[strings.ToLower(asset.Name)] || excluded[strings.ToLower(asset.Key())] {
			continue
		}
		out = append(out, asset)
	}
	return out
}

// ByPosition keeps only assets whose effective DOM position matches.
func ByPosition(assets []domain.Asset, position domain.DomPosition) []domain.Asset {
	out := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		if asset.EffectivePosition() == position {
			out = append(out, asset)
		}
	}
	return out
}

// ByType keeps only assets of the given type.
func ByType(assets []domain.Asset, t domain.AssetType) []domain.Asset {
	out := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		if asset.Type == t {
			out = append(out, asset)
		}
	}
	return out
}
