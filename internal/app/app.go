// Package app wires the bundle graph, cache, and pipeline into one
// application context. A single App owns all shared state; nothing in bindle
// is a process-wide singleton.
package app

import (
	"context"
	"io/fs"
	"net/http"
	"sync"
	"sync/atomic"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/adapters/cache"
	"github.com/bindleio/bindle/internal/adapters/source"
	"github.com/bindleio/bindle/internal/adapters/web"
	"github.com/bindleio/bindle/internal/adapters/wrappers"
	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/builder"
	"github.com/bindleio/bindle/internal/engine/pipeline"
	"github.com/bindleio/bindle/internal/engine/resolver"
)

// Options configure an App.
type Options struct {
	// DeclarationsFS holds *.bundle.yaml declaration files.
	DeclarationsFS fs.FS

	// Sources are additional declaration sources registered by the host.
	Sources []ports.DeclarationSource

	// AssetsFS backs the classpath wrapper, WebrootFS the webapp wrapper,
	// TemplatesFS the templated wrapper. A nil file system leaves the
	// corresponding wrapper unregistered.
	AssetsFS    fs.FS
	WebrootFS   fs.FS
	TemplatesFS fs.FS

	// PreferredKinds is the ordered location-kind search list.
	PreferredKinds []string

	// MountPrefix is where the delivery endpoint is mounted.
	MountPrefix string

	ExcludedScopes []string
	ExcludedAssets []string

	Compression pipeline.CompressionOptions
	Aggregation pipeline.AggregationOptions

	// CacheBackend selects the cache by name; empty keeps the injected one.
	CacheBackend string

	// DevMode rebuilds the graph and bypasses the result cache on every
	// request so edited declarations show up without a restart.
	DevMode bool
}

// App is the per-process application context.
type App struct {
	opts     Options
	log      ports.Logger
	cache    ports.Cache
	registry *pipeline.Registry
	pipeline *pipeline.Pipeline
	builder  *builder.Builder
	resolver *resolver.Resolver

	initMu  sync.Mutex
	storage atomic.Pointer[domain.Storage]
}

// New assembles an App from options and injected collaborators.
func New(opts Options, c *Components) (*App, error) {
	store, err := selectCache(opts.CacheBackend, c.Cache)
	if err != nil {
		return nil, err
	}

	a := &App{opts: opts, log: c.Logger, cache: store}

	mount := opts.MountPrefix
	if mount == "" {
		mount = pipeline.DefaultMountPrefix
	}

	a.registry = pipeline.NewRegistry()
	a.registerWrappers(mount)

	popts := pipeline.Options{
		PreferredKinds: opts.PreferredKinds,
		MountPrefix:    mount,
		Compression:    opts.Compression,
		Aggregation:    opts.Aggregation,
	}

	stages := []ports.Stage{pipeline.NewLocationStage(a.registry, popts, c.Logger)}
	if opts.Compression.Enabled {
		stages = append(stages, pipeline.NewCompressionStage(a.registry, store, c.Compressor, popts, c.Logger))
	}
	if opts.Aggregation.Enabled {
		stages = append(stages, pipeline.NewAggregationStage(a.registry, store, popts, c.Logger))
	}
	a.pipeline = pipeline.New(stages...)

	a.builder = builder.New(a.declarationSources(), a.registry, builder.Options{
		ExcludedScopes:   opts.ExcludedScopes,
		ExcludedAssets:   opts.ExcludedAssets,
		ActivateWrappers: a.requiredWrappers(),
	}, c.Logger)

	a.resolver = resolver.New(a.currentStorage, a.pipeline, store, opts.DevMode, c.Logger)
	return a, nil
}

func selectCache(name string, injected ports.Cache) (ports.Cache, error) {
	if name == "" || (injected != nil && injected.Name() == name) {
		if injected == nil {
			return cache.NewBackend("")
		}
		return injected, nil
	}
	return cache.NewBackend(name)
}

func (a *App) registerWrappers(mount string) {
	if a.opts.AssetsFS != nil {
		a.registry.Register(wrappers.NewClasspath(a.opts.AssetsFS, a.cache, mount))
		a.registry.Activate(wrappers.KindClasspath)
	}
	if a.opts.WebrootFS != nil {
		a.registry.Register(wrappers.NewWebapp(a.opts.WebrootFS))
		a.registry.Activate(wrappers.KindWebapp)
	}
	if a.opts.TemplatesFS != nil {
		a.registry.Register(wrappers.NewTemplated(a.opts.TemplatesFS, a.cache, mount, a.opts.DevMode))
		a.registry.Activate(wrappers.KindTemplated)
	}
	// The cdn wrapper is registered but stays inactive until a capability
	// that rehosts output through the delivery endpoint requires it.
	a.registry.Register(wrappers.NewCDN())
}

// requiredWrappers names the wrappers ingestion must activate: aggregated or
// compressed output is served from this application's delivery endpoint, not
// from author-declared locations.
func (a *App) requiredWrappers() []string {
	if a.opts.Compression.Enabled || a.opts.Aggregation.Enabled {
		return []string{wrappers.KindCDN}
	}
	return nil
}

func (a *App) declarationSources() []ports.DeclarationSource {
	sources := append([]ports.DeclarationSource(nil), a.opts.Sources...)
	if a.opts.DeclarationsFS != nil {
		sources = append(sources, source.NewYAML("bundle-files", a.opts.DeclarationsFS, a.log))
	}
	return sources
}

// EnsureReady guarantees the bundle graph has been ingested. Concurrent
// first requests trigger exactly one ingestion pass. In dev mode every call
// re-ingests, serialized, and readers only ever observe a fully built graph
// because the new Storage is swapped in atomically.
func (a *App) EnsureReady(ctx context.Context) error {
	if !a.opts.DevMode && a.storage.Load() != nil {
		return nil
	}

	a.initMu.Lock()
	defer a.initMu.Unlock()

	if !a.opts.DevMode && a.storage.Load() != nil {
		return nil
	}

	storage, err := a.builder.Build(ctx)
	if err != nil {
		return zerr.Wrap(err, "bundle graph ingestion failed")
	}
	a.storage.Swap(storage)
	return nil
}

// Resolve returns the processed asset list for the requested bundles.
func (a *App) Resolve(ctx context.Context, req ports.RequestContext, bundles, excludedAssets []string) ([]domain.Asset, error) {
	if err := a.EnsureReady(ctx); err != nil {
		return nil, err
	}
	return a.resolver.Resolve(req, bundles, excludedAssets)
}

// Handler returns the delivery endpoint. Mount it under MountPrefix.
func (a *App) Handler() http.Handler {
	return web.NewHandler(a.cache, a.opts.DevMode, a.log)
}

// MountPrefix returns the configured delivery endpoint prefix.
func (a *App) MountPrefix() string {
	if a.opts.MountPrefix == "" {
		return pipeline.DefaultMountPrefix
	}
	return a.opts.MountPrefix
}

// Snapshot returns the current bundle graph for introspection.
func (a *App) Snapshot(ctx context.Context) (*domain.Storage, error) {
	if err := a.EnsureReady(ctx); err != nil {
		return nil, err
	}
	return a.storage.Load(), nil
}

// currentStorage is the resolver's view of the graph: the latest fully built
// snapshot, or an empty graph before first ingestion.
func (a *App) currentStorage() *domain.Storage {
	if s := a.storage.Load(); s != nil {
		return s
	}
	return domain.NewStorage()
}
