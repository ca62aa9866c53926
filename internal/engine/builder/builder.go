// Package builder implements the batch ingestion pass that turns declaration
// sources into a fully linked bundle graph.
package builder

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/pipeline"
)

// Options configure one ingestion pass.
type Options struct {
	// ExcludedScopes are dropped entirely, whether referenced as scope or
	// parent. Case-insensitive.
	ExcludedScopes []string

	// ExcludedAssets are filtered out of every component by name.
	// Case-insensitive.
	ExcludedAssets []string

	// ActivateWrappers are location kinds the ingestion pass activates as a
	// prerequisite: aggregated or compressed output must be served from the
	// application's own delivery endpoint, so those capabilities require the
	// cdn rewrite.
	ActivateWrappers []string
}

// Builder runs the full batch ingestion exactly once per generation. It
// builds the graph in local working tables, repairs orphaned parents, applies
// scope overrides, and commits into a fresh Storage in parent-before-child
// order, so no insertion-time "undefined parent" failure can normally occur.
type Builder struct {
	sources  []ports.DeclarationSource
	registry *pipeline.Registry
	opts     Options
	log      ports.Logger
}

// New creates a Builder over the given declaration sources.
func New(sources []ports.DeclarationSource, registry *pipeline.Registry, opts Options, log ports.Logger) *Builder {
	return &Builder{sources: sources, registry: registry, opts: opts, log: log}
}

// workspace holds the ingestion scratchpad. It lives only for the duration of
// one Build call; nothing in it survives past the commit.
type workspace struct {
	assetsByScope    map[string][]domain.Asset
	parentByScope    map[string]string
	childrenByParent map[string][]string
	overridesByScope map[string][]domain.Asset
}

// Build loads every source, assembles the graph in working tables, and
// commits it into a new Storage. The returned Storage is complete and never
// observed half-built; callers swap it in atomically.
func (b *Builder) Build(ctx context.Context) (*domain.Storage, error) {
	for _, kind := range b.opts.ActivateWrappers {
		b.registry.Activate(kind)
		b.log.Debugf("location wrapper %q activated", kind)
	}

	componentLists, err := b.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	ws := &workspace{
		assetsByScope:    make(map[string][]domain.Asset),
		parentByScope:    make(map[string]string),
		childrenByParent: make(map[string][]string),
		overridesByScope: make(map[string][]domain.Asset),
	}

	for _, components := range componentLists {
		if err := b.prepare(ws, components); err != nil {
			return nil, err
		}
	}

	b.repairOrphanParents(ws)
	applyOverrides(ws)

	return b.commit(ws)
}

// loadSources loads every declaration source concurrently, preserving source
// order in the result so ingestion stays deterministic.
func (b *Builder) loadSources(ctx context.Context) ([][]domain.Component, error) {
	lists := make([][]domain.Component, len(b.sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, source := range b.sources {
		g.Go(func() error {
			components, err := source.LoadComponents(ctx)
			if err != nil {
				return err
			}
			b.log.Debugf("source %q declared %d components", source.Name(), len(components))
			lists[i] = components
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// prepare records one source's components into the working tables.
func (b *Builder) prepare(ws *workspace, components []domain.Component) error {
	for _, component := range components {
		scope, parent := normalizeScopes(component.Scope, component.Parent)

		if b.excludedScope(scope) || b.excludedScope(parent) {
			b.log.Debugf("skipping excluded component %s/%s", scope, parent)
			continue
		}

		if component.Override {
			ws.overridesByScope[scope] = b.filterAssets(component.Assets)
			continue
		}

		if err := ws.linkParent(scope, parent); err != nil {
			return err
		}
		ws.assetsByScope[scope] = append(ws.assetsByScope[scope], b.filterAssets(component.Assets)...)
	}
	return nil
}

// linkParent records the scope's parent and the reverse child index,
// enforcing that a scope keeps the parent it was first declared under.
func (ws *workspace) linkParent(scope, parent string) error {
	if existing, ok := ws.parentByScope[scope]; ok {
		if existing != parent {
			return parentIncompatibility(scope, parent, existing)
		}
		return nil
	}
	ws.parentByScope[scope] = parent
	if parent != "" {
		ws.childrenByParent[parent] = append(ws.childrenByParent[parent], scope)
	}
	return nil
}

// repairOrphanParents attaches any scope used as a parent reference but never
// declared as a scope under root. This trades strict validation for graceful
// recovery, at this layer only: the commit below cannot then fail with an
// undefined parent.
func (b *Builder) repairOrphanParents(ws *workspace) {
	orphans := make(map[string]bool)
	for _, parent := range ws.parentByScope {
		if parent == "" || parent == domain.RootScope || parent == domain.DetachedScope {
			continue
		}
		if _, declared := ws.parentByScope[parent]; !declared {
			orphans[parent] = true
		}
	}

	for _, orphan := range sortedKeys(orphans) {
		b.log.Warnf("scope %q is referenced as a parent but never declared, attaching under root", orphan)
		ws.parentByScope[orphan] = domain.RootScope
		ws.childrenByParent[domain.RootScope] = append(ws.childrenByParent[domain.RootScope], orphan)
	}
}

// applyOverrides wholesale-replaces the working asset list of every declared
// scope that has staged override assets.
func applyOverrides(ws *workspace) {
	for scope, assets := range ws.overridesByScope {
		if _, declared := ws.assetsByScope[scope]; declared {
			ws.assetsByScope[scope] = assets
		}
	}
}

// commit walks the prepared graph from root and detached in
// parent-before-child order, writing every scope into a fresh Storage through
// the strict store path.
func (b *Builder) commit(ws *workspace) (*domain.Storage, error) {
	storage := domain.NewStorage()

	if err := b.commitSubtree(ws, storage, domain.RootScope); err != nil {
		return nil, err
	}
	if err := b.commitSubtree(ws, storage, domain.DetachedScope); err != nil {
		return nil, err
	}
	return storage, nil
}

func (b *Builder) commitSubtree(ws *workspace, storage *domain.Storage, from string) error {
	// Root itself may carry assets; detached is purely virtual.
	if from == domain.RootScope {
		if err := b.commitScope(ws, storage, from); err != nil {
			return err
		}
	}

	queue := append([]string(nil), ws.childrenByParent[from]...)
	for len(queue) > 0 {
		scope := queue[0]
		queue = queue[1:]
		if err := b.commitScope(ws, storage, scope); err != nil {
			return err
		}
		queue = append(queue, ws.childrenByParent[scope]...)
	}
	return nil
}

func (b *Builder) commitScope(ws *workspace, storage *domain.Storage, scope string) error {
	parent := ws.parentByScope[scope]
	assets := ws.assetsByScope[scope]

	if len(assets) == 0 {
		if parent == "" {
			return nil
		}
		return storage.SetupEmptyScope(scope, parent)
	}

	for _, asset := range assets {
		if err := b.storeAsset(storage, asset, scope, parent); err != nil {
			return err
		}
	}
	return nil
}

// storeAsset writes one asset, recovering once from an undefined parent on
// the detached subtree by lazily creating the missing parent as empty. Every
// other graph-integrity error propagates: a broken declaration set fails the
// ingestion pass loudly.
func (b *Builder) storeAsset(storage *domain.Storage, asset domain.Asset, scope, parent string) error {
	err := storage.Store(asset, scope, parent)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUndefinedParentScope) {
		b.log.Debugf("creating empty parent scope %q to store asset %s", parent, asset)
		if err := storage.SetupEmptyParentScope(parent); err != nil {
			return err
		}
		return storage.Store(asset, scope, parent)
	}
	return err
}

func (b *Builder) excludedScope(name string) bool {
	for _, excluded := range b.opts.ExcludedScopes {
		if strings.EqualFold(excluded, name) {
			return true
		}
	}
	return false
}

// filterAssets drops excluded asset names; Storage itself drops invalid ones.
func (b *Builder) filterAssets(assets []domain.Asset) []domain.Asset {
	if len(b.opts.ExcludedAssets) == 0 {
		return assets
	}
	kept := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		if b.excludedAsset(asset.Name) {
			b.log.Debugf("skipping excluded asset %s", asset)
			continue
		}
		kept = append(kept, asset)
	}
	return kept
}

func (b *Builder) excludedAsset(name string) bool {
	for _, excluded := range b.opts.ExcludedAssets {
		if strings.EqualFold(excluded, name) {
			return true
		}
	}
	return false
}

func parentIncompatibility(scope, parent, linked string) error {
	return zerr.With(zerr.With(zerr.With(domain.ErrParentScopeIncompatibility,
		"scope", scope),
		"parent_scope", parent),
		"linked_parent", linked)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalizeScopes(scope, parent string) (string, string) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	parent = strings.ToLower(strings.TrimSpace(parent))
	if scope == "" {
		scope = domain.DefaultScope
	}
	if parent == "" {
		parent = domain.RootScope
	}
	// Declaring root under root would self-loop; root has no parent.
	if scope == domain.RootScope {
		parent = ""
	}
	return scope, parent
}
