package domain

import (
	"errors"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Storage holds every known asset, organised into a forest of named scopes
// with parent links. Scope names are case-insensitive. Storage is written
// only during graph construction and is read-only afterwards; it performs no
// internal locking.
type Storage struct {
	scopes     map[string]*scopeNode
	assetCount int
}

type scopeNode struct {
	name   string // display form of the first declaration
	parent string // normalized parent name, "" for the root scope itself
	assets []Asset
}

// NewStorage creates an empty Storage containing only the root scope.
func NewStorage() *Storage {
	s := &Storage{scopes: make(map[string]*scopeNode)}
	s.scopes[RootScope] = &scopeNode{name: RootScope}
	return s
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Store validates the asset and, if valid, appends it to the named scope,
// recording and checking the scope's parent link. An invalid asset is a
// silent no-op. An empty scope defaults to DefaultScope, an empty parent to
// RootScope.
//
// Two stored assets sharing name and type within one scope are merged when
// their versions agree (locations and attributes are unioned, positions must
// not disagree) and rejected with ErrAssetAlreadyExists otherwise.
func (s *Storage) Store(asset Asset, scope, parent string) error {
	if !asset.Valid() {
		return nil
	}

	scope, parent = applyScopeDefaults(scope, parent)

	if scope == DetachedScope {
		return zerr.With(ErrDetachedScopeNotAllowed, "asset", asset.String())
	}

	node, err := s.linkScope(scope, parent)
	if err != nil {
		return err
	}
	return s.insert(node, asset, scope)
}

// StoreTolerant behaves like Store but treats a version conflict as a no-op
// merge instead of an error: the already-stored asset wins and the call
// succeeds. Used when a caller anticipates duplicates from independent
// declaration sources. All other failure modes still propagate.
func (s *Storage) StoreTolerant(asset Asset, scope, parent string) error {
	err := s.Store(asset, scope, parent)
	if errors.Is(err, ErrAssetAlreadyExists) {
		return nil
	}
	return err
}

// SetupEmptyParentScope registers a scope with no assets directly under root,
// letting children exist under an otherwise-undeclared ancestor.
func (s *Storage) SetupEmptyParentScope(name string) error {
	_, err := s.linkScope(normalize(name), RootScope)
	return err
}

// SetupEmptyScope registers a scope with no assets under the given parent.
func (s *Storage) SetupEmptyScope(name, parent string) error {
	name, parent = applyScopeDefaults(name, parent)
	if name == DetachedScope {
		return ErrDetachedScopeNotAllowed
	}
	_, err := s.linkScope(name, parent)
	return err
}

// AssetsFor returns the deduplicated union of assets reachable by walking
// from each named scope up to its topmost ancestor, ordered
// ancestor-before-descendant. When two reachable assets share a name and
// type, the instance from the most specific scope wins. Unknown scope names
// contribute nothing. No scopes means DefaultScope.
func (s *Storage) AssetsFor(scopes ...string) []Asset {
	if len(scopes) == 0 {
		scopes = []string{DefaultScope}
	}

	var out []Asset
	index := make(map[string]int)
	visited := make(map[string]bool)

	for _, scope := range scopes {
		for _, node := range s.chain(normalize(scope)) {
			if visited[node.name] {
				continue
			}
			visited[node.name] = true
			for _, asset := range node.assets {
				if i, seen := index[asset.Key()]; seen {
					out[i] = asset.Clone()
					continue
				}
				index[asset.Key()] = len(out)
				out = append(out, asset.Clone())
			}
		}
	}
	return out
}

// ContainsAnyAsset reports whether at least one asset has been stored. Used
// as the fast-path short-circuit when there is nothing to render.
func (s *Storage) ContainsAnyAsset() bool {
	return s.assetCount > 0
}

// ScopeNames returns every registered scope name in sorted order.
func (s *Storage) ScopeNames() []string {
	names := make([]string, 0, len(s.scopes))
	for name := range s.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain returns the inheritance chain for a scope, topmost ancestor first.
func (s *Storage) Chain(scope string) []string {
	nodes := s.chain(normalize(scope))
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.name
	}
	return names
}

// AssetsIn returns the assets declared directly in one scope, without
// inheritance.
func (s *Storage) AssetsIn(scope string) []Asset {
	node, ok := s.scopes[normalize(scope)]
	if !ok {
		return nil
	}
	out := make([]Asset, len(node.assets))
	for i, a := range node.assets {
		out[i] = a.Clone()
	}
	return out
}

func applyScopeDefaults(scope, parent string) (string, string) {
	scope = normalize(scope)
	parent = normalize(parent)
	if scope == "" {
		scope = DefaultScope
	}
	if parent == "" {
		parent = RootScope
	}
	// A declaration naming root as both scope and parent would form a
	// self-loop; the root scope has no parent.
	if scope == RootScope {
		parent = ""
	}
	return scope, parent
}

// linkScope returns the node for scope, creating it when missing, and
// enforces the parent invariants: a scope keeps the parent it was first
// linked to, and a parent must already be defined unless it is root or
// detached.
func (s *Storage) linkScope(scope, parent string) (*scopeNode, error) {
	if node, ok := s.scopes[scope]; ok {
		if node.parent != parent {
			return nil, zerr.With(zerr.With(zerr.With(ErrParentScopeIncompatibility,
				"scope", scope),
				"parent_scope", parent),
				"linked_parent", node.parent)
		}
		return node, nil
	}

	if parent != "" && parent != RootScope && parent != DetachedScope {
		if _, ok := s.scopes[parent]; !ok {
			return nil, zerr.With(zerr.With(ErrUndefinedParentScope,
				"scope", scope),
				"parent_scope", parent)
		}
	}

	node := &scopeNode{name: scope, parent: parent}
	s.scopes[scope] = node
	return node, nil
}

func (s *Storage) insert(node *scopeNode, asset Asset, scope string) error {
	for i, existing := range node.assets {
		if existing.Key() != asset.Key() {
			continue
		}
		if existing.Version != asset.Version {
			return zerr.With(zerr.With(zerr.With(ErrAssetAlreadyExists,
				"scope", scope),
				"asset", existing.String()),
				"version", asset.Version)
		}
		merged, err := merge(existing, asset, scope)
		if err != nil {
			return err
		}
		node.assets[i] = merged
		return nil
	}

	node.assets = append(node.assets, asset.Clone())
	s.assetCount++
	return nil
}

// merge unions a re-declared asset into the stored one. A collision on a
// location kind or attribute name is a hard conflict, as is a disagreement on
// an explicitly set DOM position.
func merge(existing, incoming Asset, scope string) (Asset, error) {
	merged := existing.Clone()

	for _, kind := range incoming.LocationKinds() {
		if _, ok := merged.Locations[kind]; ok {
			return Asset{}, zerr.With(zerr.With(zerr.With(ErrLocationConflict,
				"scope", scope),
				"asset", existing.String()),
				"location_kind", kind)
		}
		merged.Locations[kind] = incoming.Locations[kind]
	}

	if len(incoming.Attributes) > 0 && merged.Attributes == nil {
		merged.Attributes = make(map[string]string, len(incoming.Attributes))
	}
	attrs := make([]string, 0, len(incoming.Attributes))
	for name := range incoming.Attributes {
		attrs = append(attrs, name)
	}
	sort.Strings(attrs)
	for _, name := range attrs {
		if _, ok := merged.Attributes[name]; ok {
			return Asset{}, zerr.With(zerr.With(zerr.With(ErrAttributeConflict,
				"scope", scope),
				"asset", existing.String()),
				"attribute", name)
		}
		merged.Attributes[name] = incoming.Attributes[name]
	}

	switch {
	case incoming.Position == "":
	case merged.Position == "":
		merged.Position = incoming.Position
	case merged.Position != incoming.Position:
		return Asset{}, zerr.With(zerr.With(zerr.With(ErrDomPositionMismatch,
			"scope", scope),
			"asset", existing.String()),
			"position", string(incoming.Position))
	}

	return merged, nil
}

// chain resolves the inheritance chain for a scope, topmost ancestor first.
// A scope parented under detached inherits nothing. Parent links are fixed at
// creation and every parent predates its children, so the walk terminates.
func (s *Storage) chain(scope string) []*scopeNode {
	var nodes []*scopeNode
	for name := scope; name != "" && name != DetachedScope; {
		node, ok := s.scopes[name]
		if !ok {
			break
		}
		nodes = append(nodes, node)
		name = node.parent
	}
	// Reverse: collected scope-first, callers want ancestor-first.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}
