package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
)

func asset(name, version string, t domain.AssetType, locations map[string]string) domain.Asset {
	return domain.Asset{Name: name, Version: version, Type: t, Locations: locations}
}

func jsAsset(name, version string) domain.Asset {
	return asset(name, version, domain.TypeScript, map[string]string{"cdn": "//cdn.example.com/" + name + ".js"})
}

func TestStorage_StoreAndRetrieve(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("jquery", "3.7.1"), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assets := s.AssetsFor("scope1")
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	if assets[0].Name != "jquery" {
		t.Errorf("expected jquery, got %s", assets[0].Name)
	}
}

func TestStorage_InvalidAssetIsIgnored(t *testing.T) {
	s := domain.NewStorage()

	// No version, no locations: both invalid.
	if err := s.Store(domain.Asset{Name: "broken", Type: domain.TypeScript}, "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(asset("nowhere", "1.0.0", domain.TypeScript, nil), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ContainsAnyAsset() {
		t.Error("expected storage to remain empty")
	}
}

func TestStorage_EmptyScopeDefaults(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("jquery", "3.7.1"), "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assets := s.AssetsFor(domain.DefaultScope); len(assets) != 1 {
		t.Fatalf("expected asset in default scope, got %d", len(assets))
	}
	// No scopes requested means the default scope.
	if assets := s.AssetsFor(); len(assets) != 1 {
		t.Fatalf("expected default scope fallback, got %d assets", len(assets))
	}
}

func TestStorage_ScopeNamesAreCaseInsensitive(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("jquery", "3.7.1"), "MyScope", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assets := s.AssetsFor("myscope"); len(assets) != 1 {
		t.Errorf("expected case-insensitive scope lookup, got %d assets", len(assets))
	}
}

func TestStorage_DetachedScopeRejected(t *testing.T) {
	s := domain.NewStorage()

	err := s.Store(jsAsset("jquery", "3.7.1"), domain.DetachedScope, "")
	if !errors.Is(err, domain.ErrDetachedScopeNotAllowed) {
		t.Fatalf("expected ErrDetachedScopeNotAllowed, got %v", err)
	}
}

func TestStorage_DetachedParentAllowed(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("popup", "1.0.0"), "overlay", domain.DetachedScope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A detached subtree inherits nothing from root.
	if err := s.Store(jsAsset("base", "1.0.0"), domain.RootScope, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assets := s.AssetsFor("overlay")
	if len(assets) != 1 || assets[0].Name != "popup" {
		t.Fatalf("expected only popup in detached subtree, got %v", assets)
	}
}

func TestStorage_DuplicateVersionConflict(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("jquery", "3.7.1"), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Store(jsAsset("jquery", "2.2.4"), "scope1", "")
	if !errors.Is(err, domain.ErrAssetAlreadyExists) {
		t.Fatalf("expected ErrAssetAlreadyExists, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if scope, ok := meta["scope"].(string); !ok || scope != "scope1" {
		t.Errorf("expected metadata scope=scope1, got %v", meta["scope"])
	}
}

func TestStorage_StoreTolerantSwallowsVersionConflict(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("jquery", "3.7.1"), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.StoreTolerant(jsAsset("jquery", "2.2.4"), "scope1", ""); err != nil {
		t.Fatalf("expected tolerant store to succeed, got %v", err)
	}

	assets := s.AssetsFor("scope1")
	if len(assets) != 1 || assets[0].Version != "3.7.1" {
		t.Fatalf("expected first stored version to win, got %v", assets)
	}

	// Other failure modes still propagate.
	err := s.StoreTolerant(jsAsset("x", "1.0.0"), "child", "nosuchparent")
	if !errors.Is(err, domain.ErrUndefinedParentScope) {
		t.Fatalf("expected ErrUndefinedParentScope, got %v", err)
	}
}

func TestStorage_SameVersionMergesLocations(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(asset("app", "1.0.0", domain.TypeScript,
		map[string]string{"cdn": "//cdn/app.js"}), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(asset("app", "1.0.0", domain.TypeScript,
		map[string]string{"webapp": "/js/app.js"}), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assets := s.AssetsFor("scope1")
	if len(assets) != 1 {
		t.Fatalf("expected merged asset, got %d", len(assets))
	}
	if len(assets[0].Locations) != 2 {
		t.Errorf("expected 2 locations after merge, got %v", assets[0].Locations)
	}
}

func TestStorage_MergeLocationKindConflict(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(asset("app", "1.0.0", domain.TypeScript,
		map[string]string{"cdn": "//cdn/app.js"}), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-declaring an already-present kind conflicts even with an equal value.
	err := s.Store(asset("app", "1.0.0", domain.TypeScript,
		map[string]string{"cdn": "//cdn/app.js"}), "scope1", "")
	if !errors.Is(err, domain.ErrLocationConflict) {
		t.Fatalf("expected ErrLocationConflict, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if kind, ok := zErr.Metadata()["location_kind"].(string); !ok || kind != "cdn" {
		t.Errorf("expected metadata location_kind=cdn, got %v", zErr.Metadata()["location_kind"])
	}
}

func TestStorage_MergeAttributeConflict(t *testing.T) {
	s := domain.NewStorage()

	first := asset("app", "1.0.0", domain.TypeScript, map[string]string{"cdn": "//cdn/app.js"})
	first.Attributes = map[string]string{"defer": "true"}
	if err := s.Store(first, "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := asset("app", "1.0.0", domain.TypeScript, map[string]string{"webapp": "/js/app.js"})
	second.Attributes = map[string]string{"defer": "false"}
	err := s.Store(second, "scope1", "")
	if !errors.Is(err, domain.ErrAttributeConflict) {
		t.Fatalf("expected ErrAttributeConflict, got %v", err)
	}
}

func TestStorage_MergePositionMismatch(t *testing.T) {
	s := domain.NewStorage()

	first := asset("app", "1.0.0", domain.TypeScript, map[string]string{"cdn": "//cdn/app.js"})
	first.Position = domain.PositionHead
	if err := s.Store(first, "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := asset("app", "1.0.0", domain.TypeScript, map[string]string{"webapp": "/js/app.js"})
	second.Position = domain.PositionBody
	err := s.Store(second, "scope1", "")
	if !errors.Is(err, domain.ErrDomPositionMismatch) {
		t.Fatalf("expected ErrDomPositionMismatch, got %v", err)
	}
}

func TestStorage_UndefinedParentScope(t *testing.T) {
	s := domain.NewStorage()

	err := s.Store(jsAsset("app", "1.0.0"), "child", "missing")
	if !errors.Is(err, domain.ErrUndefinedParentScope) {
		t.Fatalf("expected ErrUndefinedParentScope, got %v", err)
	}

	if err := s.SetupEmptyParentScope("missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("app", "1.0.0"), "child", "missing"); err != nil {
		t.Fatalf("expected store to succeed after parent setup, got %v", err)
	}
}

func TestStorage_ParentScopeIncompatibility(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("a", "1.0.0"), "parent1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("b", "1.0.0"), "child", "parent1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Store(jsAsset("c", "1.0.0"), "child", "")
	if !errors.Is(err, domain.ErrParentScopeIncompatibility) {
		t.Fatalf("expected ErrParentScopeIncompatibility, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if linked, ok := meta["linked_parent"].(string); !ok || linked != "parent1" {
		t.Errorf("expected metadata linked_parent=parent1, got %v", meta["linked_parent"])
	}
}

func TestStorage_InheritanceAncestorFirst(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("base", "1.0.0"), domain.RootScope, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("mid", "1.0.0"), "middle", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("leafy", "1.0.0"), "leaf", "middle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assets := s.AssetsFor("leaf")
	got := make([]string, len(assets))
	for i, a := range assets {
		got[i] = a.Name
	}
	want := []string{"base", "mid", "leafy"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestStorage_DeeperScopeOverridesAncestor(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("jquery", "2.2.4"), domain.RootScope, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("jquery", "3.7.1"), "modern", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assets := s.AssetsFor("modern")
	if len(assets) != 1 {
		t.Fatalf("expected deduplicated asset, got %d", len(assets))
	}
	if assets[0].Version != "3.7.1" {
		t.Errorf("expected deeper scope to win, got version %s", assets[0].Version)
	}
}

func TestStorage_MultiScopeQuerySharedAncestor(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("base", "1.0.0"), domain.RootScope, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("left", "1.0.0"), "left", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(jsAsset("right", "1.0.0"), "right", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assets := s.AssetsFor("left", "right")
	if len(assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(assets))
	}
	// The shared root contributes exactly once, before both children.
	if assets[0].Name != "base" {
		t.Errorf("expected base first, got %s", assets[0].Name)
	}
}

func TestStorage_UnknownScopeContributesNothing(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("app", "1.0.0"), "known", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assets := s.AssetsFor("known", "nosuchscope")
	if len(assets) != 1 {
		t.Fatalf("expected unknown scope to be skipped, got %d assets", len(assets))
	}
}

func TestStorage_ReturnedAssetsAreIsolated(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(jsAsset("app", "1.0.0"), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := s.AssetsFor("scope1")
	first[0].Locations["cdn"] = "tampered"

	second := s.AssetsFor("scope1")
	if second[0].Locations["cdn"] == "tampered" {
		t.Error("expected stored asset to be isolated from caller mutation")
	}
}

func TestStorage_SameNameDifferentTypeCoexist(t *testing.T) {
	s := domain.NewStorage()

	if err := s.Store(asset("app", "1.0.0", domain.TypeScript,
		map[string]string{"cdn": "//cdn/app.js"}), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Store(asset("app", "1.0.0", domain.TypeStylesheet,
		map[string]string{"cdn": "//cdn/app.css"}), "scope1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assets := s.AssetsFor("scope1"); len(assets) != 2 {
		t.Fatalf("expected js and css to coexist, got %d", len(assets))
	}
}
