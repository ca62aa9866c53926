package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/core/ports/mocks"
	"github.com/bindleio/bindle/internal/engine/builder"
	"github.com/bindleio/bindle/internal/engine/pipeline"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Error(error)           {}

func jsAsset(name string) domain.Asset {
	return domain.Asset{
		Name: name, Version: "1.0.0", Type: domain.TypeScript,
		Locations: map[string]string{"cdn": "//cdn/" + name + ".js"},
	}
}

func sourceOf(ctrl *gomock.Controller, name string, components ...domain.Component) ports.DeclarationSource {
	src := mocks.NewMockDeclarationSource(ctrl)
	src.EXPECT().Name().Return(name).AnyTimes()
	src.EXPECT().LoadComponents(gomock.Any()).Return(components, nil).AnyTimes()
	return src
}

func build(t *testing.T, sources []ports.DeclarationSource, opts builder.Options) *domain.Storage {
	t.Helper()
	b := builder.New(sources, pipeline.NewRegistry(), opts, nopLogger{})
	storage, err := b.Build(context.Background())
	require.NoError(t, err)
	return storage
}

func TestBuilder_CommitsSimpleGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "base", Assets: []domain.Asset{jsAsset("jquery")}},
			domain.Component{Scope: "page", Parent: "base", Assets: []domain.Asset{jsAsset("page")}},
		),
	}, builder.Options{})

	assets := storage.AssetsFor("page")
	require.Len(t, assets, 2)
	require.Equal(t, "jquery", assets[0].Name, "ancestor assets come first")
	require.Equal(t, "page", assets[1].Name)
}

func TestBuilder_ChildDeclaredBeforeParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Declaration order must not matter: the commit happens in
	// parent-before-child order regardless.
	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "page", Parent: "base", Assets: []domain.Asset{jsAsset("page")}},
			domain.Component{Scope: "base", Assets: []domain.Asset{jsAsset("jquery")}},
		),
	}, builder.Options{})

	require.Len(t, storage.AssetsFor("page"), 2)
}

func TestBuilder_OrphanParentAttachedUnderRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// "ghost" is referenced as a parent but never declared as a scope.
	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "page", Parent: "ghost", Assets: []domain.Asset{jsAsset("page")}},
		),
	}, builder.Options{})

	require.Equal(t, []string{domain.RootScope, "ghost", "page"}, storage.Chain("page"))
	require.Len(t, storage.AssetsFor("page"), 1)
}

func TestBuilder_OverrideReplacesScopeAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "page", Assets: []domain.Asset{jsAsset("old"), jsAsset("older")}},
			domain.Component{Scope: "page", Override: true, Assets: []domain.Asset{jsAsset("new")}},
		),
	}, builder.Options{})

	assets := storage.AssetsFor("page")
	require.Len(t, assets, 1)
	require.Equal(t, "new", assets[0].Name)
}

func TestBuilder_OverrideForUndeclaredScopeIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "elsewhere", Override: true, Assets: []domain.Asset{jsAsset("new")}},
		),
	}, builder.Options{})

	require.Empty(t, storage.AssetsFor("elsewhere"))
	require.False(t, storage.ContainsAnyAsset())
}

func TestBuilder_ExcludedScopesAndAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "kept", Assets: []domain.Asset{jsAsset("app"), jsAsset("tracker")}},
			domain.Component{Scope: "dropped", Assets: []domain.Asset{jsAsset("unwanted")}},
		),
	}, builder.Options{
		ExcludedScopes: []string{"Dropped"},
		ExcludedAssets: []string{"Tracker"},
	})

	assets := storage.AssetsFor("kept")
	require.Len(t, assets, 1)
	require.Equal(t, "app", assets[0].Name)
	require.Empty(t, storage.AssetsFor("dropped"))
}

func TestBuilder_DetachedSubtree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: domain.RootScope, Assets: []domain.Asset{jsAsset("global")}},
			domain.Component{Scope: "overlay", Parent: domain.DetachedScope, Assets: []domain.Asset{jsAsset("popup")}},
		),
	}, builder.Options{})

	assets := storage.AssetsFor("overlay")
	require.Len(t, assets, 1, "detached subtree must not inherit from root")
	require.Equal(t, "popup", assets[0].Name)
}

func TestBuilder_ConflictingParentsFailIngestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := builder.New([]ports.DeclarationSource{
		sourceOf(ctrl, "one",
			domain.Component{Scope: "a", Assets: []domain.Asset{jsAsset("x")}},
			domain.Component{Scope: "b", Assets: []domain.Asset{jsAsset("y")}},
			domain.Component{Scope: "child", Parent: "a", Assets: []domain.Asset{jsAsset("z")}},
			domain.Component{Scope: "child", Parent: "b", Assets: []domain.Asset{jsAsset("w")}},
		),
	}, pipeline.NewRegistry(), builder.Options{}, nopLogger{})

	_, err := b.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrParentScopeIncompatibility)
}

func TestBuilder_SourceErrorFailsIngestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockDeclarationSource(ctrl)
	src.EXPECT().Name().Return("broken").AnyTimes()
	src.EXPECT().LoadComponents(gomock.Any()).Return(nil, errors.New("io failure"))

	b := builder.New([]ports.DeclarationSource{src}, pipeline.NewRegistry(), builder.Options{}, nopLogger{})
	_, err := b.Build(context.Background())
	require.Error(t, err)
}

func TestBuilder_MergesComponentsAcrossSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := build(t, []ports.DeclarationSource{
		sourceOf(ctrl, "first",
			domain.Component{Scope: "page", Assets: []domain.Asset{jsAsset("one")}},
		),
		sourceOf(ctrl, "second",
			domain.Component{Scope: "page", Assets: []domain.Asset{jsAsset("two")}},
		),
	}, builder.Options{})

	require.Len(t, storage.AssetsFor("page"), 2)
}

func TestBuilder_ActivatesRequestedWrappers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := pipeline.NewRegistry()
	wrapper := mocks.NewMockLocationWrapper(ctrl)
	wrapper.EXPECT().LocationKey().Return("cdn").AnyTimes()
	registry.Register(wrapper)

	b := builder.New([]ports.DeclarationSource{sourceOf(ctrl, "empty")}, registry,
		builder.Options{ActivateWrappers: []string{"cdn"}}, nopLogger{})
	_, err := b.Build(context.Background())
	require.NoError(t, err)

	_, active := registry.Active("cdn")
	require.True(t, active)
}
