// Package source implements a declaration source reading bundle files from a
// file system.
package source

import (
	"context"
	"io/fs"
	"sort"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// Suffix is the file name suffix bundle declaration files must carry.
const Suffix = ".bundle.yaml"

// YAML loads bundle declarations from every *.bundle.yaml file under a file
// system root. Each file declares one component. Files are visited in sorted
// path order so ingestion is deterministic.
type YAML struct {
	name string
	fsys fs.FS
	log  ports.Logger
}

// NewYAML creates a YAML declaration source. The name identifies the source
// in logs when several are registered.
func NewYAML(name string, fsys fs.FS, log ports.Logger) *YAML {
	return &YAML{name: name, fsys: fsys, log: log}
}

// Name implements ports.DeclarationSource.
func (y *YAML) Name() string { return y.name }

// LoadComponents implements ports.DeclarationSource.
func (y *YAML) LoadComponents(ctx context.Context) ([]domain.Component, error) {
	paths, err := y.declarationFiles()
	if err != nil {
		return nil, err
	}

	components := make([]domain.Component, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		component, err := y.loadFile(path)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, nil
}

func (y *YAML) declarationFiles() ([]string, error) {
	var paths []string
	err := fs.WalkDir(y.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Suffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan declaration files"), "source", y.name)
	}
	sort.Strings(paths)
	return paths, nil
}

// bundleFile is the on-disk schema of one declaration file.
type bundleFile struct {
	Bundle   string     `yaml:"bundle"`
	Parent   string     `yaml:"parent"`
	Override bool       `yaml:"override"`
	Assets   []assetDTO `yaml:"assets"`
}

type assetDTO struct {
	Name       string            `yaml:"name"`
	Version    string            `yaml:"version"`
	Type       string            `yaml:"type"`
	Dom        string            `yaml:"dom"`
	Locations  map[string]string `yaml:"locations"`
	Attributes map[string]string `yaml:"attributes"`
}

func (y *YAML) loadFile(path string) (domain.Component, error) {
	data, err := fs.ReadFile(y.fsys, path)
	if err != nil {
		return domain.Component{}, zerr.With(zerr.Wrap(err, "failed to read declaration file"), "path", path)
	}

	var file bundleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Component{}, zerr.With(zerr.Wrap(err, "failed to parse declaration file"), "path", path)
	}

	component := domain.Component{
		Scope:    file.Bundle,
		Parent:   file.Parent,
		Override: file.Override,
		Assets:   make([]domain.Asset, 0, len(file.Assets)),
	}
	for _, dto := range file.Assets {
		asset := dto.toDomain()
		if !asset.Valid() {
			y.log.Warnf("dropping invalid asset %q declared in %s", dto.Name, path)
			continue
		}
		component.Assets = append(component.Assets, asset)
	}
	return component, nil
}

func (d assetDTO) toDomain() domain.Asset {
	return domain.Asset{
		Name:       d.Name,
		Version:    d.Version,
		Type:       domain.AssetType(strings.ToLower(d.Type)),
		Position:   domain.DomPosition(strings.ToLower(d.Dom)),
		Locations:  d.Locations,
		Attributes: d.Attributes,
	}
}
