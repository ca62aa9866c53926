package wrappers

import (
	"io/fs"
	"strings"
	"sync"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// KindTemplated is the location kind for assets whose content is a template
// instantiated with per-request parameters.
const KindTemplated = "templated"

// Templated reads a template from its file system, substitutes every request
// parameter into it, and rehosts the result on the delivery endpoint. Raw
// templates are kept in a small process-wide cache; dev mode re-reads them on
// every use.
type Templated struct {
	fsys fs.FS
	re   rehoster
	dev  bool

	mu        sync.RWMutex
	templates map[string]string
}

// NewTemplated creates a templated wrapper reading templates from fsys.
func NewTemplated(fsys fs.FS, cache ports.Cache, mountPrefix string, dev bool) *Templated {
	return &Templated{
		fsys:      fsys,
		re:        rehoster{cache: cache, mount: mountPrefix, kind: KindTemplated},
		dev:       dev,
		templates: make(map[string]string),
	}
}

// LocationKey implements ports.LocationWrapper.
func (t *Templated) LocationKey() string { return KindTemplated }

// WrapLocations implements ports.LocationWrapper.
func (t *Templated) WrapLocations(asset domain.Asset, req ports.RequestContext) ([]string, error) {
	content, err := t.instantiate(asset, req)
	if err != nil {
		return nil, err
	}
	return []string{t.re.wrap(req, asset, asset.Locations[KindTemplated], content)}, nil
}

// Content implements ports.LocationWrapper.
func (t *Templated) Content(asset domain.Asset, req ports.RequestContext) (string, error) {
	if content, ok := t.re.cachedContent(asset.Locations[KindTemplated]); ok {
		return content, nil
	}
	return t.instantiate(asset, req)
}

func (t *Templated) instantiate(asset domain.Asset, req ports.RequestContext) (string, error) {
	content, err := t.template(asset.Locations[KindTemplated])
	if err != nil {
		return "", err
	}
	for _, name := range req.ParamNames() {
		value, _ := req.Param(name)
		content = strings.ReplaceAll(content, name, value)
	}
	return content, nil
}

func (t *Templated) template(location string) (string, error) {
	if !t.dev {
		t.mu.RLock()
		cached, ok := t.templates[location]
		t.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	content, err := readFile(t.fsys, KindTemplated, location)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	t.templates[location] = content
	t.mu.Unlock()
	return content, nil
}

var _ ports.LocationWrapper = (*Templated)(nil)
