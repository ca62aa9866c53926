package wrappers

import (
	"io/fs"
	"strings"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// KindWebapp is the location kind for assets served by the host application
// itself, declared as paths relative to its base URL.
const KindWebapp = "webapp"

// Webapp resolves relative paths against the request's base URL. Content is
// read from the application's static file root.
type Webapp struct {
	webroot fs.FS
}

// NewWebapp creates a webapp wrapper reading content from webroot.
func NewWebapp(webroot fs.FS) *Webapp {
	return &Webapp{webroot: webroot}
}

// LocationKey implements ports.LocationWrapper.
func (w *Webapp) LocationKey() string { return KindWebapp }

// WrapLocations implements ports.LocationWrapper.
func (w *Webapp) WrapLocations(asset domain.Asset, req ports.RequestContext) ([]string, error) {
	location := asset.Locations[KindWebapp]
	if !strings.HasPrefix(location, "/") {
		location = "/" + location
	}
	return []string{req.BaseURL() + location}, nil
}

// Content implements ports.LocationWrapper.
func (w *Webapp) Content(asset domain.Asset, req ports.RequestContext) (string, error) {
	location := asset.Locations[KindWebapp]
	// Wrapped locations carry the base URL; content always comes from the
	// static root.
	location = strings.TrimPrefix(location, req.BaseURL())
	return readFile(w.webroot, KindWebapp, location)
}

var _ ports.LocationWrapper = (*Webapp)(nil)
