package wrappers

import (
	"io/fs"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// KindClasspath is the location kind for assets bundled with the
// application, typically an embedded file system.
const KindClasspath = "classpath"

// Classpath serves assets shipped inside the application binary or tree. The
// raw location is a path into the wrapper's file system; the wrapped URL
// points at the delivery endpoint with the content cached eagerly.
type Classpath struct {
	fsys fs.FS
	re   rehoster
}

// NewClasspath creates a classpath wrapper reading from fsys.
func NewClasspath(fsys fs.FS, cache ports.Cache, mountPrefix string) *Classpath {
	return &Classpath{
		fsys: fsys,
		re:   rehoster{cache: cache, mount: mountPrefix, kind: KindClasspath},
	}
}

// LocationKey implements ports.LocationWrapper.
func (c *Classpath) LocationKey() string { return KindClasspath }

// WrapLocations implements ports.LocationWrapper.
func (c *Classpath) WrapLocations(asset domain.Asset, req ports.RequestContext) ([]string, error) {
	location := asset.Locations[KindClasspath]
	content, err := readFile(c.fsys, KindClasspath, location)
	if err != nil {
		return nil, err
	}
	return []string{c.re.wrap(req, asset, location, content)}, nil
}

// Content implements ports.LocationWrapper.
func (c *Classpath) Content(asset domain.Asset, req ports.RequestContext) (string, error) {
	location := asset.Locations[KindClasspath]
	if content, ok := c.re.cachedContent(location); ok {
		return content, nil
	}
	return readFile(c.fsys, KindClasspath, location)
}

var _ ports.LocationWrapper = (*Classpath)(nil)
