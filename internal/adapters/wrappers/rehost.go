// Package wrappers implements the built-in location wrapper strategies:
// classpath, webapp, cdn, and templated.
package wrappers

import (
	"io/fs"
	"strings"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/keys"
)

// rehoster is shared by wrappers whose content is served from the delivery
// endpoint rather than from the author-declared location: it stores content
// in the cache under a deterministic key and returns the delivery URL.
type rehoster struct {
	cache ports.Cache
	mount string
	kind  string
}

func (r *rehoster) wrap(req ports.RequestContext, asset domain.Asset, location, content string) string {
	key := r.key(req, asset, location)
	if _, ok := r.cache.GetContent(key); !ok {
		r.cache.PutContent(key, content)
	}
	return req.BaseURL() + r.mount + key
}

func (r *rehoster) key(req ports.RequestContext, asset domain.Asset, location string) string {
	context := keys.SanitizeContext(req.CurrentURL())
	return keys.ForResource(context, r.kind, location, asset.Name, asset.Type)
}

// cachedContent resolves a location that was already rehosted back to its
// cached content.
func (r *rehoster) cachedContent(location string) (string, bool) {
	key := keys.FromDeliveryURL(location, r.mount)
	if key == "" {
		return "", false
	}
	return r.cache.GetContent(key)
}

// readFile reads a location from a wrapper's file system, tolerating a
// leading slash in the declared location.
func readFile(fsys fs.FS, kind, location string) (string, error) {
	data, err := fs.ReadFile(fsys, strings.TrimPrefix(location, "/"))
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to read asset location"),
			"location", location),
			"location_kind", kind)
	}
	return string(data), nil
}
