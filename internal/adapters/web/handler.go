package web

import (
	"net/http"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/keys"
)

// Handler is the delivery endpoint: it resolves a cache key from the request
// path and streams the cached content with the content type derived from the
// key's extension. A miss here is an ordinary not-found, distinct from a
// pipeline-time cache miss which triggers computation instead.
type Handler struct {
	cache ports.Cache
	dev   bool
	log   ports.Logger
}

// NewHandler creates the delivery handler. Mount it under the same prefix
// the pipeline embeds in delivery URLs.
func NewHandler(cache ports.Cache, dev bool, log ports.Logger) *Handler {
	return &Handler{cache: cache, dev: dev, log: log}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	key := keys.FromPath(r.URL.Path)
	content, ok := h.cache.GetContent(key)
	if !ok {
		h.log.Debugf("delivery miss for cache key %q", key)
		http.NotFound(w, r)
		return
	}

	t, ok := domain.TypeOfKey(key)
	contentType := "application/octet-stream"
	if ok {
		contentType = t.ContentType()
	}

	w.Header().Set("Content-Type", contentType)
	if h.dev {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}

	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(content))
}
