// Package web adapts bindle to net/http: the request context implementation
// and the delivery endpoint handler.
package web

import (
	"net/http"
	"sort"
	"sync"

	"github.com/bindleio/bindle/internal/core/ports"
)

// Context implements ports.RequestContext over an inbound *http.Request and
// carries the per-request state page authors accumulate before rendering:
// requested bundles, excluded asset names, and wrapper parameters.
type Context struct {
	currentURL string
	baseURL    string
	secure     bool

	mu       sync.RWMutex
	params   map[string]string
	bundles  []string
	excluded []string
}

// NewContext derives a request context from an inbound request.
func NewContext(r *http.Request) *Context {
	scheme := "http"
	secure := r.TLS != nil
	if secure {
		scheme = "https"
	}
	base := scheme + "://" + r.Host

	return &Context{
		currentURL: base + r.URL.RequestURI(),
		baseURL:    base,
		secure:     secure,
		params:     make(map[string]string),
	}
}

// NewStaticContext builds a context from explicit values, for CLI use and
// tests where no inbound request exists.
func NewStaticContext(currentURL, baseURL string, secure bool) *Context {
	return &Context{
		currentURL: currentURL,
		baseURL:    baseURL,
		secure:     secure,
		params:     make(map[string]string),
	}
}

// CurrentURL implements ports.RequestContext.
func (c *Context) CurrentURL() string { return c.currentURL }

// BaseURL implements ports.RequestContext.
func (c *Context) BaseURL() string { return c.baseURL }

// Secure implements ports.RequestContext.
func (c *Context) Secure() bool { return c.secure }

// Param implements ports.RequestContext.
func (c *Context) Param(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.params[name]
	return value, ok
}

// ParamNames implements ports.RequestContext.
func (c *Context) ParamNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.params))
	for name := range c.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetParam records a wrapper parameter for this request.
func (c *Context) SetParam(name, value string) *Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params[name] = value
	return c
}

// AddBundles appends to the bundles requested by the page.
func (c *Context) AddBundles(names ...string) *Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bundles = append(c.bundles, names...)
	return c
}

// Bundles returns the bundles requested so far.
func (c *Context) Bundles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.bundles...)
}

// ExcludeAssets appends to the asset names excluded from this request.
func (c *Context) ExcludeAssets(names ...string) *Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.excluded = append(c.excluded, names...)
	return c
}

// ExcludedAssets returns the asset names excluded so far.
func (c *Context) ExcludedAssets() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.excluded...)
}

var _ ports.RequestContext = (*Context)(nil)
