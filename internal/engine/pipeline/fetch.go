package pipeline

import (
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/keys"
)

// fetcher retrieves the raw content behind an asset location for the
// compression and aggregation stages. Locations already rehosted on the
// delivery endpoint resolve straight from the cache; everything else goes
// through the location kind's wrapper, falling back to a plain HTTP fetch for
// absolute URLs.
type fetcher struct {
	registry *Registry
	cache    ports.Cache
	mount    string
	client   *http.Client
}

func newFetcher(registry *Registry, cache ports.Cache, mount string) *fetcher {
	return &fetcher{
		registry: registry,
		cache:    cache,
		mount:    mount,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *fetcher) content(req ports.RequestContext, asset domain.Asset, kind, location string) (string, error) {
	if key := keys.FromDeliveryURL(location, f.mount); key != "" {
		if content, ok := f.cache.GetContent(key); ok {
			return content, nil
		}
	}

	if wrapper, ok := f.registry.Lookup(kind); ok {
		content, err := wrapper.Content(asset, req)
		if err != nil {
			return "", zerr.With(zerr.With(zerr.Wrap(err, "wrapper content fetch failed"),
				"asset", asset.String()),
				"location_kind", kind)
		}
		return content, nil
	}

	if url, ok := absoluteURL(location, req); ok {
		return f.httpGet(url, asset)
	}

	return "", zerr.With(zerr.With(domain.ErrContentFetch,
		"asset", asset.String()),
		"location", location)
}

func (f *fetcher) httpGet(url string, asset domain.Asset) (string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to fetch asset content"),
			"asset", asset.String()),
			"location", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return "", zerr.With(zerr.With(zerr.With(domain.ErrContentFetch,
			"asset", asset.String()),
			"location", url),
			"status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read asset content"), "asset", asset.String())
	}
	return string(body), nil
}

// absoluteURL resolves protocol-relative locations against the request's
// transport security.
func absoluteURL(location string, req ports.RequestContext) (string, bool) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return location, true
	case strings.HasPrefix(location, "//"):
		if req.Secure() {
			return "https:" + location, true
		}
		return "http:" + location, true
	default:
		return "", false
	}
}
