package wrappers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// KindCDN is the location kind for assets hosted on an external CDN.
const KindCDN = "cdn"

// CDN resolves external URLs. Protocol-relative locations are completed
// against the request's transport: https on a secure request, http otherwise.
type CDN struct {
	client *http.Client
}

// NewCDN creates a cdn wrapper.
func NewCDN() *CDN {
	return &CDN{client: &http.Client{Timeout: 10 * time.Second}}
}

// LocationKey implements ports.LocationWrapper.
func (c *CDN) LocationKey() string { return KindCDN }

// WrapLocations implements ports.LocationWrapper.
func (c *CDN) WrapLocations(asset domain.Asset, req ports.RequestContext) ([]string, error) {
	return []string{absolute(asset.Locations[KindCDN], req.Secure())}, nil
}

// Content implements ports.LocationWrapper. Remote fetch failures are fatal
// for the asset: broken CDN references are build input errors.
func (c *CDN) Content(asset domain.Asset, req ports.RequestContext) (string, error) {
	url := absolute(asset.Locations[KindCDN], req.Secure())

	resp, err := c.client.Get(url)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "cdn fetch failed"),
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
		return "", zerr.With(zerr.Wrap(err, "cdn content read failed"), "asset", asset.String())
	}
	return string(body), nil
}

func absolute(location string, secure bool) string {
	if !strings.HasPrefix(location, "//") {
		return location
	}
	if secure {
		return "https:" + location
	}
	return "http:" + location
}

var _ ports.LocationWrapper = (*CDN)(nil)
