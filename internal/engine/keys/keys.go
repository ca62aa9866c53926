// Package keys generates the deterministic, content-addressable cache keys
// used throughout the processing pipeline. Key generation is a pure function
// of the request context and the asset's declared data: two independent calls
// with identical inputs produce identical bytes.
package keys

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/bindleio/bindle/internal/core/domain"
)

// SanitizeContext normalises a request URL for embedding in cache keys and
// delivery paths: query separators become underscores so the key never breaks
// a URL path.
func SanitizeContext(url string) string {
	return strings.NewReplacer("?", "_", "&", "_").Replace(url)
}

// ForResource builds the cache key for a processed resource. The digest
// covers the request context, the processing stage, and the raw location; the
// asset name keeps keys readable and the type extension carries the content
// type into the delivery endpoint.
func ForResource(context, stage, location, assetName string, t domain.AssetType) string {
	d := xxhash.New()
	_, _ = d.WriteString(context)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(stage)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(location)
	_, _ = d.Write([]byte{0})

	return fmt.Sprintf("%016x-%s%s", d.Sum64(), slug(assetName), t.Extension())
}

// FromPath extracts the cache key from a delivery path of the form
// <mount-prefix>/<key>.
func FromPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// FromDeliveryURL extracts the cache key from a URL produced by the pipeline,
// or "" when the URL does not point at the delivery endpoint.
func FromDeliveryURL(url, mountPrefix string) string {
	i := strings.Index(url, mountPrefix)
	if i < 0 {
		return ""
	}
	key := url[i+len(mountPrefix):]
	if key == "" || strings.Contains(key, "/") {
		return ""
	}
	return key
}

// slug reduces an asset name to the characters safe in a URL path segment.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
