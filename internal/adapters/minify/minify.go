// Package minify implements the pluggable compressor contract on top of
// tdewolff/minify.
package minify

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// Options configure the minifier.
type Options struct {
	// Mangle shortens script identifiers. Stylesheets are unaffected.
	Mangle bool
}

// Minifier implements ports.Compressor for scripts and stylesheets. Content
// of any other asset type passes through unchanged.
type Minifier struct {
	m *minify.M
}

// New creates a Minifier.
func New(opts Options) *Minifier {
	m := minify.New()
	m.AddFunc(domain.TypeStylesheet.ContentType(), css.Minify)
	m.Add(domain.TypeScript.ContentType(), &js.Minifier{KeepVarNames: !opts.Mangle})
	return &Minifier{m: m}
}

// Compress implements ports.Compressor. A parse failure is fatal for the
// asset: it indicates a broken build input, not a condition to paper over.
func (mi *Minifier) Compress(t domain.AssetType, name, content string) (string, error) {
	if !t.Valid() {
		return content, nil
	}

	out, err := mi.m.String(t.ContentType(), content)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "minification failed"),
			"asset", name),
			"type", string(t))
	}
	return out, nil
}

var _ ports.Compressor = (*Minifier)(nil)
