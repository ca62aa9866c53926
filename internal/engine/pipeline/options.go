package pipeline

// Stage ranks. Lower ranks run first; location resolution must precede
// compression, which must precede aggregation.
const (
	RankLocation    = 1000
	RankCompression = 2000
	RankAggregation = 3000
)

// DefaultMountPrefix is the path prefix the delivery endpoint is mounted at.
const DefaultMountPrefix = "/bindle-assets/"

// CompressionOptions configure the compression stage.
type CompressionOptions struct {
	Enabled bool

	// Minify runs the pluggable compressor over fetched content. With Minify
	// off the stage still rehosts content through the delivery endpoint.
	Minify bool

	// Mangle shortens identifiers during script minification.
	Mangle bool
}

// AggregationOptions configure the aggregation stage.
type AggregationOptions struct {
	Enabled bool
}

// Options configure the processing pipeline.
type Options struct {
	// PreferredKinds is the ordered list of location kinds the location stage
	// searches when an asset declares more than one.
	PreferredKinds []string

	// MountPrefix is the delivery endpoint path prefix embedded in the URLs
	// the compression and aggregation stages emit.
	MountPrefix string

	Compression CompressionOptions
	Aggregation AggregationOptions
}

// DefaultPreferredKinds is the search order used when none is configured.
var DefaultPreferredKinds = []string{"cdn", "webapp", "classpath", "templated"}

func (o Options) preferredKinds() []string {
	if len(o.PreferredKinds) == 0 {
		return DefaultPreferredKinds
	}
	return o.PreferredKinds
}

func (o Options) mountPrefix() string {
	if o.MountPrefix == "" {
		return DefaultMountPrefix
	}
	return o.MountPrefix
}
