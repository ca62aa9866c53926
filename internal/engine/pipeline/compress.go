package pipeline

import (
	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/keys"
)

const stageCompression = "compression"

// CompressionStage minifies asset content and rehosts it on the delivery
// endpoint under a deterministic cache key. Content already present under a
// key is never recomputed; a concurrent duplicate computation of the same key
// is harmless because the result is identical.
type CompressionStage struct {
	cache      ports.Cache
	compressor ports.Compressor
	fetch      *fetcher
	opts       Options
	log        ports.Logger
}

// NewCompressionStage creates the compression stage.
func NewCompressionStage(
	registry *Registry,
	cache ports.Cache,
	compressor ports.Compressor,
	opts Options,
	log ports.Logger,
) *CompressionStage {
	return &CompressionStage{
		cache:      cache,
		compressor: compressor,
		fetch:      newFetcher(registry, cache, opts.mountPrefix()),
		opts:       opts,
		log:        log,
	}
}

// Name implements ports.Stage.
func (s *CompressionStage) Name() string { return stageCompression }

// Rank implements ports.Stage.
func (s *CompressionStage) Rank() int { return RankCompression }

// Process implements ports.Stage.
func (s *CompressionStage) Process(req ports.RequestContext, assets []domain.Asset) ([]domain.Asset, error) {
	if !s.opts.Compression.Enabled {
		return assets, nil
	}

	context := keys.SanitizeContext(req.CurrentURL())
	out := make([]domain.Asset, 0, len(assets))

	for _, asset := range assets {
		for _, kind := range asset.LocationKinds() {
			location := asset.Locations[kind]
			key := keys.ForResource(context, stageCompression, location, asset.Name, asset.Type)

			if _, ok := s.cache.GetContent(key); !ok {
				content, err := s.processOne(req, asset, kind, location)
				if err != nil {
					return nil, err
				}
				s.cache.PutContent(key, content)
				s.log.Debugf("cached compressed content for asset %s under %s", asset, key)
			}

			out = append(out, withSingleLocation(asset, stageCompression,
				req.BaseURL()+s.opts.mountPrefix()+key))
		}
	}
	return out, nil
}

func (s *CompressionStage) processOne(req ports.RequestContext, asset domain.Asset, kind, location string) (string, error) {
	content, err := s.fetch.content(req, asset, kind, location)
	if err != nil {
		return "", err
	}
	if !s.opts.Compression.Minify {
		return content, nil
	}

	compressed, err := s.compressor.Compress(asset.Type, asset.Name, content)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "compression failed"),
			"asset", asset.String()),
			"stage", stageCompression)
	}
	return compressed, nil
}
