package pipeline

import (
	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// LocationStage picks one location kind per asset and resolves it through the
// registered wrapper, fanning out into one successor asset per wrapped URL.
// Assets with no usable location are dropped with a warning rather than
// failing the request.
type LocationStage struct {
	registry  *Registry
	preferred []string
	log       ports.Logger
}

// NewLocationStage creates the location resolution stage.
func NewLocationStage(registry *Registry, opts Options, log ports.Logger) *LocationStage {
	return &LocationStage{
		registry:  registry,
		preferred: opts.preferredKinds(),
		log:       log,
	}
}

// Name implements ports.Stage.
func (s *LocationStage) Name() string { return "location" }

// Rank implements ports.Stage.
func (s *LocationStage) Rank() int { return RankLocation }

// Process implements ports.Stage.
func (s *LocationStage) Process(req ports.RequestContext, assets []domain.Asset) ([]domain.Asset, error) {
	out := make([]domain.Asset, 0, len(assets))

	for _, asset := range assets {
		kind, ok := s.selectKind(asset)
		if !ok {
			continue
		}

		if !s.registry.Registered(kind) {
			s.log.Warnf("no wrapper registered for location kind %q, dropping asset %s", kind, asset)
			continue
		}

		wrapper, active := s.registry.Active(kind)
		if !active {
			// Registered but not activated: the raw location is served as-is.
			out = append(out, withSingleLocation(asset, kind, asset.Locations[kind]))
			continue
		}

		urls, err := wrapper.WrapLocations(asset, req)
		if err != nil {
			return nil, err
		}
		for _, url := range urls {
			out = append(out, withSingleLocation(asset, kind, url))
		}
	}
	return out, nil
}

// selectKind applies the selection rule: a sole declared kind is used
// unconditionally, otherwise the first preferred kind present on the asset
// with a non-empty value wins.
func (s *LocationStage) selectKind(asset domain.Asset) (string, bool) {
	if len(asset.Locations) == 0 {
		s.log.Warnf("no available location for asset %s", asset)
		return "", false
	}

	if len(asset.Locations) == 1 {
		return asset.LocationKinds()[0], true
	}

	for _, kind := range s.preferred {
		if loc, ok := asset.Locations[kind]; ok && loc != "" {
			return kind, true
		}
	}

	s.log.Warnf("no location among preferred kinds %v for asset %s", s.preferred, asset)
	return "", false
}

func withSingleLocation(asset domain.Asset, kind, location string) domain.Asset {
	c := asset.Clone()
	c.Locations = map[string]string{kind: location}
	return c
}
