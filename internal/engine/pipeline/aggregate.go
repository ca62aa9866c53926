package pipeline

import (
	"fmt"
	"strings"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
	"github.com/bindleio/bindle/internal/engine/keys"
)

const stageAggregation = "aggregation"

// AggregationStage concatenates same-type assets sharing a DOM position into
// a single cache-keyed asset served from the delivery endpoint, with the same
// fetch-or-compute discipline as the compression stage.
type AggregationStage struct {
	cache ports.Cache
	fetch *fetcher
	opts  Options
	log   ports.Logger
}

// NewAggregationStage creates the aggregation stage.
func NewAggregationStage(registry *Registry, cache ports.Cache, opts Options, log ports.Logger) *AggregationStage {
	return &AggregationStage{
		cache: cache,
		fetch: newFetcher(registry, cache, opts.mountPrefix()),
		opts:  opts,
		log:   log,
	}
}

// Name implements ports.Stage.
func (s *AggregationStage) Name() string { return stageAggregation }

// Rank implements ports.Stage.
func (s *AggregationStage) Rank() int { return RankAggregation }

type aggregationGroup struct {
	t        domain.AssetType
	position domain.DomPosition
	members  []domain.Asset
}

// Process implements ports.Stage.
func (s *AggregationStage) Process(req ports.RequestContext, assets []domain.Asset) ([]domain.Asset, error) {
	if !s.opts.Aggregation.Enabled {
		return assets, nil
	}

	context := keys.SanitizeContext(req.CurrentURL())
	groups := groupAssets(assets)
	out := make([]domain.Asset, 0, len(groups))

	for _, group := range groups {
		name := fmt.Sprintf("aggregate-%s", group.position)
		key := keys.ForResource(context, stageAggregation, groupResource(group), name, group.t)

		if _, ok := s.cache.GetContent(key); !ok {
			content, err := s.concatenate(req, group)
			if err != nil {
				return nil, err
			}
			s.cache.PutContent(key, content)
			s.log.Debugf("cached aggregate of %d assets under %s", len(group.members), key)
		}

		out = append(out, domain.Asset{
			Name:      name,
			Version:   stageAggregation,
			Type:      group.t,
			Position:  group.position,
			Locations: map[string]string{stageAggregation: req.BaseURL() + s.opts.mountPrefix() + key},
		})
	}
	return out, nil
}

// groupAssets buckets assets by type and effective DOM position, preserving
// first-seen group order so the output is deterministic.
func groupAssets(assets []domain.Asset) []*aggregationGroup {
	var groups []*aggregationGroup
	index := make(map[string]*aggregationGroup)

	for _, asset := range assets {
		id := string(asset.Type) + "|" + string(asset.EffectivePosition())
		group, ok := index[id]
		if !ok {
			group = &aggregationGroup{t: asset.Type, position: asset.EffectivePosition()}
			index[id] = group
			groups = append(groups, group)
		}
		group.members = append(group.members, asset)
	}
	return groups
}

// groupResource is the deterministic identity of a group: every member
// location in order.
func groupResource(group *aggregationGroup) string {
	locations := make([]string, 0, len(group.members))
	for _, member := range group.members {
		for _, kind := range member.LocationKinds() {
			locations = append(locations, member.Locations[kind])
		}
	}
	return strings.Join(locations, "|")
}

func (s *AggregationStage) concatenate(req ports.RequestContext, group *aggregationGroup) (string, error) {
	var b strings.Builder
	for _, member := range group.members {
		for _, kind := range member.LocationKinds() {
			content, err := s.fetch.content(req, member, kind, member.Locations[kind])
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
