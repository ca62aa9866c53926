package pipeline

import (
	"sort"

	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// Pipeline executes an ordered chain of stages over the full asset list of a
// request. Stages run lowest rank first; a failing stage fails the request's
// resolution without touching storage or previously cached entries.
type Pipeline struct {
	stages []ports.Stage
}

// New assembles a pipeline from the given stages, sorted by rank.
func New(stages ...ports.Stage) *Pipeline {
	sorted := make([]ports.Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank() < sorted[j].Rank()
	})
	return &Pipeline{stages: sorted}
}

// Run feeds assets through every stage in rank order.
func (p *Pipeline) Run(req ports.RequestContext, assets []domain.Asset) ([]domain.Asset, error) {
	var err error
	for _, stage := range p.stages {
		assets, err = stage.Process(req, assets)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "pipeline stage failed"), "stage", stage.Name())
		}
	}
	return assets, nil
}

// Stages returns the stages in execution order.
func (p *Pipeline) Stages() []ports.Stage {
	return p.stages
}
