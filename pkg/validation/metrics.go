package validation

import (
	"github.com/orirando/seedgen/pkg/generator"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/spoiler"
)

// ComputeMetrics summarizes universe's shape for the report: how much was
// placed, over how many groups, and how many attempts it took.
func ComputeMetrics(universe *generator.SeedUniverse, graphs []*logic.Graph, seed *spoiler.Seed) *Metrics {
	m := &Metrics{Worlds: len(graphs), Attempts: universe.Attempts, GroupCount: len(seed.Groups)}
	for _, g := range graphs {
		m.TotalPickupNodes += len(g.PickupIndices())
	}
	for _, w := range universe.Worlds {
		m.TotalPlacements += len(w.Placements)
	}
	return m
}
