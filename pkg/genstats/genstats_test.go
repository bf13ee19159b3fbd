package genstats

import (
	"context"
	"testing"

	"github.com/orirando/seedgen/pkg/generator"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/settings"
)

func simpleConfig(t *testing.T) *generator.Config {
	t.Helper()
	g := logic.NewGraph()
	spawn := logic.NewAnchor("Spawn")
	spawn.CanSpawn = true
	spawnIdx, err := g.AddNode(spawn)
	if err != nil {
		t.Fatalf("failed to add spawn: %v", err)
	}
	pickupIdx, err := g.AddNode(logic.NewPickup("Pickup1", "Marsh", "1:1"))
	if err != nil {
		t.Fatalf("failed to add pickup: %v", err)
	}
	if err := g.AddConnection(spawnIdx, logic.Connection{Target: pickupIdx, Requirement: requirement.Free()}); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	ws := settings.NewWorldSettings()
	ws.Spawn = settings.Spawn{Kind: settings.SpawnSet, Identifier: "Spawn"}
	universe := &settings.UniverseSettings{Seed: "genstats-seed", WorldSettings: []*settings.WorldSettings{ws}}

	return &generator.Config{Graphs: []*logic.Graph{g}, Universe: universe}
}

func TestRunNProducesASummaryAcrossEveryRun(t *testing.T) {
	cfg := simpleConfig(t)
	runs, summary, err := RunN(context.Background(), cfg, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 5 {
		t.Fatalf("expected 5 runs, got %d", len(runs))
	}
	if summary.N != 5 || summary.Failures != 0 {
		t.Fatalf("expected 5 successful runs, got %+v", summary)
	}
	if summary.MeanAttempts <= 0 {
		t.Errorf("expected a positive mean attempt count, got %f", summary.MeanAttempts)
	}
}

func TestRunNRejectsNonPositiveCount(t *testing.T) {
	cfg := simpleConfig(t)
	if _, _, err := RunN(context.Background(), cfg, 0); err == nil {
		t.Fatal("expected an error for n=0")
	}
}
