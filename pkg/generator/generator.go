// Package generator is the top-level entry point tying the logic graphs,
// the placement scheduler, and the spoiler assembly into one call — the
// equivalent of the source's generate_seed and of pkg/dungeon's
// DefaultGenerator.Generate five-stage pipeline, reduced to this core's two
// real stages (schedule, then spoil).
package generator

import (
	"context"
	"fmt"

	"github.com/orirando/seedgen/internal/genlog"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/schedule"
	"github.com/orirando/seedgen/pkg/settings"
	"github.com/orirando/seedgen/pkg/spoiler"
)

// SeedUniverse is the core's complete output: one packaged result per world
// plus the append-only spoiler, matching §6's SeedUniverse shape.
type SeedUniverse struct {
	Worlds   []WorldSeed
	Spoiler  *spoiler.Seed
	Attempts int
}

// WorldSeed is one world's packaged placement result. Bit-exact seed-file
// encoding (the trigger/command event stream) is the seed-language domain,
// not the core's — this carries the placements a packager would consume.
type WorldSeed struct {
	SpawnNode  int
	Placements []schedule.Placement
}

// Config collects everything one generation run needs: the per-world logic
// graphs, universe settings, any plando/priority placements, and the
// display names used in the spoiler.
type Config struct {
	Graphs     []*logic.Graph
	Universe   *settings.UniverseSettings
	Priority   []schedule.PriorityPlacement
	WorldNames []string
}

// Generate runs the scheduler against cfg and assembles the resulting
// SeedUniverse. Context cancellation is checked before scheduling begins;
// the scheduler itself runs to completion or failure without further
// cancellation points, matching §4's description of a whole-attempt retry
// loop rather than an interruptible stream.
func Generate(ctx context.Context, cfg *Config) (*SeedUniverse, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	sched := schedule.New(cfg.Universe, cfg.Graphs, cfg.Priority)

	genlog.Info("starting generation", "worlds", len(cfg.Graphs), "seed", cfg.Universe.Seed)
	result, err := sched.Schedule(cfg.Universe.Seed)
	if err != nil {
		return nil, fmt.Errorf("generator: scheduling failed: %w", err)
	}
	genlog.Info("scheduling succeeded", "attempts", result.Attempts)

	spoilerSeed, err := spoiler.Build(result, cfg.Graphs, cfg.WorldNames)
	if err != nil {
		return nil, fmt.Errorf("generator: assembling spoiler: %w", err)
	}

	universe := &SeedUniverse{
		Worlds:   make([]WorldSeed, len(result.Worlds)),
		Spoiler:  spoilerSeed,
		Attempts: result.Attempts,
	}
	for i, wr := range result.Worlds {
		universe.Worlds[i] = WorldSeed{SpawnNode: wr.SpawnNode, Placements: wr.Placements}
	}
	return universe, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if cfg.Universe == nil {
		return fmt.Errorf("nil universe settings")
	}
	if len(cfg.Graphs) != len(cfg.Universe.WorldSettings) {
		return fmt.Errorf("%d graphs but %d world settings", len(cfg.Graphs), len(cfg.Universe.WorldSettings))
	}
	if len(cfg.Graphs) == 0 {
		return fmt.Errorf("at least one world is required")
	}
	return nil
}
