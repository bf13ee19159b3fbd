package schedule

import (
	"fmt"

	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/rng"
	"github.com/orirando/seedgen/pkg/seeddata"
	"github.com/orirando/seedgen/pkg/settings"
)

// curatedUnsafeSpawns names the identifiers offered for a Random spawn on
// Unsafe difficulty; the source's actual curated list lives in its preset
// data, which was not available to ground this against, so this is a
// representative placeholder set of well-known anchors.
var curatedUnsafeSpawns = []string{
	"MarshSpawn.Main", "HowlsDen.Teleporter", "EastHollow.Teleporter",
	"GladesTown.Teleporter", "InnerWellspring.Teleporter", "WoodsEntry.Teleporter",
}

// curatedDefaultSpawns is the non-Unsafe curated-random spawn set.
var curatedDefaultSpawns = []string{
	"MarshSpawn.Main", "HowlsDen.Teleporter", "GladesTown.Teleporter",
}

// resolveSpawn picks a world's spawn anchor per its Spawn setting.
func resolveSpawn(g *logic.Graph, ws *settings.WorldSettings, r *rng.RNG) (int, error) {
	switch ws.Spawn.Kind {
	case settings.SpawnSet:
		idx := g.Index(ws.Spawn.Identifier)
		if idx < 0 {
			return 0, fmt.Errorf("spawn identifier %q not found in graph", ws.Spawn.Identifier)
		}
		if !g.Nodes[idx].CanSpawn {
			return 0, fmt.Errorf("spawn identifier %q is not marked can_spawn", ws.Spawn.Identifier)
		}
		return idx, nil

	case settings.SpawnRandom:
		curated := curatedDefaultSpawns
		if ws.Difficulty == seeddata.DifficultyUnsafe {
			curated = curatedUnsafeSpawns
		}
		var present []string
		for _, id := range curated {
			if g.Index(id) >= 0 {
				present = append(present, id)
			}
		}
		if len(present) == 0 {
			return fullyRandomSpawn(g, r)
		}
		return g.Index(present[r.Intn(len(present))]), nil

	case settings.SpawnFullyRandom:
		return fullyRandomSpawn(g, r)

	default:
		return 0, fmt.Errorf("unknown spawn kind %d", ws.Spawn.Kind)
	}
}

func fullyRandomSpawn(g *logic.Graph, r *rng.RNG) (int, error) {
	candidates := g.SpawnCandidates()
	if len(candidates) == 0 {
		return 0, fmt.Errorf("graph has no can_spawn anchors")
	}
	return candidates[r.Intn(len(candidates))], nil
}
