// Package spoiler assembles a scheduler Result into the append-only
// SeedSpoiler the generator reports alongside the packaged seed: one
// entry per world, grouped by the scheduler iteration that produced each
// placement.
package spoiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/schedule"
)

// WorldSpoiler names a world's display identity and resolved spawn.
type WorldSpoiler struct {
	Name  string
	Spawn string
}

// PlacementSpoiler is one placement's external, display-oriented shape:
// forced progression or plando, which worlds it moved between, and where.
type PlacementSpoiler struct {
	Forced         bool
	OriginWorld    int
	TargetWorld    int
	NodeIdentifier string
	NodePosition   *logic.Position
	Item           inventory.Item
}

// Group is one scheduler iteration's output. An empty Reachable means the
// group holds priority/before-reach placements.
type Group struct {
	Reachable  [][]string // per world, the identifiers reached this group
	Placements []PlacementSpoiler
}

// Seed is the complete, append-only spoiler for a generation run.
type Seed struct {
	Worlds []WorldSpoiler
	Groups []Group
}

// Build converts a scheduler Result plus the graphs it ran against into a
// display-oriented Seed. worldNames may be nil, in which case worlds are
// named "World N".
func Build(result *schedule.Result, graphs []*logic.Graph, worldNames []string) (*Seed, error) {
	if len(result.Worlds) != len(graphs) {
		return nil, fmt.Errorf("spoiler: result has %d worlds but %d graphs were given", len(result.Worlds), len(graphs))
	}

	s := &Seed{Worlds: make([]WorldSpoiler, len(graphs))}
	for i, g := range graphs {
		name := fmt.Sprintf("World %d", i)
		if i < len(worldNames) && worldNames[i] != "" {
			name = worldNames[i]
		}
		spawnIdx := result.Worlds[i].SpawnNode
		spawnName := ""
		if spawnIdx >= 0 && spawnIdx < g.Len() {
			spawnName = g.Nodes[spawnIdx].Identifier
		}
		s.Worlds[i] = WorldSpoiler{Name: name, Spawn: spawnName}
	}

	groupsByIndex := map[int]*Group{}
	var order []int

	for worldIdx, wr := range result.Worlds {
		g := graphs[worldIdx]
		for _, p := range wr.Placements {
			grp, ok := groupsByIndex[p.GroupIndex]
			if !ok {
				grp = &Group{Reachable: make([][]string, len(graphs))}
				groupsByIndex[p.GroupIndex] = grp
				order = append(order, p.GroupIndex)
			}

			var pos *logic.Position
			if p.Node >= 0 && p.Node < g.Len() {
				pos = g.Nodes[p.Node].Position
			}
			nodeID := ""
			if p.Node >= 0 && p.Node < g.Len() {
				nodeID = g.Nodes[p.Node].Identifier
			}

			grp.Placements = append(grp.Placements, PlacementSpoiler{
				Forced:         p.Forced,
				OriginWorld:    p.OriginWorld,
				TargetWorld:    p.TargetWorld,
				NodeIdentifier: nodeID,
				NodePosition:   pos,
				Item:           p.Item,
			})
			if p.Reachable {
				grp.Reachable[worldIdx] = append(grp.Reachable[worldIdx], nodeID)
			}
		}
	}

	sort.Ints(order)
	for _, idx := range order {
		s.Groups = append(s.Groups, *groupsByIndex[idx])
	}
	return s, nil
}

// String renders a human-readable spoiler log, one group per block, in
// the order the scheduler produced them.
func (s *Seed) String() string {
	var b strings.Builder
	for i, w := range s.Worlds {
		fmt.Fprintf(&b, "World %d: %s (spawn: %s)\n", i, w.Name, w.Spawn)
	}
	for i, grp := range s.Groups {
		label := fmt.Sprintf("Group %d", i)
		if grp.Placements != nil && len(grp.Placements) > 0 && grp.Placements[0].Forced && allReachableEmpty(grp) {
			label += " (priority)"
		}
		fmt.Fprintf(&b, "\n%s:\n", label)
		for _, p := range grp.Placements {
			fmt.Fprintf(&b, "  %s <- %s (world %d -> %d)\n", p.NodeIdentifier, p.Item.String(), p.OriginWorld, p.TargetWorld)
		}
	}
	return b.String()
}

func allReachableEmpty(g Group) bool {
	for _, r := range g.Reachable {
		if len(r) > 0 {
			return false
		}
	}
	return true
}
