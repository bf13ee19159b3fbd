package validation

import (
	"fmt"

	"github.com/orirando/seedgen/pkg/generator"
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/reach"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/settings"
	"github.com/orirando/seedgen/pkg/spoiler"
	"github.com/orirando/seedgen/pkg/world"
)

// CheckCompleteness verifies §8 property 2: every pickup node in every
// world's graph is assigned exactly one item, and the sum of placements
// equals the total pickup count across all worlds.
func CheckCompleteness(universe *generator.SeedUniverse, graphs []*logic.Graph) ConstraintResult {
	if len(universe.Worlds) != len(graphs) {
		return newHardResult("completeness", false,
			fmt.Sprintf("universe has %d worlds but %d graphs were given", len(universe.Worlds), len(graphs)))
	}

	totalPickups, totalPlacements := 0, 0
	for i, g := range graphs {
		assigned := make(map[int]int) // pickup node index -> times assigned
		for _, p := range universe.Worlds[i].Placements {
			assigned[p.Node]++
		}
		pickups := g.PickupIndices()
		for _, idx := range pickups {
			if assigned[idx] != 1 {
				return newHardResult("completeness", false,
					fmt.Sprintf("world %d: pickup %q assigned %d times, want exactly 1", i, g.Nodes[idx].Identifier, assigned[idx]))
			}
		}
		totalPickups += len(pickups)
		totalPlacements += len(universe.Worlds[i].Placements)
	}

	if totalPlacements != totalPickups {
		return newHardResult("completeness", false,
			fmt.Sprintf("%d placements but %d pickup nodes across all worlds", totalPlacements, totalPickups))
	}
	return newHardResult("completeness", true,
		fmt.Sprintf("%d placements across %d pickup nodes", totalPlacements, totalPickups))
}

// CheckReachabilityPrefix verifies §8 property 3: for each spoiler group
// after the first with non-empty placements, the items placed in prior
// groups suffice to reach that group's target locations from spawn, under
// the group's world settings. It re-runs the reachability engine against
// the prefix inventory and asserts containment.
func CheckReachabilityPrefix(seed *spoiler.Seed, graphs []*logic.Graph, universe *settings.UniverseSettings) ConstraintResult {
	if len(graphs) != len(universe.WorldSettings) {
		return newHardResult("reachability-prefix", false,
			fmt.Sprintf("%d graphs but %d world settings", len(graphs), len(universe.WorldSettings)))
	}

	worlds := make([]*world.World, len(graphs))
	for i, g := range graphs {
		worlds[i] = world.New(g, universe.WorldSettings[i])
	}

	for groupIdx, grp := range seed.Groups {
		for _, p := range grp.Placements {
			reachable := false
			if p.TargetWorld < len(grp.Reachable) {
				for _, id := range grp.Reachable[p.TargetWorld] {
					if id == p.NodeIdentifier {
						reachable = true
					}
				}
			}
			if !reachable {
				continue // priority placements precede reachability entirely
			}
			targetWorld := worlds[p.TargetWorld]
			spawnIdx := spawnIndex(graphs[p.TargetWorld], targetWorld)
			if spawnIdx < 0 {
				return newHardResult("reachability-prefix", false,
					fmt.Sprintf("group %d: no spawn resolvable for world %d", groupIdx, p.TargetWorld))
			}

			result := reach.Reach(graphs[p.TargetWorld], targetWorld, spawnIdx, orbs.New(targetWorld.Inventory.MaxOrbs()), false)
			nodeIdx := graphs[p.TargetWorld].Index(p.NodeIdentifier)
			if !containsInt(result.Reached, nodeIdx) && spawnIdx != nodeIdx {
				return newHardResult("reachability-prefix", false,
					fmt.Sprintf("group %d: %q not reachable from the prefix inventory in world %d", groupIdx, p.NodeIdentifier, p.TargetWorld))
			}
		}

		// Grant this group's items to every affected world before judging
		// the next group's prefix.
		for _, p := range grp.Placements {
			worlds[p.TargetWorld].Inventory.Grant(p.Item, 1)
		}
	}

	return newHardResult("reachability-prefix", true, fmt.Sprintf("%d groups verified reachable from their prefix", len(seed.Groups)))
}

func spawnIndex(g *logic.Graph, w *world.World) int {
	if w.Settings.Spawn.Kind == settings.SpawnSet {
		return g.Index(w.Settings.Spawn.Identifier)
	}
	candidates := g.SpawnCandidates()
	if len(candidates) == 0 {
		return -1
	}
	return candidates[0]
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// CheckKeystoneLocality verifies §8 property 6: a forced-progression
// group never places more keystones, in any single world, than the
// costliest keystone-gated door in that world's graph consumes. This is a
// conservative upper bound — it does not trace which specific door a
// forced batch targets, only that no batch could overshoot every door.
func CheckKeystoneLocality(seed *spoiler.Seed, graphs []*logic.Graph) ConstraintResult {
	maxDoorCost := make([]int, len(graphs))
	for i, g := range graphs {
		maxDoorCost[i] = maxKeystoneRequirement(g)
	}

	for groupIdx, grp := range seed.Groups {
		forced := make(map[int]int) // world -> keystone count forced this group
		anyForced := false
		for _, p := range grp.Placements {
			if !p.Forced || p.Item.Kind != inventory.KindKeystone {
				continue
			}
			anyForced = true
			forced[p.TargetWorld] += p.Item.Amount
		}
		if !anyForced {
			continue
		}
		for w, count := range forced {
			if maxDoorCost[w] > 0 && count > maxDoorCost[w] {
				return newHardResult("keystone-locality", false,
					fmt.Sprintf("group %d: forced %d keystones in world %d, but the costliest door there needs only %d", groupIdx, count, w, maxDoorCost[w]))
			}
		}
	}
	return newHardResult("keystone-locality", true, "no forced keystone batch exceeds its world's costliest door")
}

func maxKeystoneRequirement(g *logic.Graph) int {
	max := 0
	for _, n := range g.Nodes {
		for _, c := range n.Connections {
			if v := maxKeystoneInRequirement(c.Requirement); v > max {
				max = v
			}
		}
	}
	return max
}

func maxKeystoneInRequirement(r requirement.Requirement) int {
	max := 0
	if r.Kind == requirement.KindKeystone && r.N > max {
		max = r.N
	}
	for _, child := range r.Children {
		if v := maxKeystoneInRequirement(child); v > max {
			max = v
		}
	}
	return max
}
