package schedule

import (
	"math"

	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/reach"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/rng"
)

// weightedCandidate is a progression candidate gathered from one world's
// reach pass, carried alongside the world it originated from.
type weightedCandidate struct {
	worldIdx    int
	requirement requirement.Requirement
	orbs        orbs.Variants
}

// itemSetOption is one minimal item multiset that would unlock some
// candidate, scored for weighted sampling.
type itemSetOption struct {
	worldIdx int
	items    requirement.ItemSet
	weight   float64
}

// forcedProgressionStep enumerates minimal item-sets across every
// candidate, scores each by the §4.4 weight formula, samples one
// proportionally, grants its items, and reserves a slot per item. Each
// item's origin pool is chosen by ring, which may source it from a
// different world than the one being unlocked. It returns false if no
// candidate produced any option (the attempt is stuck and must retry).
func forcedProgressionStep(worlds []*worldState, candidates []weightedCandidate, r *rng.RNG, groupIndex int, ring *shareRing) (bool, error) {
	var options []itemSetOption
	for _, c := range candidates {
		ws := worlds[c.worldIdx]
		sets := requirement.ItemsNeeded(c.requirement, ws.world.Player(), ws.world.States)
		for _, set := range sets {
			if len(set) == 0 {
				continue
			}
			options = append(options, itemSetOption{
				worldIdx: c.worldIdx,
				items:    set,
				weight:   weightOf(worlds, c.worldIdx, set),
			})
		}
	}
	if len(options) == 0 {
		return false, nil
	}

	weights := make([]float64, len(options))
	for i, o := range options {
		weights[i] = o.weight
	}
	chosen := r.WeightedChoice(weights)
	if chosen < 0 {
		return false, nil
	}

	opt := options[chosen]
	ws := worlds[opt.worldIdx]
	unfilled := unfilledPickups(ws)

	for _, item := range opt.items {
		originIdx := ring.originStocking(worlds, opt.worldIdx, item)
		worlds[originIdx].pool.Change(item, -1)
		ws.world.Inventory.Grant(item, 1)
		if len(unfilled) == 0 {
			continue
		}
		node := unfilled[0]
		unfilled = unfilled[1:]
		ws.filled[node] = true
		ws.reservedPickups[node] = true
		ws.placements = append(ws.placements, Placement{
			OriginWorld: originIdx,
			TargetWorld: opt.worldIdx,
			Node:        node,
			Item:        item,
			Reachable:   true,
			Forced:      true,
			GroupIndex:  groupIndex,
		})
	}
	return true, nil
}

func unfilledPickups(ws *worldState) []int {
	var out []int
	for _, n := range ws.world.Graph.PickupIndices() {
		if !ws.filled[n] {
			out = append(out, n)
		}
	}
	return out
}

// weightOf computes (new_reached+1) / (Σcost × |items|) × 0.3^max(0, used_slots+secondary_spawn_slots−available_slots),
// simulating the grant against a cloned world to measure the newly
// reachable pickup count.
func weightOf(worlds []*worldState, worldIdx int, set requirement.ItemSet) float64 {
	ws := worlds[worldIdx]

	sumCost := 0.0
	for _, item := range set {
		sumCost += item.Cost()
	}
	if sumCost <= 0 {
		sumCost = 1
	}

	sim := ws.world.Clone()
	for _, item := range set {
		sim.Inventory.Grant(item, 1)
	}
	result := reach.Reach(sim.Graph, sim, ws.spawnNode, orbs.New(sim.Inventory.MaxOrbs()), false)
	newReached := 0
	for _, n := range result.Reached {
		if sim.Graph.Nodes[n].Kind != logic.KindPickup {
			continue
		}
		if !ws.reached[n] {
			newReached++
		}
	}

	usedSlots := len(ws.reservedPickups)
	availableSlots := len(ws.world.Graph.PickupIndices()) - len(ws.filled)
	penaltyExp := usedSlots + SecondarySpawnSlots - availableSlots
	if penaltyExp < 0 {
		penaltyExp = 0
	}

	return (float64(newReached) + 1) / (sumCost * float64(len(set))) * math.Pow(0.3, float64(penaltyExp))
}
