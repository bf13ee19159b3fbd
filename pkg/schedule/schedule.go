// Package schedule implements the placement scheduler: the iterative
// reach-decide-place loop that turns an item pool and a world graph into
// a complete, reachability-respecting set of placements.
package schedule

import (
	"fmt"

	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/pool"
	"github.com/orirando/seedgen/pkg/reach"
	"github.com/orirando/seedgen/pkg/rng"
	"github.com/orirando/seedgen/pkg/settings"
	"github.com/orirando/seedgen/pkg/world"
)

// RetryLimit is the number of whole-attempt retries before generation
// reports failure, matching the source's RETRIES constant.
const RetryLimit = 10

// PreferredSpawnSlots and SecondarySpawnSlots are the source's tuned
// spawn-slot constants. SecondarySpawnSlots sets how heavily the weight
// formula penalises over-committing slots (see weightOf).
// PreferredSpawnSlots is not referenced by the scheduler: no part of a
// spawn's initial reach is reserved before random placement begins.
const (
	PreferredSpawnSlots = 3
	SecondarySpawnSlots = 2
)

// PriorityPlacement is a plando-style fixed placement applied before
// reachability is considered at all.
type PriorityPlacement struct {
	World int
	Node  int
	Item  inventory.Item
}

// Placement is one resolved (origin, target, node, item) tuple, tagged
// with the scheduler step that produced it.
type Placement struct {
	// OriginWorld is the world whose pool supplied Item; in multiworld
	// mode this may differ from TargetWorld when the scheduler's §4.4
	// round-robin sources an item from another world's pool.
	OriginWorld int
	// TargetWorld is the world whose graph Node belongs to and whose
	// inventory received Item.
	TargetWorld int
	Node        int
	Item        inventory.Item
	// Reachable is false for priority placements (placed before any
	// reachability gate applied) and true for random/forced placements.
	Reachable bool
	// Forced marks a placement made by forcedProgressionStep (§4.4's
	// forced-progression grant) rather than random filler or a
	// priority/plando placement.
	Forced bool
	// GroupIndex is the scheduler iteration that produced this placement,
	// used downstream to assemble spoiler groups in the same order.
	GroupIndex int
}

// WorldResult is one world's outcome: its resolved spawn and every
// placement landing in it, across every scheduler iteration.
type WorldResult struct {
	SpawnNode  int
	Placements []Placement
}

// Result is a complete, successful scheduling outcome.
type Result struct {
	Worlds   []WorldResult
	Attempts int
}

// Scheduler holds the inputs shared across every attempt: the immutable
// graphs (one per world), the universe settings, and any priority
// placements supplied by the caller.
type Scheduler struct {
	Graphs   []*logic.Graph
	Universe *settings.UniverseSettings
	Priority []PriorityPlacement
}

// New returns a Scheduler for the given graphs and settings. len(graphs)
// must equal len(universe.WorldSettings).
func New(universe *settings.UniverseSettings, graphs []*logic.Graph, priority []PriorityPlacement) *Scheduler {
	return &Scheduler{Graphs: graphs, Universe: universe, Priority: priority}
}

// Schedule runs up to RetryLimit whole-attempt retries, each with a fresh
// RNG derived from masterSeed and the attempt index, until one succeeds or
// the retry budget is exhausted.
func (s *Scheduler) Schedule(masterSeed string) (*Result, error) {
	var lastErr error
	for attempt := 0; attempt < RetryLimit; attempt++ {
		r := rng.NewAttemptRNG(masterSeed, attempt)
		result, err := s.tryAttempt(r)
		if err == nil {
			result.Attempts = attempt + 1
			return result, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("schedule: failed to complete after %d attempts: %w", RetryLimit, lastErr)
}

// shareRing round-robins candidate origin worlds for cross-world item
// sourcing, matching §4.4's "forced items and filler may be sourced from
// a different world ... the scheduler may select (origin_world,
// target_world) pairs ... round-robin within a step."
type shareRing struct {
	n   int
	pos int
}

func newShareRing(n int) *shareRing {
	return &shareRing{n: n}
}

// originWithStock returns the next world in round-robin order (starting
// from the ring's current position, wrapping across all worlds including
// target) whose pool still has anything left to draw. Falls back to
// target if every pool is empty.
func (sr *shareRing) originWithStock(worlds []*worldState, target int) int {
	if sr.n <= 1 {
		return target
	}
	for i := 0; i < sr.n; i++ {
		cand := (sr.pos + i) % sr.n
		if !worlds[cand].pool.IsEmpty() {
			sr.pos = cand + 1
			return cand
		}
	}
	return target
}

// originStocking returns the next world in round-robin order whose pool
// still holds a copy of item, for forced-progression grants that need a
// specific item type rather than an arbitrary draw. Falls back to target
// if no world's pool currently holds one.
func (sr *shareRing) originStocking(worlds []*worldState, target int, item inventory.Item) int {
	if sr.n <= 1 {
		return target
	}
	for i := 0; i < sr.n; i++ {
		cand := (sr.pos + i) % sr.n
		if worlds[cand].pool.Remaining(item) > 0 {
			sr.pos = cand + 1
			return cand
		}
	}
	return target
}

// totalPoolLen sums how many item copies remain across every world's
// pool, used to bound filler counts once a world's own pool may be
// supplemented by another's.
func totalPoolLen(worlds []*worldState) int {
	n := 0
	for _, ws := range worlds {
		n += ws.pool.Len()
	}
	return n
}

// worldState is the mutable per-world bookkeeping for a single attempt.
type worldState struct {
	world           *world.World
	pool            *pool.Pool
	spawnNode       int
	filled          map[int]bool
	reached         map[int]bool
	placements      []Placement
	reservedPickups map[int]bool
}

func (s *Scheduler) tryAttempt(r *rng.RNG) (*Result, error) {
	priorityCount := make([]int, len(s.Graphs))
	for _, pp := range s.Priority {
		priorityCount[pp.World]++
	}

	worlds := make([]*worldState, len(s.Graphs))
	for i, g := range s.Graphs {
		ws := s.Universe.WorldSettings[i]
		w := world.New(g, ws)
		spawnIdx, err := resolveSpawn(g, ws, r.Derive(fmt.Sprintf("spawn:%d", i)))
		if err != nil {
			return nil, fmt.Errorf("world %d: %w", i, err)
		}
		// The pool only covers slots not already claimed by a priority
		// (plando) placement; those items are injected directly and
		// never compete with choose_random draws.
		poolSize := len(g.PickupIndices()) - priorityCount[i]
		if poolSize < 0 {
			poolSize = 0
		}
		worlds[i] = &worldState{
			world:           w,
			pool:            pool.DefaultPool(poolSize),
			spawnNode:       spawnIdx,
			filled:          make(map[int]bool),
			reached:         make(map[int]bool),
			reservedPickups: make(map[int]bool),
		}
	}

	applyPriorityPlacements(worlds, s.Priority)
	ring := newShareRing(len(worlds))

	groupIndex := 0
	for {
		newlyReached := make([][]int, len(worlds))
		var candidates []weightedCandidate

		for i, ws := range worlds {
			result := reach.Reach(ws.world.Graph, ws.world, ws.spawnNode, orbs.New(ws.world.Inventory.MaxOrbs()), true)
			for _, n := range result.Reached {
				if ws.world.Graph.Nodes[n].Kind != logic.KindPickup {
					continue
				}
				if ws.reached[n] {
					continue
				}
				ws.reached[n] = true
				newlyReached[i] = append(newlyReached[i], n)
			}
			for _, cand := range result.Progressions {
				candidates = append(candidates, weightedCandidate{worldIdx: i, requirement: cand.Requirement, orbs: cand.Orbs})
			}
		}

		anyNew := false
		for _, nr := range newlyReached {
			if len(nr) > 0 {
				anyNew = true
			}
		}

		if anyNew {
			randomPlacementStep(worlds, newlyReached, r, groupIndex, ring)
		} else {
			progressed, err := forcedProgressionStep(worlds, candidates, r, groupIndex, ring)
			if err != nil {
				return nil, err
			}
			if !progressed {
				if allDone(worlds) {
					break
				}
				return nil, fmt.Errorf("schedule: stuck with %d pickups unfilled and no forcing candidate", countUnfilled(worlds))
			}
		}

		if allDone(worlds) {
			break
		}
		groupIndex++
	}

	out := &Result{Worlds: make([]WorldResult, len(worlds))}
	for i, ws := range worlds {
		out.Worlds[i] = WorldResult{SpawnNode: ws.spawnNode, Placements: ws.placements}
	}
	return out, nil
}

func allDone(worlds []*worldState) bool {
	for _, ws := range worlds {
		if !ws.pool.IsEmpty() {
			return false
		}
		if len(ws.filled) != len(ws.world.Graph.PickupIndices()) {
			return false
		}
	}
	return true
}

func countUnfilled(worlds []*worldState) int {
	n := 0
	for _, ws := range worlds {
		n += len(ws.world.Graph.PickupIndices()) - len(ws.filled)
	}
	return n
}

func applyPriorityPlacements(worlds []*worldState, priority []PriorityPlacement) {
	for _, pp := range priority {
		ws := worlds[pp.World]
		if ws.filled[pp.Node] {
			continue
		}
		ws.filled[pp.Node] = true
		ws.world.Inventory.Grant(pp.Item, 1)
		ws.placements = append(ws.placements, Placement{
			OriginWorld: pp.World,
			TargetWorld: pp.World,
			Node:        pp.Node,
			Item:        pp.Item,
			Reachable:   false,
			Forced:      false,
			GroupIndex:  -1,
		})
	}
}

// randomPlacementStep draws min(new_reachable_count, pool_len)-reserved
// fillers per world and assigns each to a random unfilled reachable
// location, matching §4.4 step 3. Each filler's origin pool is chosen by
// ring, which may land on a different world than the one being filled.
func randomPlacementStep(worlds []*worldState, newlyReached [][]int, r *rng.RNG, groupIndex int, ring *shareRing) {
	for i, ws := range worlds {
		candidates := unfilledOf(ws, newlyReached[i])
		if len(candidates) == 0 {
			continue
		}
		fillerCount := len(newlyReached[i])
		if total := totalPoolLen(worlds); total < fillerCount {
			fillerCount = total
		}
		fillerCount -= len(ws.reservedPickups)
		if fillerCount <= 0 {
			continue
		}
		if fillerCount > len(candidates) {
			fillerCount = len(candidates)
		}

		r.Shuffle(len(candidates), func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] })

		for k := 0; k < fillerCount; k++ {
			originIdx := ring.originWithStock(worlds, i)
			item, ok := worlds[originIdx].pool.ChooseRandom(r)
			if !ok {
				break
			}
			node := candidates[k]
			ws.filled[node] = true
			ws.world.Inventory.Grant(item, 1)
			ws.placements = append(ws.placements, Placement{
				OriginWorld: originIdx,
				TargetWorld: i,
				Node:        node,
				Item:        item,
				Reachable:   true,
				Forced:      false,
				GroupIndex:  groupIndex,
			})
		}
	}
}

func unfilledOf(ws *worldState, nodes []int) []int {
	var out []int
	for _, n := range nodes {
		if !ws.filled[n] {
			out = append(out, n)
		}
	}
	return out
}
