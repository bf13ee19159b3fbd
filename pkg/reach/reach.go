// Package reach implements the DFS reachability engine: starting from a
// spawn anchor with an initial set of orb variants, it walks the world
// graph's requirement-guarded connections and reports every pickup/state
// reached, plus (when asked) the requirements that failed for purely
// inventory-based reasons — candidates the scheduler can force via item
// placement.
package reach

import (
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/world"
)

// ProgressionCandidate is a requirement that failed on the current
// inventory alone (no unmet state, no unmet flag), captured with the
// orbs available at its source anchor so the scheduler can re-evaluate
// it once new items are granted.
type ProgressionCandidate struct {
	Requirement requirement.Requirement
	Orbs        orbs.Variants
}

// Result is the outcome of one Reach call.
type Result struct {
	// Reached holds the graph indices of every Pickup and State/LogicalState
	// node reached, in the order first visited.
	Reached []int
	// Progressions holds forced-progression candidates; nil unless
	// progressionCheck was requested.
	Progressions []ProgressionCandidate
}

type pendingConnection struct {
	from int
	conn logic.Connection
}

type context struct {
	graph  *logic.Graph
	world  *world.World
	player *requirement.Player

	bestOrbs          map[int]orbs.Variants
	stateProgressions map[int][]pendingConnection
	reachedSet        map[int]bool
	reached           []int
	progressions      []ProgressionCandidate
	progressionCheck  bool
}

// Reach walks the graph from startIdx with initialOrbs, mutating w's
// activated-states set as states are reached along the way. Pass
// progressionCheck true when the scheduler needs forced-progression
// candidates for this attempt's next placement step.
func Reach(g *logic.Graph, w *world.World, startIdx int, initialOrbs orbs.Variants, progressionCheck bool) Result {
	ctx := &context{
		graph:             g,
		world:             w,
		player:            w.Player(),
		bestOrbs:          make(map[int]orbs.Variants),
		stateProgressions: make(map[int][]pendingConnection),
		reachedSet:        make(map[int]bool),
		progressionCheck:  progressionCheck,
	}
	ctx.visit(startIdx, initialOrbs)
	ctx.teleporterShortcut()
	return Result{Reached: ctx.reached, Progressions: ctx.progressions}
}

// visit enters nodeIdx with the orbs available on arrival. A node already
// present in bestOrbs is never re-entered, even with strictly better
// orbs — this is the accepted approximation noted for bounding traversal
// to linear in node count, and it is also what terminates cycles.
func (ctx *context) visit(nodeIdx int, in orbs.Variants) {
	if _, seen := ctx.bestOrbs[nodeIdx]; seen {
		return
	}
	if in.IsEmpty() {
		return
	}
	ctx.bestOrbs[nodeIdx] = in
	node := ctx.graph.Nodes[nodeIdx]

	switch node.Kind {
	case logic.KindPickup:
		ctx.markReached(nodeIdx)
	case logic.KindState, logic.KindLogicalState:
		ctx.markReached(nodeIdx)
		ctx.world.ActivateState(nodeIdx)
		ctx.refire(nodeIdx)
	case logic.KindAnchor:
		ctx.visitAnchor(nodeIdx, node)
	}
}

func (ctx *context) markReached(nodeIdx int) {
	if ctx.reachedSet[nodeIdx] {
		return
	}
	ctx.reachedSet[nodeIdx] = true
	ctx.reached = append(ctx.reached, nodeIdx)
}

func (ctx *context) visitAnchor(nodeIdx int, node logic.Node) {
	cur := ctx.bestOrbs[nodeIdx]

	for _, refill := range node.Refills {
		met := requirement.IsMet(refill.Requirement, ctx.player, ctx.world.States, cur)
		if met.IsEmpty() {
			continue
		}
		cur = orbs.Either(cur, ctx.applyRefill(refill, met))
	}
	ctx.bestOrbs[nodeIdx] = cur

	for _, conn := range node.Connections {
		if _, seen := ctx.bestOrbs[conn.Target]; seen {
			continue
		}
		result := requirement.IsMet(conn.Requirement, ctx.player, ctx.world.States, cur)
		if !result.IsEmpty() {
			ctx.visit(conn.Target, result)
			continue
		}

		states := requirement.ContainedStates(conn.Requirement, nil)
		if len(states) > 0 {
			for _, s := range states {
				ctx.stateProgressions[s] = append(ctx.stateProgressions[s], pendingConnection{from: nodeIdx, conn: conn})
			}
		} else if ctx.progressionCheck {
			ctx.progressions = append(ctx.progressions, ProgressionCandidate{Requirement: conn.Requirement, Orbs: cur})
		}
	}
}

// applyRefill returns the orb variants resulting from applying a refill
// whose requirement already evaluated non-empty against met. Checkpoint's
// exact restored amount is not specified by the source material consulted
// here; half of max health is used, matching the series' usual checkpoint
// behaviour.
func (ctx *context) applyRefill(r logic.Refill, met orbs.Variants) orbs.Variants {
	maxOrbs := ctx.player.MaxOrbs()
	switch r.Kind {
	case logic.RefillFull:
		return orbs.New(maxOrbs)
	case logic.RefillCheckpoint:
		return met.Map(func(o orbs.Orb) (orbs.Orb, bool) {
			o.Health = clampMax(o.Health+maxOrbs.Health/2, maxOrbs.Health)
			return o, true
		})
	case logic.RefillHealth:
		return met.Map(func(o orbs.Orb) (orbs.Orb, bool) {
			o.Health = clampMax(o.Health+r.Amount, maxOrbs.Health)
			return o, true
		})
	case logic.RefillEnergy:
		return met.Map(func(o orbs.Orb) (orbs.Orb, bool) {
			o.Energy = clampMax(o.Energy+r.Amount, maxOrbs.Energy)
			return o, true
		})
	default:
		return met
	}
}

func clampMax(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// refire re-evaluates every connection deferred on stateIdx now that it
// has just been activated.
func (ctx *context) refire(stateIdx int) {
	pending := ctx.stateProgressions[stateIdx]
	delete(ctx.stateProgressions, stateIdx)
	for _, p := range pending {
		if _, seen := ctx.bestOrbs[p.conn.Target]; seen {
			continue
		}
		from, ok := ctx.bestOrbs[p.from]
		if !ok {
			continue
		}
		result := requirement.IsMet(p.conn.Requirement, ctx.player, ctx.world.States, from)
		if !result.IsEmpty() {
			ctx.visit(p.conn.Target, result)
		}
	}
}

// teleporterShortcut looks for a "Teleporters" super-anchor; if any
// reached anchor's teleport restriction is met, it recurses from there
// with full orbs, since teleporters may bridge otherwise-disjoint graph
// regions.
func (ctx *context) teleporterShortcut() {
	idx := ctx.graph.Index("Teleporters")
	if idx < 0 {
		return
	}
	if _, seen := ctx.bestOrbs[idx]; seen {
		return
	}
	for nodeIdx, node := range ctx.graph.Nodes {
		if node.Kind != logic.KindAnchor {
			continue
		}
		cur, ok := ctx.bestOrbs[nodeIdx]
		if !ok {
			continue
		}
		met := requirement.IsMet(node.TeleportRestriction, ctx.player, ctx.world.States, cur)
		if !met.IsEmpty() {
			ctx.visit(idx, orbs.New(ctx.player.MaxOrbs()))
			return
		}
	}
}
