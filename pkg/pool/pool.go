// Package pool implements the shrinking item pool the scheduler draws
// placements from, plus its shadow mirror of everything still unplaced
// used for forced-progression lookahead.
package pool

import (
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/rng"
)

// Pool is a deduplicated command-lookup (one entry per distinct item)
// paired with a shuffled multiset of indices into it — one index per
// placeable copy. change grows or shrinks the multiset; choose_random and
// drain_random consume it.
type Pool struct {
	lookup   []inventory.Item
	indexOf  map[string]int
	items    []int // indices into lookup, one per remaining copy
	mirror   map[string]int
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{indexOf: make(map[string]int), mirror: make(map[string]int)}
}

// Len reports how many item copies remain in the pool.
func (p *Pool) Len() int { return len(p.items) }

// IsEmpty reports whether the pool has nothing left to place.
func (p *Pool) IsEmpty() bool { return len(p.items) == 0 }

func (p *Pool) resolve(item inventory.Item) int {
	key := item.String()
	if idx, ok := p.indexOf[key]; ok {
		return idx
	}
	idx := len(p.lookup)
	p.lookup = append(p.lookup, item)
	p.indexOf[key] = idx
	return idx
}

// Change atomically adds (n > 0) or removes (n < 0) n copies of item.
// Removing more copies than present removes all that are present.
func (p *Pool) Change(item inventory.Item, n int) {
	key := item.String()
	if n > 0 {
		idx := p.resolve(item)
		for i := 0; i < n; i++ {
			p.items = append(p.items, idx)
		}
		p.mirror[key] += n
		return
	}
	if n == 0 {
		return
	}
	idx, ok := p.indexOf[key]
	if !ok {
		return
	}
	toRemove := -n
	removed := 0
	out := p.items[:0]
	for _, v := range p.items {
		if v == idx && removed < toRemove {
			removed++
			continue
		}
		out = append(out, v)
	}
	p.items = out
	p.mirror[key] -= removed
}

// Remaining reports how many copies of item are still in the pool
// (equivalently, in the shadow mirror).
func (p *Pool) Remaining(item inventory.Item) int {
	return p.mirror[item.String()]
}

// ChooseRandom draws one item uniformly from the remaining pool via
// swap-remove, then applies a cost-based reroll: an item costing more than
// 10000 is only accepted with probability -10000/cost + 1, otherwise it is
// pushed back and another uniform draw is attempted. This softly caps how
// often expensive items surface for random placement; forced placement
// bypasses ChooseRandom entirely via direct Change calls. Returns false if
// the pool is empty.
func (p *Pool) ChooseRandom(r *rng.RNG) (inventory.Item, bool) {
	for {
		if len(p.items) == 0 {
			return inventory.Item{}, false
		}
		pos := r.Intn(len(p.items))
		idx := p.items[pos]
		item := p.lookup[idx]

		cost := item.Cost()
		if cost > 10000 {
			accept := -10000/cost + 1
			if r.Float64() >= accept {
				continue
			}
		}

		last := len(p.items) - 1
		p.items[pos] = p.items[last]
		p.items = p.items[:last]
		p.mirror[item.String()]--
		return item, true
	}
}

// DrainRandom shuffles the remaining pool and returns every item in that
// order, emptying the pool. Used for bulk reach-simulation where reroll
// bias doesn't matter.
func (p *Pool) DrainRandom(r *rng.RNG) []inventory.Item {
	r.Shuffle(len(p.items), func(i, j int) { p.items[i], p.items[j] = p.items[j], p.items[i] })
	out := make([]inventory.Item, len(p.items))
	for i, idx := range p.items {
		out[i] = p.lookup[idx]
		p.mirror[out[i].String()]--
	}
	p.items = nil
	return out
}

// Items returns a snapshot of the remaining items, in current pool order.
func (p *Pool) Items() []inventory.Item {
	out := make([]inventory.Item, len(p.items))
	for i, idx := range p.items {
		out[i] = p.lookup[idx]
	}
	return out
}
