// Package orbs implements the two-dimensional resource bookkeeping
// (health, energy) threaded through the requirement evaluator and
// reachability engine. Orbs are plain values; OrbVariants is the small
// Pareto-pruned multiset the evaluator forks and merges along OR-branches.
package orbs

// Orb is a single (health, energy) resource snapshot.
type Orb struct {
	Health float64
	Energy float64
}

// Dominates reports whether o is at least as good as other in both
// dimensions, i.e. other can be safely dropped once o is present.
func (o Orb) Dominates(other Orb) bool {
	return o.Health >= other.Health && o.Energy >= other.Energy
}

// inlineCapacity mirrors the source's small-vector optimisation: most
// OrbVariants sets carry only one or two variants, so constructors
// preallocate this much backing array up front to avoid repeated growth.
const inlineCapacity = 8

// Variants is a small ordered multiset of Orb values with the invariant
// that no variant dominates another. The zero value is an empty set
// ("requirement not met").
type Variants struct {
	orbs []Orb
}

// New builds a Variants set from a single orb.
func New(o Orb) Variants {
	return Variants{orbs: []Orb{o}}
}

// NewEmpty returns the empty Variants set ("not met").
func NewEmpty() Variants {
	return Variants{}
}

// FromSlice builds a pruned Variants set from an arbitrary slice of orbs.
func FromSlice(os []Orb) Variants {
	v := Variants{orbs: make([]Orb, 0, inlineCapacity)}
	for _, o := range os {
		v.insert(o)
	}
	return v
}

// Len returns the number of variants in the set.
func (v Variants) Len() int { return len(v.orbs) }

// IsEmpty reports whether the set has no variants (requirement unmet).
func (v Variants) IsEmpty() bool { return len(v.orbs) == 0 }

// Slice returns the underlying orbs. Callers must not mutate the result.
func (v Variants) Slice() []Orb { return v.orbs }

// insert adds o to the set, pruning any existing variant it dominates and
// skipping the insert entirely if an existing variant already dominates o.
func (v *Variants) insert(o Orb) {
	for _, existing := range v.orbs {
		if existing.Dominates(o) {
			return
		}
	}
	kept := v.orbs[:0:0]
	for _, existing := range v.orbs {
		if !o.Dominates(existing) {
			kept = append(kept, existing)
		}
	}
	v.orbs = append(kept, o)
}

// Union merges two variant sets and Pareto-prunes the result, used by the
// Or requirement combinator.
func Union(sets ...Variants) Variants {
	out := Variants{orbs: make([]Orb, 0, inlineCapacity)}
	for _, s := range sets {
		for _, o := range s.orbs {
			out.insert(o)
		}
	}
	return out
}

// Either computes the pointwise-max-with-prune of two variant sets, used
// when applying a refill: the player keeps whichever of (current, refilled)
// is better along each branch, never worse.
func Either(a, b Variants) Variants {
	out := Variants{orbs: make([]Orb, 0, inlineCapacity)}
	for _, o := range a.orbs {
		out.insert(o)
	}
	for _, o := range b.orbs {
		out.insert(o)
	}
	return out
}

// Map applies f to every variant, dropping any variant for which f reports
// ok == false (used by cost-deduction requirements that drop variants that
// go non-positive).
func (v Variants) Map(f func(Orb) (Orb, bool)) Variants {
	out := Variants{orbs: make([]Orb, 0, inlineCapacity)}
	for _, o := range v.orbs {
		if mapped, ok := f(o); ok {
			out.insert(mapped)
		}
	}
	return out
}

// Filter keeps only the variants for which pred holds.
func (v Variants) Filter(pred func(Orb) bool) Variants {
	out := Variants{orbs: make([]Orb, 0, inlineCapacity)}
	for _, o := range v.orbs {
		if pred(o) {
			out.insert(o)
		}
	}
	return out
}

// Contains reports whether o is present among v's variants (exact match).
func (v Variants) Contains(o Orb) bool {
	for _, existing := range v.orbs {
		if existing == o {
			return true
		}
	}
	return false
}

// ContainsAtLeast reports whether some variant in v dominates o. Used by
// property tests asserting orb monotonicity.
func (v Variants) ContainsAtLeast(o Orb) bool {
	for _, existing := range v.orbs {
		if existing.Dominates(o) {
			return true
		}
	}
	return false
}

// Best returns the variant with the greatest health, tie-broken by energy.
// Panics if the set is empty; callers must check IsEmpty first.
func (v Variants) Best() Orb {
	if len(v.orbs) == 0 {
		panic("orbs: Best called on empty Variants")
	}
	best := v.orbs[0]
	for _, o := range v.orbs[1:] {
		if o.Health > best.Health || (o.Health == best.Health && o.Energy > best.Energy) {
			best = o
		}
	}
	return best
}

// NoneDominated reports whether the invariant holds: no variant in v
// dominates another distinct variant. Used by tests, and safe to call in
// debug assertions after any Or fold.
func (v Variants) NoneDominated() bool {
	for i, a := range v.orbs {
		for j, b := range v.orbs {
			if i == j {
				continue
			}
			if a.Dominates(b) {
				return false
			}
		}
	}
	return true
}
