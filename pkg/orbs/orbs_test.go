package orbs

import (
	"testing"

	"pgregory.net/rapid"
)

func TestVariants_InsertPrunesDominated(t *testing.T) {
	v := New(Orb{Health: 10, Energy: 1})
	v.insert(Orb{Health: 20, Energy: 5})

	if v.Len() != 1 {
		t.Fatalf("expected dominated variant to be pruned, got %d variants", v.Len())
	}
	if got := v.Slice()[0]; got != (Orb{Health: 20, Energy: 5}) {
		t.Errorf("expected surviving variant {20, 5}, got %+v", got)
	}
}

func TestVariants_InsertSkipsWhenDominated(t *testing.T) {
	v := New(Orb{Health: 20, Energy: 5})
	v.insert(Orb{Health: 10, Energy: 1})

	if v.Len() != 1 {
		t.Fatalf("expected new dominated variant to be skipped, got %d variants", v.Len())
	}
}

func TestVariants_InsertKeepsIncomparable(t *testing.T) {
	v := New(Orb{Health: 20, Energy: 1})
	v.insert(Orb{Health: 5, Energy: 10})

	if v.Len() != 2 {
		t.Fatalf("expected both incomparable variants kept, got %d", v.Len())
	}
}

func TestUnion(t *testing.T) {
	a := New(Orb{Health: 10, Energy: 1})
	b := New(Orb{Health: 5, Energy: 10})
	u := Union(a, b)

	if u.Len() != 2 {
		t.Fatalf("expected union of incomparable sets to keep both, got %d", u.Len())
	}
	if !u.NoneDominated() {
		t.Error("union result violates domination-prune invariant")
	}
}

func TestEither(t *testing.T) {
	current := New(Orb{Health: 10, Energy: 10})
	refilled := New(Orb{Health: 30, Energy: 3})

	merged := Either(current, refilled)
	if merged.Len() != 2 {
		t.Fatalf("expected incomparable orbs to both survive either(), got %d", merged.Len())
	}

	full := New(Orb{Health: 30, Energy: 10})
	mergedWithFull := Either(current, full)
	if mergedWithFull.Len() != 1 {
		t.Fatalf("expected full refill to dominate and prune, got %d variants", mergedWithFull.Len())
	}
}

func TestMapDropsFilteredVariants(t *testing.T) {
	v := FromSlice([]Orb{{Health: 10, Energy: 5}, {Health: 3, Energy: 5}})

	deducted := v.Map(func(o Orb) (Orb, bool) {
		o.Health -= 5
		return o, o.Health > 0
	})

	if deducted.Len() != 1 {
		t.Fatalf("expected one variant to survive the health deduction, got %d", deducted.Len())
	}
	if got := deducted.Slice()[0].Health; got != 5 {
		t.Errorf("expected surviving variant health 5, got %v", got)
	}
}

func TestBest(t *testing.T) {
	v := FromSlice([]Orb{{Health: 5, Energy: 20}, {Health: 20, Energy: 1}})
	best := v.Best()
	if best.Health != 20 {
		t.Errorf("expected Best to prefer greater health, got %+v", best)
	}
}

func TestBestPanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Best() on empty Variants did not panic")
		}
	}()
	NewEmpty().Best()
}

// TestUnionNeverDominated is the property backing testable property #5
// ("domination prune"): after any Or-fold (modeled here as Union), no
// variant in the result dominates another.
func TestUnionNeverDominated(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		var os []Orb
		for i := 0; i < n; i++ {
			os = append(os, Orb{
				Health: rapid.Float64Range(0, 200).Draw(t, "health"),
				Energy: rapid.Float64Range(0, 50).Draw(t, "energy"),
			})
		}
		result := FromSlice(os)
		if !result.NoneDominated() {
			t.Fatalf("domination-prune invariant violated for input %+v -> %+v", os, result.Slice())
		}
	})
}

// TestEitherMonotone backs testable property #4 (orb monotonicity): Either
// never loses ground relative to either input — every input variant is
// dominated by something in the result.
func TestEitherMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Orb{
			Health: rapid.Float64Range(0, 200).Draw(t, "a_health"),
			Energy: rapid.Float64Range(0, 50).Draw(t, "a_energy"),
		}
		b := Orb{
			Health: rapid.Float64Range(0, 200).Draw(t, "b_health"),
			Energy: rapid.Float64Range(0, 50).Draw(t, "b_energy"),
		}
		merged := Either(New(a), New(b))
		if !merged.ContainsAtLeast(a) {
			t.Fatalf("Either(%+v, %+v) = %+v does not dominate %+v", a, b, merged.Slice(), a)
		}
		if !merged.ContainsAtLeast(b) {
			t.Fatalf("Either(%+v, %+v) = %+v does not dominate %+v", a, b, merged.Slice(), b)
		}
	})
}
