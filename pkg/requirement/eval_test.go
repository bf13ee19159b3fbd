package requirement

import (
	"testing"

	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/seeddata"
	"github.com/orirando/seedgen/pkg/settings"
	"pgregory.net/rapid"
)

func newDefaultPlayer() *Player {
	inv := inventory.New()
	ws := settings.NewWorldSettings()
	return NewPlayer(inv, ws)
}

// TestS4_EnergySkillInsufficientEnergy matches spec §8 scenario S4.
func TestS4_EnergySkillInsufficientEnergy(t *testing.T) {
	p := newDefaultPlayer()
	p.Inventory.Grant(inventory.SkillItem(seeddata.SkillBow), 1)

	req := AndReq(SkillReq(seeddata.SkillBow), EnergySkillReq(seeddata.SkillBow, 2.0))
	in := orbs.New(orbs.Orb{Health: 30, Energy: 1.0})

	result := IsMet(req, p, NewStateSet(), in)
	if !result.IsEmpty() {
		t.Fatalf("expected And(Skill(Bow), EnergySkill(Bow, 2.0)) to fail with energy=1.0, got %+v", result.Slice())
	}
}

// TestS5_OrUnchangedVariant matches spec §8 scenario S5.
func TestS5_OrUnchangedVariant(t *testing.T) {
	p := newDefaultPlayer()
	p.Inventory.Grant(inventory.SkillItem(seeddata.SkillSword), 1)

	req := OrReq(SkillReq(seeddata.SkillSword), SkillReq(seeddata.SkillHammer))
	in := orbs.New(orbs.Orb{Health: 20, Energy: 3})

	result := IsMet(req, p, NewStateSet(), in)
	if result.Len() != 1 {
		t.Fatalf("expected exactly one variant, got %d", result.Len())
	}
	if got := result.Slice()[0]; got != (orbs.Orb{Health: 20, Energy: 3}) {
		t.Errorf("expected unchanged variant {20, 3}, got %+v", got)
	}
}

// TestS6_CombatNonEmpty matches spec §8 scenario S6 (non-empty outcome;
// the exact energy deduction follows this implementation's
// implementation-defined damage-per-energy table, not a bit-exact replica
// of the original).
func TestS6_CombatNonEmpty(t *testing.T) {
	p := newDefaultPlayer()
	p.Inventory.Grant(inventory.SkillItem(seeddata.SkillBow), 1)
	p.Settings.Difficulty = seeddata.DifficultyUnsafe

	req := CombatReq(CombatEntry{Enemy: seeddata.EnemyLizard, Count: 3})
	in := orbs.New(orbs.Orb{Health: 30, Energy: 40})

	result := IsMet(req, p, NewStateSet(), in)
	if result.IsEmpty() {
		t.Fatal("expected Combat([Lizard x3]) to succeed with Bow and 40 energy")
	}
}

func TestFreeIsIdentity(t *testing.T) {
	p := newDefaultPlayer()
	in := orbs.New(orbs.Orb{Health: 10, Energy: 1})
	result := IsMet(Free(), p, NewStateSet(), in)
	if result.Len() != 1 || result.Slice()[0] != (orbs.Orb{Health: 10, Energy: 1}) {
		t.Errorf("Free did not return input unchanged: %+v", result.Slice())
	}
}

func TestImpossibleIsEmpty(t *testing.T) {
	p := newDefaultPlayer()
	in := orbs.New(orbs.Orb{Health: 10, Energy: 1})
	result := IsMet(Impossible(), p, NewStateSet(), in)
	if !result.IsEmpty() {
		t.Error("Impossible did not return empty")
	}
}

func TestKeystoneIsNotGloballyDeducted(t *testing.T) {
	p := newDefaultPlayer()
	p.Inventory.Keystones = 2
	in := orbs.New(orbs.Orb{Health: 10, Energy: 1})

	req := AndReq(KeystoneReq(2), KeystoneReq(2))
	result := IsMet(req, p, NewStateSet(), in)
	if result.IsEmpty() {
		t.Error("expected keystone requirement to be reusable across doors (no global deduction)")
	}
	if p.Inventory.Keystones != 2 {
		t.Errorf("expected keystone count to remain 2, got %d", p.Inventory.Keystones)
	}
}

func TestDamageDropsNonPositiveVariants(t *testing.T) {
	p := newDefaultPlayer()
	in := orbs.FromSlice([]orbs.Orb{{Health: 20, Energy: 1}, {Health: 5, Energy: 1}})

	result := IsMet(DamageReq(10), p, NewStateSet(), in)
	if result.Len() != 1 {
		t.Fatalf("expected one surviving variant, got %d", result.Len())
	}
	if result.Slice()[0].Health != 10 {
		t.Errorf("expected surviving health 10, got %v", result.Slice()[0].Health)
	}
}

func TestDangerFiltersWithoutDeducting(t *testing.T) {
	p := newDefaultPlayer()
	in := orbs.FromSlice([]orbs.Orb{{Health: 20, Energy: 1}, {Health: 5, Energy: 1}})

	result := IsMet(DangerReq(10), p, NewStateSet(), in)
	if result.Len() != 1 {
		t.Fatalf("expected one surviving variant, got %d", result.Len())
	}
	if result.Slice()[0].Health != 20 {
		t.Errorf("Danger should not deduct health, got %v", result.Slice()[0].Health)
	}
}

func TestStateRequirement(t *testing.T) {
	p := newDefaultPlayer()
	in := orbs.New(orbs.Orb{Health: 10, Energy: 1})
	states := NewStateSet()

	if !IsMet(StateReq(5), p, states, in).IsEmpty() {
		t.Error("expected unactivated state to fail")
	}
	states.Activate(5)
	if IsMet(StateReq(5), p, states, in).IsEmpty() {
		t.Error("expected activated state to pass")
	}
}

func TestContainedStates(t *testing.T) {
	req := AndReq(StateReq(1), OrReq(StateReq(2), SkillReq(seeddata.SkillBash)))
	got := ContainedStates(req, nil)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected contained states [1 2], got %v", got)
	}
}

// TestOrbMonotonicity backs testable property #4: for A ⊇ B (pointwise),
// is_met(R, _, _, A) ⊇ is_met(R, _, _, B).
func TestOrbMonotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := newDefaultPlayer()
		p.Inventory.Grant(inventory.SkillItem(seeddata.SkillBow), 1)

		baseHealth := rapid.Float64Range(1, 100).Draw(t, "baseHealth")
		baseEnergy := rapid.Float64Range(1, 20).Draw(t, "baseEnergy")
		bonusHealth := rapid.Float64Range(0, 50).Draw(t, "bonusHealth")
		bonusEnergy := rapid.Float64Range(0, 20).Draw(t, "bonusEnergy")

		small := orbs.New(orbs.Orb{Health: baseHealth, Energy: baseEnergy})
		large := orbs.New(orbs.Orb{Health: baseHealth + bonusHealth, Energy: baseEnergy + bonusEnergy})

		uses := rapid.Float64Range(0, 5).Draw(t, "uses")
		req := EnergySkillReq(seeddata.SkillBow, uses)

		resultSmall := IsMet(req, p, NewStateSet(), small)
		resultLarge := IsMet(req, p, NewStateSet(), large)

		if !resultSmall.IsEmpty() && resultLarge.IsEmpty() {
			t.Fatalf("monotonicity violated: met from smaller orbs %+v but not from larger %+v", small.Slice(), large.Slice())
		}
	})
}

func TestAndFoldsSequentially(t *testing.T) {
	p := newDefaultPlayer()
	p.Inventory.Grant(inventory.SkillItem(seeddata.SkillBow), 1)

	req := AndReq(SkillReq(seeddata.SkillBow), EnergySkillReq(seeddata.SkillBow, 4))
	in := orbs.New(orbs.Orb{Health: 30, Energy: 5})

	result := IsMet(req, p, NewStateSet(), in)
	if result.IsEmpty() {
		t.Fatal("expected And to succeed with sufficient energy")
	}
	want := 5.0 - 4*p.UseCost(seeddata.SkillBow)
	if got := result.Slice()[0].Energy; got != want {
		t.Errorf("expected energy %v after deduction, got %v", want, got)
	}
}
