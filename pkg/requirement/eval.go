package requirement

import (
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/seeddata"
)

// IsMet evaluates r against the player's current inventory/settings, the
// satisfied-states set, and a non-empty input Variants set, returning the
// resulting Variants (empty iff r cannot be satisfied from any input
// variant). IsMet is a pure function of its inputs, total, and never
// panics — see spec §4.1's guarantees.
func IsMet(r Requirement, player *Player, states StateSet, in orbs.Variants) orbs.Variants {
	if in.IsEmpty() {
		return orbs.NewEmpty()
	}

	switch r.Kind {
	case KindFree:
		return in

	case KindImpossible:
		return orbs.NewEmpty()

	case KindDifficulty:
		if player.Settings.Difficulty.AtLeast(r.Difficulty) {
			return in
		}
		return orbs.NewEmpty()

	case KindTrick:
		if player.Settings.HasTrick(r.Trick) {
			return in
		}
		return orbs.NewEmpty()

	case KindNormalGameDifficulty:
		if player.Settings.Difficulty != seeddata.DifficultyUnsafe {
			return in
		}
		return orbs.NewEmpty()

	case KindSkill:
		if player.Inventory.Skills[r.Skill] {
			return in
		}
		return orbs.NewEmpty()

	case KindShard:
		if player.Inventory.Shards[r.Shard] {
			return in
		}
		return orbs.NewEmpty()

	case KindTeleporter:
		if player.Inventory.Teleporters[r.Teleporter] {
			return in
		}
		return orbs.NewEmpty()

	case KindWater:
		if player.Inventory.CleanWater {
			return in
		}
		return orbs.NewEmpty()

	case KindSpiritLight:
		if player.Inventory.SpiritLight >= r.N {
			return in
		}
		return orbs.NewEmpty()

	case KindGorlekOre:
		if player.Inventory.GorlekOre >= r.N {
			return in
		}
		return orbs.NewEmpty()

	case KindKeystone:
		// Keystone doors are a per-connection gate, not a global
		// deduction: a world that owns n keystones can open any number
		// of n-keystone doors. See spec §9.
		if player.Inventory.Keystones >= r.N {
			return in
		}
		return orbs.NewEmpty()

	case KindDamage:
		cost := r.DamageF * player.DefenseModifier()
		return in.Map(func(o orbs.Orb) (orbs.Orb, bool) {
			o.Health -= cost
			return o, o.Health > 0
		})

	case KindDanger:
		cost := r.DamageF * player.DefenseModifier()
		return in.Filter(func(o orbs.Orb) bool { return o.Health > cost })

	case KindEnergySkill:
		if !player.Inventory.Skills[r.Skill] {
			return orbs.NewEmpty()
		}
		cost := r.Uses * player.UseCost(r.Skill)
		return in.Map(func(o orbs.Orb) (orbs.Orb, bool) {
			o.Energy -= cost
			return o, o.Energy > 0
		})

	case KindNonConsumingEnergySkill:
		if !player.Inventory.Skills[r.Skill] {
			return orbs.NewEmpty()
		}
		cost := player.UseCost(r.Skill)
		return in.Filter(func(o orbs.Orb) bool { return o.Energy >= cost })

	case KindBreakWall, KindBoss:
		return evalDestroy(player, r.TargetHP, in, player.Inventory.OwnedWeapons(player.Settings.Difficulty))

	case KindShurikenBreak:
		return evalSpecificWeapon(player, r.TargetHP, in, seeddata.SkillShuriken)

	case KindSentryBreak:
		return evalSpecificWeapon(player, r.TargetHP, in, seeddata.SkillSentry)

	case KindCombat:
		return evalCombat(r.Combat, player, in)

	case KindState:
		if states.Has(r.StateIdx) {
			return in
		}
		return orbs.NewEmpty()

	case KindAnd:
		cur := in
		for _, child := range r.Children {
			cur = IsMet(child, player, states, cur)
			if cur.IsEmpty() {
				return orbs.NewEmpty()
			}
		}
		return cur

	case KindOr:
		var results []orbs.Variants
		for _, child := range r.Children {
			result := IsMet(child, player, states, in)
			if !result.IsEmpty() {
				results = append(results, result)
			}
		}
		return orbs.Union(results...)

	default:
		return orbs.NewEmpty()
	}
}

// evalDestroy deducts the cheapest owned weapon's energy cost for
// targetHP, dropping variants that can't afford it. Returns empty if no
// weapon is owned at all.
func evalDestroy(player *Player, targetHP float64, in orbs.Variants, owned []seeddata.Skill) orbs.Variants {
	cost, _, ok := CheapestWeaponCost(owned, targetHP)
	if !ok {
		return orbs.NewEmpty()
	}
	return in.Map(func(o orbs.Orb) (orbs.Orb, bool) {
		o.Energy -= cost
		return o, o.Energy >= 0
	})
}

// evalSpecificWeapon requires exactly one named weapon to be owned.
func evalSpecificWeapon(player *Player, targetHP float64, in orbs.Variants, weapon seeddata.Skill) orbs.Variants {
	if !player.Inventory.Skills[weapon] {
		return orbs.NewEmpty()
	}
	cost := DestroyCost(targetHP, weapon)
	return in.Map(func(o orbs.Orb) (orbs.Orb, bool) {
		o.Energy -= cost
		return o, o.Energy >= 0
	})
}
