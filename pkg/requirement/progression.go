package requirement

import (
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/seeddata"
)

// ItemSet is one candidate multiset of items that would unlock a
// requirement that currently fails purely on inventory (see spec §4.4's
// "items-needed" mode). An empty, non-nil ItemSet means the requirement is
// already satisfied.
type ItemSet []inventory.Item

// ItemsNeeded enumerates the minimal item multisets that would flip r from
// unmet to met, given the player's current inventory and the satisfied
// states set. It returns nil if r can never be forced by granting items
// (it depends on a state, a difficulty/trick flag, or is Impossible) —
// callers should treat a nil result as "not a forced-progression
// candidate". The scheduler only invokes this on requirements already
// known to have failed for purely inventory-based reasons (see
// pkg/reach's progression candidates), so the common case is the
// requirement is currently unmet; ItemsNeeded itself does not re-check the
// flag/state predicates.
func ItemsNeeded(r Requirement, player *Player, states StateSet) []ItemSet {
	switch r.Kind {
	case KindFree:
		return []ItemSet{{}}

	case KindImpossible, KindDifficulty, KindTrick, KindNormalGameDifficulty, KindState:
		return nil

	case KindSkill:
		if player.Inventory.Skills[r.Skill] {
			return []ItemSet{{}}
		}
		return []ItemSet{{inventory.SkillItem(r.Skill)}}

	case KindShard:
		if player.Inventory.Shards[r.Shard] {
			return []ItemSet{{}}
		}
		return []ItemSet{{inventory.ShardItem(r.Shard)}}

	case KindTeleporter:
		if player.Inventory.Teleporters[r.Teleporter] {
			return []ItemSet{{}}
		}
		return []ItemSet{{inventory.TeleporterItem(r.Teleporter)}}

	case KindWater:
		if player.Inventory.CleanWater {
			return []ItemSet{{}}
		}
		return []ItemSet{{inventory.CleanWater()}}

	case KindEnergySkill, KindNonConsumingEnergySkill:
		if player.Inventory.Skills[r.Skill] {
			return []ItemSet{{}}
		}
		return []ItemSet{{inventory.SkillItem(r.Skill)}}

	case KindSpiritLight:
		if deficit := r.N - player.Inventory.SpiritLight; deficit > 0 {
			return []ItemSet{{inventory.SpiritLight(deficit)}}
		}
		return []ItemSet{{}}

	case KindGorlekOre:
		return countItemsNeeded(r.N, player.Inventory.GorlekOre, inventory.GorlekOre())

	case KindKeystone:
		return countItemsNeeded(r.N, player.Inventory.Keystones, inventory.Keystone())

	case KindDamage, KindDanger:
		// These consume/gate on health, not an ownable item; the
		// scheduler can't force them directly. A health-fragment
		// grant widens the margin but doesn't flip met/unmet on its
		// own within this evaluator, so report no forcing candidate.
		return nil

	case KindBreakWall, KindBoss:
		return weaponCandidates(player, nil)

	case KindShurikenBreak:
		return singleWeaponCandidate(player, seeddata.SkillShuriken)

	case KindSentryBreak:
		return singleWeaponCandidate(player, seeddata.SkillSentry)

	case KindCombat:
		return combatCandidates(r.Combat, player)

	case KindAnd:
		return andItemsNeeded(r.Children, player, states)

	case KindOr:
		return orItemsNeeded(r.Children, player, states)

	default:
		return nil
	}
}

func countItemsNeeded(required, owned int, unit inventory.Item) []ItemSet {
	deficit := required - owned
	if deficit <= 0 {
		return []ItemSet{{}}
	}
	set := make(ItemSet, deficit)
	for i := range set {
		set[i] = unit
	}
	return []ItemSet{set}
}

// weaponCandidates returns one alternative ItemSet per progression weapon
// not yet owned, excluding any in exclude. If a weapon is already owned,
// the requirement is free and {[]} is returned instead.
func weaponCandidates(player *Player, exclude map[seeddata.Skill]bool) []ItemSet {
	owned := player.Inventory.OwnedWeapons(player.Settings.Difficulty)
	if len(owned) > 0 {
		return []ItemSet{{}}
	}
	all := []seeddata.Skill{
		seeddata.SkillSword, seeddata.SkillHammer, seeddata.SkillBow,
		seeddata.SkillGrenade, seeddata.SkillShuriken, seeddata.SkillBlaze,
		seeddata.SkillFlash, seeddata.SkillSpear, seeddata.SkillSentry,
	}
	var sets []ItemSet
	for _, w := range all {
		if exclude[w] {
			continue
		}
		sets = append(sets, ItemSet{inventory.SkillItem(w)})
	}
	return sets
}

func singleWeaponCandidate(player *Player, weapon seeddata.Skill) []ItemSet {
	if player.Inventory.Skills[weapon] {
		return []ItemSet{{}}
	}
	return []ItemSet{{inventory.SkillItem(weapon)}}
}

// combatCandidates produces one alternative per missing weapon capable of
// satisfying every entry's constraints (ranged/shield as needed); entries
// already coverable by an owned weapon contribute no candidate.
func combatCandidates(entries []CombatEntry, player *Player) []ItemSet {
	owned := player.Inventory.OwnedWeapons(player.Settings.Difficulty)
	if len(owned) > 0 {
		allCoverable := true
		for _, e := range entries {
			stats, known := seeddata.EnemyTable[e.Enemy]
			if !known {
				return nil
			}
			if stats.Health == 0 {
				continue
			}
			if stats.Ranged && len(ownedRanged(owned)) == 0 {
				allCoverable = false
			}
			if stats.Shielded && len(ownedShieldBreakers(owned)) == 0 {
				allCoverable = false
			}
		}
		if allCoverable {
			return []ItemSet{{}}
		}
	}

	needsRanged := false
	needsShieldBreak := false
	for _, e := range entries {
		stats, known := seeddata.EnemyTable[e.Enemy]
		if !known {
			return nil
		}
		if stats.Ranged || stats.Aerial {
			needsRanged = true
		}
		if stats.Shielded {
			needsShieldBreak = true
		}
	}

	candidates := []seeddata.Skill{
		seeddata.SkillSword, seeddata.SkillHammer, seeddata.SkillBow,
		seeddata.SkillGrenade, seeddata.SkillShuriken, seeddata.SkillBlaze,
		seeddata.SkillFlash, seeddata.SkillSpear, seeddata.SkillSentry,
	}
	var sets []ItemSet
	for _, w := range candidates {
		if player.Inventory.Skills[w] {
			continue
		}
		if needsRanged && !w.IsRanged() {
			continue
		}
		if needsShieldBreak && !w.IsShieldBreaker() {
			continue
		}
		sets = append(sets, ItemSet{inventory.SkillItem(w)})
	}
	return sets
}

// andItemsNeeded combines every child's alternatives via cartesian
// product, merging the item multisets of one alternative per child.
func andItemsNeeded(children []Requirement, player *Player, states StateSet) []ItemSet {
	combined := []ItemSet{{}}
	for _, child := range children {
		childSets := ItemsNeeded(child, player, states)
		if childSets == nil {
			return nil
		}
		var next []ItemSet
		for _, base := range combined {
			for _, add := range childSets {
				merged := make(ItemSet, 0, len(base)+len(add))
				merged = append(merged, base...)
				merged = append(merged, add...)
				next = append(next, merged)
			}
		}
		combined = next
		if len(combined) == 0 {
			return nil
		}
	}
	return dedupItemSets(combined)
}

// orItemsNeeded unions every child's alternatives: any one of the
// children's item sets independently unlocks the Or.
func orItemsNeeded(children []Requirement, player *Player, states StateSet) []ItemSet {
	var all []ItemSet
	for _, child := range children {
		childSets := ItemsNeeded(child, player, states)
		all = append(all, childSets...)
	}
	if len(all) == 0 {
		return nil
	}
	return dedupItemSets(all)
}

func dedupItemSets(sets []ItemSet) []ItemSet {
	seen := make(map[string]bool, len(sets))
	var out []ItemSet
	for _, s := range sets {
		key := itemSetKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func itemSetKey(s ItemSet) string {
	key := ""
	for _, it := range s {
		key += it.String() + ";"
	}
	return key
}
