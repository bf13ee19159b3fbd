// Package requirement implements the traversal-requirement language: a
// closed, tagged-variant AST and its is_met evaluator. Dispatch is by Kind,
// never by virtual method, so the hot evaluation loop stays a flat switch
// (see design notes on avoiding polymorphism on the is_met/reach path).
package requirement

import (
	"fmt"
	"strings"

	"github.com/orirando/seedgen/pkg/seeddata"
)

// Kind discriminates the Requirement variants.
type Kind int

const (
	KindFree Kind = iota
	KindImpossible
	KindDifficulty
	KindTrick
	KindNormalGameDifficulty
	KindSkill
	KindShard
	KindTeleporter
	KindWater
	KindEnergySkill
	KindNonConsumingEnergySkill
	KindSpiritLight
	KindGorlekOre
	KindKeystone
	KindDamage
	KindDanger
	KindBreakWall
	KindBoss
	KindShurikenBreak
	KindSentryBreak
	KindCombat
	KindState
	KindAnd
	KindOr
)

// CombatEntry is one (enemy, count) pair within a Combat requirement.
type CombatEntry struct {
	Enemy seeddata.Enemy
	Count int
}

// Requirement is the closed sum type described in spec §3. Exactly the
// fields relevant to Kind are populated; the rest are zero.
type Requirement struct {
	Kind Kind

	Difficulty seeddata.Difficulty
	Trick      seeddata.Trick
	Skill      seeddata.Skill
	Shard      seeddata.Shard
	Teleporter seeddata.Teleporter

	Uses float64 // EnergySkill use-count
	N    int     // SpiritLight / GorlekOre / Keystone count
	DamageF float64 // Damage / Danger health amount (float for partial hits)

	TargetHP float64 // BreakWall / Boss / ShurikenBreak / SentryBreak

	Combat []CombatEntry

	StateIdx int

	Children []Requirement
}

// Free is always satisfied.
func Free() Requirement { return Requirement{Kind: KindFree} }

// Impossible is never satisfied.
func Impossible() Requirement { return Requirement{Kind: KindImpossible} }

// DifficultyReq requires the world's difficulty to be at least d.
func DifficultyReq(d seeddata.Difficulty) Requirement {
	return Requirement{Kind: KindDifficulty, Difficulty: d}
}

// TrickReq requires trick t to be enabled.
func TrickReq(t seeddata.Trick) Requirement {
	return Requirement{Kind: KindTrick, Trick: t}
}

// NormalGameDifficulty requires the world to not be running Unsafe logic.
func NormalGameDifficulty() Requirement { return Requirement{Kind: KindNormalGameDifficulty} }

// SkillReq requires the skill to be owned.
func SkillReq(s seeddata.Skill) Requirement { return Requirement{Kind: KindSkill, Skill: s} }

// ShardReq requires the shard to be owned.
func ShardReq(s seeddata.Shard) Requirement { return Requirement{Kind: KindShard, Shard: s} }

// TeleporterReq requires the teleporter to be unlocked.
func TeleporterReq(t seeddata.Teleporter) Requirement {
	return Requirement{Kind: KindTeleporter, Teleporter: t}
}

// WaterReq requires the clean-water flag.
func WaterReq() Requirement { return Requirement{Kind: KindWater} }

// EnergySkillReq deducts uses*cost(skill) energy, dropping variants that
// go non-positive.
func EnergySkillReq(s seeddata.Skill, uses float64) Requirement {
	return Requirement{Kind: KindEnergySkill, Skill: s, Uses: uses}
}

// NonConsumingEnergySkillReq filters on energy ≥ cost(skill) without
// deducting it.
func NonConsumingEnergySkillReq(s seeddata.Skill) Requirement {
	return Requirement{Kind: KindNonConsumingEnergySkill, Skill: s}
}

// SpiritLightReq requires at least n spirit light owned.
func SpiritLightReq(n int) Requirement { return Requirement{Kind: KindSpiritLight, N: n} }

// GorlekOreReq requires at least n gorlek ore owned.
func GorlekOreReq(n int) Requirement { return Requirement{Kind: KindGorlekOre, N: n} }

// KeystoneReq requires at least n keystones owned. Keystone doors are a
// per-connection gate, not a global deduction (see spec §9 open question).
func KeystoneReq(n int) Requirement { return Requirement{Kind: KindKeystone, N: n} }

// DamageReq deducts health unconditionally, dropping variants at or below
// zero.
func DamageReq(amount float64) Requirement { return Requirement{Kind: KindDamage, DamageF: amount} }

// DangerReq filters on health > amount without deducting it.
func DangerReq(amount float64) Requirement { return Requirement{Kind: KindDanger, DamageF: amount} }

// BreakWallReq requires an owned weapon, ranged or melee, able to deal
// targetHP of damage, deducting the cheapest owned weapon's energy cost.
func BreakWallReq(targetHP float64) Requirement {
	return Requirement{Kind: KindBreakWall, TargetHP: targetHP}
}

// BossReq is like BreakWallReq but against a boss-flagged target.
func BossReq(targetHP float64) Requirement {
	return Requirement{Kind: KindBoss, TargetHP: targetHP}
}

// ShurikenBreakReq requires Shuriken specifically.
func ShurikenBreakReq(targetHP float64) Requirement {
	return Requirement{Kind: KindShurikenBreak, TargetHP: targetHP}
}

// SentryBreakReq requires Sentry specifically.
func SentryBreakReq(targetHP float64) Requirement {
	return Requirement{Kind: KindSentryBreak, TargetHP: targetHP}
}

// CombatReq requires the player to be able to defeat the given enemy
// sequence; see §4.3.
func CombatReq(entries ...CombatEntry) Requirement {
	return Requirement{Kind: KindCombat, Combat: entries}
}

// StateReq holds iff stateIdx is in the satisfied-states set.
func StateReq(stateIdx int) Requirement { return Requirement{Kind: KindState, StateIdx: stateIdx} }

// AndReq folds children in order, feeding each child's output orbs into
// the next.
func AndReq(children ...Requirement) Requirement {
	return Requirement{Kind: KindAnd, Children: children}
}

// OrReq evaluates every child against the same input and unions the
// (Pareto-pruned) results.
func OrReq(children ...Requirement) Requirement {
	return Requirement{Kind: KindOr, Children: children}
}

// String renders a compact debug form of the requirement tree.
func (r Requirement) String() string {
	switch r.Kind {
	case KindFree:
		return "Free"
	case KindImpossible:
		return "Impossible"
	case KindDifficulty:
		return fmt.Sprintf("Difficulty(%s)", r.Difficulty)
	case KindTrick:
		return fmt.Sprintf("Trick(%s)", r.Trick)
	case KindNormalGameDifficulty:
		return "NormalGameDifficulty"
	case KindSkill:
		return fmt.Sprintf("Skill(%s)", r.Skill)
	case KindShard:
		return fmt.Sprintf("Shard(%s)", r.Shard)
	case KindTeleporter:
		return fmt.Sprintf("Teleporter(%s)", r.Teleporter)
	case KindWater:
		return "Water"
	case KindEnergySkill:
		return fmt.Sprintf("EnergySkill(%s, %.1f)", r.Skill, r.Uses)
	case KindNonConsumingEnergySkill:
		return fmt.Sprintf("NonConsumingEnergySkill(%s)", r.Skill)
	case KindSpiritLight:
		return fmt.Sprintf("SpiritLight(%d)", r.N)
	case KindGorlekOre:
		return fmt.Sprintf("GorlekOre(%d)", r.N)
	case KindKeystone:
		return fmt.Sprintf("Keystone(%d)", r.N)
	case KindDamage:
		return fmt.Sprintf("Damage(%.1f)", r.DamageF)
	case KindDanger:
		return fmt.Sprintf("Danger(%.1f)", r.DamageF)
	case KindBreakWall:
		return fmt.Sprintf("BreakWall(%.1f)", r.TargetHP)
	case KindBoss:
		return fmt.Sprintf("Boss(%.1f)", r.TargetHP)
	case KindShurikenBreak:
		return fmt.Sprintf("ShurikenBreak(%.1f)", r.TargetHP)
	case KindSentryBreak:
		return fmt.Sprintf("SentryBreak(%.1f)", r.TargetHP)
	case KindCombat:
		parts := make([]string, len(r.Combat))
		for i, c := range r.Combat {
			parts[i] = fmt.Sprintf("(%s, %d)", c.Enemy, c.Count)
		}
		return fmt.Sprintf("Combat[%s]", strings.Join(parts, ", "))
	case KindState:
		return fmt.Sprintf("State(%d)", r.StateIdx)
	case KindAnd:
		return fmt.Sprintf("And(%s)", joinChildren(r.Children))
	case KindOr:
		return fmt.Sprintf("Or(%s)", joinChildren(r.Children))
	default:
		return fmt.Sprintf("Requirement(kind=%d)", int(r.Kind))
	}
}

func joinChildren(children []Requirement) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// ContainedStates recursively scans r (through And/Or nesting) for State
// leaves and appends their indices to states. Used by the reachability
// engine to decide whether a failed connection is purely inventory-gated
// (a forced-progression candidate) or waiting on a not-yet-active state.
func ContainedStates(r Requirement, states []int) []int {
	switch r.Kind {
	case KindState:
		return append(states, r.StateIdx)
	case KindAnd, KindOr:
		for _, c := range r.Children {
			states = ContainedStates(c, states)
		}
	}
	return states
}
