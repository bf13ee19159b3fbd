// Package seeddata holds the closed enumerations shared across the engine:
// skills, shards, teleporters, weapon upgrades, difficulties, tricks and
// enemy kinds. None of them carry behavior beyond String() and membership
// helpers — the evaluator and inventory packages attach the real semantics.
package seeddata

import "fmt"

// Skill identifies one of the player's learnable abilities.
type Skill int

const (
	SkillBash Skill = iota
	SkillWallJump
	SkillDoubleJump
	SkillLaunch
	SkillGlide
	SkillWaterBreath
	SkillGrenade
	SkillGrapple
	SkillFlash
	SkillSpear
	SkillRegenerate
	SkillBow
	SkillHammer
	SkillSword
	SkillBurrow
	SkillDash
	SkillWaterDash
	SkillShuriken
	SkillSeir
	SkillBlaze
	SkillSentry
	SkillFlap
	SkillGorlekOreDash
	SkillLight
)

// String returns the rando name of a Skill.
func (s Skill) String() string {
	switch s {
	case SkillBash:
		return "Bash"
	case SkillWallJump:
		return "WallJump"
	case SkillDoubleJump:
		return "DoubleJump"
	case SkillLaunch:
		return "Launch"
	case SkillGlide:
		return "Glide"
	case SkillWaterBreath:
		return "WaterBreath"
	case SkillGrenade:
		return "Grenade"
	case SkillGrapple:
		return "Grapple"
	case SkillFlash:
		return "Flash"
	case SkillSpear:
		return "Spear"
	case SkillRegenerate:
		return "Regenerate"
	case SkillBow:
		return "Bow"
	case SkillHammer:
		return "Hammer"
	case SkillSword:
		return "Sword"
	case SkillBurrow:
		return "Burrow"
	case SkillDash:
		return "Dash"
	case SkillWaterDash:
		return "WaterDash"
	case SkillShuriken:
		return "Shuriken"
	case SkillSeir:
		return "Seir"
	case SkillBlaze:
		return "Blaze"
	case SkillSentry:
		return "Sentry"
	case SkillFlap:
		return "Flap"
	case SkillGorlekOreDash:
		return "GorlekOreDash"
	case SkillLight:
		return "Light"
	default:
		return fmt.Sprintf("Skill(%d)", int(s))
	}
}

// IsWeapon reports whether the skill is a progression weapon usable by the
// combat solver.
func (s Skill) IsWeapon() bool {
	switch s {
	case SkillSword, SkillHammer, SkillBow, SkillGrenade, SkillShuriken,
		SkillBlaze, SkillFlash, SkillSpear, SkillSentry:
		return true
	default:
		return false
	}
}

// IsRanged reports whether the weapon can strike without melee range.
func (s Skill) IsRanged() bool {
	switch s {
	case SkillBow, SkillGrenade, SkillShuriken, SkillBlaze, SkillFlash, SkillSentry, SkillSpear:
		return true
	default:
		return false
	}
}

// IsShieldBreaker reports whether the weapon can break a shielded enemy's
// shield on its own.
func (s Skill) IsShieldBreaker() bool {
	switch s {
	case SkillHammer, SkillBash, SkillLaunch, SkillSpear:
		return true
	default:
		return false
	}
}

// ParseSkill looks up a Skill by its rando name, the inverse of String.
func ParseSkill(name string) (Skill, bool) {
	for s := SkillBash; s <= SkillLight; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
