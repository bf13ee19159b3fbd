package requirement

import (
	"math"

	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/seeddata"
	"github.com/orirando/seedgen/pkg/settings"
)

// Player bundles the owned-items state with the settings that modify its
// derived costs and maxima — the two inputs is_met is evaluated against,
// matching the source's Player<'settings> wrapper.
type Player struct {
	Inventory *inventory.Inventory
	Settings  *settings.WorldSettings
}

// NewPlayer pairs inv with settings.
func NewPlayer(inv *inventory.Inventory, ws *settings.WorldSettings) *Player {
	return &Player{Inventory: inv, Settings: ws}
}

// MaxOrbs returns the player's maximum health/energy.
func (p *Player) MaxOrbs() orbs.Orb {
	return p.Inventory.MaxOrbs()
}

// UseCost returns the energy cost of a single use of skill, after the
// world's energy modifier.
func (p *Player) UseCost(skill seeddata.Skill) float64 {
	return energyCostPerUse(skill) * p.Settings.EnergyModifier()
}

// DefenseModifier returns the multiplier applied to incoming damage.
func (p *Player) DefenseModifier() float64 {
	return p.Settings.DefenseModifier()
}

// DamagePerEnergy returns the weapon's damage-per-energy efficiency; melee
// weapons (Sword, Hammer) return +Inf since they cost no energy. The exact
// tuning is implementation-defined (see spec §4.3); this table is not
// reverse-engineered from a specific source file.
func DamagePerEnergy(weapon seeddata.Skill) float64 {
	switch weapon {
	case seeddata.SkillSword, seeddata.SkillHammer:
		return math.Inf(1)
	case seeddata.SkillBow:
		return 24
	case seeddata.SkillGrenade:
		return 16
	case seeddata.SkillShuriken:
		return 12
	case seeddata.SkillBlaze:
		return 10
	case seeddata.SkillFlash:
		return 8
	case seeddata.SkillSpear:
		return 6
	case seeddata.SkillSentry:
		return 5
	default:
		return 0
	}
}

func energyCostPerUse(skill seeddata.Skill) float64 {
	switch skill {
	case seeddata.SkillBow:
		return 0.5
	case seeddata.SkillGrenade:
		return 0.5
	case seeddata.SkillShuriken:
		return 0.5
	case seeddata.SkillBlaze:
		return 0.5
	case seeddata.SkillFlash:
		return 1
	case seeddata.SkillSpear:
		return 1
	case seeddata.SkillSentry:
		return 1
	case seeddata.SkillGrapple:
		return 0.5
	case seeddata.SkillBurrow:
		return 0.5
	default:
		return 0
	}
}

// DestroyCost returns the energy required to destroy a target of
// targetHP using weapon, or +Inf if the weapon cannot deal with the
// target at all (melee weapons always can, for 0 energy).
func DestroyCost(targetHP float64, weapon seeddata.Skill) float64 {
	dpe := DamagePerEnergy(weapon)
	if math.IsInf(dpe, 1) {
		return 0
	}
	if dpe <= 0 {
		return math.Inf(1)
	}
	return targetHP / dpe
}

// CheapestWeaponCost scans the owned weapons for the lowest energy cost
// able to deal targetHP of damage, returning (cost, weapon, ok).
func CheapestWeaponCost(owned []seeddata.Skill, targetHP float64) (float64, seeddata.Skill, bool) {
	best := math.Inf(1)
	var bestWeapon seeddata.Skill
	found := false
	for _, w := range owned {
		cost := DestroyCost(targetHP, w)
		if cost < best {
			best = cost
			bestWeapon = w
			found = true
		}
	}
	return best, bestWeapon, found
}
