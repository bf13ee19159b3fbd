// Package inventory models the owned-items state of a single world: skills,
// shards, teleporters, weapon upgrades, resource counts and the maxima
// derived from them. It has no notion of the graph or requirements; those
// live in pkg/requirement and pkg/world.
package inventory

import (
	"fmt"
	"sort"

	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/seeddata"
)

// Inventory is the owned-items state of one world, mirrored by the item
// pool's shadow copy and grown monotonically across a scheduler attempt.
type Inventory struct {
	SpiritLight   int
	GorlekOre     int
	Keystones     int
	ShardSlots    int
	Health        int     // fragments; base max health is Health*5
	Energy        float64 // base max energy; each energy fragment adds 0.5
	CleanWater    bool
	Skills        map[seeddata.Skill]bool
	Shards        map[seeddata.Shard]bool
	Teleporters   map[seeddata.Teleporter]bool
	WeaponUpgrade map[seeddata.WeaponUpgrade]bool
}

// New returns an empty Inventory with initialized sets, no starting
// resources (per Player::new in the source: use Spawn for the in-game
// starting state).
func New() *Inventory {
	return &Inventory{
		Skills:        make(map[seeddata.Skill]bool),
		Shards:        make(map[seeddata.Shard]bool),
		Teleporters:   make(map[seeddata.Teleporter]bool),
		WeaponUpgrade: make(map[seeddata.WeaponUpgrade]bool),
	}
}

// Spawn returns the Inventory a freshly spawned player has in-game: six
// health fragments, six energy fragments, three shard slots.
func Spawn() *Inventory {
	inv := New()
	inv.Health = 6
	inv.Energy = 3.0
	inv.ShardSlots = 3
	return inv
}

// Clone returns a deep copy of inv.
func (inv *Inventory) Clone() *Inventory {
	c := &Inventory{
		SpiritLight: inv.SpiritLight,
		GorlekOre:   inv.GorlekOre,
		Keystones:   inv.Keystones,
		ShardSlots:  inv.ShardSlots,
		Health:      inv.Health,
		Energy:      inv.Energy,
		CleanWater:  inv.CleanWater,
	}
	c.Skills = make(map[seeddata.Skill]bool, len(inv.Skills))
	for k, v := range inv.Skills {
		c.Skills[k] = v
	}
	c.Shards = make(map[seeddata.Shard]bool, len(inv.Shards))
	for k, v := range inv.Shards {
		c.Shards[k] = v
	}
	c.Teleporters = make(map[seeddata.Teleporter]bool, len(inv.Teleporters))
	for k, v := range inv.Teleporters {
		c.Teleporters[k] = v
	}
	c.WeaponUpgrade = make(map[seeddata.WeaponUpgrade]bool, len(inv.WeaponUpgrade))
	for k, v := range inv.WeaponUpgrade {
		c.WeaponUpgrade[k] = v
	}
	return c
}

// MaxHealth returns the base max health (fragments*5), before any shard
// bonus; shard bonuses are applied by MaxOrbs.
func (inv *Inventory) MaxHealth() float64 {
	return float64(inv.Health) * 5
}

// MaxEnergy returns the base max energy (0.5 per energy fragment), before
// any shard bonus.
func (inv *Inventory) MaxEnergy() float64 {
	return inv.Energy
}

// MaxOrbs returns the maximum (health, energy) given any owned Vitality
// and Energy shards. Gorlek-and-above difficulties apply the shard bonus
// in-game; Moki does not grant the Vitality/Energy shard pickups at all
// but the bonus still applies if one is somehow owned, matching the
// source's unconditional application.
func (inv *Inventory) MaxOrbs() orbs.Orb {
	health := inv.MaxHealth()
	energy := inv.MaxEnergy()
	if inv.Shards[seeddata.ShardVitality] {
		health += 10
	}
	if inv.Shards[seeddata.ShardEnergyOrb] {
		energy += 1
	}
	return orbs.Orb{Health: health, Energy: energy}
}

// CapOrbs clamps o to the inventory's maxima, in place.
func (inv *Inventory) CapOrbs(o *orbs.Orb) {
	max := inv.MaxOrbs()
	if o.Health > max.Health {
		o.Health = max.Health
	}
	if o.Energy > max.Energy {
		o.Energy = max.Energy
	}
}

// Grant adds n copies of an owned flag/count item to the inventory. Skills,
// shards, teleporters and weapon upgrades are booleans so n beyond 1 has no
// further effect; counts accumulate.
func (inv *Inventory) Grant(item Item, n int) {
	if n == 0 {
		return
	}
	switch item.Kind {
	case KindSpiritLight:
		inv.SpiritLight += item.Amount * n
	case KindGorlekOre:
		inv.GorlekOre += n
	case KindKeystone:
		inv.Keystones += n
	case KindShardSlot:
		inv.ShardSlots += n
	case KindHealthFragment:
		inv.Health += n
	case KindEnergyFragment:
		inv.Energy += 0.5 * float64(n)
	case KindCleanWater:
		inv.CleanWater = true
	case KindSkill:
		inv.Skills[item.Skill] = true
	case KindShard:
		inv.Shards[item.Shard] = true
	case KindTeleporter:
		inv.Teleporters[item.Teleporter] = true
	case KindWeaponUpgrade:
		inv.WeaponUpgrade[item.WeaponUpgrade] = true
	}
}

// Remove undoes n grants of item. Flags are cleared unconditionally (n is
// expected to be 1 for flag items); counts are decremented and floored at
// zero.
func (inv *Inventory) Remove(item Item, n int) {
	if n == 0 {
		return
	}
	switch item.Kind {
	case KindSpiritLight:
		inv.SpiritLight -= item.Amount * n
	case KindGorlekOre:
		inv.GorlekOre -= n
	case KindKeystone:
		inv.Keystones -= n
	case KindShardSlot:
		inv.ShardSlots -= n
	case KindHealthFragment:
		inv.Health -= n
	case KindEnergyFragment:
		inv.Energy -= 0.5 * float64(n)
	case KindCleanWater:
		inv.CleanWater = false
	case KindSkill:
		delete(inv.Skills, item.Skill)
	case KindShard:
		delete(inv.Shards, item.Shard)
	case KindTeleporter:
		delete(inv.Teleporters, item.Teleporter)
	case KindWeaponUpgrade:
		delete(inv.WeaponUpgrade, item.WeaponUpgrade)
	}
}

// OwnedWeapons returns the progression weapons the inventory currently has,
// in the source's preferred order (Sword > Hammer > Bow > Grenade >
// Shuriken > Blaze > Flash > Spear > Sentry), reordered for Unsafe
// difficulty per weaponPreference.
func (inv *Inventory) OwnedWeapons(difficulty seeddata.Difficulty) []seeddata.Skill {
	order := weaponPreference(difficulty)
	owned := make([]seeddata.Skill, 0, len(order))
	for _, s := range order {
		if inv.Skills[s] {
			owned = append(owned, s)
		}
	}
	return owned
}

func weaponPreference(difficulty seeddata.Difficulty) []seeddata.Skill {
	base := []seeddata.Skill{
		seeddata.SkillSword, seeddata.SkillHammer, seeddata.SkillBow,
		seeddata.SkillGrenade, seeddata.SkillShuriken, seeddata.SkillBlaze,
		seeddata.SkillFlash, seeddata.SkillSpear, seeddata.SkillSentry,
	}
	if difficulty != seeddata.DifficultyUnsafe {
		return base
	}
	// Unsafe favors cheaper, riskier weapons first.
	return []seeddata.Skill{
		seeddata.SkillSpear, seeddata.SkillShuriken, seeddata.SkillSword,
		seeddata.SkillHammer, seeddata.SkillBow, seeddata.SkillGrenade,
		seeddata.SkillBlaze, seeddata.SkillFlash, seeddata.SkillSentry,
	}
}

// String renders the inventory for debug and spoiler-log purposes; the
// output is a stable, sorted summary, never used as a cache key.
func (inv *Inventory) String() string {
	var skills []string
	for s := range inv.Skills {
		skills = append(skills, s.String())
	}
	sort.Strings(skills)
	return fmt.Sprintf("Inventory{health=%d energy=%.1f spiritLight=%d ore=%d keystones=%d skills=%v}",
		inv.Health, inv.Energy, inv.SpiritLight, inv.GorlekOre, inv.Keystones, skills)
}
