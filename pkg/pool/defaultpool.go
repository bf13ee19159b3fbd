package pool

import (
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/seeddata"
)

// progressionSkills and progressionShards give every skill/shard exactly
// one copy in the default pool, matching the series' one-per-world
// baseline. The exact default pool/inventory composition is a tuned
// table in the original source that was not available to ground this
// against line-for-line; this reconstruction guarantees one copy of
// every skill, shard, teleporter and weapon upgrade, then pads with
// spirit light and resource fragments to reach the target pickup count.
var progressionSkills = []seeddata.Skill{
	seeddata.SkillBash, seeddata.SkillDoubleJump, seeddata.SkillLaunch,
	seeddata.SkillGlide, seeddata.SkillWaterBreath, seeddata.SkillGrapple,
	seeddata.SkillFlap, seeddata.SkillDash, seeddata.SkillBurrow,
	seeddata.SkillWaterDash, seeddata.SkillRegenerate,
	seeddata.SkillSword, seeddata.SkillHammer, seeddata.SkillBow,
	seeddata.SkillGrenade, seeddata.SkillShuriken, seeddata.SkillBlaze,
	seeddata.SkillFlash, seeddata.SkillSpear, seeddata.SkillSentry,
	seeddata.SkillLight,
}

var allShards = []seeddata.Shard{
	seeddata.ShardOverflow, seeddata.ShardTripleJump, seeddata.ShardWingclip,
	seeddata.ShardBounty, seeddata.ShardSwap, seeddata.ShardMagnet,
	seeddata.ShardSplinter, seeddata.ShardReckless, seeddata.ShardQuickshot,
	seeddata.ShardResilience, seeddata.ShardSpiritLightHarvest, seeddata.ShardVitality,
	seeddata.ShardLifeHarvest, seeddata.ShardEnergyHarvest, seeddata.ShardEnergyOrb,
	seeddata.ShardLifePact, seeddata.ShardSense, seeddata.ShardUltraBash,
	seeddata.ShardUltraLeap, seeddata.ShardOverchargeShard, seeddata.ShardTripleDash,
	seeddata.ShardSpikeShard, seeddata.ShardLifeforceShard, seeddata.ShardDeflecting,
	seeddata.ShardFracture, seeddata.ShardArcing,
}

var allTeleporters = []seeddata.Teleporter{
	seeddata.TeleporterMarsh, seeddata.TeleporterDen, seeddata.TeleporterHollow,
	seeddata.TeleporterGlades, seeddata.TeleporterWellspring, seeddata.TeleporterBurrows,
	seeddata.TeleporterWoods, seeddata.TeleporterReach, seeddata.TeleporterDepths,
	seeddata.TeleporterPools, seeddata.TeleporterWastes, seeddata.TeleporterRuins,
	seeddata.TeleporterWillow, seeddata.TeleporterShriek,
}

var allWeaponUpgrades = []seeddata.WeaponUpgrade{
	seeddata.WeaponUpgradeRapidSword, seeddata.WeaponUpgradeRapidHammer,
	seeddata.WeaponUpgradeRapidSpear, seeddata.WeaponUpgradeRapidShuriken,
	seeddata.WeaponUpgradeChargeSword, seeddata.WeaponUpgradeChargeBlaze,
	seeddata.WeaponUpgradeChargeBlazeEfficiency, seeddata.WeaponUpgradeConservingShuriken,
}

// DefaultPool builds the shrinking pool for a single world with exactly
// pickupCount placeable copies: one of every skill/shard/teleporter/weapon
// upgrade, then filler spirit light and fragments padding the remainder.
func DefaultPool(pickupCount int) *Pool {
	var baseline []inventory.Item
	for _, s := range progressionSkills {
		baseline = append(baseline, inventory.SkillItem(s))
	}
	for _, s := range allShards {
		baseline = append(baseline, inventory.ShardItem(s))
	}
	for _, t := range allTeleporters {
		baseline = append(baseline, inventory.TeleporterItem(t))
	}
	for _, w := range allWeaponUpgrades {
		baseline = append(baseline, inventory.WeaponUpgradeItem(w))
	}
	baseline = append(baseline, inventory.CleanWater(), inventory.ShardSlotItem())

	p := New()
	for i, item := range baseline {
		if i >= pickupCount {
			break
		}
		p.Change(item, 1)
	}

	remaining := pickupCount - p.Len()
	if remaining <= 0 {
		return p
	}

	// Pad with a mix of health fragments, energy fragments, gorlek ore
	// and spirit light so every remaining slot has exactly one filler.
	fillers := []inventory.Item{
		inventory.HealthFragment(),
		inventory.EnergyFragment(),
		inventory.GorlekOre(),
		inventory.SpiritLight(100),
	}
	for i := 0; i < remaining; i++ {
		p.Change(fillers[i%len(fillers)], 1)
	}
	return p
}
