package inventory

import (
	"testing"

	"github.com/orirando/seedgen/pkg/seeddata"
)

func TestSpawnInventory(t *testing.T) {
	inv := Spawn()
	if inv.MaxHealth() != 30 {
		t.Errorf("expected spawn max health 30, got %v", inv.MaxHealth())
	}
	if inv.MaxEnergy() != 3.0 {
		t.Errorf("expected spawn max energy 3.0, got %v", inv.MaxEnergy())
	}
	if inv.ShardSlots != 3 {
		t.Errorf("expected spawn shard slots 3, got %d", inv.ShardSlots)
	}
}

func TestMaxOrbsAppliesShardBonuses(t *testing.T) {
	inv := Spawn()
	inv.Shards[seeddata.ShardVitality] = true
	inv.Shards[seeddata.ShardEnergyOrb] = true

	max := inv.MaxOrbs()
	if max.Health != 40 {
		t.Errorf("expected Vitality shard to add 10 health, got %v", max.Health)
	}
	if max.Energy != 4 {
		t.Errorf("expected Energy shard to add 1 energy, got %v", max.Energy)
	}
}

func TestGrantAndRemoveRoundtrip(t *testing.T) {
	inv := New()
	inv.Grant(SkillItem(seeddata.SkillBash), 1)
	if !inv.Skills[seeddata.SkillBash] {
		t.Fatal("expected Bash to be granted")
	}
	inv.Remove(SkillItem(seeddata.SkillBash), 1)
	if inv.Skills[seeddata.SkillBash] {
		t.Fatal("expected Bash to be removed")
	}

	inv.Grant(GorlekOre(), 5)
	if inv.GorlekOre != 5 {
		t.Fatalf("expected 5 gorlek ore, got %d", inv.GorlekOre)
	}
	inv.Remove(GorlekOre(), 2)
	if inv.GorlekOre != 3 {
		t.Fatalf("expected 3 gorlek ore after removing 2, got %d", inv.GorlekOre)
	}
}

func TestGrantEnergyFragmentHalfPoints(t *testing.T) {
	inv := New()
	inv.Grant(EnergyFragment(), 3)
	if inv.Energy != 1.5 {
		t.Fatalf("expected 3 energy fragments to be 1.5, got %v", inv.Energy)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	inv := Spawn()
	clone := inv.Clone()
	clone.Grant(SkillItem(seeddata.SkillDash), 1)

	if inv.Skills[seeddata.SkillDash] {
		t.Fatal("mutating the clone mutated the original")
	}
	if !clone.Skills[seeddata.SkillDash] {
		t.Fatal("clone did not retain the grant")
	}
}

func TestOwnedWeaponsOrderMatchesPreference(t *testing.T) {
	inv := New()
	inv.Grant(SkillItem(seeddata.SkillBow), 1)
	inv.Grant(SkillItem(seeddata.SkillSword), 1)

	owned := inv.OwnedWeapons(seeddata.DifficultyMoki)
	if len(owned) != 2 || owned[0] != seeddata.SkillSword || owned[1] != seeddata.SkillBow {
		t.Fatalf("expected [Sword Bow] in preference order, got %v", owned)
	}
}

func TestOwnedWeaponsReorderedForUnsafe(t *testing.T) {
	inv := New()
	inv.Grant(SkillItem(seeddata.SkillBow), 1)
	inv.Grant(SkillItem(seeddata.SkillSpear), 1)

	owned := inv.OwnedWeapons(seeddata.DifficultyUnsafe)
	if len(owned) != 2 || owned[0] != seeddata.SkillSpear {
		t.Fatalf("expected Spear preferred first on Unsafe, got %v", owned)
	}
}

func TestItemCostTableSpotChecks(t *testing.T) {
	cases := []struct {
		item Item
		want float64
	}{
		{SpiritLight(1), 1},
		{GorlekOre(), 20},
		{HealthFragment(), 120},
		{EnergyFragment(), 120},
		{Keystone(), 320},
		{WeaponUpgradeItem(seeddata.WeaponUpgradeRapidSword), 400},
		{ShardSlotItem(), 480},
		{ShardItem(seeddata.ShardVitality), 1000},
		{SkillItem(seeddata.SkillDoubleJump), 2000},
		{SkillItem(seeddata.SkillBash), 3000},
		{SkillItem(seeddata.SkillSpear), 4000},
		{TeleporterItem(seeddata.TeleporterMarsh), 30000},
		{TeleporterItem(seeddata.TeleporterGlades), 25000},
		{SkillItem(seeddata.SkillLaunch), 40000},
	}
	for _, c := range cases {
		if got := c.item.Cost(); got != c.want {
			t.Errorf("%v.Cost() = %v, want %v", c.item, got, c.want)
		}
	}
}
