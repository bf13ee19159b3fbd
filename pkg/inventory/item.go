package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orirando/seedgen/pkg/seeddata"
)

// Kind discriminates the placeable item variants. Item is a closed sum
// type: exactly one of the typed fields below is meaningful for a given
// Kind, mirroring the source's CommonItem enum.
type Kind int

const (
	KindSpiritLight Kind = iota
	KindGorlekOre
	KindKeystone
	KindShardSlot
	KindHealthFragment
	KindEnergyFragment
	KindCleanWater
	KindSkill
	KindShard
	KindTeleporter
	KindWeaponUpgrade
)

// Item is a single placeable unit in the item pool.
type Item struct {
	Kind          Kind
	Amount        int // SpiritLight grant size; ignored otherwise
	Skill         seeddata.Skill
	Shard         seeddata.Shard
	Teleporter    seeddata.Teleporter
	WeaponUpgrade seeddata.WeaponUpgrade
}

// SpiritLight constructs a spirit-light grant of n.
func SpiritLight(n int) Item { return Item{Kind: KindSpiritLight, Amount: n} }

// GorlekOre constructs a single gorlek-ore grant.
func GorlekOre() Item { return Item{Kind: KindGorlekOre, Amount: 1} }

// Keystone constructs a single keystone grant.
func Keystone() Item { return Item{Kind: KindKeystone, Amount: 1} }

// ShardSlotItem constructs a single shard-slot grant.
func ShardSlotItem() Item { return Item{Kind: KindShardSlot, Amount: 1} }

// HealthFragment constructs a single health-fragment grant.
func HealthFragment() Item { return Item{Kind: KindHealthFragment, Amount: 1} }

// EnergyFragment constructs a single energy-fragment grant.
func EnergyFragment() Item { return Item{Kind: KindEnergyFragment, Amount: 1} }

// CleanWater constructs the (boolean) clean-water grant.
func CleanWater() Item { return Item{Kind: KindCleanWater} }

// SkillItem constructs a skill grant.
func SkillItem(s seeddata.Skill) Item { return Item{Kind: KindSkill, Skill: s} }

// ShardItem constructs a shard grant.
func ShardItem(s seeddata.Shard) Item { return Item{Kind: KindShard, Shard: s} }

// TeleporterItem constructs a teleporter grant.
func TeleporterItem(t seeddata.Teleporter) Item { return Item{Kind: KindTeleporter, Teleporter: t} }

// WeaponUpgradeItem constructs a weapon-upgrade grant.
func WeaponUpgradeItem(w seeddata.WeaponUpgrade) Item {
	return Item{Kind: KindWeaponUpgrade, WeaponUpgrade: w}
}

// String renders the item's rando name, used for spoiler output and
// dedup-lookup keys.
func (it Item) String() string {
	switch it.Kind {
	case KindSpiritLight:
		return fmt.Sprintf("SpiritLight(%d)", it.Amount)
	case KindGorlekOre:
		return "GorlekOre"
	case KindKeystone:
		return "Keystone"
	case KindShardSlot:
		return "ShardSlot"
	case KindHealthFragment:
		return "HealthFragment"
	case KindEnergyFragment:
		return "EnergyFragment"
	case KindCleanWater:
		return "CleanWater"
	case KindSkill:
		return "Skill(" + it.Skill.String() + ")"
	case KindShard:
		return "Shard(" + it.Shard.String() + ")"
	case KindTeleporter:
		return "Teleporter(" + it.Teleporter.String() + ")"
	case KindWeaponUpgrade:
		return "WeaponUpgrade(" + it.WeaponUpgrade.String() + ")"
	default:
		return fmt.Sprintf("Item(kind=%d)", int(it.Kind))
	}
}

// Cost returns the weighting cost of an item, used by the pool's
// choose_random reroll and the scheduler's forced-progression weight
// formula. The table is replicated as-is from the source (weight.rs);
// it is a tuned set of magic numbers, not derived from anything else in
// this codebase.
func (it Item) Cost() float64 {
	switch it.Kind {
	case KindSpiritLight:
		return 1
	case KindGorlekOre:
		return 20
	case KindHealthFragment, KindEnergyFragment:
		return 120
	case KindCleanWater:
		return 1800
	case KindKeystone:
		return 320
	case KindWeaponUpgrade:
		return 400
	case KindShardSlot:
		return 480
	case KindShard:
		return 1000
	case KindTeleporter:
		return teleporterCost(it.Teleporter)
	case KindSkill:
		return skillCost(it.Skill)
	default:
		return 0
	}
}

// ParseItem parses an item's String() form back into an Item, the inverse
// of String. Used by collaborators that accept items by name over the
// wire (the reach-check HTTP endpoint, priority/plando placement files)
// rather than by the typed constructors.
func ParseItem(text string) (Item, error) {
	text = strings.TrimSpace(text)
	switch {
	case text == "GorlekOre":
		return GorlekOre(), nil
	case text == "Keystone":
		return Keystone(), nil
	case text == "ShardSlot":
		return ShardSlotItem(), nil
	case text == "HealthFragment":
		return HealthFragment(), nil
	case text == "EnergyFragment":
		return EnergyFragment(), nil
	case text == "CleanWater":
		return CleanWater(), nil
	}

	if inner, ok := cutWrapped(text, "SpiritLight"); ok {
		n, err := strconv.Atoi(inner)
		if err != nil {
			return Item{}, fmt.Errorf("inventory: invalid SpiritLight amount %q", inner)
		}
		return SpiritLight(n), nil
	}
	if inner, ok := cutWrapped(text, "Skill"); ok {
		s, ok := seeddata.ParseSkill(inner)
		if !ok {
			return Item{}, fmt.Errorf("inventory: unknown skill %q", inner)
		}
		return SkillItem(s), nil
	}
	if inner, ok := cutWrapped(text, "Shard"); ok {
		s, ok := seeddata.ParseShard(inner)
		if !ok {
			return Item{}, fmt.Errorf("inventory: unknown shard %q", inner)
		}
		return ShardItem(s), nil
	}
	if inner, ok := cutWrapped(text, "Teleporter"); ok {
		t, ok := seeddata.ParseTeleporter(inner)
		if !ok {
			return Item{}, fmt.Errorf("inventory: unknown teleporter %q", inner)
		}
		return TeleporterItem(t), nil
	}
	if inner, ok := cutWrapped(text, "WeaponUpgrade"); ok {
		w, ok := seeddata.ParseWeaponUpgrade(inner)
		if !ok {
			return Item{}, fmt.Errorf("inventory: unknown weapon upgrade %q", inner)
		}
		return WeaponUpgradeItem(w), nil
	}

	return Item{}, fmt.Errorf("inventory: unrecognized item %q", text)
}

// cutWrapped reports whether text is prefix + "(" + inner + ")" and, if so,
// returns inner.
func cutWrapped(text, prefix string) (string, bool) {
	if !strings.HasPrefix(text, prefix+"(") || !strings.HasSuffix(text, ")") {
		return "", false
	}
	return text[len(prefix)+1 : len(text)-1], true
}

func skillCost(s seeddata.Skill) float64 {
	switch s {
	case seeddata.SkillRegenerate, seeddata.SkillWaterBreath:
		return 200
	case seeddata.SkillDash, seeddata.SkillFlap:
		return 1200
	case seeddata.SkillGlide, seeddata.SkillGrapple:
		return 1400
	case seeddata.SkillSword, seeddata.SkillHammer, seeddata.SkillBow, seeddata.SkillShuriken:
		return 1600
	case seeddata.SkillBurrow, seeddata.SkillWaterDash, seeddata.SkillGrenade, seeddata.SkillFlash:
		return 1800
	case seeddata.SkillDoubleJump:
		return 2000
	case seeddata.SkillBlaze, seeddata.SkillSentry:
		return 2800
	case seeddata.SkillBash:
		return 3000
	case seeddata.SkillSpear:
		return 4000
	case seeddata.SkillLaunch:
		return 40000
	default:
		return 0
	}
}

func teleporterCost(t seeddata.Teleporter) float64 {
	if t == seeddata.TeleporterMarsh {
		return 30000
	}
	return 25000
}
