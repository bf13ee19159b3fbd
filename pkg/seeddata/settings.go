package seeddata

import "fmt"

// Difficulty selects the logical ruleset a world's reachability is judged
// against. Each tier is a strict superset of the previous tier's logic.
type Difficulty int

const (
	DifficultyMoki Difficulty = iota
	DifficultyGorlek
	DifficultyKii
	DifficultyUnsafe
)

// String returns the settings-file name of a Difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyMoki:
		return "Moki"
	case DifficultyGorlek:
		return "Gorlek"
	case DifficultyKii:
		return "Kii"
	case DifficultyUnsafe:
		return "Unsafe"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// AtLeast reports whether d is at least as permissive as other.
func (d Difficulty) AtLeast(other Difficulty) bool {
	return d >= other
}

// ParseDifficulty looks up a Difficulty by its settings-file name, the
// inverse of String.
func ParseDifficulty(name string) (Difficulty, bool) {
	for d := DifficultyMoki; d <= DifficultyUnsafe; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Trick identifies an optional logic trick a world's settings may enable
// independently of its base Difficulty.
type Trick int

const (
	TrickSwordSentryJump Trick = iota
	TrickHammerSentryJump
	TrickShurikenBreak
	TrickSentryBreak
	TrickHammerBreak
	TrickSpearBreak
	TrickSentryBurn
	TrickRemoveKillPlane
	TrickLaunchSwap
	TrickSentrySwap
	TrickFlashSwap
	TrickBlazeSwap
	TrickWaveDash
	TrickGrenadeJump
	TrickHammerJump
	TrickSwordJump
	TrickGrenadeRedirect
	TrickSentryRedirect
	TrickPauseHover
	TrickGlideJump
	TrickGlideHammerJump
	TrickSpearJump
)

// String returns the settings-file name of a Trick.
func (t Trick) String() string {
	switch t {
	case TrickSwordSentryJump:
		return "SwordSentryJump"
	case TrickHammerSentryJump:
		return "HammerSentryJump"
	case TrickShurikenBreak:
		return "ShurikenBreak"
	case TrickSentryBreak:
		return "SentryBreak"
	case TrickHammerBreak:
		return "HammerBreak"
	case TrickSpearBreak:
		return "SpearBreak"
	case TrickSentryBurn:
		return "SentryBurn"
	case TrickRemoveKillPlane:
		return "RemoveKillPlane"
	case TrickLaunchSwap:
		return "LaunchSwap"
	case TrickSentrySwap:
		return "SentrySwap"
	case TrickFlashSwap:
		return "FlashSwap"
	case TrickBlazeSwap:
		return "BlazeSwap"
	case TrickWaveDash:
		return "WaveDash"
	case TrickGrenadeJump:
		return "GrenadeJump"
	case TrickHammerJump:
		return "HammerJump"
	case TrickSwordJump:
		return "SwordJump"
	case TrickGrenadeRedirect:
		return "GrenadeRedirect"
	case TrickSentryRedirect:
		return "SentryRedirect"
	case TrickPauseHover:
		return "PauseHover"
	case TrickGlideJump:
		return "GlideJump"
	case TrickGlideHammerJump:
		return "GlideHammerJump"
	case TrickSpearJump:
		return "SpearJump"
	default:
		return fmt.Sprintf("Trick(%d)", int(t))
	}
}

// ParseTrick looks up a Trick by its settings-file name, the inverse of
// String.
func ParseTrick(name string) (Trick, bool) {
	for t := TrickSwordSentryJump; t <= TrickSpearJump; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Enemy identifies a combat opponent the Combat requirement may reference.
type Enemy int

const (
	EnemyMantis Enemy = iota
	EnemySlug
	EnemyWeakSlug
	EnemyBee
	EnemySmallSkeeto
	EnemySkeeto
	EnemySmallStompingSpider
	EnemyStompingSpider
	EnemySneezeSlug
	EnemyShieldSlug
	EnemyShieldMiner
	EnemySpinSlug
	EnemySpinMiner
	EnemySneezeMiner
	EnemySlimeMiner
	EnemySmallAerialSkeeto
	EnemyAerialSkeeto
	EnemyEnergyRefill
	EnemyHornBug
	EnemyBat
	EnemyLizard
	EnemyLizardRanged
	EnemyMiner
	EnemySandWorm
	EnemyBalloon
	EnemySandstormSlug
	EnemyTentacle
)

// String returns the logic name of an Enemy.
func (e Enemy) String() string {
	switch e {
	case EnemyMantis:
		return "Mantis"
	case EnemySlug:
		return "Slug"
	case EnemyWeakSlug:
		return "WeakSlug"
	case EnemyBee:
		return "Bee"
	case EnemySmallSkeeto:
		return "SmallSkeeto"
	case EnemySkeeto:
		return "Skeeto"
	case EnemySmallStompingSpider:
		return "SmallStompingSpider"
	case EnemyStompingSpider:
		return "StompingSpider"
	case EnemySneezeSlug:
		return "SneezeSlug"
	case EnemyShieldSlug:
		return "ShieldSlug"
	case EnemyShieldMiner:
		return "ShieldMiner"
	case EnemySpinSlug:
		return "SpinSlug"
	case EnemySpinMiner:
		return "SpinMiner"
	case EnemySneezeMiner:
		return "SneezeMiner"
	case EnemySlimeMiner:
		return "SlimeMiner"
	case EnemySmallAerialSkeeto:
		return "SmallAerialSkeeto"
	case EnemyAerialSkeeto:
		return "AerialSkeeto"
	case EnemyEnergyRefill:
		return "EnergyRefill"
	case EnemyHornBug:
		return "HornBug"
	case EnemyBat:
		return "Bat"
	case EnemyLizard:
		return "Lizard"
	case EnemyLizardRanged:
		return "LizardRanged"
	case EnemyMiner:
		return "Miner"
	case EnemySandWorm:
		return "SandWorm"
	case EnemyBalloon:
		return "Balloon"
	case EnemySandstormSlug:
		return "SandstormSlug"
	case EnemyTentacle:
		return "Tentacle"
	default:
		return fmt.Sprintf("Enemy(%d)", int(e))
	}
}

// Stats describes one enemy kind's combat-relevant attributes. Values are
// indicative of the source logic data, not tuned against a live game.
type Stats struct {
	Health    float64
	Shielded  bool
	Armored   bool
	Aerial    bool
	Flying    bool
	Ranged    bool // requires an owned ranged weapon
	Dangerous bool
	Touch     float64 // contact damage, used when Dangerous
}

// EnemyTable maps each Enemy to its Stats. EnergyRefill is not a damage
// target: the combat solver special-cases it to restore energy instead of
// consuming a weapon assignment.
var EnemyTable = map[Enemy]Stats{
	EnemyMantis:              {Health: 40},
	EnemySlug:                {Health: 16},
	EnemyWeakSlug:            {Health: 8},
	EnemyBee:                 {Health: 16, Flying: true},
	EnemySmallSkeeto:         {Health: 8, Flying: true},
	EnemySkeeto:              {Health: 24, Flying: true},
	EnemySmallStompingSpider: {Health: 12},
	EnemyStompingSpider:      {Health: 32},
	EnemySneezeSlug:          {Health: 20, Ranged: true},
	EnemyShieldSlug:          {Health: 24, Shielded: true},
	EnemyShieldMiner:         {Health: 40, Shielded: true},
	EnemySpinSlug:            {Health: 20},
	EnemySpinMiner:           {Health: 48},
	EnemySneezeMiner:         {Health: 40, Ranged: true},
	EnemySlimeMiner:          {Health: 60, Armored: true},
	EnemySmallAerialSkeeto:   {Health: 8, Flying: true, Aerial: true},
	EnemyAerialSkeeto:        {Health: 24, Flying: true, Aerial: true},
	EnemyEnergyRefill:        {Health: 0},
	EnemyHornBug:             {Health: 80, Armored: true, Dangerous: true, Touch: 16},
	EnemyBat:                 {Health: 16, Flying: true, Aerial: true},
	EnemyLizard:              {Health: 48, Dangerous: true, Touch: 12},
	EnemyLizardRanged:        {Health: 48, Ranged: true, Dangerous: true, Touch: 12},
	EnemyMiner:               {Health: 40},
	EnemySandWorm:            {Health: 100, Dangerous: true, Touch: 24},
	EnemyBalloon:             {Health: 1},
	EnemySandstormSlug:       {Health: 32, Dangerous: true, Touch: 16},
	EnemyTentacle:            {Health: 80, Ranged: true, Dangerous: true, Touch: 20},
}
