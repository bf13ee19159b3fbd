// Package settings holds the per-universe and per-world configuration the
// core is handed by its caller: difficulty, tricks, spawn rule and the
// snippet/seed metadata needed to reproduce a generation run.
package settings

import "github.com/orirando/seedgen/pkg/seeddata"

// SpawnKind discriminates how a world's spawn anchor is chosen.
type SpawnKind int

const (
	// SpawnSet pins spawn to a specific node identifier.
	SpawnSet SpawnKind = iota
	// SpawnRandom picks among a curated, difficulty-appropriate list.
	SpawnRandom
	// SpawnFullyRandom picks any node marked CanSpawn.
	SpawnFullyRandom
)

// Spawn describes a world's spawn rule.
type Spawn struct {
	Kind       SpawnKind
	Identifier string // meaningful only when Kind == SpawnSet
}

// WorldSettings configures a single world's generation.
type WorldSettings struct {
	Spawn      Spawn
	Difficulty seeddata.Difficulty
	Tricks     map[seeddata.Trick]bool
	Hard       bool

	// Snippets names headers to compile into this world; SnippetConfig
	// carries per-snippet string key/value configuration. The core treats
	// both opaquely — the generator collaborator resolves them before the
	// scheduler runs (see pkg/assets).
	Snippets      []string
	SnippetConfig map[string]map[string]string
}

// NewWorldSettings returns WorldSettings defaulted to Moki difficulty, a
// spawn set to MarshSpawn.Main and no tricks, matching the source's
// `WorldSettings::default()`.
func NewWorldSettings() *WorldSettings {
	return &WorldSettings{
		Spawn:         Spawn{Kind: SpawnSet, Identifier: "MarshSpawn.Main"},
		Difficulty:    seeddata.DifficultyMoki,
		Tricks:        make(map[seeddata.Trick]bool),
		SnippetConfig: make(map[string]map[string]string),
	}
}

// HasTrick reports whether trick t is enabled for this world.
func (w *WorldSettings) HasTrick(t seeddata.Trick) bool {
	return w.Tricks[t]
}

// EnergyModifier returns the multiplier applied to skill energy costs.
// Hard mode doubles effective cost; nothing else currently adjusts it.
func (w *WorldSettings) EnergyModifier() float64 {
	if w.Hard {
		return 2.0
	}
	return 1.0
}

// DefenseModifier returns the multiplier applied to incoming damage.
// Hard mode doubles damage taken.
func (w *WorldSettings) DefenseModifier() float64 {
	if w.Hard {
		return 2.0
	}
	return 1.0
}

// UniverseSettings is the top-level input describing every world
// participating in one generation run.
type UniverseSettings struct {
	Seed          string
	WorldSettings []*WorldSettings
}
