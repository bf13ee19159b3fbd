package settings

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/orirando/seedgen/pkg/seeddata"
)

// PresetDoc is the on-disk shape of a universe settings preset: plain
// strings and slices only, so viper's default mapstructure decoding (no
// custom hooks) handles it without help. Difficulty and Trick names are
// resolved against their String() forms on the way into WorldSettings,
// the same doc-then-convert split pkg/logicfile uses for graph YAML.
type PresetDoc struct {
	Seed   string           `mapstructure:"seed"`
	Worlds []WorldPresetDoc `mapstructure:"worlds"`
}

// SpawnDoc is a world preset's spawn rule: Kind is one of "set", "random"
// or "fully_random"; Identifier is meaningful only for "set".
type SpawnDoc struct {
	Kind       string `mapstructure:"kind"`
	Identifier string `mapstructure:"identifier"`
}

// WorldPresetDoc is one world's entry in a PresetDoc.
type WorldPresetDoc struct {
	Spawn         SpawnDoc                     `mapstructure:"spawn"`
	Difficulty    string                       `mapstructure:"difficulty"`
	Tricks        []string                     `mapstructure:"tricks"`
	Hard          bool                         `mapstructure:"hard"`
	Snippets      []string                     `mapstructure:"snippets"`
	SnippetConfig map[string]map[string]string `mapstructure:"snippet_config"`
}

// LoadPreset reads a universe settings preset from path, layering in
// SEEDGEN_-prefixed environment overrides the way cmd/seedgen's other
// config resolution does, and converts it into UniverseSettings.
func LoadPreset(path string) (*UniverseSettings, error) {
	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	vp.SetEnvPrefix("SEEDGEN")
	vp.AutomaticEnv()
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("settings: reading preset: %w", err)
	}

	var doc PresetDoc
	if err := vp.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("settings: decoding preset: %w", err)
	}
	return doc.toUniverseSettings()
}

func (doc *PresetDoc) toUniverseSettings() (*UniverseSettings, error) {
	if len(doc.Worlds) == 0 {
		return nil, fmt.Errorf("settings: preset names no worlds")
	}

	worlds := make([]*WorldSettings, len(doc.Worlds))
	for i, wd := range doc.Worlds {
		ws, err := wd.toWorldSettings()
		if err != nil {
			return nil, fmt.Errorf("settings: world %d: %w", i, err)
		}
		worlds[i] = ws
	}
	return &UniverseSettings{Seed: doc.Seed, WorldSettings: worlds}, nil
}

func (doc *WorldPresetDoc) toWorldSettings() (*WorldSettings, error) {
	ws := NewWorldSettings()
	ws.Hard = doc.Hard
	ws.Snippets = doc.Snippets
	if doc.SnippetConfig != nil {
		ws.SnippetConfig = doc.SnippetConfig
	}

	if doc.Difficulty != "" {
		d, ok := seeddata.ParseDifficulty(doc.Difficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q", doc.Difficulty)
		}
		ws.Difficulty = d
	}

	for _, name := range doc.Tricks {
		t, ok := seeddata.ParseTrick(name)
		if !ok {
			return nil, fmt.Errorf("unknown trick %q", name)
		}
		ws.Tricks[t] = true
	}

	if doc.Spawn.Kind != "" {
		spawn, err := parseSpawnDoc(doc.Spawn)
		if err != nil {
			return nil, err
		}
		ws.Spawn = spawn
	}
	return ws, nil
}

func parseSpawnDoc(doc SpawnDoc) (Spawn, error) {
	switch doc.Kind {
	case "set":
		if doc.Identifier == "" {
			return Spawn{}, fmt.Errorf("spawn kind %q requires an identifier", doc.Kind)
		}
		return Spawn{Kind: SpawnSet, Identifier: doc.Identifier}, nil
	case "random":
		return Spawn{Kind: SpawnRandom}, nil
	case "fully_random":
		return Spawn{Kind: SpawnFullyRandom}, nil
	default:
		return Spawn{}, fmt.Errorf("unknown spawn kind %q", doc.Kind)
	}
}
