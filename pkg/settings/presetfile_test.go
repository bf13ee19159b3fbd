package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orirando/seedgen/pkg/seeddata"
	"github.com/orirando/seedgen/pkg/settings"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadPresetDecodesWorldsAndDifficultyAndTricks(t *testing.T) {
	path := writePreset(t, `
seed: my-seed
worlds:
  - spawn:
      kind: set
      identifier: MarshSpawn.Main
    difficulty: Gorlek
    tricks:
      - WaveDash
      - HammerJump
    hard: true
  - spawn:
      kind: fully_random
    difficulty: Moki
`)

	universe, err := settings.LoadPreset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if universe.Seed != "my-seed" {
		t.Fatalf("expected seed %q, got %q", "my-seed", universe.Seed)
	}
	if len(universe.WorldSettings) != 2 {
		t.Fatalf("expected 2 worlds, got %d", len(universe.WorldSettings))
	}

	w0 := universe.WorldSettings[0]
	if w0.Difficulty != seeddata.DifficultyGorlek {
		t.Errorf("expected Gorlek difficulty, got %v", w0.Difficulty)
	}
	if !w0.HasTrick(seeddata.TrickWaveDash) || !w0.HasTrick(seeddata.TrickHammerJump) {
		t.Errorf("expected both tricks enabled, got %+v", w0.Tricks)
	}
	if !w0.Hard {
		t.Error("expected hard mode enabled")
	}
	if w0.Spawn.Kind != settings.SpawnSet || w0.Spawn.Identifier != "MarshSpawn.Main" {
		t.Errorf("unexpected spawn rule: %+v", w0.Spawn)
	}

	w1 := universe.WorldSettings[1]
	if w1.Spawn.Kind != settings.SpawnFullyRandom {
		t.Errorf("expected fully random spawn, got %+v", w1.Spawn)
	}
}

func TestLoadPresetRejectsUnknownDifficulty(t *testing.T) {
	path := writePreset(t, `
seed: bad-seed
worlds:
  - difficulty: NotARealDifficulty
`)
	if _, err := settings.LoadPreset(path); err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}

func TestLoadPresetRejectsUnknownTrick(t *testing.T) {
	path := writePreset(t, `
worlds:
  - tricks:
      - NotARealTrick
`)
	if _, err := settings.LoadPreset(path); err == nil {
		t.Fatal("expected an error for an unknown trick")
	}
}

func TestLoadPresetRejectsNoWorlds(t *testing.T) {
	path := writePreset(t, "seed: empty-seed\n")
	if _, err := settings.LoadPreset(path); err == nil {
		t.Fatal("expected an error when the preset names no worlds")
	}
}
