package main

import "testing"

func TestStringSliceAccumulatesRepeatedValues(t *testing.T) {
	var s stringSlice
	if err := s.Set("Skill(Bash)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set("Shard(Magnet)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 2 || s[0] != "Skill(Bash)" || s[1] != "Shard(Magnet)" {
		t.Fatalf("unexpected accumulated values: %v", s)
	}
}

func TestResolveUniverseSettingsDefaultsWithoutAPresetFile(t *testing.T) {
	universe, err := resolveUniverseSettings("", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if universe.Seed != "seedgen-default" {
		t.Fatalf("expected default seed, got %q", universe.Seed)
	}
	if len(universe.WorldSettings) != 3 {
		t.Fatalf("expected 3 world settings, got %d", len(universe.WorldSettings))
	}
}
