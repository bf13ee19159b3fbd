// Command seedgen is the CLI entry point: a generate subcommand producing
// a SeedUniverse + spoiler, and a reach-check subcommand for a single-world
// reachability query against a saved inventory, mirroring the source CLI's
// seed.rs/reach_check.rs split. Flag handling follows dungo's
// cmd/dungeongen/main.go; layered config resolution (preset file, env,
// flags) is delegated to pkg/settings.LoadPreset, which uses viper.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/orirando/seedgen/internal/genlog"
	"github.com/orirando/seedgen/pkg/export"
	"github.com/orirando/seedgen/pkg/generator"
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/logicfile"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/reach"
	"github.com/orirando/seedgen/pkg/settings"
	"github.com/orirando/seedgen/pkg/validation"
	"github.com/orirando/seedgen/pkg/world"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "reach-check":
		err = runReachCheck(os.Args[2:])
	case "-version", "--version", "version":
		fmt.Printf("seedgen version %s\n", version)
		return
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown subcommand %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: seedgen <generate|reach-check> [flags]")
	fmt.Fprintln(os.Stderr, "  generate     -logic <dir> -config <preset.yaml> [-seed <override>] [-verbose] [-validate] [-json <path>]")
	fmt.Fprintln(os.Stderr, "  reach-check  -logic <file> -spawn <identifier> [-item <name> ...]")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	logicDir := fs.String("logic", "", "directory of per-world logic YAML files (required)")
	configPath := fs.String("config", "", "path to a universe settings preset file")
	seedOverride := fs.String("seed", "", "override the preset's seed")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	validate := fs.Bool("validate", false, "re-check completeness, reachability and keystone locality after generating")
	jsonOut := fs.String("json", "", "also write the SeedUniverse as indented JSON to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *logicDir == "" {
		return fmt.Errorf("-logic is required")
	}
	if *verbose {
		genlog.SetLogger(genlog.Default())
	}

	graphs, err := logicfile.LoadDirectory(*logicDir)
	if err != nil {
		return fmt.Errorf("loading logic files: %w", err)
	}
	if len(graphs) == 0 {
		return fmt.Errorf("no logic files found in %s", *logicDir)
	}

	universe, err := resolveUniverseSettings(*configPath, len(graphs))
	if err != nil {
		return fmt.Errorf("resolving settings: %w", err)
	}
	if *seedOverride != "" {
		universe.Seed = *seedOverride
	}

	cfg := &generator.Config{Graphs: graphs, Universe: universe}
	result, err := generator.Generate(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if *validate {
		report, err := validation.NewValidator().Validate(context.Background(), result, graphs, universe)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprint(os.Stderr, validation.Summary(report))
		if !report.Passed {
			return fmt.Errorf("generated universe failed validation")
		}
	}

	if *jsonOut != "" {
		if err := export.SaveJSONToFile(result, *jsonOut); err != nil {
			return fmt.Errorf("writing json output: %w", err)
		}
	}

	fmt.Print(result.Spoiler.String())
	return nil
}

// stringSlice accumulates repeated -item flags.
type stringSlice []string

func (s *stringSlice) String() string     { return fmt.Sprint(*s) }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

func runReachCheck(args []string) error {
	fs := flag.NewFlagSet("reach-check", flag.ExitOnError)
	logicPath := fs.String("logic", "", "path to a logic YAML file (required)")
	spawnID := fs.String("spawn", "", "spawn node identifier to start from (required)")
	var items stringSlice
	fs.Var(&items, "item", "an owned item by its String() name, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *logicPath == "" || *spawnID == "" {
		return fmt.Errorf("-logic and -spawn are required")
	}

	g, _, err := logicfile.Load(*logicPath)
	if err != nil {
		return fmt.Errorf("loading logic file: %w", err)
	}
	spawnIdx := g.Index(*spawnID)
	if spawnIdx < 0 {
		return fmt.Errorf("spawn identifier %q not found", *spawnID)
	}

	ws := settings.NewWorldSettings()
	w := world.New(g, ws)
	for _, name := range items {
		it, err := inventory.ParseItem(name)
		if err != nil {
			return err
		}
		w.Inventory.Grant(it, 1)
	}

	res := reach.Reach(g, w, spawnIdx, orbs.New(w.Inventory.MaxOrbs()), false)
	for _, idx := range res.Reached {
		fmt.Println(g.Nodes[idx].Identifier)
	}
	return nil
}

func resolveUniverseSettings(path string, worldCount int) (*settings.UniverseSettings, error) {
	if path == "" {
		worlds := make([]*settings.WorldSettings, worldCount)
		for i := range worlds {
			worlds[i] = settings.NewWorldSettings()
		}
		return &settings.UniverseSettings{Seed: "seedgen-default", WorldSettings: worlds}, nil
	}
	return settings.LoadPreset(path)
}
