// Package export serializes a generation run's SeedUniverse and spoiler
// to JSON, the machine-readable sibling of spoiler.Seed.String() — a
// seed packager or companion web tool consumes this instead of
// re-deriving placements from the spoiler log's text rendering.
package export
