// Package validation re-runs the testable properties of §8 against an
// already-generated SeedUniverse: completeness of placement, reachability
// of every spoiler group from its prefix inventory, and keystone locality.
// It is a post-generation sanity pass, not part of the scheduler itself —
// the same split dungo's validation package draws between DefaultGenerator
// (Stage 4) and DefaultValidator (Stage 5), adapted from room/connector
// constraints to placement/reachability constraints.
//
// # Hard constraints
//
//   - Completeness: every pickup node across every world is assigned
//     exactly one item, and the placement count matches the pickup count.
//   - Reachability: each spoiler group's placements are reachable from
//     spawn under the prefix inventory built from every earlier group.
//   - Keystone locality: no forced-progression group places more
//     keystones than the costliest keystone-gated door in its world.
//
// # Usage
//
//	report, err := validation.NewValidator().Validate(ctx, universe, graphs, cfg.Universe)
//	if !report.Passed {
//	    log.Printf("validation failed: %v", report.Errors)
//	}
package validation
