package validation

import (
	"context"
	"fmt"

	"github.com/orirando/seedgen/pkg/generator"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/settings"
	"github.com/orirando/seedgen/pkg/spoiler"
)

// Validator checks a generated SeedUniverse against §8's testable
// properties, matching the decoupled Validator-as-collaborator shape
// dungo's DefaultGenerator/DefaultValidator split uses.
type Validator interface {
	Validate(ctx context.Context, universe *generator.SeedUniverse, graphs []*logic.Graph, uniSettings *settings.UniverseSettings) (*Report, error)
}

// DefaultValidator implements Validator with every check this package
// knows: completeness, reachability-from-prefix, and keystone locality.
type DefaultValidator struct{}

// NewValidator returns a Validator with the default check set.
func NewValidator() Validator {
	return &DefaultValidator{}
}

// Validate runs every hard constraint check against universe and returns a
// Report. It returns an error only for malformed inputs (nil universe,
// mismatched graph/world counts); constraint failures are reported, not
// returned as errors.
func (v *DefaultValidator) Validate(ctx context.Context, universe *generator.SeedUniverse, graphs []*logic.Graph, uset *settings.UniverseSettings) (*Report, error) {
	if universe == nil {
		return nil, fmt.Errorf("validation: nil universe")
	}
	if uset == nil {
		return nil, fmt.Errorf("validation: nil universe settings")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := newReport()

	completeness := CheckCompleteness(universe, graphs)
	addHard(report, completeness)

	if universe.Spoiler != nil {
		addHard(report, CheckReachabilityPrefix(universe.Spoiler, graphs, uset))
		addHard(report, CheckKeystoneLocality(universe.Spoiler, graphs))
		report.Metrics = ComputeMetrics(universe, graphs, universe.Spoiler)
	}

	report.Passed = len(report.Errors) == 0
	return report, nil
}

func addHard(report *Report, result ConstraintResult) {
	report.HardConstraintResults = append(report.HardConstraintResults, result)
	if !result.Satisfied {
		report.Errors = append(report.Errors, result.Details)
	}
}
