package validation

import (
	"fmt"
	"strings"
)

// Constraint names one checked property and its severity.
type Constraint struct {
	Kind     string
	Severity string // "hard" or "soft"
}

// ConstraintResult is the outcome of checking a single Constraint.
type ConstraintResult struct {
	Constraint *Constraint
	Satisfied  bool
	Score      float64 // 1.0/0.0 for hard constraints; continuous for soft
	Details    string
}

// Metrics summarizes a generation run's shape, independent of pass/fail.
type Metrics struct {
	Worlds           int
	TotalPlacements  int
	TotalPickupNodes int
	GroupCount       int
	Attempts         int
}

// Report is the result of validating one SeedUniverse.
type Report struct {
	Passed                bool
	HardConstraintResults []ConstraintResult
	SoftConstraintResults []ConstraintResult
	Metrics               *Metrics
	Warnings              []string
	Errors                []string
}

func newReport() *Report {
	return &Report{
		Passed:                true,
		HardConstraintResults: []ConstraintResult{},
		SoftConstraintResults: []ConstraintResult{},
		Warnings:              []string{},
		Errors:                []string{},
	}
}

func newHardResult(kind string, satisfied bool, details string) ConstraintResult {
	score := 0.0
	if satisfied {
		score = 1.0
	}
	return ConstraintResult{
		Constraint: &Constraint{Kind: kind, Severity: "hard"},
		Satisfied:  satisfied,
		Score:      score,
		Details:    details,
	}
}

func newSoftResult(kind string, score float64, details string) ConstraintResult {
	return ConstraintResult{
		Constraint: &Constraint{Kind: kind, Severity: "soft"},
		Satisfied:  score > 0.5,
		Score:      score,
		Details:    details,
	}
}

// Summary renders a human-readable report, one section per concern.
func Summary(report *Report) string {
	var b strings.Builder

	b.WriteString("=== Validation Report ===\n\n")
	if report.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	if report.Metrics != nil {
		b.WriteString("\n=== Metrics ===\n")
		fmt.Fprintf(&b, "Worlds: %d\n", report.Metrics.Worlds)
		fmt.Fprintf(&b, "Total Placements: %d\n", report.Metrics.TotalPlacements)
		fmt.Fprintf(&b, "Total Pickup Nodes: %d\n", report.Metrics.TotalPickupNodes)
		fmt.Fprintf(&b, "Groups: %d\n", report.Metrics.GroupCount)
		fmt.Fprintf(&b, "Attempts: %d\n", report.Metrics.Attempts)
	}

	b.WriteString("\n=== Hard Constraints ===\n")
	passedHard := 0
	for _, result := range report.HardConstraintResults {
		if result.Satisfied {
			passedHard++
		}
	}
	fmt.Fprintf(&b, "Passed: %d/%d\n", passedHard, len(report.HardConstraintResults))
	for i, result := range report.HardConstraintResults {
		status := "PASS"
		if !result.Satisfied {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %d. [%s] %s: %s\n", i+1, status, result.Constraint.Kind, result.Details)
	}

	b.WriteString("\n=== Soft Constraints ===\n")
	if len(report.SoftConstraintResults) == 0 {
		b.WriteString("None evaluated\n")
	} else {
		for i, result := range report.SoftConstraintResults {
			fmt.Fprintf(&b, "  %d. %s (score: %.2f): %s\n", i+1, result.Constraint.Kind, result.Score, result.Details)
		}
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, err := range report.Errors {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, err)
		}
	}
	if len(report.Warnings) > 0 {
		b.WriteString("\n=== Warnings ===\n")
		for i, warn := range report.Warnings {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, warn)
		}
	}

	return b.String()
}

// HasErrors reports whether report contains any hard constraint failures.
func HasErrors(report *Report) bool { return len(report.Errors) > 0 }

// HasWarnings reports whether report contains any soft constraint warnings.
func HasWarnings(report *Report) bool { return len(report.Warnings) > 0 }

// GetFailedConstraints returns every failed hard constraint.
func GetFailedConstraints(report *Report) []ConstraintResult {
	failed := []ConstraintResult{}
	for _, result := range report.HardConstraintResults {
		if !result.Satisfied {
			failed = append(failed, result)
		}
	}
	return failed
}

// GetLowScoringConstraints returns soft constraints scoring below threshold.
func GetLowScoringConstraints(report *Report, threshold float64) []ConstraintResult {
	lowScoring := []ConstraintResult{}
	for _, result := range report.SoftConstraintResults {
		if result.Score < threshold {
			lowScoring = append(lowScoring, result)
		}
	}
	return lowScoring
}
