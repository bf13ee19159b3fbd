// Package genstats runs repeated generations of a universe and reports
// timing and attempt-count distributions, turning the scheduler's own
// Attempts counter into the kind of benchmark summary the source's CLI
// surfaces as generation statistics. It is the one component in this
// module with no teacher-repo precedent to imitate line-for-line — dungo
// has no benchmarking harness — so it leans directly on
// github.com/montanaflynn/stats (already pulled in transitively by the
// pack, unused until now) rather than hand-rolling percentile math.
package genstats

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/orirando/seedgen/pkg/generator"
)

// Run is a single generation attempt's timing and outcome.
type Run struct {
	Duration time.Duration
	Attempts int
	Err      error
}

// Summary aggregates N runs of the same Config.
type Summary struct {
	N            int
	Failures     int
	MeanMillis   float64
	MedianMillis float64
	StdDevMillis float64
	P95Millis    float64
	MeanAttempts float64
}

// RunN runs cfg's generation n times, returning one Run per attempt plus
// the aggregate Summary. A failing run is recorded (Err set) and excluded
// from the timing/attempt statistics but counted in Failures, so a few
// pathological seeds don't skew the whole distribution silently.
func RunN(ctx context.Context, cfg *generator.Config, n int) ([]Run, Summary, error) {
	if n <= 0 {
		return nil, Summary{}, fmt.Errorf("genstats: n must be positive, got %d", n)
	}

	runs := make([]Run, n)
	var durationsMillis, attemptCounts []float64

	for i := 0; i < n; i++ {
		start := time.Now()
		universe, err := generator.Generate(ctx, cfg)
		elapsed := time.Since(start)

		runs[i] = Run{Duration: elapsed}
		if err != nil {
			runs[i].Err = err
			continue
		}

		runs[i].Attempts = universe.Attempts
		durationsMillis = append(durationsMillis, float64(elapsed.Microseconds())/1000.0)
		attemptCounts = append(attemptCounts, float64(universe.Attempts))
	}

	summary, err := summarize(runs, durationsMillis, attemptCounts)
	if err != nil {
		return runs, Summary{}, err
	}
	return runs, summary, nil
}

func summarize(runs []Run, durationsMillis, attemptCounts []float64) (Summary, error) {
	failures := 0
	for _, r := range runs {
		if r.Err != nil {
			failures++
		}
	}

	s := Summary{N: len(runs), Failures: failures}
	if len(durationsMillis) == 0 {
		return s, nil
	}

	var err error
	if s.MeanMillis, err = stats.Mean(durationsMillis); err != nil {
		return Summary{}, fmt.Errorf("genstats: computing mean: %w", err)
	}
	if s.MedianMillis, err = stats.Median(durationsMillis); err != nil {
		return Summary{}, fmt.Errorf("genstats: computing median: %w", err)
	}
	if s.StdDevMillis, err = stats.StandardDeviation(durationsMillis); err != nil {
		return Summary{}, fmt.Errorf("genstats: computing stddev: %w", err)
	}
	if s.P95Millis, err = stats.Percentile(durationsMillis, 95); err != nil {
		return Summary{}, fmt.Errorf("genstats: computing p95: %w", err)
	}
	if s.MeanAttempts, err = stats.Mean(attemptCounts); err != nil {
		return Summary{}, fmt.Errorf("genstats: computing mean attempts: %w", err)
	}
	return s, nil
}
