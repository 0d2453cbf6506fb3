// Package metrics derives test-level metrics from a frozen force sample
// series. The engine is a pure function over its input: it never mutates
// the series, performs no I/O, and is safe to run concurrently across
// different completed tests.
package metrics

import (
	"github.com/ahmetveysel43/frce-sub004/internal/force"
)

// Gravity is the standard gravitational acceleration in m/s^2 used by the
// flight-time jump height and take-off velocity formulas.
const Gravity = 9.81

// Engine computes the metrics map for a completed test.
type Engine struct {
	config Config
}

// NewEngine creates an Engine, filling unset config fields with defaults.
func NewEngine(config Config) *Engine {
	return &Engine{config: config.withDefaults()}
}

// Config returns the effective engine configuration after defaulting.
func (e *Engine) Config() Config {
	return e.config
}

// Compute derives the full metrics map for the given test type from a
// frozen series. It fails with a force.InsufficientDataError when the
// series is too short or spans no time, and with an
// UnsupportedTestTypeError for test types without an algorithm. It never
// returns degenerate zero or NaN metrics in place of an error.
func (e *Engine) Compute(series *force.Series, testType TestType) (Result, error) {
	category, ok := testType.Category()
	if !ok {
		return nil, &UnsupportedTestTypeError{TestType: testType}
	}
	if err := e.checkSeries(series); err != nil {
		return nil, err
	}

	switch category {
	case CategoryJump:
		return e.computeJump(series)
	case CategoryIsometric:
		return e.computeIsometric(series)
	default:
		return e.computeBalance(series)
	}
}

func (e *Engine) checkSeries(series *force.Series) error {
	if series == nil {
		return &force.InsufficientDataError{Required: e.config.MinSamples}
	}
	if series.Len() < e.config.MinSamples || series.DurationMs() <= 0 {
		return &force.InsufficientDataError{
			Samples:    series.Len(),
			Required:   e.config.MinSamples,
			DurationMs: series.DurationMs(),
		}
	}
	return nil
}

// baseline returns the quiet-standing force level: the configured body
// weight when known, otherwise the mean total GRF over the initial
// baseline window.
func (e *Engine) baseline(samples []force.Sample) float64 {
	if e.config.BodyWeightN > 0 {
		return e.config.BodyWeightN
	}

	cutoff := samples[0].TimestampMs + e.config.BaselineWindowMs
	var sum float64
	var n int
	for _, s := range samples {
		if s.TimestampMs >= cutoff && n > 0 {
			break
		}
		sum += s.TotalGRF
		n++
	}
	return sum / float64(n)
}

// forceAtOffset returns the total GRF at fromMs+offsetMs, taking the first
// sample at or past the target, or the last sample when the series ends
// earlier.
func forceAtOffset(samples []force.Sample, start int, offsetMs int) float64 {
	target := samples[start].TimestampMs + int64(offsetMs)
	for _, s := range samples[start:] {
		if s.TimestampMs >= target {
			return s.TotalGRF
		}
	}
	return samples[len(samples)-1].TotalGRF
}

// meanAsymmetry averages the per-sample asymmetry index over the analysis
// window rather than sampling a single instant, to reduce sensitivity to
// noise spikes.
func meanAsymmetry(samples []force.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.AsymmetryIndex()
	}
	return sum / float64(len(samples))
}
