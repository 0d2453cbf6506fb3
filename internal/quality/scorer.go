// Package quality evaluates per-sample and per-test data quality scores
// used to flag suspect recordings. Scoring starts at 100 and applies
// configured deductions; banding is a pure function of the final score.
package quality

import (
	"math"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
)

// Band classifies a quality score.
type Band string

const (
	BandExcellent Band = "excellent" // score >= 90
	BandGood      Band = "good"      // score >= 75
	BandFair      Band = "fair"      // score >= 60
	BandPoor      Band = "poor"      // score >= 40
	BandInvalid   Band = "invalid"   // everything below
)

// BandFor maps a score onto its quality band. Pure; no hidden state.
func BandFor(score float64) Band {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 75:
		return BandGood
	case score >= 60:
		return BandFair
	case score >= 40:
		return BandPoor
	default:
		return BandInvalid
	}
}

// Scorer applies the configured quality deductions.
type Scorer struct {
	config Config
}

// NewScorer creates a Scorer, filling unset config fields with defaults.
func NewScorer(config Config) *Scorer {
	return &Scorer{config: config.withDefaults()}
}

// Config returns the effective scorer configuration after defaulting.
func (s *Scorer) Config() Config {
	return s.config
}

// ScoreSample rates a single sample from 100 down. Deductions cover
// out-of-physiological-range total force, negative per-side force, CoP
// outside the platform footprint, and suspiciously high asymmetry.
func (s *Scorer) ScoreSample(sample force.Sample, geometry force.PlatformGeometry) float64 {
	score := 100.0

	if sample.TotalGRF < 0 || sample.TotalGRF > s.config.MaxPlausibleForceN {
		score -= s.config.ForceRangePenalty
	}
	if sample.LeftGRF < 0 || sample.RightGRF < 0 {
		score -= s.config.NegativeForcePenalty
	}
	if outsidePlatform(sample.LeftCoP, geometry) || outsidePlatform(sample.RightCoP, geometry) {
		score -= s.config.CoPBoundsPenalty
	}
	if sample.AsymmetryIndex() > s.config.SampleAsymmetryPct {
		score -= s.config.AsymmetryPenalty
	}

	return math.Max(0, score)
}

// ScoreRun rates a completed test from 100 down: duration far outside the
// nominal band for the test type, high mean asymmetry, a noisy force
// signal, sampling-rate inconsistency when an expected rate is configured,
// and category-specific plausibility checks against the computed metrics.
// A series too short to judge fails with a force.InsufficientDataError.
func (s *Scorer) ScoreRun(series *force.Series, testType metrics.TestType, result metrics.Result) (float64, error) {
	if series == nil || series.Len() < s.config.MinSamples {
		n := 0
		if series != nil {
			n = series.Len()
		}
		return 0, &force.InsufficientDataError{Samples: n, Required: s.config.MinSamples}
	}

	stats := series.Stats()
	score := 100.0

	if nominal := testType.NominalDurationMs(); nominal > 0 && stats.DurationMs > 0 {
		ratio := float64(stats.DurationMs) / float64(nominal)
		if ratio < s.config.DurationRatioLow || ratio > s.config.DurationRatioHigh {
			score -= s.config.DurationPenalty
		}
	}

	if stats.MeanAsymmetry > s.config.MeanAsymmetryPct {
		score -= s.config.MeanAsymmetryPenalty
	}

	if cv := forceCV(series); cv > s.config.ForceCVLimit {
		// High variation is expected for jumps; only flag non-jump tests.
		if category, _ := testType.Category(); category != metrics.CategoryJump {
			score -= s.config.ForceCVPenalty
		}
	}

	if s.config.ExpectedRateHz > 0 && stats.SampleRateHz > 0 {
		deviation := math.Abs(stats.SampleRateHz-s.config.ExpectedRateHz) / s.config.ExpectedRateHz * 100
		if deviation > s.config.RateTolerancePct {
			score -= s.config.RatePenalty
		}
	}

	score -= s.categoryDeductions(testType, result)
	return math.Max(0, score), nil
}

// categoryDeductions applies the test-type-specific plausibility checks
// against computed metrics. Metrics absent from the result are skipped.
func (s *Scorer) categoryDeductions(testType metrics.TestType, result metrics.Result) float64 {
	category, ok := testType.Category()
	if !ok || result == nil {
		return 0
	}

	var deduction float64
	switch category {
	case metrics.CategoryJump:
		if h, ok := result.Lookup(metrics.KeyJumpHeightM); ok && h < s.config.MinJumpHeightM {
			deduction += s.config.JumpHeightPenalty
		}
		if ft, ok := result.Lookup(metrics.KeyFlightTimeMs); ok && ft < s.config.MinFlightTimeMs {
			deduction += s.config.FlightTimePenalty
		}

	case metrics.CategoryBalance:
		if rng, ok := result.Lookup(metrics.KeyCoPRangeMm); ok && rng > s.config.MaxCoPRangeMm {
			deduction += s.config.CoPRangePenalty
		}
		if si, ok := result.Lookup(metrics.KeyStabilityIndex); ok && si < s.config.MinStabilityIndex {
			deduction += s.config.LowStabilityPenalty
		}
	}
	return deduction
}

func outsidePlatform(cop *force.Point, geometry force.PlatformGeometry) bool {
	if cop == nil {
		return false
	}
	return math.Abs(cop.X) > geometry.WidthMm/2 || math.Abs(cop.Y) > geometry.LengthMm/2
}

// forceCV returns the coefficient of variation of the total GRF signal.
func forceCV(series *force.Series) float64 {
	stats := series.Stats()
	if stats.AvgTotal <= 0 {
		return 0
	}

	var variance float64
	for _, sample := range series.Samples() {
		d := sample.TotalGRF - stats.AvgTotal
		variance += d * d
	}
	variance /= float64(stats.Count)

	return math.Sqrt(variance) / stats.AvgTotal
}
