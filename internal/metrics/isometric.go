package metrics

import (
	"fmt"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
)

// computeIsometric derives the isometric metrics set: peak force and time
// to peak after onset, RFD and net impulse over each configured window,
// and the total net impulse from onset to the end of the pull.
func (e *Engine) computeIsometric(series *force.Series) (Result, error) {
	samples := series.Samples()
	baseline := e.baseline(samples)

	onset := -1
	for i, s := range samples {
		if s.TotalGRF > baseline+e.config.QuietToleranceN {
			onset = i
			break
		}
	}
	if onset < 0 {
		return nil, fmt.Errorf("no force onset detected: %w",
			&force.InsufficientDataError{Samples: len(samples), Required: e.config.MinSamples})
	}

	peak := onset
	for i := onset; i < len(samples); i++ {
		if samples[i].TotalGRF > samples[peak].TotalGRF {
			peak = i
		}
	}

	r := Result{}
	r.set(KeyBaselineN, baseline)
	r.set(KeyPeakForceN, samples[peak].TotalGRF)
	r.set(KeyTimeToPeakMs, float64(samples[peak].TimestampMs-samples[onset].TimestampMs))
	r.set(KeyTotalImpulseNs, netImpulse(samples[onset:], baseline, series.DurationMs()))
	r.set(KeyMeanAsymmetryPct, meanAsymmetry(samples[onset:]))

	for _, windowMs := range e.config.RFDWindowsMs {
		rfd := (forceAtOffset(samples, onset, windowMs) - samples[onset].TotalGRF) /
			(float64(windowMs) / 1000)
		r.set(RFDKey(windowMs), rfd)
		r.set(ImpulseKey(windowMs), netImpulse(samples[onset:], baseline, int64(windowMs)))
	}
	return r, nil
}

// netImpulse integrates force above baseline over the first windowMs of
// the given samples using the trapezoidal rule. Force below baseline
// contributes nothing; an isometric pull never produces negative net
// impulse.
func netImpulse(samples []force.Sample, baseline float64, windowMs int64) float64 {
	if len(samples) < 2 {
		return 0
	}

	cutoff := samples[0].TimestampMs + windowMs
	var impulse float64
	for i := 1; i < len(samples) && samples[i].TimestampMs <= cutoff; i++ {
		a := max(0, samples[i-1].TotalGRF-baseline)
		b := max(0, samples[i].TotalGRF-baseline)
		dt := float64(samples[i].TimestampMs-samples[i-1].TimestampMs) / 1000
		impulse += (a + b) / 2 * dt
	}
	return impulse
}
