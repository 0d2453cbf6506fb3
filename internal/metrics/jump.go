package metrics

import (
	"fmt"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
)

// jumpPhases holds the indices of the phase boundaries detected on the
// force-time curve of a jump.
type jumpPhases struct {
	baseline float64 // Quiet-standing force level in Newtons
	onset    int     // First departure from baseline beyond the quiet tolerance
	lowest   int     // Minimum force between onset and take-off (end of unloading)
	takeoff  int     // First sample below the flight threshold
	landing  int     // First sample back above the flight threshold
}

// detectJumpPhases locates movement onset, take-off and landing by
// threshold crossings against the quiet-standing baseline. Each missing
// phase is an analysis failure, not a zero-valued metric.
func (e *Engine) detectJumpPhases(samples []force.Sample) (jumpPhases, error) {
	p := jumpPhases{baseline: e.baseline(samples), onset: -1, takeoff: -1, landing: -1}

	for i, s := range samples {
		if s.TotalGRF < p.baseline-e.config.QuietToleranceN || s.TotalGRF > p.baseline+e.config.QuietToleranceN {
			p.onset = i
			break
		}
	}
	if p.onset < 0 {
		return p, fmt.Errorf("no movement onset detected: %w",
			&force.InsufficientDataError{Samples: len(samples), Required: e.config.MinSamples})
	}

	for i := p.onset; i < len(samples); i++ {
		if samples[i].TotalGRF < e.config.FlightThresholdN {
			p.takeoff = i
			break
		}
	}
	if p.takeoff < 0 {
		return p, fmt.Errorf("no take-off detected: %w",
			&force.InsufficientDataError{Samples: len(samples), Required: e.config.MinSamples})
	}

	for i := p.takeoff; i < len(samples); i++ {
		if samples[i].TotalGRF >= e.config.FlightThresholdN {
			p.landing = i
			break
		}
	}
	if p.landing < 0 {
		return p, fmt.Errorf("no landing detected: %w",
			&force.InsufficientDataError{Samples: len(samples), Required: e.config.MinSamples})
	}

	p.lowest = p.onset
	for i := p.onset; i <= p.takeoff; i++ {
		if samples[i].TotalGRF < samples[p.lowest].TotalGRF {
			p.lowest = i
		}
	}
	return p, nil
}

// computeJump derives the jump metrics set: flight time, jump height via
// the flight-time method (g*t^2/8), take-off velocity (g*t/2), contact
// time, peak and mean concentric force, and RFD over the primary window
// from onset.
func (e *Engine) computeJump(series *force.Series) (Result, error) {
	samples := series.Samples()
	phases, err := e.detectJumpPhases(samples)
	if err != nil {
		return nil, err
	}

	flightSec := float64(samples[phases.landing].TimestampMs-samples[phases.takeoff].TimestampMs) / 1000

	// Concentric (braking + propulsion) phase runs from the unloading
	// minimum to the last grounded sample before take-off.
	concentricEnd := max(phases.lowest, phases.takeoff-1)
	var concentricSum float64
	for i := phases.lowest; i <= concentricEnd; i++ {
		concentricSum += samples[i].TotalGRF
	}
	concentricMean := concentricSum / float64(concentricEnd-phases.lowest+1)

	rfdWindow := e.config.PrimaryRFDWindowMs
	rfd := (forceAtOffset(samples, phases.onset, rfdWindow) - samples[phases.onset].TotalGRF) /
		(float64(rfdWindow) / 1000)

	r := Result{}
	r.set(KeyBaselineN, phases.baseline)
	r.set(KeyFlightTimeMs, flightSec*1000)
	r.set(KeyJumpHeightM, Gravity*flightSec*flightSec/8)
	r.set(KeyTakeoffVelocityMps, Gravity*flightSec/2)
	r.set(KeyContactTimeMs, float64(samples[phases.takeoff].TimestampMs-samples[phases.onset].TimestampMs))
	r.set(KeyPeakForceN, series.Stats().PeakTotal)
	r.set(KeyMeanConcentricForceN, concentricMean)
	r.set(RFDKey(rfdWindow), rfd)
	r.set(KeyMeanAsymmetryPct, meanAsymmetry(samples[phases.onset:phases.landing+1]))
	return r, nil
}
