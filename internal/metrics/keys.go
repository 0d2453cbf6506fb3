package metrics

import "fmt"

// Key names a single metric in a Result. The storage representation stays
// a plain string-keyed map for extensibility, but inside the core every
// known metric is addressed through one of these constants so a typo fails
// at compile time.
type Key string

const (
	KeyBaselineN            Key = "baseline_n"              // Quiet-standing body weight in Newtons
	KeyPeakForceN           Key = "peak_force_n"            // Maximum total GRF in Newtons
	KeyMeanAsymmetryPct     Key = "mean_asymmetry_pct"      // Mean asymmetry index over the analysis window
	KeyFlightTimeMs         Key = "flight_time_ms"          // Jump flight duration
	KeyContactTimeMs        Key = "contact_time_ms"         // Movement onset to take-off
	KeyJumpHeightM          Key = "jump_height_m"           // Flight-time method, g*t^2/8
	KeyTakeoffVelocityMps   Key = "takeoff_velocity_mps"    // g*t/2
	KeyMeanConcentricForceN Key = "mean_concentric_force_n" // Mean total GRF over the concentric phase
	KeyTimeToPeakMs         Key = "time_to_peak_ms"         // Onset to peak force, isometric tests
	KeyTotalImpulseNs       Key = "total_impulse_ns"        // Net impulse above baseline, onset to end
	KeyCoPRangeMm           Key = "cop_range_mm"            // Maximum CoP excursion (bounding box diagonal)
	KeyCoPPathMm            Key = "cop_path_mm"             // Total CoP path length
	KeyCoPVelocityMmps      Key = "cop_velocity_mmps"       // Mean CoP path velocity
	KeyCoPAreaMm2           Key = "cop_area_mm2"            // 95% confidence ellipse area
	KeyStabilityIndex       Key = "stability_index"         // 0-100, higher is steadier
)

// RFDKey returns the key for the rate of force development computed over
// the 0..windowMs window from force onset.
func RFDKey(windowMs int) Key {
	return Key(fmt.Sprintf("rfd_0_%dms_nps", windowMs))
}

// ImpulseKey returns the key for the net impulse integrated over the
// 0..windowMs window from force onset.
func ImpulseKey(windowMs int) Key {
	return Key(fmt.Sprintf("impulse_0_%dms_ns", windowMs))
}

// Result is the metrics map produced by the engine. The map form is the
// wire/storage representation; use the Key constants and Lookup for typed
// access inside the core.
type Result map[string]float64

// Lookup returns the value for k and whether it was computed for this
// test category.
func (r Result) Lookup(k Key) (float64, bool) {
	v, ok := r[string(k)]
	return v, ok
}

// Get returns the value for k, 0 when the metric was not computed. Use
// Lookup when absence matters.
func (r Result) Get(k Key) float64 {
	return r[string(k)]
}

func (r Result) set(k Key, v float64) {
	r[string(k)] = v
}
