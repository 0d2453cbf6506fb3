package metrics

// Config tunes the analysis engine. The zero value of any field falls back
// to the corresponding default, so partial configuration files work.
//
// Threshold defaults are carried over from the field-calibrated
// acquisition software; they are empirical, not clinically validated.
type Config struct {
	// BodyWeightN is the athlete's known body weight in Newtons. When 0
	// the engine derives the baseline from the quiet-standing window at
	// the start of the recording.
	BodyWeightN float64 `yaml:"bodyWeightN"`

	// RFDWindowsMs are the windows (from force onset) over which rate of
	// force development and impulse are computed for isometric tests.
	RFDWindowsMs []int `yaml:"rfdWindowsMs"`

	// PrimaryRFDWindowMs is the single RFD window reported for jump tests.
	PrimaryRFDWindowMs int `yaml:"primaryRfdWindowMs"`

	// FlightThresholdN is the absolute total force below which the athlete
	// is considered airborne.
	FlightThresholdN float64 `yaml:"flightThresholdN"`

	// QuietToleranceN is the deviation from baseline that marks movement
	// onset.
	QuietToleranceN float64 `yaml:"quietToleranceN"`

	// BaselineWindowMs is the quiet-standing window, from the first
	// sample, used to derive the baseline when BodyWeightN is not given.
	BaselineWindowMs int64 `yaml:"baselineWindowMs"`

	// MinSamples is the minimum series length accepted for analysis.
	MinSamples int `yaml:"minSamples"`
}

// DefaultConfig returns the stock engine parameters.
func DefaultConfig() Config {
	return Config{
		RFDWindowsMs:       []int{50, 100, 200},
		PrimaryRFDWindowMs: 100,
		FlightThresholdN:   20,
		QuietToleranceN:    30,
		BaselineWindowMs:   1000,
		MinSamples:         10,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.RFDWindowsMs) == 0 {
		c.RFDWindowsMs = d.RFDWindowsMs
	}
	if c.PrimaryRFDWindowMs <= 0 {
		c.PrimaryRFDWindowMs = d.PrimaryRFDWindowMs
	}
	if c.FlightThresholdN <= 0 {
		c.FlightThresholdN = d.FlightThresholdN
	}
	if c.QuietToleranceN <= 0 {
		c.QuietToleranceN = d.QuietToleranceN
	}
	if c.BaselineWindowMs <= 0 {
		c.BaselineWindowMs = d.BaselineWindowMs
	}
	if c.MinSamples <= 0 {
		c.MinSamples = d.MinSamples
	}
	return c
}
