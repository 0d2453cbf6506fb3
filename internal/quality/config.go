package quality

// Config holds the deduction weights and plausibility limits used by the
// scorer. Defaults are carried over from the field acquisition software;
// they are empirical values pending domain-expert review, which is why
// every one of them is configurable rather than baked in.
type Config struct {
	// Per-sample checks.
	MaxPlausibleForceN   float64 `yaml:"maxPlausibleForceN"`   // Total GRF above this is suspect
	ForceRangePenalty    float64 `yaml:"forceRangePenalty"`    // Deduction for out-of-range total force
	NegativeForcePenalty float64 `yaml:"negativeForcePenalty"` // Deduction for a negative per-side GRF
	CoPBoundsPenalty     float64 `yaml:"copBoundsPenalty"`     // Deduction for CoP outside the platform
	SampleAsymmetryPct   float64 `yaml:"sampleAsymmetryPct"`   // Per-sample asymmetry considered suspect
	AsymmetryPenalty     float64 `yaml:"asymmetryPenalty"`     // Deduction for suspect asymmetry

	// Per-test checks.
	MinSamples           int     `yaml:"minSamples"`           // Minimum series length to score at all
	DurationRatioLow     float64 `yaml:"durationRatioLow"`     // Duration band lower bound vs nominal
	DurationRatioHigh    float64 `yaml:"durationRatioHigh"`    // Duration band upper bound vs nominal
	DurationPenalty      float64 `yaml:"durationPenalty"`      // Deduction for duration outside the band
	MeanAsymmetryPct     float64 `yaml:"meanAsymmetryPct"`     // Mean asymmetry considered suspect
	MeanAsymmetryPenalty float64 `yaml:"meanAsymmetryPenalty"` // Deduction for high mean asymmetry
	ForceCVLimit         float64 `yaml:"forceCvLimit"`         // Coefficient of variation considered noisy
	ForceCVPenalty       float64 `yaml:"forceCvPenalty"`       // Deduction for noisy force signal
	ExpectedRateHz       float64 `yaml:"expectedRateHz"`       // Nominal acquisition rate, 0 disables the check
	RateTolerancePct     float64 `yaml:"rateTolerancePct"`     // Allowed deviation from the expected rate
	RatePenalty          float64 `yaml:"ratePenalty"`          // Deduction for rate inconsistency

	// Category-specific checks.
	MinJumpHeightM      float64 `yaml:"minJumpHeightM"`      // Jump height below this is suspect
	JumpHeightPenalty   float64 `yaml:"jumpHeightPenalty"`   // Deduction for a very low jump
	MinFlightTimeMs     float64 `yaml:"minFlightTimeMs"`     // Flight time below this is suspect
	FlightTimePenalty   float64 `yaml:"flightTimePenalty"`   // Deduction for a very short flight
	MaxCoPRangeMm       float64 `yaml:"maxCopRangeMm"`       // Balance CoP excursion above this is suspect
	CoPRangePenalty     float64 `yaml:"copRangePenalty"`     // Deduction for excessive sway
	MinStabilityIndex   float64 `yaml:"minStabilityIndex"`   // Stability index below this is suspect
	LowStabilityPenalty float64 `yaml:"lowStabilityPenalty"` // Deduction for low stability
}

// DefaultConfig returns the stock scoring parameters.
func DefaultConfig() Config {
	return Config{
		MaxPlausibleForceN:   5000,
		ForceRangePenalty:    20,
		NegativeForcePenalty: 20,
		CoPBoundsPenalty:     15,
		SampleAsymmetryPct:   50,
		AsymmetryPenalty:     15,

		MinSamples:           10,
		DurationRatioLow:     0.5,
		DurationRatioHigh:    2.0,
		DurationPenalty:      25,
		MeanAsymmetryPct:     30,
		MeanAsymmetryPenalty: 15,
		ForceCVLimit:         0.8,
		ForceCVPenalty:       10,
		RateTolerancePct:     20,
		RatePenalty:          10,

		MinJumpHeightM:      0.05,
		JumpHeightPenalty:   20,
		MinFlightTimeMs:     100,
		FlightTimePenalty:   10,
		MaxCoPRangeMm:       150,
		CoPRangePenalty:     15,
		MinStabilityIndex:   30,
		LowStabilityPenalty: 10,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxPlausibleForceN <= 0 {
		c.MaxPlausibleForceN = d.MaxPlausibleForceN
	}
	if c.ForceRangePenalty <= 0 {
		c.ForceRangePenalty = d.ForceRangePenalty
	}
	if c.NegativeForcePenalty <= 0 {
		c.NegativeForcePenalty = d.NegativeForcePenalty
	}
	if c.CoPBoundsPenalty <= 0 {
		c.CoPBoundsPenalty = d.CoPBoundsPenalty
	}
	if c.SampleAsymmetryPct <= 0 {
		c.SampleAsymmetryPct = d.SampleAsymmetryPct
	}
	if c.AsymmetryPenalty <= 0 {
		c.AsymmetryPenalty = d.AsymmetryPenalty
	}
	if c.MinSamples <= 0 {
		c.MinSamples = d.MinSamples
	}
	if c.DurationRatioLow <= 0 {
		c.DurationRatioLow = d.DurationRatioLow
	}
	if c.DurationRatioHigh <= 0 {
		c.DurationRatioHigh = d.DurationRatioHigh
	}
	if c.DurationPenalty <= 0 {
		c.DurationPenalty = d.DurationPenalty
	}
	if c.MeanAsymmetryPct <= 0 {
		c.MeanAsymmetryPct = d.MeanAsymmetryPct
	}
	if c.MeanAsymmetryPenalty <= 0 {
		c.MeanAsymmetryPenalty = d.MeanAsymmetryPenalty
	}
	if c.ForceCVLimit <= 0 {
		c.ForceCVLimit = d.ForceCVLimit
	}
	if c.ForceCVPenalty <= 0 {
		c.ForceCVPenalty = d.ForceCVPenalty
	}
	if c.RateTolerancePct <= 0 {
		c.RateTolerancePct = d.RateTolerancePct
	}
	if c.RatePenalty <= 0 {
		c.RatePenalty = d.RatePenalty
	}
	if c.MinJumpHeightM <= 0 {
		c.MinJumpHeightM = d.MinJumpHeightM
	}
	if c.JumpHeightPenalty <= 0 {
		c.JumpHeightPenalty = d.JumpHeightPenalty
	}
	if c.MinFlightTimeMs <= 0 {
		c.MinFlightTimeMs = d.MinFlightTimeMs
	}
	if c.FlightTimePenalty <= 0 {
		c.FlightTimePenalty = d.FlightTimePenalty
	}
	if c.MaxCoPRangeMm <= 0 {
		c.MaxCoPRangeMm = d.MaxCoPRangeMm
	}
	if c.CoPRangePenalty <= 0 {
		c.CoPRangePenalty = d.CoPRangePenalty
	}
	if c.MinStabilityIndex <= 0 {
		c.MinStabilityIndex = d.MinStabilityIndex
	}
	if c.LowStabilityPenalty <= 0 {
		c.LowStabilityPenalty = d.LowStabilityPenalty
	}
	return c
}
