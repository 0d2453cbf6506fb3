package app

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
	"github.com/ahmetveysel43/frce-sub004/internal/quality"
)

// Config represents the main application configuration
type Config struct {
	Settings Settings               `yaml:"settings"`
	Platform force.PlatformGeometry `yaml:"platform"`
	Engine   metrics.Config         `yaml:"engine"`
	Quality  quality.Config         `yaml:"quality"`
	Scenario ScenarioConfig         `yaml:"scenario"`
}

// Settings represents global application settings
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// SlogLevel parses the configured log level, defaulting to info.
func (s Settings) SlogLevel() slog.Level {
	var level slog.Level
	if s.LogLevel == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ScenarioConfig describes the simulated test to run through the pipeline.
// Fields not relevant to the chosen test type are ignored.
type ScenarioConfig struct {
	TestType     string  `yaml:"testType"`
	AthleteID    string  `yaml:"athleteId"`
	BodyWeightN  float64 `yaml:"bodyWeightN"`
	SampleRateHz float64 `yaml:"sampleRateHz"`
	Seed         int64   `yaml:"seed"`
	NoiseN       float64 `yaml:"noiseN"`

	// Jump tests.
	QuietMs  int `yaml:"quietMs"`
	FlightMs int `yaml:"flightMs"`

	// Isometric tests.
	PeakForceN float64 `yaml:"peakForceN"`
	RampMs     int     `yaml:"rampMs"`
	HoldMs     int     `yaml:"holdMs"`

	// Balance tests.
	DurationMs int     `yaml:"durationMs"`
	SwayMm     float64 `yaml:"swayMm"`
}

// LoadConfig reads and validates the YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}

	config.applyDefaults()
	if err = config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	s := &c.Scenario
	if s.TestType == "" {
		s.TestType = string(metrics.TestCountermovementJump)
	}
	if s.AthleteID == "" {
		s.AthleteID = "demo-athlete"
	}
	if s.BodyWeightN <= 0 {
		s.BodyWeightN = 735 // 75 kg athlete
	}
	if s.SampleRateHz <= 0 {
		s.SampleRateHz = 1000
	}
	if s.Seed == 0 {
		s.Seed = 1
	}
	if s.QuietMs <= 0 {
		s.QuietMs = 1500
	}
	if s.FlightMs <= 0 {
		s.FlightMs = 450
	}
	if s.PeakForceN <= 0 {
		s.PeakForceN = s.BodyWeightN * 2.5
	}
	if s.RampMs <= 0 {
		s.RampMs = 2000
	}
	if s.HoldMs <= 0 {
		s.HoldMs = 3000
	}
	if s.DurationMs <= 0 {
		s.DurationMs = 30000
	}
	if s.SwayMm <= 0 {
		s.SwayMm = 15
	}
}

func (c *Config) validate() error {
	if _, err := metrics.ParseTestType(c.Scenario.TestType); err != nil {
		return fmt.Errorf("validating scenario: %w", err)
	}
	if c.Scenario.SampleRateHz > 2000 {
		return fmt.Errorf("validating scenario: sample rate %.0f Hz exceeds the supported 2000 Hz", c.Scenario.SampleRateHz)
	}
	return nil
}
