package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
	"github.com/ahmetveysel43/frce-sub004/internal/quality"
	"github.com/ahmetveysel43/frce-sub004/internal/session"
	"github.com/ahmetveysel43/frce-sub004/internal/simulate"
)

// Run generates the configured scenario, streams its raw frames through
// the full pipeline (decode, append, metrics, quality), and prints a
// report. It stands in for the acquisition and presentation collaborators
// around the core.
func Run(ctx context.Context, config *Config, logger *slog.Logger) error {
	testType, err := metrics.ParseTestType(config.Scenario.TestType)
	if err != nil {
		return fmt.Errorf("resolving test type: %w", err)
	}

	decoder := force.NewDecoder(config.Platform)
	engine := metrics.NewEngine(config.Engine)
	scorer := quality.NewScorer(config.Quality)

	frames := generateFrames(config.Scenario, testType, decoder.Geometry())
	logger.Info("generated scenario",
		slog.String("testType", string(testType)),
		slog.Int("frames", len(frames)),
		slog.Int64("seed", config.Scenario.Seed))

	run := session.NewRun(config.Scenario.AthleteID, testType)
	for i, frame := range frames {
		if i%1024 == 0 {
			if err = ctx.Err(); err != nil {
				if cancelErr := run.Cancel(); cancelErr != nil {
					return cancelErr
				}
				logger.Warn("acquisition interrupted", slog.String("runID", run.ID))
				return err
			}
		}

		sample, err := decoder.Decode(frame)
		if err != nil {
			return fmt.Errorf("decoding frame %d: %w", i, err)
		}
		if err = run.Append(sample); err != nil {
			return fmt.Errorf("appending frame %d: %w", i, err)
		}
	}

	if err = run.Complete(engine, scorer); err != nil {
		return fmt.Errorf("completing run: %w", err)
	}

	printReport(run, scorer)
	return nil
}

// generateFrames builds the raw frame stream for the scenario with an
// explicitly seeded source, so the same configuration reproduces the same
// recording.
func generateFrames(scenario ScenarioConfig, testType metrics.TestType, geometry force.PlatformGeometry) []force.RawFrame {
	options := []func(*simulate.Generator){
		simulate.WithSampleRate(scenario.SampleRateHz),
		simulate.WithGeometry(geometry),
	}
	if scenario.NoiseN > 0 {
		options = append(options, simulate.WithNoise(scenario.NoiseN))
	}

	generator := simulate.New(rand.New(rand.NewSource(scenario.Seed)), options...)

	category, _ := testType.Category()
	switch category {
	case metrics.CategoryJump:
		return generator.CMJ(scenario.BodyWeightN, scenario.QuietMs, scenario.FlightMs)
	case metrics.CategoryIsometric:
		return generator.Isometric(scenario.BodyWeightN, scenario.PeakForceN,
			scenario.QuietMs, scenario.RampMs, scenario.HoldMs)
	default:
		return generator.Balance(scenario.BodyWeightN, scenario.DurationMs, scenario.SwayMm)
	}
}

func printReport(run *session.Run, scorer *quality.Scorer) {
	stats := run.Series().Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", run.ID)
	fmt.Fprintf(w, "athlete\t%s\n", run.AthleteID)
	fmt.Fprintf(w, "test type\t%s\n", run.Type)
	fmt.Fprintf(w, "samples\t%s\n", humanize.Comma(int64(stats.Count)))
	fmt.Fprintf(w, "duration\t%s ms\n", humanize.Comma(stats.DurationMs))
	fmt.Fprintf(w, "sample rate\t%s Hz\n", humanize.CommafWithDigits(stats.SampleRateHz, 1))
	fmt.Fprintf(w, "peak force\t%s N\n", humanize.CommafWithDigits(stats.PeakTotal, 1))
	fmt.Fprintln(w)

	keys := make([]string, 0, len(run.Metrics()))
	for k := range run.Metrics() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, humanize.CommafWithDigits(run.Metrics()[k], 3))
	}

	if score := run.QualityScore(); score != nil {
		fmt.Fprintf(w, "\nquality\t%.1f (%s)\n", *score, quality.BandFor(*score))
	}
	w.Flush()
}
