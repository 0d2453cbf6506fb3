package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
	"github.com/ahmetveysel43/frce-sub004/internal/quality"
)

// WithLogger sets the logger for the analyzer.
func WithLogger(logger *slog.Logger) func(*Analyzer) {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithConcurrency caps the number of runs re-analyzed in parallel.
func WithConcurrency(n int) func(*Analyzer) {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// Analyzer re-derives metrics and quality scores for batches of completed
// runs, for example after an engine or scorer configuration change. Frozen
// series are immutable and the engine and scorer are pure, so runs are
// processed in parallel.
type Analyzer struct {
	engine *metrics.Engine
	scorer *quality.Scorer

	logger      *slog.Logger
	concurrency int
}

// NewAnalyzer creates an Analyzer with a discard logger and one worker per
// CPU.
func NewAnalyzer(engine *metrics.Engine, scorer *quality.Scorer, options ...func(*Analyzer)) *Analyzer {
	a := Analyzer{
		engine:      engine,
		scorer:      scorer,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: runtime.NumCPU(),
	}

	for _, option := range options {
		option(&a)
	}

	return &a
}

// Rescore recomputes metrics and quality for every completed run in the
// batch, overwriting the stored results. Runs that are not completed are
// skipped. The first failure cancels the remaining work.
func (a *Analyzer) Rescore(ctx context.Context, runs []*Run) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, run := range runs {
		if run.Status() != StatusCompleted {
			a.logger.Debug("skipping run", slog.String("runID", run.ID), slog.String("status", string(run.Status())))
			continue
		}

		run := run
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := a.engine.Compute(run.Series(), run.Type)
			if err != nil {
				return fmt.Errorf("recomputing metrics for run %s: %w", run.ID, err)
			}

			score, err := a.scorer.ScoreRun(run.Series(), run.Type, result)
			if err != nil {
				return fmt.Errorf("rescoring run %s: %w", run.ID, err)
			}

			run.metrics = result
			run.qualityScore = &score

			a.logger.Debug("rescored run",
				slog.String("runID", run.ID),
				slog.Float64("quality", score))
			return nil
		})
	}

	return g.Wait()
}
