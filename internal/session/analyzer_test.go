package session

import (
	"context"
	"testing"

	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
	"github.com/ahmetveysel43/frce-sub004/internal/quality"
)

func TestAnalyzer_Rescore(t *testing.T) {
	engine := metrics.NewEngine(metrics.Config{})
	scorer := quality.NewScorer(quality.Config{})

	var runs []*Run
	for i := 0; i < 4; i++ {
		run := NewRun("athlete-7", metrics.TestCountermovementJump)
		feedCMJ(t, run)
		if err := run.Complete(engine, scorer); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		runs = append(runs, run)
	}

	// An in-progress run must be skipped, not failed.
	pending := NewRun("athlete-8", metrics.TestCountermovementJump)
	runs = append(runs, pending)

	// Rescore with a known body weight; every completed run must pick up
	// the new baseline.
	analyzer := NewAnalyzer(
		metrics.NewEngine(metrics.Config{BodyWeightN: 650}),
		scorer,
		WithConcurrency(2),
	)
	if err := analyzer.Rescore(context.Background(), runs); err != nil {
		t.Fatalf("Rescore failed: %v", err)
	}

	for i, run := range runs[:4] {
		if got := run.Metrics().Get(metrics.KeyBaselineN); got != 650 {
			t.Errorf("run %d baseline = %v, want the rescored 650", i, got)
		}
		if run.QualityScore() == nil {
			t.Errorf("run %d quality score missing after rescore", i)
		}
	}
	if pending.Metrics() != nil {
		t.Error("in-progress run was rescored")
	}
}

func TestAnalyzer_RescoreCancelled(t *testing.T) {
	engine := metrics.NewEngine(metrics.Config{})
	scorer := quality.NewScorer(quality.Config{})

	run := NewRun("athlete-7", metrics.TestCountermovementJump)
	feedCMJ(t, run)
	if err := run.Complete(engine, scorer); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewAnalyzer(engine, scorer).Rescore(ctx, []*Run{run}); err == nil {
		t.Error("Rescore with a cancelled context should fail")
	}
}
