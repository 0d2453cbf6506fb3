package session

import (
	"errors"
	"testing"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
	"github.com/ahmetveysel43/frce-sub004/internal/quality"
)

// feedCMJ appends the reference jump recording: 1s quiet at 700 N, 100ms
// flight, 100ms landing tail.
func feedCMJ(t *testing.T, run *Run) {
	t.Helper()
	ts := int64(0)
	feed := func(totalN float64, count int) {
		for i := 0; i < count; i++ {
			if err := run.Append(force.NewSample(ts, totalN/2, totalN/2, nil, nil)); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
			ts++
		}
	}
	feed(700, 1000)
	feed(5, 100)
	feed(700, 100)
}

func TestRun_Lifecycle(t *testing.T) {
	engine := metrics.NewEngine(metrics.Config{})
	scorer := quality.NewScorer(quality.Config{})

	run := NewRun("athlete-7", metrics.TestCountermovementJump)
	if run.Status() != StatusInProgress {
		t.Fatalf("Status = %s, want in_progress", run.Status())
	}
	if run.ID == "" {
		t.Error("ID is empty")
	}
	if run.Metrics() != nil || run.QualityScore() != nil {
		t.Error("metrics/quality set before completion")
	}

	feedCMJ(t, run)

	if err := run.Complete(engine, scorer); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if run.Status() != StatusCompleted {
		t.Errorf("Status = %s, want completed", run.Status())
	}
	if !run.Series().IsFrozen() {
		t.Error("series not frozen after completion")
	}
	if run.Metrics() == nil {
		t.Fatal("Metrics = nil after completion")
	}
	if got := run.Metrics().Get(metrics.KeyFlightTimeMs); got != 100 {
		t.Errorf("flight time = %v, want 100", got)
	}
	if run.QualityScore() == nil {
		t.Fatal("QualityScore = nil after completion")
	}
	if run.EndTime.Before(run.StartTime) {
		t.Error("EndTime before StartTime")
	}

	// The run is immutable once it has finished.
	if err := run.Append(force.NewSample(99999, 1, 1, nil, nil)); !errors.Is(err, ErrRunFinished) {
		t.Errorf("Append after completion error = %v, want ErrRunFinished", err)
	}
	if err := run.Complete(engine, scorer); !errors.Is(err, ErrRunFinished) {
		t.Errorf("second Complete error = %v, want ErrRunFinished", err)
	}
	if err := run.Cancel(); !errors.Is(err, ErrRunFinished) {
		t.Errorf("Cancel after completion error = %v, want ErrRunFinished", err)
	}
}

func TestRun_CompleteWithTooLittleData(t *testing.T) {
	engine := metrics.NewEngine(metrics.Config{})
	scorer := quality.NewScorer(quality.Config{})

	run := NewRun("athlete-7", metrics.TestCountermovementJump)
	for ts := int64(0); ts < 5; ts++ {
		if err := run.Append(force.NewSample(ts, 0, 0, nil, nil)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	err := run.Complete(engine, scorer)
	if !errors.Is(err, force.ErrInsufficientData) {
		t.Fatalf("Complete error = %v, want ErrInsufficientData", err)
	}
	if run.Status() != StatusFailed {
		t.Errorf("Status = %s, want failed", run.Status())
	}
	if run.Notes == "" {
		t.Error("failure reason not recorded in notes")
	}
}

func TestRun_Cancel(t *testing.T) {
	run := NewRun("athlete-7", metrics.TestStaticBalance)
	if err := run.Append(force.NewSample(0, 350, 350, nil, nil)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := run.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if run.Status() != StatusCancelled {
		t.Errorf("Status = %s, want cancelled", run.Status())
	}
	if err := run.Append(force.NewSample(1, 350, 350, nil, nil)); !errors.Is(err, ErrRunFinished) {
		t.Errorf("Append after cancel error = %v, want ErrRunFinished", err)
	}
	if run.Metrics() != nil {
		t.Error("cancelled run must not carry metrics")
	}
}
