// Package session binds an acquisition series to a test run: who was
// tested, which protocol, the lifecycle status, and the derived metrics
// and quality score once the run ends.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
	"github.com/ahmetveysel43/frce-sub004/internal/metrics"
	"github.com/ahmetveysel43/frce-sub004/internal/quality"
)

// Status is the lifecycle state of a test run.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// ErrRunFinished is returned when mutating a run whose status has left
// in_progress.
var ErrRunFinished = errors.New("test run is finished")

// Run is a single test recording. It is created in progress with an empty
// series, fed sample-by-sample during acquisition, and becomes immutable
// once its status leaves in_progress. Every field needed for a lossless
// storage round trip is exported or reachable through an accessor; the
// storage schema itself lives with the persistence collaborator.
type Run struct {
	ID        string           `json:"id"`
	AthleteID string           `json:"athleteId"`
	Type      metrics.TestType `json:"testType"`
	StartTime time.Time        `json:"startTime"`
	EndTime   time.Time        `json:"endTime"`
	Notes     string           `json:"notes,omitempty"`

	status       Status
	series       *force.Series
	metrics      metrics.Result
	qualityScore *float64
}

// NewRun starts a test run for an athlete: status in_progress, empty
// series, a fresh UUID.
func NewRun(athleteID string, testType metrics.TestType) *Run {
	return &Run{
		ID:        uuid.NewString(),
		AthleteID: athleteID,
		Type:      testType,
		StartTime: time.Now().UTC(),
		status:    StatusInProgress,
		series:    force.NewSeries(),
	}
}

// Status returns the current lifecycle state.
func (r *Run) Status() Status {
	return r.status
}

// Series returns the run's sample series. Callers must treat it as
// read-only once the run has finished.
func (r *Run) Series() *force.Series {
	return r.series
}

// Metrics returns the derived metrics map, nil until the run completes.
func (r *Run) Metrics() metrics.Result {
	return r.metrics
}

// QualityScore returns the per-test quality score, nil until the run
// completes.
func (r *Run) QualityScore() *float64 {
	return r.qualityScore
}

// Append adds an acquired sample to the run. Valid only while the run is
// in progress; the series itself rejects out-of-order timestamps.
func (r *Run) Append(sample force.Sample) error {
	if r.status != StatusInProgress {
		return fmt.Errorf("appending sample to %s run: %w", r.status, ErrRunFinished)
	}
	return r.series.Append(sample)
}

// Complete ends acquisition, freezes the series, and derives metrics and
// the quality score. A metrics failure (for example InsufficientData)
// marks the run failed and is returned to the caller; the frozen series
// is kept for inspection either way.
func (r *Run) Complete(engine *metrics.Engine, scorer *quality.Scorer) error {
	if r.status != StatusInProgress {
		return fmt.Errorf("completing %s run: %w", r.status, ErrRunFinished)
	}

	r.series.Freeze()
	r.EndTime = time.Now().UTC()

	result, err := engine.Compute(r.series, r.Type)
	if err != nil {
		r.status = StatusFailed
		r.Notes = err.Error()
		return fmt.Errorf("computing metrics for run %s: %w", r.ID, err)
	}
	r.metrics = result

	score, err := scorer.ScoreRun(r.series, r.Type, result)
	if err != nil {
		r.status = StatusFailed
		r.Notes = err.Error()
		return fmt.Errorf("scoring run %s: %w", r.ID, err)
	}
	r.qualityScore = &score

	r.status = StatusCompleted
	return nil
}

// Cancel abandons the run: the series is frozen, no metrics are derived,
// and the run becomes immutable. Cancelling a finished run is an error.
func (r *Run) Cancel() error {
	if r.status != StatusInProgress {
		return fmt.Errorf("cancelling %s run: %w", r.status, ErrRunFinished)
	}
	r.series.Freeze()
	r.EndTime = time.Now().UTC()
	r.status = StatusCancelled
	return nil
}
