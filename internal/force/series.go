package force

// Series is an ordered sequence of force samples recorded during a single
// test. While open it accepts appends from the single acquisition producer;
// Freeze makes it read-only before analysis. Appends enforce non-decreasing
// timestamps, rejecting out-of-order samples instead of silently reordering
// them.
//
// All transformations (TimeRange, ForceThreshold, Downsample, Smoothed)
// are non-destructive: they return a new, already-frozen Series and never
// mutate the receiver, so an acquisition buffer can back multiple derived
// views.
type Series struct {
	samples []Sample
	frozen  bool
}

// Stats holds the aggregate statistics of a series at a point in time.
type Stats struct {
	Count         int     // Number of samples
	DurationMs    int64   // Last timestamp minus first timestamp
	SampleRateHz  float64 // Derived rate, 0 with fewer than 2 samples
	PeakLeft      float64 // Maximum left platform GRF in Newtons
	PeakRight     float64 // Maximum right platform GRF in Newtons
	PeakTotal     float64 // Maximum combined GRF in Newtons
	AvgLeft       float64 // Mean left platform GRF in Newtons
	AvgRight      float64 // Mean right platform GRF in Newtons
	AvgTotal      float64 // Mean combined GRF in Newtons
	MeanAsymmetry float64 // Mean per-sample asymmetry index
}

// NewSeries creates an empty, open series ready for acquisition.
func NewSeries() *Series {
	return &Series{}
}

// newFrozenSeries wraps an already-ordered sample slice. The slice is owned
// by the new series; callers must not retain it.
func newFrozenSeries(samples []Sample) *Series {
	return &Series{samples: samples, frozen: true}
}

// Append adds a sample to the series. It fails with ErrSeriesFrozen once
// the series has been frozen and with an OutOfOrderError when the sample's
// timestamp precedes the last accepted one. Equal timestamps are accepted;
// some acquisition units emit bursts sharing a millisecond.
func (s *Series) Append(sample Sample) error {
	if s.frozen {
		return ErrSeriesFrozen
	}
	if n := len(s.samples); n > 0 && sample.TimestampMs < s.samples[n-1].TimestampMs {
		return &OutOfOrderError{LastMs: s.samples[n-1].TimestampMs, GotMs: sample.TimestampMs}
	}
	s.samples = append(s.samples, sample)
	return nil
}

// Freeze makes the series read-only. Freezing twice is a no-op.
func (s *Series) Freeze() {
	s.frozen = true
}

// IsFrozen reports whether the series still accepts appends.
func (s *Series) IsFrozen() bool {
	return s.frozen
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.samples)
}

// At returns the sample at index i. It panics on out-of-range indices,
// mirroring slice semantics.
func (s *Series) At(i int) Sample {
	return s.samples[i]
}

// Samples returns a copy of the underlying sample slice.
func (s *Series) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// DurationMs returns the time span covered by the series, 0 when the
// series holds fewer than 2 samples.
func (s *Series) DurationMs() int64 {
	if len(s.samples) < 2 {
		return 0
	}
	return s.samples[len(s.samples)-1].TimestampMs - s.samples[0].TimestampMs
}

// SampleRateHz returns the effective acquisition rate derived from sample
// count and duration, 0 when it cannot be derived.
func (s *Series) SampleRateHz() float64 {
	d := s.DurationMs()
	if d <= 0 {
		return 0
	}
	return float64(len(s.samples)-1) / (float64(d) / 1000)
}

// Stats computes the aggregate statistics of the series. Aggregates are
// recomputed on demand; the caller decides when a consistent snapshot is
// needed (typically after Freeze).
func (s *Series) Stats() Stats {
	st := Stats{
		Count:        len(s.samples),
		DurationMs:   s.DurationMs(),
		SampleRateHz: s.SampleRateHz(),
	}
	if st.Count == 0 {
		return st
	}

	var sumLeft, sumRight, sumTotal, sumAsym float64
	for _, sample := range s.samples {
		sumLeft += sample.LeftGRF
		sumRight += sample.RightGRF
		sumTotal += sample.TotalGRF
		sumAsym += sample.AsymmetryIndex()

		st.PeakLeft = max(st.PeakLeft, sample.LeftGRF)
		st.PeakRight = max(st.PeakRight, sample.RightGRF)
		st.PeakTotal = max(st.PeakTotal, sample.TotalGRF)
	}

	n := float64(st.Count)
	st.AvgLeft = sumLeft / n
	st.AvgRight = sumRight / n
	st.AvgTotal = sumTotal / n
	st.MeanAsymmetry = sumAsym / n
	return st
}

// TimeRange returns a new series holding the samples with
// startMs <= timestamp <= endMs.
func (s *Series) TimeRange(startMs, endMs int64) *Series {
	out := make([]Sample, 0, len(s.samples))
	for _, sample := range s.samples {
		if sample.TimestampMs >= startMs && sample.TimestampMs <= endMs {
			out = append(out, sample)
		}
	}
	return newFrozenSeries(out)
}

// ForceThreshold returns a new series holding the samples whose total GRF
// is at least minTotalGRF.
func (s *Series) ForceThreshold(minTotalGRF float64) *Series {
	out := make([]Sample, 0, len(s.samples))
	for _, sample := range s.samples {
		if sample.TotalGRF >= minTotalGRF {
			out = append(out, sample)
		}
	}
	return newFrozenSeries(out)
}

// Downsample returns a new series keeping every factor-th sample, starting
// with the first. A factor of 1 or less returns an equivalent copy.
func (s *Series) Downsample(factor int) *Series {
	if factor <= 1 {
		return newFrozenSeries(s.Samples())
	}
	out := make([]Sample, 0, (len(s.samples)+factor-1)/factor)
	for i := 0; i < len(s.samples); i += factor {
		out = append(out, s.samples[i])
	}
	return newFrozenSeries(out)
}

// Smoothed returns a new series whose GRF fields are replaced by a centered
// moving average over windowSize neighbours, clamped at the series
// boundaries. CoP points and timestamps are carried over unchanged. A
// window of 1 or less, or wider than the series, returns an equivalent
// copy.
func (s *Series) Smoothed(windowSize int) *Series {
	if windowSize <= 1 || windowSize > len(s.samples) {
		return newFrozenSeries(s.Samples())
	}

	half := windowSize / 2
	out := make([]Sample, len(s.samples))
	for i := range s.samples {
		lo := max(0, i-half)
		hi := min(len(s.samples)-1, i+half)

		var sumLeft, sumRight float64
		for j := lo; j <= hi; j++ {
			sumLeft += s.samples[j].LeftGRF
			sumRight += s.samples[j].RightGRF
		}

		n := float64(hi - lo + 1)
		smoothed := s.samples[i]
		smoothed.LeftGRF = sumLeft / n
		smoothed.RightGRF = sumRight / n
		smoothed.TotalGRF = smoothed.LeftGRF + smoothed.RightGRF
		out[i] = smoothed
	}
	return newFrozenSeries(out)
}
