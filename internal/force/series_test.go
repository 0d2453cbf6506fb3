package force

import (
	"errors"
	"math"
	"testing"
)

// flatSeries builds a frozen series of count samples at 1ms spacing with
// the given per-side forces.
func flatSeries(t *testing.T, count int, left, right float64) *Series {
	t.Helper()
	s := NewSeries()
	for i := 0; i < count; i++ {
		if err := s.Append(NewSample(int64(i), left, right, nil, nil)); err != nil {
			t.Fatalf("Append(%d) failed: %v", i, err)
		}
	}
	s.Freeze()
	return s
}

func sameSamples(a, b *Series) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		x, y := a.At(i), b.At(i)
		if x.TimestampMs != y.TimestampMs || x.LeftGRF != y.LeftGRF || x.RightGRF != y.RightGRF {
			return false
		}
	}
	return true
}

func TestSeries_AppendOrdering(t *testing.T) {
	s := NewSeries()

	for _, ts := range []int64{0, 5, 5, 10} {
		if err := s.Append(NewSample(ts, 100, 100, nil, nil)); err != nil {
			t.Fatalf("Append(%d) failed: %v", ts, err)
		}
	}

	err := s.Append(NewSample(7, 100, 100, nil, nil))
	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("Append error = %v, want ErrOutOfOrder", err)
	}

	var ooe *OutOfOrderError
	if !errors.As(err, &ooe) {
		t.Fatalf("Append error = %T, want *OutOfOrderError", err)
	}
	if ooe.LastMs != 10 || ooe.GotMs != 7 {
		t.Errorf("OutOfOrderError = %+v, want last=10 got=7", ooe)
	}

	// The rejected sample must not have been kept.
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestSeries_Freeze(t *testing.T) {
	s := NewSeries()
	if err := s.Append(NewSample(0, 10, 10, nil, nil)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	s.Freeze()
	if !s.IsFrozen() {
		t.Error("IsFrozen = false after Freeze")
	}
	if err := s.Append(NewSample(1, 10, 10, nil, nil)); !errors.Is(err, ErrSeriesFrozen) {
		t.Errorf("Append after Freeze error = %v, want ErrSeriesFrozen", err)
	}
}

func TestSeries_Stats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		st := NewSeries().Stats()
		if st.Count != 0 || st.DurationMs != 0 || st.SampleRateHz != 0 {
			t.Errorf("Stats of empty series = %+v", st)
		}
	})

	t.Run("single sample has no rate", func(t *testing.T) {
		st := flatSeries(t, 1, 100, 100).Stats()
		if st.SampleRateHz != 0 || st.DurationMs != 0 {
			t.Errorf("Stats = %+v, want zero rate and duration", st)
		}
	})

	t.Run("flat load", func(t *testing.T) {
		st := flatSeries(t, 1000, 400, 300).Stats()

		if st.Count != 1000 || st.DurationMs != 999 {
			t.Errorf("Count/Duration = %d/%d, want 1000/999", st.Count, st.DurationMs)
		}
		if math.Abs(st.SampleRateHz-1000) > 1e-6 {
			t.Errorf("SampleRateHz = %v, want 1000", st.SampleRateHz)
		}
		if st.PeakTotal != 700 || st.AvgTotal != 700 {
			t.Errorf("PeakTotal/AvgTotal = %v/%v, want 700/700", st.PeakTotal, st.AvgTotal)
		}
		if st.PeakLeft != 400 || st.PeakRight != 300 {
			t.Errorf("per-side peaks = %v/%v, want 400/300", st.PeakLeft, st.PeakRight)
		}
		wantAsym := 100.0 / 7
		if math.Abs(st.MeanAsymmetry-wantAsym) > 1e-9 {
			t.Errorf("MeanAsymmetry = %v, want %v", st.MeanAsymmetry, wantAsym)
		}
	})
}

func TestSeries_TimeRange(t *testing.T) {
	s := flatSeries(t, 100, 100, 100)

	sliced := s.TimeRange(10, 19)
	if sliced.Len() != 10 {
		t.Fatalf("Len = %d, want 10", sliced.Len())
	}
	if sliced.At(0).TimestampMs != 10 || sliced.At(9).TimestampMs != 19 {
		t.Errorf("bounds = %d..%d, want 10..19", sliced.At(0).TimestampMs, sliced.At(9).TimestampMs)
	}
	if s.Len() != 100 {
		t.Error("TimeRange mutated the receiver")
	}
}

func TestSeries_ForceThreshold(t *testing.T) {
	s := NewSeries()
	for i, total := range []float64{10, 500, 20, 700, 5} {
		if err := s.Append(NewSample(int64(i), total/2, total/2, nil, nil)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	kept := s.ForceThreshold(100)
	if kept.Len() != 2 {
		t.Fatalf("Len = %d, want 2", kept.Len())
	}
	if kept.At(0).TotalGRF != 500 || kept.At(1).TotalGRF != 700 {
		t.Errorf("kept totals = %v, %v", kept.At(0).TotalGRF, kept.At(1).TotalGRF)
	}
}

func TestSeries_Downsample(t *testing.T) {
	s := flatSeries(t, 10, 100, 100)

	t.Run("factor 1 is a no-op", func(t *testing.T) {
		if got := s.Downsample(1); !sameSamples(s, got) {
			t.Error("Downsample(1) is not equal to the input")
		}
	})

	t.Run("factor 0 is a no-op", func(t *testing.T) {
		if got := s.Downsample(0); !sameSamples(s, got) {
			t.Error("Downsample(0) is not equal to the input")
		}
	})

	t.Run("factor 3", func(t *testing.T) {
		got := s.Downsample(3)
		if got.Len() != 4 {
			t.Fatalf("Len = %d, want 4", got.Len())
		}
		for i, wantTs := range []int64{0, 3, 6, 9} {
			if got.At(i).TimestampMs != wantTs {
				t.Errorf("At(%d).TimestampMs = %d, want %d", i, got.At(i).TimestampMs, wantTs)
			}
		}
	})
}

func TestSeries_Smoothed(t *testing.T) {
	s := NewSeries()
	for i, left := range []float64{0, 30, 0, 30, 0} {
		if err := s.Append(NewSample(int64(i), left, 0, nil, nil)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	t.Run("window 1 is a no-op", func(t *testing.T) {
		if got := s.Smoothed(1); !sameSamples(s, got) {
			t.Error("Smoothed(1) is not equal to the input")
		}
	})

	t.Run("window wider than series is a no-op", func(t *testing.T) {
		if got := s.Smoothed(6); !sameSamples(s, got) {
			t.Error("Smoothed(len+1) is not equal to the input")
		}
	})

	t.Run("window 3", func(t *testing.T) {
		got := s.Smoothed(3)

		// Boundaries average the clamped window, interior the full one.
		want := []float64{15, 10, 20, 10, 15}
		for i, w := range want {
			if math.Abs(got.At(i).LeftGRF-w) > 1e-9 {
				t.Errorf("At(%d).LeftGRF = %v, want %v", i, got.At(i).LeftGRF, w)
			}
			if got.At(i).TotalGRF != got.At(i).LeftGRF+got.At(i).RightGRF {
				t.Errorf("At(%d) total not recomputed from smoothed sides", i)
			}
		}

		// Receiver untouched.
		if s.At(0).LeftGRF != 0 {
			t.Error("Smoothed mutated the receiver")
		}
	})
}
