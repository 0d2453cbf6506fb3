package force

import (
	"errors"
	"math"
	"testing"
)

func TestDecoder_ChannelCount(t *testing.T) {
	d := NewDecoder(DefaultGeometry())

	tests := []struct {
		name     string
		channels int
	}{
		{"too few", 7},
		{"too many", 9},
		{"empty", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Decode(RawFrame{Channels: make([]float64, tc.channels)})
			if !errors.Is(err, ErrInvalidChannelCount) {
				t.Fatalf("Decode error = %v, want ErrInvalidChannelCount", err)
			}

			var cce *ChannelCountError
			if !errors.As(err, &cce) {
				t.Fatalf("Decode error = %T, want *ChannelCountError", err)
			}
			if cce.Got != tc.channels {
				t.Errorf("ChannelCountError.Got = %d, want %d", cce.Got, tc.channels)
			}
		})
	}
}

func TestDecoder_ForceSums(t *testing.T) {
	d := NewDecoder(DefaultGeometry())

	frame := RawFrame{
		Channels:    []float64{10, 20, 30, 40, 5, 15, 25, 35},
		TimestampMs: 42,
	}
	s, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if s.TimestampMs != 42 {
		t.Errorf("TimestampMs = %d, want 42", s.TimestampMs)
	}
	// Per-platform GRF must be the exact sum of its four cells.
	if s.LeftGRF != 100 {
		t.Errorf("LeftGRF = %v, want 100", s.LeftGRF)
	}
	if s.RightGRF != 80 {
		t.Errorf("RightGRF = %v, want 80", s.RightGRF)
	}
	if s.TotalGRF != 180 {
		t.Errorf("TotalGRF = %v, want 180", s.TotalGRF)
	}
}

func TestDecoder_NegativeCellsClamped(t *testing.T) {
	d := NewDecoder(DefaultGeometry())

	s, err := d.Decode(RawFrame{Channels: []float64{-5, 10, -2, 10, -1, -1, -1, -1}})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if s.LeftGRF != 20 {
		t.Errorf("LeftGRF = %v, want 20 with negative cells clamped", s.LeftGRF)
	}
	if s.RightGRF != 0 {
		t.Errorf("RightGRF = %v, want 0", s.RightGRF)
	}
}

func TestDecoder_CenterOfPressure(t *testing.T) {
	d := NewDecoder(DefaultGeometry()) // 400x600, corners at (±200, ±300)

	tests := []struct {
		name     string
		channels []float64
		want     Point // left platform CoP
	}{
		{"even load is centred", []float64{25, 25, 25, 25, 0, 0, 0, 0}, Point{}},
		{"front-left corner", []float64{100, 0, 0, 0, 0, 0, 0, 0}, Point{X: -200, Y: 300}},
		{"rear-right corner", []float64{0, 0, 0, 100, 0, 0, 0, 0}, Point{X: 200, Y: -300}},
		{"front half", []float64{50, 50, 0, 0, 0, 0, 0, 0}, Point{X: 0, Y: 300}},
		{"unloaded platform reports origin", []float64{0, 0, 0, 0, 0, 0, 0, 0}, Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := d.Decode(RawFrame{Channels: tc.channels})
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if s.LeftCoP == nil {
				t.Fatal("LeftCoP = nil")
			}
			if math.Abs(s.LeftCoP.X-tc.want.X) > 1e-9 || math.Abs(s.LeftCoP.Y-tc.want.Y) > 1e-9 {
				t.Errorf("LeftCoP = %+v, want %+v", *s.LeftCoP, tc.want)
			}
		})
	}
}

func TestNewDecoder_ZeroGeometryFallsBack(t *testing.T) {
	d := NewDecoder(PlatformGeometry{})
	if d.Geometry() != DefaultGeometry() {
		t.Errorf("Geometry = %+v, want default", d.Geometry())
	}
}
