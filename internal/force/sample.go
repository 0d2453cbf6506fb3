package force

import "math"

// BalancedAsymmetryPct is the asymmetry index below which a sample is
// considered balanced between platforms.
const BalancedAsymmetryPct = 10.0

// Point is a 2D center-of-pressure coordinate in millimetres, relative to
// the platform centre. X is medio-lateral, Y is anterior-posterior.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Sample is an immutable per-timestamp force record for a dual-platform
// measurement. Ground reaction forces are in Newtons and never negative;
// NewSample clamps negative inputs to zero at construction. Center of
// pressure is only meaningful while the corresponding platform is loaded,
// so CoP fields are nil when unknown.
type Sample struct {
	TimestampMs int64   `json:"timestampMs"`        // Milliseconds since test start (or device epoch)
	LeftGRF     float64 `json:"leftGRF"`            // Left platform vertical GRF in Newtons
	RightGRF    float64 `json:"rightGRF"`           // Right platform vertical GRF in Newtons
	TotalGRF    float64 `json:"totalGRF"`           // LeftGRF + RightGRF
	LeftCoP     *Point  `json:"leftCoP,omitempty"`  // Left platform CoP in mm, nil if unknown
	RightCoP    *Point  `json:"rightCoP,omitempty"` // Right platform CoP in mm, nil if unknown
}

// NewSample builds a Sample from per-side forces, clamping negative force
// readings to zero. CoP points may be nil when the platform reported no
// usable pressure location.
func NewSample(timestampMs int64, leftGRF, rightGRF float64, leftCoP, rightCoP *Point) Sample {
	leftGRF = math.Max(0, leftGRF)
	rightGRF = math.Max(0, rightGRF)
	return Sample{
		TimestampMs: timestampMs,
		LeftGRF:     leftGRF,
		RightGRF:    rightGRF,
		TotalGRF:    leftGRF + rightGRF,
		LeftCoP:     leftCoP,
		RightCoP:    rightCoP,
	}
}

// AsymmetryIndex returns |left-right| / (left+right) * 100. An unloaded
// sample (total force <= 0) has no meaningful asymmetry and reports 0.
func (s Sample) AsymmetryIndex() float64 {
	if s.TotalGRF <= 0 {
		return 0
	}
	return math.Abs(s.LeftGRF-s.RightGRF) / s.TotalGRF * 100
}

// LeftLoadPct returns the share of total force on the left platform.
// An unloaded sample reports an even 50/50 split.
func (s Sample) LeftLoadPct() float64 {
	if s.TotalGRF <= 0 {
		return 50
	}
	return s.LeftGRF / s.TotalGRF * 100
}

// RightLoadPct returns the share of total force on the right platform.
func (s Sample) RightLoadPct() float64 {
	if s.TotalGRF <= 0 {
		return 50
	}
	return s.RightGRF / s.TotalGRF * 100
}

// IsBalanced reports whether the sample's asymmetry index is below
// BalancedAsymmetryPct.
func (s Sample) IsBalanced() bool {
	return s.AsymmetryIndex() < BalancedAsymmetryPct
}

// CombinedCoP returns the force-weighted average of the two platform CoP
// points, or nil when either side's CoP is unknown or the sample carries
// no force. The combined point is expressed in the same platform-relative
// millimetre frame as the per-side points.
func (s Sample) CombinedCoP() *Point {
	if s.LeftCoP == nil || s.RightCoP == nil || s.TotalGRF <= 0 {
		return nil
	}
	return &Point{
		X: (s.LeftCoP.X*s.LeftGRF + s.RightCoP.X*s.RightGRF) / s.TotalGRF,
		Y: (s.LeftCoP.Y*s.LeftGRF + s.RightCoP.Y*s.RightGRF) / s.TotalGRF,
	}
}
