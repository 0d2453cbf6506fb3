package force

// NumChannels is the number of load-cell channels in a raw frame:
// four cells per platform, left platform first.
const NumChannels = 8

// Load-cell channel order within a RawFrame. Channels 0-3 belong to the
// left platform, 4-7 to the right platform, each platform in the order
// front-left, front-right, rear-left, rear-right when looking down at the
// platform from above.
const (
	ChanLeftFrontLeft = iota
	ChanLeftFrontRight
	ChanLeftRearLeft
	ChanLeftRearRight
	ChanRightFrontLeft
	ChanRightFrontRight
	ChanRightRearLeft
	ChanRightRearRight
)

// RawFrame is one acquisition snapshot as delivered by the device layer:
// eight load-cell readings in Newtons plus a monotonic timestamp. The
// sampling rate is optional; zero means "not reported by the device".
type RawFrame struct {
	Channels     []float64 // Load-cell readings, NumChannels entries
	TimestampMs  int64     // Monotonic timestamp in milliseconds
	SampleRateHz float64   // Nominal acquisition rate, 0 if unknown
}

// PlatformGeometry describes the physical footprint of a single platform.
// Load cells sit at the four corners, (±Width/2, ±Length/2) from centre.
type PlatformGeometry struct {
	WidthMm  float64 `yaml:"widthMm" json:"widthMm"`   // Medio-lateral extent in mm
	LengthMm float64 `yaml:"lengthMm" json:"lengthMm"` // Anterior-posterior extent in mm
}

// DefaultGeometry returns the stock 400x600 mm platform footprint.
func DefaultGeometry() PlatformGeometry {
	return PlatformGeometry{WidthMm: 400, LengthMm: 600}
}

// Decoder converts raw load-cell frames into ForceSamples using a fixed
// platform geometry. A zero-value geometry is replaced with the default.
type Decoder struct {
	geometry PlatformGeometry
}

// NewDecoder creates a Decoder for platforms of the given footprint.
func NewDecoder(geometry PlatformGeometry) *Decoder {
	if geometry.WidthMm <= 0 || geometry.LengthMm <= 0 {
		geometry = DefaultGeometry()
	}
	return &Decoder{geometry: geometry}
}

// Geometry returns the platform footprint the decoder was built with.
func (d *Decoder) Geometry() PlatformGeometry {
	return d.geometry
}

// Decode converts a raw frame into a Sample. Negative cell readings are
// sensor noise around the zero point and are clamped to 0 before
// summation, so per-platform GRF is the plain sum of its four cells.
// Returns a ChannelCountError when the frame does not carry exactly
// NumChannels readings.
func (d *Decoder) Decode(frame RawFrame) (Sample, error) {
	if len(frame.Channels) != NumChannels {
		return Sample{}, &ChannelCountError{Got: len(frame.Channels)}
	}

	var left, right [4]float64
	for i := 0; i < 4; i++ {
		left[i] = max(0, frame.Channels[i])
		right[i] = max(0, frame.Channels[i+4])
	}

	leftGRF := left[0] + left[1] + left[2] + left[3]
	rightGRF := right[0] + right[1] + right[2] + right[3]

	return NewSample(
		frame.TimestampMs,
		leftGRF, rightGRF,
		d.centerOfPressure(left, leftGRF),
		d.centerOfPressure(right, rightGRF),
	), nil
}

// centerOfPressure computes the weighted centroid of the four corner cells.
// An unloaded platform has no defined CoP; by convention it is reported as
// the platform origin rather than an error, matching the device calibration
// output.
func (d *Decoder) centerOfPressure(cells [4]float64, total float64) *Point {
	if total <= 0 {
		return &Point{}
	}

	hw := d.geometry.WidthMm / 2
	hl := d.geometry.LengthMm / 2

	// Corner positions in channel order: front-left, front-right,
	// rear-left, rear-right.
	x := (-hw*cells[0] + hw*cells[1] - hw*cells[2] + hw*cells[3]) / total
	y := (hl*cells[0] + hl*cells[1] - hl*cells[2] - hl*cells[3]) / total

	return &Point{X: x, Y: y}
}
