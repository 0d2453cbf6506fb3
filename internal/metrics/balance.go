package metrics

import (
	"math"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
)

// chiSquared95 is the chi-squared value for 2 degrees of freedom at the
// 95% confidence level, used for the confidence-ellipse sway area.
const chiSquared95 = 5.991

// copPoint is a CoP location with its sample timestamp.
type copPoint struct {
	tsMs int64
	p    force.Point
}

// computeBalance derives posturographic metrics from the combined CoP
// trajectory: excursion range, path length and mean velocity, 95%
// confidence ellipse area, and a 0-100 stability index.
func (e *Engine) computeBalance(series *force.Series) (Result, error) {
	samples := series.Samples()

	points := make([]copPoint, 0, len(samples))
	for _, s := range samples {
		if cop := s.CombinedCoP(); cop != nil {
			points = append(points, copPoint{tsMs: s.TimestampMs, p: *cop})
		}
	}
	if len(points) < e.config.MinSamples {
		return nil, &force.InsufficientDataError{
			Samples:    len(points),
			Required:   e.config.MinSamples,
			DurationMs: series.DurationMs(),
		}
	}

	durationSec := float64(points[len(points)-1].tsMs-points[0].tsMs) / 1000
	if durationSec <= 0 {
		return nil, &force.InsufficientDataError{Samples: len(points), Required: e.config.MinSamples}
	}

	minX, maxX := points[0].p.X, points[0].p.X
	minY, maxY := points[0].p.Y, points[0].p.Y
	var pathLen float64
	speeds := make([]float64, 0, len(points)-1)
	for i, pt := range points {
		minX = math.Min(minX, pt.p.X)
		maxX = math.Max(maxX, pt.p.X)
		minY = math.Min(minY, pt.p.Y)
		maxY = math.Max(maxY, pt.p.Y)

		if i == 0 {
			continue
		}
		step := pt.p.DistanceTo(points[i-1].p)
		pathLen += step
		if dt := float64(pt.tsMs-points[i-1].tsMs) / 1000; dt > 0 {
			speeds = append(speeds, step/dt)
		}
	}

	r := Result{}
	r.set(KeyCoPRangeMm, math.Hypot(maxX-minX, maxY-minY))
	r.set(KeyCoPPathMm, pathLen)
	r.set(KeyCoPVelocityMmps, pathLen/durationSec)
	r.set(KeyCoPAreaMm2, ellipseArea(points))
	r.set(KeyStabilityIndex, stabilityIndex(speeds))
	r.set(KeyMeanAsymmetryPct, meanAsymmetry(samples))
	return r, nil
}

// ellipseArea returns the area of the 95% confidence ellipse of the CoP
// point cloud, the standard posturographic sway-area estimate.
func ellipseArea(points []copPoint) float64 {
	n := float64(len(points))
	var meanX, meanY float64
	for _, pt := range points {
		meanX += pt.p.X
		meanY += pt.p.Y
	}
	meanX /= n
	meanY /= n

	var varX, varY, covXY float64
	for _, pt := range points {
		dx := pt.p.X - meanX
		dy := pt.p.Y - meanY
		varX += dx * dx
		varY += dy * dy
		covXY += dx * dy
	}
	varX /= n
	varY /= n
	covXY /= n

	det := varX*varY - covXY*covXY
	if det <= 0 {
		return 0
	}
	return math.Pi * chiSquared95 * math.Sqrt(det)
}

// stabilityIndex maps the variability of the CoP path velocity onto a
// 0-100 scale. A perfectly steady sway speed scores 100; the score decays
// with the coefficient of variation of the per-step speeds.
func stabilityIndex(speeds []float64) float64 {
	if len(speeds) < 2 {
		return 100
	}

	var mean float64
	for _, v := range speeds {
		mean += v
	}
	mean /= float64(len(speeds))
	if mean <= 0 {
		return 100
	}

	var variance float64
	for _, v := range speeds {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(speeds))

	cv := math.Sqrt(variance) / mean
	return math.Max(0, math.Min(100, 100/(1+cv)))
}
