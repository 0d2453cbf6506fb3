// Package simulate produces synthetic raw load-cell streams for the
// supported test protocols. The generator takes an explicitly seeded
// random source from the caller instead of ambient global randomness, so
// the same seed always yields the same frames.
package simulate

import (
	"math"
	"math/rand"

	"github.com/ahmetveysel43/frce-sub004/internal/force"
)

// WithSampleRate sets the nominal acquisition rate of generated frames.
func WithSampleRate(rateHz float64) func(*Generator) {
	return func(g *Generator) {
		if rateHz > 0 {
			g.rateHz = rateHz
		}
	}
}

// WithNoise sets the per-cell Gaussian noise amplitude in Newtons.
func WithNoise(noiseN float64) func(*Generator) {
	return func(g *Generator) {
		if noiseN >= 0 {
			g.noiseN = noiseN
		}
	}
}

// WithGeometry sets the platform footprint used to place cell loads.
func WithGeometry(geometry force.PlatformGeometry) func(*Generator) {
	return func(g *Generator) {
		g.geometry = geometry
	}
}

// Generator builds raw frames for synthetic test recordings.
type Generator struct {
	rng      *rand.Rand
	rateHz   float64
	noiseN   float64
	geometry force.PlatformGeometry
}

// New creates a Generator around the given random source. Defaults:
// 1000 Hz, 2 N cell noise, stock platform geometry.
func New(rng *rand.Rand, options ...func(*Generator)) *Generator {
	g := Generator{
		rng:      rng,
		rateHz:   1000,
		noiseN:   2,
		geometry: force.DefaultGeometry(),
	}

	for _, option := range options {
		option(&g)
	}

	return &g
}

// CMJ generates a countermovement jump recording: quiet standing,
// unloading dip, braking, propulsion to take-off, flight, landing spike,
// and a quiet tail.
func (g *Generator) CMJ(bodyWeightN float64, quietMs, flightMs int) []force.RawFrame {
	const (
		unloadMs  = 300
		propelMs  = 250
		landingMs = 400
		tailMs    = 500
	)

	var profile []float64
	appendPhase(&profile, g.stepsFor(quietMs), func(u float64) float64 { return bodyWeightN })
	appendPhase(&profile, g.stepsFor(unloadMs), func(u float64) float64 {
		// Dip to 60% body weight, then braking back up to 150%.
		if u < 0.5 {
			return bodyWeightN * (1 - 0.8*u)
		}
		return bodyWeightN * (0.6 + 1.8*(u-0.5))
	})
	appendPhase(&profile, g.stepsFor(propelMs), func(u float64) float64 {
		// Peak at 220% body weight, then unload to zero at take-off.
		if u < 0.6 {
			return bodyWeightN * (1.5 + 0.7*u/0.6)
		}
		return bodyWeightN * 2.2 * (1 - (u-0.6)/0.4)
	})
	appendPhase(&profile, g.stepsFor(flightMs), func(u float64) float64 { return 2 })
	appendPhase(&profile, g.stepsFor(landingMs), func(u float64) float64 {
		return bodyWeightN * (2.5 - 1.5*u)
	})
	appendPhase(&profile, g.stepsFor(tailMs), func(u float64) float64 { return bodyWeightN })

	return g.frames(profile)
}

// Isometric generates a mid-thigh-pull style recording: quiet standing, a
// ramp to peakN, a hold, and release back to body weight.
func (g *Generator) Isometric(bodyWeightN, peakN float64, quietMs, rampMs, holdMs int) []force.RawFrame {
	const releaseMs = 300

	var profile []float64
	appendPhase(&profile, g.stepsFor(quietMs), func(u float64) float64 { return bodyWeightN })
	appendPhase(&profile, g.stepsFor(rampMs), func(u float64) float64 {
		return bodyWeightN + (peakN-bodyWeightN)*math.Sin(u*math.Pi/2)
	})
	appendPhase(&profile, g.stepsFor(holdMs), func(u float64) float64 { return peakN })
	appendPhase(&profile, g.stepsFor(releaseMs), func(u float64) float64 {
		return peakN - (peakN-bodyWeightN)*u
	})

	return g.frames(profile)
}

// Balance generates a quiet-standing recording with a random-walk CoP sway
// bounded by swayMm.
func (g *Generator) Balance(bodyWeightN float64, durationMs int, swayMm float64) []force.RawFrame {
	profile := make([]float64, g.stepsFor(durationMs))
	for i := range profile {
		profile[i] = bodyWeightN
	}

	frames := make([]force.RawFrame, 0, len(profile))
	dtMs := 1000 / g.rateHz
	var copX, copY float64
	for i, total := range profile {
		copX = clamp(copX+g.rng.NormFloat64()*swayMm/20, -swayMm, swayMm)
		copY = clamp(copY+g.rng.NormFloat64()*swayMm/20, -swayMm, swayMm)
		frames = append(frames, g.frame(int64(float64(i)*dtMs), total, copX, copY))
	}
	return frames
}

// frames converts a total-force profile into raw frames with centred CoP.
func (g *Generator) frames(profile []float64) []force.RawFrame {
	out := make([]force.RawFrame, 0, len(profile))
	dtMs := 1000 / g.rateHz
	for i, total := range profile {
		out = append(out, g.frame(int64(float64(i)*dtMs), total, 0, 0))
	}
	return out
}

// frame distributes a total force across the eight cells: an even split
// between platforms with a small random imbalance, then a bilinear spread
// over each platform's four corners to realise the requested CoP.
func (g *Generator) frame(tsMs int64, totalN, copXMm, copYMm float64) force.RawFrame {
	noise := g.noiseN
	if totalN < 10 {
		noise = math.Min(noise, 0.5) // keep flight phases below the threshold
	}

	leftShare := clamp(0.5+g.rng.NormFloat64()*0.02, 0.3, 0.7)
	left := g.splitCells(totalN*leftShare, copXMm, copYMm, noise)
	right := g.splitCells(totalN*(1-leftShare), copXMm, copYMm, noise)

	channels := make([]float64, 0, force.NumChannels)
	channels = append(channels, left[:]...)
	channels = append(channels, right[:]...)

	return force.RawFrame{
		Channels:     channels,
		TimestampMs:  tsMs,
		SampleRateHz: g.rateHz,
	}
}

// splitCells spreads a platform force over the four corner cells so the
// weighted centroid lands at (copX, copY), plus per-cell noise.
func (g *Generator) splitCells(platformN, copXMm, copYMm, noiseN float64) [4]float64 {
	fx := clamp(0.5+copXMm/g.geometry.WidthMm, 0, 1)  // share on the right cells
	fy := clamp(0.5+copYMm/g.geometry.LengthMm, 0, 1) // share on the front cells

	cells := [4]float64{
		platformN * fy * (1 - fx),       // front-left
		platformN * fy * fx,             // front-right
		platformN * (1 - fy) * (1 - fx), // rear-left
		platformN * (1 - fy) * fx,       // rear-right
	}
	for i := range cells {
		cells[i] = math.Max(0, cells[i]+g.rng.NormFloat64()*noiseN)
	}
	return cells
}

func (g *Generator) stepsFor(durationMs int) int {
	return int(float64(durationMs) * g.rateHz / 1000)
}

// appendPhase samples fn over [0,1) in steps increments.
func appendPhase(profile *[]float64, steps int, fn func(u float64) float64) {
	for i := 0; i < steps; i++ {
		*profile = append(*profile, math.Max(0, fn(float64(i)/float64(steps))))
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
