// Package particles advances a fixed pool of pseudo-3D particles from the
// five emotional scalars and projects them to screen-space samples.
//
// Depth z runs from the far plane (3.0) toward the viewer; a particle that
// reaches the near plane (0.1) is recycled at the far plane with a fresh
// x, y. The pool never grows or shrinks after the first frame.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/emotional-mirror/internal/config"
)

// Particle is one element of the pool. BaseSpeed, Phase and the noise
// offsets are drawn once and never change.
type Particle struct {
	X, Y, Z float64

	BaseSpeed    float64
	Phase        float64
	NoiseOffsetX float64
	NoiseOffsetY float64
}

// Sample is what the renderer draws for one particle in one frame.
type Sample struct {
	X, Y   float64
	Radius float64
	Depth  float64
	Color  color.NRGBA
}

// Frame is one published set of samples.
type Frame struct {
	Samples []Sample
	Active  int
	Time    float64
}

// Viewport is the drawing area in pixels.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether the viewport can be projected onto.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && !math.IsInf(v.Width, 0) && !math.IsInf(v.Height, 0)
}

func newParticle(rng *rand.Rand, vp Viewport) Particle {
	return Particle{
		X:            (rng.Float64()*2 - 1) * vp.Width,
		Y:            (rng.Float64()*2 - 1) * vp.Height,
		Z:            1 + rng.Float64()*(config.FarPlane-1),
		BaseSpeed:    0.5 + rng.Float64()*0.5,
		Phase:        rng.Float64() * 2 * math.Pi,
		NoiseOffsetX: rng.Float64() * 100,
		NoiseOffsetY: rng.Float64() * 100,
	}
}

// respawn moves p back to the far plane at a random x, y over the doubled
// viewport extent.
func (p *Particle) respawn(rng *rand.Rand, vp Viewport) {
	p.Z = config.FarPlane
	p.X = (rng.Float64()*2 - 1) * vp.Width
	p.Y = (rng.Float64()*2 - 1) * vp.Height
}

// ActiveCount is how many particles are drawn at the given intensity.
func ActiveCount(p config.Profile, intensity float64) int {
	i := clamp01(intensity)
	n := int(math.Floor(float64(p.MinParticles) + float64(p.MaxParticles-p.MinParticles)*i))
	if n < 0 {
		return 0
	}
	if n > p.MaxParticles {
		return p.MaxParticles
	}
	return n
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
