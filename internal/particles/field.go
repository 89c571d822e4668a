package particles

import (
	"math"
	"math/rand"
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/palette"
)

// Field is the simulation of one mounted view. It has a single writer, the
// frame callback. Step builds each frame in a private buffer and copies it
// into the published snapshot under mu, so readers on other goroutines
// using Latest or LatestInto never observe a half-written frame.
type Field struct {
	profile config.Profile
	pivot   float64
	tint    palette.ThreeStop

	rng   *rand.Rand
	noise opensimplex.Noise

	pool   []Particle
	seeded bool

	work []Sample

	mu        sync.RWMutex
	published []Sample
	meta      Frame

	t float64
}

// Option configures a Field.
type Option func(*Field)

// WithPivot sets the heaviness at which vertical drift is zero.
func WithPivot(pivot float64) Option {
	return func(f *Field) { f.pivot = clamp01(pivot) }
}

// WithTint sets the valence colour ramp.
func WithTint(t palette.ThreeStop) Option {
	return func(f *Field) { f.tint = t }
}

// NewField allocates the pool and its sample buffers. Particles are placed
// on the first step that has a valid viewport.
func NewField(p config.Profile, seed int64, opts ...Option) *Field {
	f := &Field{
		profile: p,
		pivot:   0.5,
		tint:    palette.ParticleTint(palette.SpaceRGB),
		rng:     rand.New(rand.NewSource(seed)),
		noise:   opensimplex.New(seed),
		pool:    make([]Particle, p.MaxParticles),
	}
	f.work = make([]Sample, 0, p.MaxParticles)
	f.published = make([]Sample, 0, p.MaxParticles)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Profile returns the tuning in use.
func (f *Field) Profile() config.Profile { return f.profile }

// Time is the simulated time in seconds.
func (f *Field) Time() float64 { return f.t }

// Latest returns a copy of the last published frame. The samples are
// freshly allocated; render loops should prefer LatestInto.
func (f *Field) Latest() Frame { return f.LatestInto(nil) }

// LatestInto copies the last published frame into dst, growing it as
// needed, and returns a Frame whose Samples alias dst. It is safe to call
// from any goroutine.
func (f *Field) LatestInto(dst []Sample) Frame {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fr := f.meta
	fr.Samples = append(dst[:0], f.published...)
	return fr
}

func (f *Field) publish(fr Frame) {
	f.mu.Lock()
	f.published = append(f.published[:0], fr.Samples...)
	f.meta = Frame{Active: fr.Active, Time: fr.Time}
	f.mu.Unlock()
}

// Particles returns a copy of the pool.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.pool))
	copy(out, f.pool)
	return out
}

// Reset rewinds simulated time. The pool keeps its positions.
func (f *Field) Reset() { f.t = 0 }

func (f *Field) seed(vp Viewport) {
	for i := range f.pool {
		f.pool[i] = newParticle(f.rng, vp)
	}
	f.seeded = true
}

// Step advances every particle by dt seconds and publishes a new frame.
// The returned frame's Samples are only valid until the next Step.
// A non-positive or non-finite dt, or an empty viewport, leaves the field
// untouched and returns the previous frame with ok false.
func (f *Field) Step(dt float64, lv emotion.Levels, vp Viewport) (Frame, bool) {
	if !(dt > 0) || math.IsInf(dt, 0) || !vp.Valid() {
		return f.Latest(), false
	}
	if dt > config.MaxFrameStep {
		dt = config.MaxFrameStep
	}
	if !f.seeded {
		f.seed(vp)
	}

	lv = lv.Clamp()
	f.t += dt
	t := f.t
	p := f.profile

	zSpeed := 0.1 + lv.Energy*p.ZSpeedGain
	speedMul := 0.2 + lv.Energy*1.2
	gravity := (lv.Heaviness - f.pivot) * p.Gravity
	chaos := lv.Chaos
	chaosAmount := chaos * p.ChaosAmplitude

	baseRadius := p.RadiusMin + lv.Intensity*p.RadiusRange
	active := ActiveCount(p, lv.Intensity)
	tint := f.tint.At(lv.Valence)

	out := f.work[:0]

	for i := range f.pool {
		pt := &f.pool[i]

		// Depth: energy sets the speed, chaos only varies its timing.
		timing := 1 + math.Sin(t*2+pt.Phase)*chaos*p.TimingJitter
		pt.Z -= zSpeed * dt * pt.BaseSpeed * timing

		// Vertical drift. The irregularity only flips the direction once
		// chaos*DirectionalJitter exceeds 1.
		irregular := 1 + math.Sin(t*0.7+pt.NoiseOffsetY)*chaos*p.DirectionalJitter
		pt.Y += gravity * dt * speedMul * irregular
		pt.Y += math.Sin(t*2+pt.NoiseOffsetY) * chaos * p.WobbleY * dt
		pt.Y = wrap(pt.Y, vp.Height)

		// Horizontal wandering is chaos only.
		pt.X += math.Sin(t*1.5+pt.NoiseOffsetX) * chaos * p.WobbleX * dt

		// Respawn last so the fresh position is inside the box this tick.
		if pt.Z <= config.NearPlane {
			pt.respawn(f.rng, vp)
		}

		if i >= active {
			continue
		}

		nx, ny := f.overlay(pt, t, chaos, chaosAmount)
		sx, sy, scale := Project(pt.X+nx, pt.Y+ny, pt.Z, vp)

		alpha := Flicker(p, DepthFade(pt.Z), t, pt.Phase)
		c := tint
		c.A = uint8(math.Round(alpha * 255))

		out = append(out, Sample{
			X:      sx,
			Y:      sy,
			Radius: baseRadius * scale,
			Depth:  pt.Z,
			Color:  c,
		})
	}

	f.work = out
	fr := Frame{Samples: out, Active: len(out), Time: t}
	f.publish(fr)

	return fr, true
}

// overlay is the chaos-scaled positional noise: a smooth sin/cos pair, a
// faster irregular sine and an OpenSimplex erratic term. It is exactly
// zero when chaos is zero.
func (f *Field) overlay(pt *Particle, t, chaos, amount float64) (nx, ny float64) {
	if amount == 0 {
		return 0, 0
	}
	baseX := math.Sin(t + pt.Phase + pt.NoiseOffsetX)
	baseY := math.Cos(t + pt.Phase + pt.NoiseOffsetY)
	irregular := math.Sin(t*2+pt.Phase*3) * chaos
	erratic := f.noise.Eval2(t*3+pt.NoiseOffsetX, pt.Phase*7) * chaos * 0.3

	nx = (baseX + irregular + erratic) * amount
	ny = (baseY + irregular*0.7 - erratic) * amount
	return nx, ny
}
