// Package motion eases displayed emotional levels toward their committed
// values so a passive view glides instead of jumping after a commit.
package motion

import (
	"sync"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

// settleFactor relates a critically damped spring's angular frequency to
// the time it takes to come within ~1% of its target.
const settleFactor = 4.6

// Follower drives five critically damped springs, one per scalar.
type Follower struct {
	mu     sync.Mutex
	omega  float64
	pos    [5]float64
	vel    [5]float64
	target [5]float64

	// spring coefficients depend on dt; cache the last one
	lastDt float64
	spring harmonica.Spring
}

// NewFollower starts at l and settles on new targets in about settle
// seconds.
func NewFollower(l emotion.Levels, settle float64) *Follower {
	if settle <= 0 {
		settle = 1
	}
	f := &Follower{omega: settleFactor / settle}
	f.Snap(l)
	return f
}

// SetTarget changes where the springs are heading.
func (f *Follower) SetTarget(l emotion.Levels) {
	f.mu.Lock()
	f.target = pack(l.Clamp())
	f.mu.Unlock()
}

// Target returns the current target.
func (f *Follower) Target() emotion.Levels {
	f.mu.Lock()
	defer f.mu.Unlock()
	return unpack(f.target)
}

// Snap jumps straight to l with no velocity.
func (f *Follower) Snap(l emotion.Levels) {
	f.mu.Lock()
	f.pos = pack(l.Clamp())
	f.target = f.pos
	f.vel = [5]float64{}
	f.mu.Unlock()
}

// Step advances the springs by dt seconds and returns the displayed
// levels. A non-positive dt only reads.
func (f *Follower) Step(dt float64) emotion.Levels {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dt > 0 {
		if dt != f.lastDt {
			f.spring = harmonica.NewSpring(dt, f.omega, 1.0)
			f.lastDt = dt
		}
		for i := range f.pos {
			f.pos[i], f.vel[i] = f.spring.Update(f.pos[i], f.vel[i], f.target[i])
		}
	}
	return unpack(f.pos).Clamp()
}

// Levels returns the displayed levels without advancing.
func (f *Follower) Levels() emotion.Levels {
	return f.Step(0)
}

func pack(l emotion.Levels) [5]float64 {
	return [5]float64{l.Intensity, l.Valence, l.Heaviness, l.Chaos, l.Energy}
}

func unpack(v [5]float64) emotion.Levels {
	return emotion.Levels{Intensity: v[0], Valence: v[1], Heaviness: v[2], Chaos: v[3], Energy: v[4]}
}
