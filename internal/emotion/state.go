// Package emotion holds the five-dimension emotional state and the store
// that owns the committed copy of it.
package emotion

import (
	"math"
	"time"
)

// Levels are the five self-reported scalars, each in [0,1].
//
// Heaviness runs from light/floating (0) to heavy/sinking (1). Chaos runs
// from stable (0) to chaotic (1); stability is 1-Chaos.
type Levels struct {
	Intensity float64
	Valence   float64
	Heaviness float64
	Chaos     float64
	Energy    float64
}

// State is a committed snapshot.
type State struct {
	Levels
	LastUpdated time.Time
}

// Neutral is the cold-start state.
func Neutral() Levels {
	return Levels{
		Intensity: 0.5,
		Valence:   0.5,
		Heaviness: 0.5,
		Chaos:     0.0,
		Energy:    0.5,
	}
}

// Clamp01 limits v to [0,1]. NaN reads as 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp returns l with every scalar limited to [0,1].
func (l Levels) Clamp() Levels {
	return Levels{
		Intensity: Clamp01(l.Intensity),
		Valence:   Clamp01(l.Valence),
		Heaviness: Clamp01(l.Heaviness),
		Chaos:     Clamp01(l.Chaos),
		Energy:    Clamp01(l.Energy),
	}
}

// Stability is the inverse framing of Chaos.
func (l Levels) Stability() float64 {
	return 1 - Clamp01(l.Chaos)
}

// Partial names the fields an update changes. Nil fields are left alone.
type Partial struct {
	Intensity *float64
	Valence   *float64
	Heaviness *float64
	Chaos     *float64
	Energy    *float64
}

// Float returns a pointer to v, for building a Partial.
func Float(v float64) *float64 {
	return &v
}

// All returns a Partial that sets every field of l.
func All(l Levels) Partial {
	return Partial{
		Intensity: Float(l.Intensity),
		Valence:   Float(l.Valence),
		Heaviness: Float(l.Heaviness),
		Chaos:     Float(l.Chaos),
		Energy:    Float(l.Energy),
	}
}

// apply merges p into l. NaN values are dropped so the previous value
// survives; everything else is clamped.
func (l Levels) apply(p Partial) Levels {
	merge := func(dst *float64, src *float64) {
		if src == nil || math.IsNaN(*src) {
			return
		}
		*dst = Clamp01(*src)
	}
	merge(&l.Intensity, p.Intensity)
	merge(&l.Valence, p.Valence)
	merge(&l.Heaviness, p.Heaviness)
	merge(&l.Chaos, p.Chaos)
	merge(&l.Energy, p.Energy)
	return l.Clamp()
}

// Empty reports whether p changes nothing.
func (p Partial) Empty() bool {
	return p.Intensity == nil && p.Valence == nil && p.Heaviness == nil &&
		p.Chaos == nil && p.Energy == nil
}
