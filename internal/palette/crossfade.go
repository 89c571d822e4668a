package palette

import (
	"image/color"
	"math"
)

// Strategy selects how the background follows valence.
type Strategy int

const (
	StrategyGradient Strategy = iota
	StrategyImages
)

// ParseStrategy maps a config name to a Strategy; unknown names are
// gradient.
func ParseStrategy(name string) Strategy {
	if name == "images" {
		return StrategyImages
	}
	return StrategyGradient
}

var anchors = [3]float64{0, 0.5, 1}

// AnchorValence is the valence at which image i is fully opaque.
func AnchorValence(i int) float64 {
	if i < 0 || i >= len(anchors) {
		return 0.5
	}
	return anchors[i]
}

// Weights returns the opacity of the cool, neutral and warm images. Each
// peaks at its anchor and falls linearly to zero at the neighbouring
// anchors, so the weights always sum to 1.
func Weights(v float64) [3]float64 {
	v = clamp01(v)
	var w [3]float64
	for i, a := range anchors {
		w[i] = math.Max(0, 1-math.Abs(v-a)/0.5)
	}
	return w
}

// Sampler recomputes background colours at a fixed rate while valence
// keeps moving, so passive displays animate without recomputing every
// frame.
type Sampler struct {
	mesh     *Mesh
	tint     ThreeStop
	interval float64

	acc     float64
	primed  bool
	valence float64
	colors  [9]color.NRGBA
	weights [3]float64
	solid   color.NRGBA
}

// NewSampler returns a sampler refreshing hz times per second.
func NewSampler(mesh *Mesh, tint ThreeStop, hz float64) *Sampler {
	interval := 0.0
	if hz > 0 {
		interval = 1 / hz
	}
	return &Sampler{mesh: mesh, tint: tint, interval: interval}
}

// Advance accumulates dt and refreshes the cached colours when the
// interval has elapsed. The first call always refreshes. It reports
// whether a refresh happened.
func (s *Sampler) Advance(dt, valence float64) bool {
	s.acc += dt
	if s.primed && s.acc < s.interval {
		return false
	}
	s.acc = 0
	s.primed = true
	s.valence = clamp01(valence)
	s.colors = s.mesh.Colors(s.valence)
	s.weights = Weights(s.valence)
	s.solid = s.mesh.Solid(s.valence)
	return true
}

// Colors are the last sampled mesh colours.
func (s *Sampler) Colors() [9]color.NRGBA { return s.colors }

// Weights are the last sampled image weights.
func (s *Sampler) Weights() [3]float64 { return s.weights }

// Solid is the fallback colour for the last sample.
func (s *Sampler) Solid() color.NRGBA { return s.solid }

// Valence is the valence of the last sample.
func (s *Sampler) Valence() float64 { return s.valence }

// Tint is the particle colour for valence; it is not throttled.
func (s *Sampler) Tint(valence float64) color.NRGBA { return s.tint.At(valence) }
