package particles

import (
	"math"

	"github.com/iburimskiy/emotional-mirror/internal/config"
)

// Project maps a world point at depth z onto the viewport centre with a
// 1/z perspective. It returns the screen point and the scale applied.
func Project(x, y, z float64, vp Viewport) (sx, sy, scale float64) {
	scale = 1 / z
	sx = x*scale + vp.Width/2
	sy = y*scale + vp.Height/2
	return sx, sy, scale
}

// DepthFade is 1 in the middle of the depth range and falls linearly to 0
// within config.FadeZone of either plane.
func DepthFade(z float64) float64 {
	alpha := 1.0
	if z > config.FarPlane-config.FadeZone {
		alpha = (config.FarPlane - z) / config.FadeZone
	}
	if z < config.NearPlane+config.FadeZone {
		alpha = (z - config.NearPlane) / config.FadeZone
	}
	return clamp01(alpha)
}

// Flicker applies the per-particle blink to a faded alpha and floors the
// result so particles never vanish mid-flight.
func Flicker(p config.Profile, alpha, t, phase float64) float64 {
	blink := p.BlinkBase + p.BlinkAmp*math.Sin(t*p.BlinkRate+phase)
	return math.Min(1, math.Max(p.AlphaFloor, alpha*blink))
}

// wrap folds y back into [-h, h].
func wrap(y, h float64) float64 {
	span := 2 * h
	if y > h {
		y -= span * math.Ceil((y-h)/span)
	} else if y < -h {
		y += span * math.Ceil((-h-y)/span)
	}
	return y
}
