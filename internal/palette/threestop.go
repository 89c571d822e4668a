// Package palette maps valence to colours: the particle tint, the mesh
// gradient behind the field and the cross-fade weights of background
// images. Valence 0 is the cool end, 1 the warm end.
package palette

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/lucasb-eyer/go-colorful"
)

// Space selects how ThreeStop blends between anchors.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSV
)

// ParseSpace maps a config name to a Space; unknown names are RGB.
func ParseSpace(name string) Space {
	if name == "hsv" {
		return SpaceHSV
	}
	return SpaceRGB
}

// ThreeStop blends piecewise between a cool, a neutral and a warm anchor.
type ThreeStop struct {
	Cool    colorful.Color
	Neutral colorful.Color
	Warm    colorful.Color
	Space   Space
}

// ParticleTint is the pale sky / lavender / peach ramp used for particles.
func ParticleTint(space Space) ThreeStop {
	return ThreeStop{
		Cool:    colorful.Color{R: 200 / 255.0, G: 235 / 255.0, B: 255 / 255.0},
		Neutral: colorful.Color{R: 245 / 255.0, G: 230 / 255.0, B: 255 / 255.0},
		Warm:    colorful.Color{R: 255 / 255.0, G: 220 / 255.0, B: 200 / 255.0},
		Space:   space,
	}
}

// At returns the opaque colour for valence v.
func (s ThreeStop) At(v float64) color.NRGBA {
	a, b, t := s.segment(v)
	if s.Space == SpaceHSV {
		return blendHSV(a, b, t)
	}
	return toNRGBA(a.BlendRgb(b, t))
}

// segment picks the half-interval holding v and the local blend factor.
func (s ThreeStop) segment(v float64) (a, b colorful.Color, t float64) {
	v = clamp01(v)
	if v < 0.5 {
		return s.Cool, s.Neutral, v * 2
	}
	return s.Neutral, s.Warm, (v - 0.5) * 2
}

// blendHSV interpolates hue along the shorter arc and s, v linearly.
func blendHSV(a, b colorful.Color, t float64) color.NRGBA {
	if t <= 0 {
		return toNRGBA(a)
	}
	if t >= 1 {
		return toNRGBA(b)
	}
	ar, ag, ab := a.RGB255()
	br, bg, bb := b.RGB255()
	h1, s1, v1 := colorconv.RGBToHSV(ar, ag, ab)
	h2, s2, v2 := colorconv.RGBToHSV(br, bg, bb)

	dh := h2 - h1
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}
	h := math.Mod(h1+dh*t+360, 360)

	r, g, bl, err := colorconv.HSVToRGB(h, s1+(s2-s1)*t, v1+(v2-v1)*t)
	if err != nil {
		return toNRGBA(a.BlendRgb(b, t))
	}
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
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
