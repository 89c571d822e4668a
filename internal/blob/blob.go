// Package blob builds the three breathing contours drawn behind the
// editor's sliders: a core that swells with intensity, a flowing ring that
// turns with energy and a shell that jitters with chaos.
package blob

import (
	"math"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

// Points per ring before smoothing.
const Points = 12

// Point is a 2D screen coordinate.
type Point struct{ X, Y float64 }

// Layers is one frame of the blob.
type Layers struct {
	Core  []Point
	Flow  []Point
	Shell []Point

	FlowOpacity  float64
	ShellOpacity float64
	Highlight    float64
}

// Contour computes the rings at time t around (cx, cy) with base radius r.
// touch in [0,1] swells every ring while the user is dragging.
func Contour(t float64, lv emotion.Levels, touch float64, mode config.Mode, cx, cy, r float64) Layers {
	lv = lv.Clamp()
	touch = emotion.Clamp01(touch)
	passive := mode != config.ModeInteractive

	return Layers{
		Core:         core(t, lv.Intensity, touch, passive, cx, cy, r),
		Flow:         flow(t, lv.Energy, touch, passive, cx, cy, r),
		Shell:        shell(t, lv.Chaos, touch, passive, cx, cy, r),
		FlowOpacity:  0.4 + lv.Energy*0.3,
		ShellOpacity: lv.Chaos * 0.8,
		Highlight:    0.2 + touch*0.5,
	}
}

func core(t, intensity, touch float64, passive bool, cx, cy, r float64) []Point {
	speed := t * 0.4
	amp := 10 + intensity*50
	if passive {
		amp = 10 + intensity*20
	}
	base := r * 0.9

	pts := make([]Point, Points)
	for i := range pts {
		fi := float64(i)
		angle := fi / Points * 2 * math.Pi
		rr := base + math.Sin(speed+fi*1.5)*amp*0.6 + math.Cos(speed*0.8+fi*2.5)*amp*0.4
		rr += touch * 10
		pts[i] = Point{cx + math.Cos(angle)*rr, cy + math.Sin(angle)*rr}
	}
	return pts
}

func flow(t, energy, touch float64, passive bool, cx, cy, r float64) []Point {
	mult := 0.3 + energy*2.5
	if passive {
		mult = 0.3 + energy*1.0
	}
	speed := t * mult * (1 - touch*0.5)
	const amp = 30
	base := r * 1.1
	rotation := speed * 0.5

	pts := make([]Point, Points)
	for i := range pts {
		fi := float64(i)
		angle := fi/Points*2*math.Pi + rotation
		rr := base + math.Sin(speed+fi*2.0)*amp*0.7 + math.Sin(speed*1.5-fi*3.0)*amp*0.5
		rr += touch * 20
		pts[i] = Point{cx + math.Cos(angle)*rr, cy + math.Sin(angle)*rr}
	}
	return pts
}

func shell(t, chaos, touch float64, passive bool, cx, cy, r float64) []Point {
	jitter := chaos * 25
	if passive {
		jitter = chaos * 10
	}
	speed := t * 1.5
	base := r * 1.05

	pts := make([]Point, Points)
	for i := range pts {
		fi := float64(i)
		angle := fi / Points * 2 * math.Pi
		rr := base + math.Sin(t*0.4+fi*1.5)*15
		if jitter > 0.5 {
			rr += math.Sin(speed*8+fi*43) * math.Cos(speed*3+fi*17) * jitter
		}
		rr += touch * 15
		pts[i] = Point{cx + math.Cos(angle)*rr, cy + math.Sin(angle)*rr}
	}
	return pts
}

// Smooth turns a closed ring into a dense polygon: each control point
// becomes a quadratic curve between the midpoints of its two edges,
// sampled into segs pieces.
func Smooth(pts []Point, segs int) []Point {
	n := len(pts)
	if n < 3 || segs < 1 {
		return append([]Point(nil), pts...)
	}
	mid := func(a, b Point) Point { return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

	out := make([]Point, 0, n*segs)
	for i := 0; i < n; i++ {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		from := mid(prev, cur)
		to := mid(cur, next)
		for s := 0; s < segs; s++ {
			u := float64(s) / float64(segs)
			a := (1 - u) * (1 - u)
			b := 2 * (1 - u) * u
			c := u * u
			out = append(out, Point{
				X: a*from.X + b*cur.X + c*to.X,
				Y: a*from.Y + b*cur.Y + c*to.Y,
			})
		}
	}
	return out
}
