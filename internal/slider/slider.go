// Package slider turns drag gestures into normalized values and collects
// them into a draft that is committed to the store in one step.
package slider

import "github.com/iburimskiy/emotional-mirror/internal/emotion"

// Phase of a slider's gesture.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// ValueAt converts a touch position relative to the track's left edge into
// a value in [0,1]. It reports false when the track has no width yet.
func ValueAt(localX, trackWidth float64) (float64, bool) {
	if !(trackWidth > 0) {
		return 0, false
	}
	return emotion.Clamp01(localX / trackWidth), true
}

// Rect is a screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Slider is one labelled track bound to a float. Writes go straight to the
// bound value; nothing is committed anywhere else.
type Slider struct {
	Label      string
	LeftLabel  string
	RightLabel string

	// Track is the visual bar; the touch target is Track grown vertically
	// to TouchHeight.
	Track       Rect
	TouchHeight float64

	OnChange   func(float64)
	OnComplete func()

	value *float64
	phase Phase
}

// New returns an idle slider bound to value.
func New(label string, value *float64) *Slider {
	return &Slider{Label: label, value: value}
}

// Value is the bound value.
func (s *Slider) Value() float64 {
	if s.value == nil {
		return 0
	}
	return *s.value
}

// Bind points the slider at another value.
func (s *Slider) Bind(value *float64) { s.value = value }

// Phase is the gesture state.
func (s *Slider) Phase() Phase { return s.phase }

// Target is the touch rectangle.
func (s *Slider) Target() Rect {
	h := s.TouchHeight
	if h < s.Track.H {
		h = s.Track.H
	}
	return Rect{
		X: s.Track.X,
		Y: s.Track.Y + s.Track.H/2 - h/2,
		W: s.Track.W,
		H: h,
	}
}

// Press starts a drag if (x, y) hits the touch target and writes the value
// under the finger. It reports whether the slider took the gesture.
func (s *Slider) Press(x, y float64) bool {
	if !s.Target().Contains(x, y) {
		return false
	}
	s.phase = Dragging
	s.set(x)
	return true
}

// Drag updates the value while dragging. Positions past either end clamp.
func (s *Slider) Drag(x float64) {
	if s.phase != Dragging {
		return
	}
	s.set(x)
}

// Release ends the drag and fires OnComplete.
func (s *Slider) Release() {
	if s.phase != Dragging {
		return
	}
	s.phase = Idle
	if s.OnComplete != nil {
		s.OnComplete()
	}
}

// Nudge moves the value by delta, for keyboard input.
func (s *Slider) Nudge(delta float64) {
	if s.value == nil {
		return
	}
	s.write(emotion.Clamp01(*s.value + delta))
}

func (s *Slider) set(x float64) {
	v, ok := ValueAt(x-s.Track.X, s.Track.W)
	if !ok {
		return
	}
	s.write(v)
}

func (s *Slider) write(v float64) {
	if s.value == nil {
		return
	}
	*s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}
