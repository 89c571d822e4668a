package slider

import (
	"log/slog"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

// Dimension indexes the five scalars.
type Dimension int

const (
	Intensity Dimension = iota
	Valence
	Heaviness
	Chaos
	Energy

	dimensions = 5
)

type question struct {
	label, left, right string
}

var questions = [dimensions]question{
	Intensity: {"How intensely do you feel it right now?", "Barely", "Overwhelming"},
	Valence:   {"How pleasant is it?", "Unpleasant", "Pleasant"},
	Heaviness: {"How does your body feel?", "Light, floating", "Heavy, sinking"},
	Chaos:     {"How steady is it inside?", "Stable", "Chaotic"},
	Energy:    {"How much energy is in you?", "Drained", "Charged"},
}

// Step of the guided session.
type Step int

const (
	StepIntro Step = -1
	// Steps 0..4 are the Dimension sliders.
	StepResult Step = dimensions
)

// Dimension returns the slider shown at s, or false on intro/result.
func (s Step) Dimension() (Dimension, bool) {
	if s >= 0 && s < dimensions {
		return Dimension(s), true
	}
	return 0, false
}

// Layout places the slider track of every step.
type Layout struct {
	Track       Rect
	TouchHeight float64
}

// Editor is a guided editing session. Sliders write to a private draft;
// the store only sees the draft when Confirm is called.
type Editor struct {
	store   *emotion.Store
	draft   emotion.Levels
	sliders [dimensions]*Slider
	step    Step
	changed bool
	done    bool
}

// NewEditor opens a session whose draft starts at the committed state.
func NewEditor(store *emotion.Store, layout Layout) *Editor {
	e := &Editor{
		store: store,
		draft: store.State().Levels,
		step:  StepIntro,
	}
	fields := [dimensions]*float64{
		&e.draft.Intensity,
		&e.draft.Valence,
		&e.draft.Heaviness,
		&e.draft.Chaos,
		&e.draft.Energy,
	}
	for d := range e.sliders {
		q := questions[d]
		s := New(q.label, fields[d])
		s.LeftLabel, s.RightLabel = q.left, q.right
		s.Track = layout.Track
		s.TouchHeight = layout.TouchHeight
		s.OnChange = func(float64) { e.changed = true }
		e.sliders[d] = s
	}
	return e
}

// Draft returns the uncommitted levels.
func (e *Editor) Draft() emotion.Levels { return e.draft.Clamp() }

// Step is the current step.
func (e *Editor) Step() Step { return e.step }

// Slider returns the slider for d.
func (e *Editor) Slider(d Dimension) *Slider { return e.sliders[d] }

// Current returns the slider on screen, or nil on intro/result.
func (e *Editor) Current() *Slider {
	if d, ok := e.step.Dimension(); ok {
		return e.sliders[d]
	}
	return nil
}

// Touched reports whether a drag is in progress.
func (e *Editor) Touched() bool {
	s := e.Current()
	return s != nil && s.Phase() == Dragging
}

// Start leaves the intro.
func (e *Editor) Start() {
	if e.step == StepIntro {
		e.step = 0
		e.changed = false
	}
}

// CanAdvance reports whether Next is offered: after the current slider has
// been moved at least once.
func (e *Editor) CanAdvance() bool {
	if e.step == StepIntro {
		return true
	}
	_, ok := e.step.Dimension()
	return ok && e.changed
}

// Next moves to the following step.
func (e *Editor) Next() bool {
	if !e.CanAdvance() {
		return false
	}
	if e.step == StepIntro {
		e.Start()
		return true
	}
	e.step++
	e.changed = false
	return true
}

// Back returns to the previous slider. The moved flag stays set so the
// user can go forward again without touching the slider.
func (e *Editor) Back() bool {
	if e.step <= 0 {
		return false
	}
	e.step--
	e.changed = true
	return true
}

// Press, Drag and Release route a pointer gesture to the current slider.
func (e *Editor) Press(x, y float64) bool {
	s := e.Current()
	return s != nil && s.Press(x, y)
}

func (e *Editor) Drag(x float64) {
	if s := e.Current(); s != nil {
		s.Drag(x)
	}
}

func (e *Editor) Release() {
	if s := e.Current(); s != nil {
		s.Release()
	}
}

// Nudge moves dimension d by delta.
func (e *Editor) Nudge(d Dimension, delta float64) {
	if d < 0 || d >= dimensions {
		return
	}
	e.sliders[d].Nudge(delta)
}

// Done reports whether the session was confirmed or cancelled.
func (e *Editor) Done() bool { return e.done }

// Confirm writes all five draft values to the store in one update.
func (e *Editor) Confirm() emotion.State {
	if e.done {
		return e.store.State()
	}
	e.done = true
	st := e.store.Update(emotion.All(e.draft))
	slog.Info("emotional state committed",
		"intensity", st.Intensity,
		"valence", st.Valence,
		"heaviness", st.Heaviness,
		"chaos", st.Chaos,
		"energy", st.Energy,
	)
	return st
}

// Cancel ends the session without touching the store.
func (e *Editor) Cancel() {
	e.done = true
}
