package particles

import (
	"log/slog"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/frame"
)

// Runner connects a Field to a frame.Scheduler while its view is mounted.
// Levels and viewport are read live on every frame.
type Runner struct {
	name     string
	field    *Field
	levels   func() emotion.Levels
	viewport func() Viewport
	cancel   func()
	frames   uint64
}

// NewRunner returns a detached runner.
func NewRunner(name string, f *Field, levels func() emotion.Levels, viewport func() Viewport) *Runner {
	return &Runner{name: name, field: f, levels: levels, viewport: viewport}
}

// Attach registers the field with s. Attaching twice is a no-op.
func (r *Runner) Attach(s frame.Scheduler) {
	if r.cancel != nil {
		return
	}
	r.cancel = s.Register(r.tick)
	slog.Debug("particle field attached", "view", r.name)
}

// Detach releases the registration. The field keeps its state for the
// next Attach.
func (r *Runner) Detach() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.cancel = nil
	slog.Debug("particle field detached", "view", r.name, "frames", r.frames)
}

// Attached reports whether the runner is registered.
func (r *Runner) Attached() bool { return r.cancel != nil }

// Field returns the driven field.
func (r *Runner) Field() *Field { return r.field }

// Frames is the number of frames produced so far.
func (r *Runner) Frames() uint64 { return r.frames }

func (r *Runner) tick(dt float64) {
	if _, ok := r.field.Step(dt, r.levels(), r.viewport()); ok {
		r.frames++
	}
}
