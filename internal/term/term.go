// Package term renders the passive field in a terminal with tcell and
// lets the user adjust the state from the keyboard.
package term

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/frame"
	"github.com/iburimskiy/emotional-mirror/internal/interpret"
	"github.com/iburimskiy/emotional-mirror/internal/motion"
	"github.com/iburimskiy/emotional-mirror/internal/palette"
	"github.com/iburimskiy/emotional-mirror/internal/particles"
	"github.com/iburimskiy/emotional-mirror/internal/slider"
)

const (
	// terminal cells are roughly twice as tall as wide; the field is
	// simulated in this many pixels per cell
	cellW = 4
	cellH = 8

	statusRows = 4
	nudgeStep  = 0.05
)

// ErrNoStore is returned by New without an emotion store.
var ErrNoStore = errors.New("term: emotion store is required")

var dimensionNames = [...]string{"intensity", "valence", "heaviness", "chaos", "energy"}

// App owns the screen. All state is touched from Run's goroutine only.
type App struct {
	screen tcell.Screen
	store  *emotion.Store
	loop   *frame.Loop

	follower *motion.Follower
	runner   *particles.Runner
	samples  []particles.Sample
	editor   *slider.Editor
	selected slider.Dimension
	reading  string

	unsubscribe func()
	w, h        int
}

// New prepares an app on an initialized screen.
func New(screen tcell.Screen, store *emotion.Store, cfg *config.Config) (*App, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if cfg == nil {
		cfg = config.Default()
	}
	st := store.State()
	a := &App{
		screen:   screen,
		store:    store,
		loop:     frame.NewLoop(),
		follower: motion.NewFollower(st.Levels, config.EaseSeconds),
		reading:  interpret.Interpret(st.Levels),
	}
	a.w, a.h = screen.Size()
	a.editor = slider.NewEditor(store, slider.Layout{})

	field := particles.NewField(
		config.PassiveProfile(),
		cfg.Seed,
		particles.WithPivot(cfg.GravityPivot),
		particles.WithTint(palette.ParticleTint(palette.ParseSpace(cfg.ColorSpace))),
	)
	a.runner = particles.NewRunner("term", field, a.follower.Levels, a.viewport)
	a.unsubscribe = store.Subscribe(func(st emotion.State) {
		a.follower.SetTarget(st.Levels)
		a.reading = interpret.Interpret(st.Levels)
	})
	a.loop.Register(func(dt float64) { a.follower.Step(dt) })
	a.runner.Attach(a.loop)
	return a, nil
}

func (a *App) viewport() particles.Viewport {
	return particles.Viewport{
		Width:  float64(a.w * cellW),
		Height: float64(max(a.h-statusRows, 0) * cellH),
	}
}

// Run draws at fps until the user quits.
func (a *App) Run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			a.loop.Tick(now)
			a.draw()
		}
	}
}

// Close releases the store subscription and the field registration.
func (a *App) Close() {
	a.runner.Detach()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// handle applies one event and reports whether to keep running.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.editor.Nudge(a.selected, -nudgeStep)
		case tcell.KeyRight:
			a.editor.Nudge(a.selected, nudgeStep)
		case tcell.KeyEnter:
			a.commit()
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q':
				return false
			case r >= '1' && r <= '5':
				a.selected = slider.Dimension(r - '1')
			}
		}
	case *tcell.EventResize:
		a.w, a.h = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *App) commit() {
	st := a.editor.Confirm()
	slog.Debug("terminal commit", "reading", interpret.Describe(st.Levels).Category)
	a.editor = slider.NewEditor(a.store, slider.Layout{})
}

func (a *App) draw() {
	a.screen.Clear()
	f := a.runner.Field().LatestInto(a.samples)
	a.samples = f.Samples
	rows := a.h - statusRows
	for _, s := range f.Samples {
		x := int(s.X / cellW)
		y := int(s.Y / cellH)
		if x < 0 || x >= a.w || y < 0 || y >= rows {
			continue
		}
		a.screen.SetContent(x, y, glyph(s.Radius), nil, tcell.StyleDefault.Foreground(shade(s)))
	}
	a.drawStatus(rows)
	a.screen.Show()
}

func glyph(radius float64) rune {
	switch {
	case radius >= 12:
		return '@'
	case radius >= 7:
		return 'o'
	case radius >= 3:
		return '*'
	default:
		return '.'
	}
}

// shade dims the sample colour by its alpha against a black terminal.
func shade(s particles.Sample) tcell.Color {
	a := float64(s.Color.A) / 255
	return tcell.NewRGBColor(
		int32(math.Round(float64(s.Color.R)*a)),
		int32(math.Round(float64(s.Color.G)*a)),
		int32(math.Round(float64(s.Color.B)*a)),
	)
}

func (a *App) drawStatus(top int) {
	if top < 0 {
		return
	}
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	a.print(0, top, tcell.StyleDefault.Bold(true), a.reading)

	draft := a.editor.Draft()
	values := [...]float64{draft.Intensity, draft.Valence, draft.Heaviness, draft.Chaos, draft.Energy}
	x := 0
	for i, name := range dimensionNames {
		style := dim
		if slider.Dimension(i) == a.selected {
			style = tcell.StyleDefault.Reverse(true)
		}
		label := fmt.Sprintf("%d %s %3.0f%%", i+1, name, values[i]*100)
		a.print(x, top+2, style, label)
		x += len(label) + 2
	}
	a.print(0, top+3, dim, "1-5 select  <-/-> adjust  Enter save  q quit")
}

func (a *App) print(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		if x >= a.w {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
