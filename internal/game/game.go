// Package game is the ebiten host: a home view that mirrors the committed
// state and a guided editor that drafts a new one.
package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/emotional-mirror/internal/ambience"
	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/frame"
	"github.com/iburimskiy/emotional-mirror/internal/palette"
)

// ErrNoStore is returned by New without a state store.
var ErrNoStore = errors.New("game: emotion store is required")

type view interface {
	enter()
	leave()
	update() error
	draw(screen *ebiten.Image)
	// levels are the scalars the view currently shows.
	levels() emotion.Levels
}

// Game implements ebiten.Game.
type Game struct {
	cfg   *config.Config
	store *emotion.Store
	loop  *frame.Loop
	now   func() time.Time

	sampler  *palette.Sampler
	backdrop *backdrop
	audio    *ambience.Player
	glow     float64

	home    *homeView
	mirror  *mirrorView
	current view

	unsubscribe   func()
	cancelAmbient func()
}

// New wires the views to store. Audio failures are logged and the game
// runs silent.
func New(cfg *config.Config, store *emotion.Store) (*Game, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if cfg == nil {
		cfg = config.Default()
	}
	space := palette.ParseSpace(cfg.ColorSpace)
	mesh := palette.DefaultMesh(space)

	g := &Game{
		cfg:      cfg,
		store:    store,
		loop:     frame.NewLoop(),
		now:      time.Now,
		sampler:  palette.NewSampler(mesh, palette.ParticleTint(space), config.PaletteHz),
		backdrop: newBackdrop(cfg, mesh),
	}
	g.sampler.Advance(0, store.State().Valence)
	g.home = newHomeView(g, space)
	g.mirror = newMirrorView(g, space)
	g.unsubscribe = store.Subscribe(g.home.onCommit)

	if cfg.Audio {
		p, err := ambience.Start(config.AudioSampleRate, config.AudioRingSize, store.State().Levels)
		if err != nil {
			slog.Warn("audio unavailable, running silent", "error", err)
		} else {
			g.audio = p
		}
	}

	g.cancelAmbient = g.loop.Register(g.tickAmbient)
	g.show(g.home)
	return g, nil
}

func (g *Game) show(v view) {
	if g.current == v {
		return
	}
	if g.current != nil {
		g.current.leave()
	}
	g.current = v
	v.enter()
}

func (g *Game) openMirror() {
	slog.Info("check-in started")
	g.show(g.mirror)
}

func (g *Game) showHome() { g.show(g.home) }

// tickAmbient follows whatever the visible view shows: background colours
// at the palette rate and the drone every frame.
func (g *Game) tickAmbient(dt float64) {
	lv := g.current.levels()
	g.sampler.Advance(dt, lv.Valence)
	if g.audio == nil {
		return
	}
	g.audio.Set(lv)
	g.glow = smooth(g.glow, g.audio.Level(), 0.6)
}

func smooth(prev, next, factor float64) float64 {
	return factor*prev + (1-factor)*next
}

func (g *Game) Update() error {
	g.loop.Tick(g.now())

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.audio != nil {
		g.audio.SetPaused(!g.audio.Paused())
	}
	if err := g.current.update(); err != nil {
		g.Close()
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.current == nil {
		return
	}
	g.backdrop.draw(screen, g.sampler)
	g.current.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close detaches everything from the store and stops audio.
func (g *Game) Close() {
	if g.current != nil {
		g.current.leave()
		g.current = nil
	}
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	if g.cancelAmbient != nil {
		g.cancelAmbient()
		g.cancelAmbient = nil
	}
	if g.audio != nil {
		g.audio.Close()
		g.audio = nil
	}
}
