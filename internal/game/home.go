package game

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/interpret"
	"github.com/iburimskiy/emotional-mirror/internal/motion"
	"github.com/iburimskiy/emotional-mirror/internal/palette"
	"github.com/iburimskiy/emotional-mirror/internal/particles"
	"github.com/iburimskiy/emotional-mirror/internal/recommend"
)

const homeExercises = 3

var homeField = image.Rect(
	config.HomeFieldX, config.HomeFieldY,
	config.HomeFieldX+config.HomeFieldWidth, config.HomeFieldY+config.HomeFieldHeight,
)

// homeView shows the committed state as a calm passive field, with its
// reading and a few suggested exercises.
type homeView struct {
	g        *Game
	follower *motion.Follower
	runner   *particles.Runner
	samples  []particles.Sample
	cancel   func()

	state     emotion.State
	reading   interpret.Reading
	exercises []recommend.Exercise

	hovered bool
	pressed bool
}

func newHomeView(g *Game, space palette.Space) *homeView {
	st := g.store.State()
	h := &homeView{
		g:        g,
		follower: motion.NewFollower(st.Levels, config.EaseSeconds),
	}
	h.setState(st)

	field := particles.NewField(
		config.PassiveProfile(),
		g.cfg.Seed,
		particles.WithPivot(g.cfg.GravityPivot),
		particles.WithTint(palette.ParticleTint(space)),
	)
	h.runner = particles.NewRunner("home", field, h.follower.Levels, func() particles.Viewport {
		return particles.Viewport{Width: config.HomeFieldWidth, Height: config.HomeFieldHeight}
	})
	return h
}

func (h *homeView) setState(st emotion.State) {
	h.state = st
	h.reading = interpret.Describe(st.Levels)
	h.exercises = recommend.Recommend(st.Levels)
	if len(h.exercises) > homeExercises {
		h.exercises = h.exercises[:homeExercises]
	}
}

// onCommit is the store subscription: the field eases toward the new
// state and the text switches at once.
func (h *homeView) onCommit(st emotion.State) {
	h.follower.SetTarget(st.Levels)
	h.setState(st)
	slog.Debug("home view retargeted", "reading", h.reading.Category)
}

func (h *homeView) enter() {
	h.cancel = h.g.loop.Register(func(dt float64) { h.follower.Step(dt) })
	h.runner.Attach(h.g.loop)
	h.pressed = false
}

func (h *homeView) leave() {
	h.runner.Detach()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

func (h *homeView) levels() emotion.Levels { return h.follower.Levels() }

func (h *homeView) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyE) {
		h.g.openMirror()
		return nil
	}

	mouseX, mouseY := ebiten.CursorPosition()
	h.hovered = image.Pt(mouseX, mouseY).In(homeField)
	if h.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		open := h.pressed && h.hovered
		h.pressed = false
		if open {
			h.g.openMirror()
		}
	}
	return nil
}

func (h *homeView) draw(screen *ebiten.Image) {
	fx, fy := float32(homeField.Min.X), float32(homeField.Min.Y)
	fw, fh := float32(homeField.Dx()), float32(homeField.Dy())

	drawPanel(screen, fx, fy, fw, fh)
	if h.g.glow > 0 {
		glow := h.g.sampler.Tint(h.levels().Valence)
		glow.A = uint8(60 * h.g.glow)
		vector.DrawFilledCircle(screen, fx+fw/2, fy+fh/2, fh*0.3*float32(0.6+0.4*h.g.glow), glow, true)
	}
	clip := screen.SubImage(homeField).(*ebiten.Image)
	fr := h.runner.Field().LatestInto(h.samples)
	h.samples = fr.Samples
	drawSamples(clip, fr, float64(fx), float64(fy))
	if h.hovered {
		vector.StrokeRect(screen, fx, fy, fw, fh, 2, color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	}

	text.Draw(screen, "Emotional Mirror", basicfont.Face7x13, config.HomeFieldX, 36, textColor)

	x := config.HomeFieldX
	y := homeField.Max.Y + 32
	y = drawLines(screen, wrapText(h.reading.Text, homeField.Dx()), x, y, textColor)
	text.Draw(screen, lastUpdatedLabel(h.state.LastUpdated, h.g.now()), basicfont.Face7x13, x, y+4, mutedColor)
	y += 36

	text.Draw(screen, "Try one of these", basicfont.Face7x13, x, y, textColor)
	y += 12
	for _, ex := range h.exercises {
		drawExercise(screen, ex, x, y, homeField.Dx())
		y += 52
	}

	hint := "Click the field to check in  |  Space: sound  |  Q: quit"
	text.Draw(screen, hint, basicfont.Face7x13, x, config.WindowHeight-20, mutedColor)
}

func drawExercise(screen *ebiten.Image, ex recommend.Exercise, x, y, w int) {
	drawPanel(screen, float32(x), float32(y), float32(w), 44)

	accent := color.NRGBA{R: 120, G: 120, B: 160, A: 255}
	if c, err := colorful.Hex(ex.Category.Color); err == nil {
		r, g, b := c.RGB255()
		accent = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), 4, 44, accent, false)

	text.Draw(screen, ex.Title, basicfont.Face7x13, x+14, y+19, textColor)
	text.Draw(screen, exerciseMeta(ex), basicfont.Face7x13, x+14, y+35, mutedColor)
}

func exerciseMeta(ex recommend.Exercise) string {
	if ex.Duration <= 0 {
		return ex.Category.Label
	}
	return fmt.Sprintf("%s - %d min", ex.Category.Label, int(ex.Duration.Minutes()))
}

// lastUpdatedLabel phrases the commit time relative to now.
func lastUpdatedLabel(at, now time.Time) string {
	if at.IsZero() {
		return "Not checked in yet"
	}
	if now.Sub(at) < time.Second {
		return "Updated just now"
	}
	return "Updated " + humanize.RelTime(at, now, "ago", "from now")
}
