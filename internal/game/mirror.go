package game

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/emotional-mirror/internal/blob"
	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/interpret"
	"github.com/iburimskiy/emotional-mirror/internal/palette"
	"github.com/iburimskiy/emotional-mirror/internal/particles"
	"github.com/iburimskiy/emotional-mirror/internal/slider"
)

const (
	nudgeStep  = 0.05
	blobRadius = 90
	trackY     = config.MirrorFieldHeight + 170
	buttonsY   = config.WindowHeight - 90
)

var mirrorField = image.Rect(0, 0, config.WindowWidth, config.MirrorFieldHeight)

// mirrorView is the guided check-in. The field and blob follow the draft
// live; the store is only written on confirm.
type mirrorView struct {
	g       *Game
	tint    palette.ThreeStop
	runner  *particles.Runner
	samples []particles.Sample
	editor  *slider.Editor
	cancel  func()

	blobT  float64
	touch  float64
	dialog *confirmation

	back    button
	primary button
}

func newMirrorView(g *Game, space palette.Space) *mirrorView {
	m := &mirrorView{
		g:       g,
		tint:    palette.ParticleTint(space),
		back:    button{x: config.SliderX, y: buttonsY},
		primary: button{x: config.WindowWidth - config.SliderX - config.ButtonWidth, y: buttonsY},
	}
	field := particles.NewField(
		config.InteractiveProfile(),
		g.cfg.Seed+1,
		particles.WithPivot(g.cfg.GravityPivot),
		particles.WithTint(m.tint),
	)
	m.runner = particles.NewRunner("mirror", field, m.levels, func() particles.Viewport {
		return particles.Viewport{Width: float64(mirrorField.Dx()), Height: float64(mirrorField.Dy())}
	})
	return m
}

func sliderLayout() slider.Layout {
	return slider.Layout{
		Track: slider.Rect{
			X: config.SliderX,
			Y: trackY,
			W: config.SliderWidth,
			H: config.SliderTrackHeight,
		},
		TouchHeight: config.SliderTouchHeight,
	}
}

func (m *mirrorView) enter() {
	m.editor = slider.NewEditor(m.g.store, sliderLayout())
	m.dialog = nil
	m.touch = 0
	m.layoutButtons()
	m.cancel = m.g.loop.Register(m.tick)
	m.runner.Attach(m.g.loop)
}

func (m *mirrorView) leave() {
	m.runner.Detach()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.editor != nil && !m.editor.Done() {
		m.editor.Cancel()
		slog.Info("check-in cancelled", "step", int(m.editor.Step()))
	}
}

func (m *mirrorView) levels() emotion.Levels {
	if m.editor == nil {
		return m.g.store.State().Levels
	}
	return m.editor.Draft()
}

func (m *mirrorView) tick(dt float64) {
	m.blobT += dt
	target := 0.0
	if m.editor.Touched() {
		target = 1
	}
	m.touch += (target - m.touch) * math.Min(1, dt*8)
}

func (m *mirrorView) update() error {
	if m.dialog != nil {
		m.pollDialog()
		return nil
	}
	m.layoutButtons()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.g.showHome()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && m.primary.enabled {
		m.activate(&m.primary)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		m.activate(&m.back)
		return nil
	}
	if d, ok := m.editor.Step().Dimension(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			m.editor.Nudge(d, -nudgeStep)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			m.editor.Nudge(d, nudgeStep)
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	m.back.hovered = m.back.contains(mouseX, mouseY)
	m.primary.hovered = m.primary.contains(mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !m.editor.Press(float64(mouseX), float64(mouseY)) {
			for _, b := range []*button{&m.back, &m.primary} {
				if b.hovered && b.enabled {
					b.pressed = true
				}
			}
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		m.editor.Drag(float64(mouseX))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.editor.Release()
		for _, b := range []*button{&m.back, &m.primary} {
			clicked := b.pressed && b.hovered
			b.pressed = false
			if clicked {
				m.activate(b)
				return nil
			}
		}
	}
	return nil
}

// layoutButtons labels the two buttons for the current step.
func (m *mirrorView) layoutButtons() {
	step := m.editor.Step()
	m.back.enabled = true
	m.primary.enabled = m.editor.CanAdvance()
	switch {
	case step == slider.StepIntro:
		m.back.label, m.primary.label = "Cancel", "Begin"
	case step == slider.StepResult:
		m.back.label, m.primary.label = "Back", "Confirm"
		m.primary.enabled = true
	case step == 0:
		m.back.label, m.primary.label = "Cancel", "Next"
	default:
		m.back.label, m.primary.label = "Back", "Next"
	}
}

func (m *mirrorView) activate(b *button) {
	switch {
	case b == &m.back:
		if !m.editor.Back() {
			m.g.showHome()
		}
	case m.editor.Step() == slider.StepResult:
		m.confirm()
	default:
		m.editor.Next()
	}
}

func (m *mirrorView) confirm() {
	if !m.g.cfg.ConfirmDialog {
		m.commit()
		return
	}
	m.dialog = askConfirm(interpret.Interpret(m.editor.Draft()) + "\n\nSave this check-in?")
}

func (m *mirrorView) pollDialog() {
	switch m.dialog.poll() {
	case answerPending:
		return
	case answerYes:
		m.dialog = nil
		m.commit()
	case answerNo:
		m.dialog = nil
	case answerFailed:
		slog.Warn("confirm dialog failed, saving without it", "error", m.dialog.err)
		m.dialog = nil
		m.commit()
	}
}

func (m *mirrorView) commit() {
	m.editor.Confirm()
	m.g.showHome()
}

func (m *mirrorView) draw(screen *ebiten.Image) {
	m.layoutButtons()
	lv := m.levels()
	cx := float64(mirrorField.Dx()) / 2
	cy := float64(mirrorField.Dy()) / 2

	layers := blob.Contour(m.blobT, lv, m.touch, config.ModeInteractive, cx, cy, blobRadius)
	tint := m.tint.At(lv.Valence)
	fillRing(screen, blob.Smooth(layers.Shell, 6), cx, cy, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, layers.ShellOpacity*0.35)
	fillRing(screen, blob.Smooth(layers.Flow, 6), cx, cy, tint, layers.FlowOpacity*0.5)
	fillRing(screen, blob.Smooth(layers.Core, 6), cx, cy, tint, 0.5+layers.Highlight*0.4)

	clip := screen.SubImage(mirrorField).(*ebiten.Image)
	fr := m.runner.Field().LatestInto(m.samples)
	m.samples = fr.Samples
	drawSamples(clip, fr, 0, 0)

	step := m.editor.Step()
	x := config.SliderX
	switch {
	case step == slider.StepIntro:
		intro := "Take a moment. Five short questions, one at a time. Nothing is saved until you confirm."
		drawLines(screen, wrapText(intro, config.SliderWidth), x, trackY-40, textColor)
	case step == slider.StepResult:
		text.Draw(screen, "Here is your reflection", basicfont.Face7x13, x, trackY-70, mutedColor)
		drawLines(screen, wrapText(interpret.Interpret(lv), config.SliderWidth), x, trackY-44, textColor)
	default:
		counter := fmt.Sprintf("%d / 5", int(step)+1)
		text.Draw(screen, counter, basicfont.Face7x13, x, trackY-96, mutedColor)
		drawSlider(screen, m.editor.Current(), tint)
	}

	drawButton(screen, &m.back)
	drawButton(screen, &m.primary)
	if m.dialog != nil {
		text.Draw(screen, "Waiting for confirmation...", basicfont.Face7x13, x, buttonsY-16, mutedColor)
	}
}
