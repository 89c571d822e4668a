package game

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/emotional-mirror/internal/blob"
	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/particles"
	"github.com/iburimskiy/emotional-mirror/internal/slider"
)

const (
	charWidth  = 7
	lineHeight = 16
)

var (
	textColor  = color.RGBA{R: 40, G: 36, B: 60, A: 255}
	mutedColor = color.RGBA{R: 90, G: 86, B: 110, A: 255}
	panelColor = color.RGBA{R: 255, G: 255, B: 255, A: 70}
	whitePixel *ebiten.Image
)

func white() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// button is a clickable rectangle shaded by hover and press state.
type button struct {
	label   string
	x, y    int
	enabled bool
	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+config.ButtonWidth &&
		y >= b.y && y <= b.y+config.ButtonHeight
}

func drawButton(screen *ebiten.Image, b *button) {
	var bgColor color.Color
	switch {
	case !b.enabled:
		bgColor = color.RGBA{R: 150, G: 150, B: 170, A: 140}
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	x, y := float32(b.x), float32(b.y)
	vector.DrawFilledRect(screen, x, y, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, x, y, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textX := b.x + (config.ButtonWidth-len(b.label)*charWidth)/2
	textY := b.y + (config.ButtonHeight+10)/2
	text.Draw(screen, b.label, basicfont.Face7x13, textX, textY, color.White)
}

// drawSamples draws a particle frame offset by (ox, oy).
func drawSamples(dst *ebiten.Image, f particles.Frame, ox, oy float64) {
	for _, s := range f.Samples {
		vector.DrawFilledCircle(dst, float32(s.X+ox), float32(s.Y+oy), float32(s.Radius), s.Color, true)
	}
}

// fillRing fills a star-shaped ring as a triangle fan around (cx, cy).
func fillRing(dst *ebiten.Image, pts []blob.Point, cx, cy float64, clr color.NRGBA, alpha float64) {
	if len(pts) < 3 || alpha <= 0 {
		return
	}
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(alpha)

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, ebiten.Vertex{DstX: float32(cx), DstY: float32(cy), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	}
	n := uint16(len(pts))
	is := make([]uint16, 0, len(pts)*3)
	for i := uint16(0); i < n; i++ {
		is = append(is, 0, i+1, (i+1)%n+1)
	}
	dst.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawSlider(screen *ebiten.Image, s *slider.Slider, accent color.NRGBA) {
	tr := s.Track
	y := tr.Y + tr.H/2

	drawLines(screen, wrapText(s.Label, int(tr.W)), int(tr.X), int(tr.Y)-60, textColor)

	vector.DrawFilledRect(screen, float32(tr.X), float32(tr.Y), float32(tr.W), float32(tr.H), color.RGBA{R: 255, G: 255, B: 255, A: 120}, false)
	fill := tr.W * s.Value()
	vector.DrawFilledRect(screen, float32(tr.X), float32(tr.Y), float32(fill), float32(tr.H), accent, false)

	thumbX := float32(tr.X + fill)
	radius := float32(config.SliderThumbRadius)
	if s.Phase() == slider.Dragging {
		radius *= 1.25
	}
	vector.DrawFilledCircle(screen, thumbX, float32(y), radius, color.White, true)
	vector.StrokeCircle(screen, thumbX, float32(y), radius, 2, accent, true)

	text.Draw(screen, s.LeftLabel, basicfont.Face7x13, int(tr.X), int(y)+34, mutedColor)
	rw := len(s.RightLabel) * charWidth
	text.Draw(screen, s.RightLabel, basicfont.Face7x13, int(tr.X+tr.W)-rw, int(y)+34, mutedColor)
}

func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 255, G: 255, B: 255, A: 140}, false)
}

// drawLines draws pre-wrapped lines starting at baseline y and returns the
// baseline after the last one.
func drawLines(screen *ebiten.Image, lines []string, x, y int, clr color.Color) int {
	for _, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, x, y, clr)
		y += lineHeight
	}
	return y
}

// wrapText breaks s into lines no wider than width pixels of the HUD face.
func wrapText(s string, width int) []string {
	maxChars := width / charWidth
	if maxChars < 1 {
		maxChars = 1
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		for len(word) > maxChars {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, word[:maxChars])
			word = word[maxChars:]
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case cur.Len()+1+len(word) <= maxChars:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
