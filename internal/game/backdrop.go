package game

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/palette"
)

type layerKind int

const (
	layerMesh layerKind = iota
	layerImage
	layerSolid
)

// backdrop paints the window background from the palette sampler, either
// as a 3x3 mesh gradient or as three cross-faded layers.
type backdrop struct {
	strategy palette.Strategy
	kinds    [3]layerKind
	images   [3]*ebiten.Image
	anchors  [3][9]color.NRGBA
	solids   [3]color.NRGBA
}

func newBackdrop(cfg *config.Config, mesh *palette.Mesh) *backdrop {
	b := &backdrop{strategy: palette.ParseStrategy(cfg.Background)}
	if b.strategy != palette.StrategyImages {
		return b
	}
	for i, path := range cfg.BackgroundImages {
		b.anchors[i] = mesh.Anchor(i)
		b.solids[i] = mesh.Solid(palette.AnchorValence(i))
		if path == "" {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			slog.Warn("background image unavailable, using solid colour", "layer", i, "path", path, "error", err)
			b.kinds[i] = layerSolid
			continue
		}
		b.kinds[i] = layerImage
		b.images[i] = img
	}
	return b
}

// layerAlphas converts cross-fade weights into draw alphas for painting the
// layers back to front: the first visible layer is opaque and each later
// one is drawn at its own weight. With at most two neighbouring weights
// set this reproduces the weighted sum exactly.
func layerAlphas(w [3]float64) [3]float64 {
	var out [3]float64
	base := true
	for i, v := range w {
		if v <= 0 {
			continue
		}
		if base {
			out[i] = 1
			base = false
			continue
		}
		out[i] = v
	}
	return out
}

func (b *backdrop) draw(screen *ebiten.Image, s *palette.Sampler) {
	if b.strategy != palette.StrategyImages {
		drawMesh(screen, s.Colors(), 1)
		return
	}
	for i, alpha := range layerAlphas(s.Weights()) {
		if alpha <= 0 {
			continue
		}
		switch b.kinds[i] {
		case layerImage:
			drawStretched(screen, b.images[i], alpha)
		case layerSolid:
			c := b.solids[i]
			c.A = uint8(alpha * 255)
			vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, c, false)
		default:
			drawMesh(screen, b.anchors[i], alpha)
		}
	}
}

// drawMesh shades the window with nine vertex colours on a 3x3 grid.
func drawMesh(screen *ebiten.Image, colors [9]color.NRGBA, alpha float64) {
	var vs [9]ebiten.Vertex
	for i, c := range colors {
		col, row := i%3, i/3
		vs[i] = ebiten.Vertex{
			DstX:   float32(col) * config.WindowWidth / 2,
			DstY:   float32(row) * config.WindowHeight / 2,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255 * float32(alpha),
		}
	}
	is := make([]uint16, 0, 24)
	for row := uint16(0); row < 2; row++ {
		for col := uint16(0); col < 2; col++ {
			tl := row*3 + col
			is = append(is, tl, tl+1, tl+3, tl+1, tl+4, tl+3)
		}
	}
	screen.DrawTriangles(vs[:], is, white(), nil)
}

func drawStretched(screen, img *ebiten.Image, alpha float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(
		float64(config.WindowWidth)/float64(bounds.Dx()),
		float64(config.WindowHeight)/float64(bounds.Dy()),
	)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}
