package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Mesh is a 3x3 background gradient. Each cell blends its own cool,
// neutral and warm anchors by valence.
type Mesh struct {
	cells [9]ThreeStop
}

var (
	coolMesh = [9]string{
		"#78C8A0", "#68A8C8", "#A888C8",
		"#58A8C8", "#8088C8", "#68B8A8",
		"#9878B8", "#68B0E0", "#88C888",
	}
	// sits at valence 0.5; each cell is a muted lavender between its cool
	// and warm anchors
	neutralMesh = [9]string{
		"#B8A8D8", "#A8A0D0", "#C8A8D0",
		"#A0A8D8", "#B8A0C8", "#B0B0C8",
		"#C098C0", "#A8B0D8", "#B8B8B0",
	}
	warmMesh = [9]string{
		"#F0A880", "#E88090", "#F0C080",
		"#E08898", "#E078A8", "#E0A878",
		"#D89060", "#E07058", "#D06088",
	}
)

// DefaultMesh builds the stock background mesh.
func DefaultMesh(space Space) *Mesh {
	m := &Mesh{}
	for i := range m.cells {
		m.cells[i] = ThreeStop{
			Cool:    mustHex(coolMesh[i]),
			Neutral: mustHex(neutralMesh[i]),
			Warm:    mustHex(warmMesh[i]),
			Space:   space,
		}
	}
	return m
}

// Colors returns the nine cell colours row by row.
func (m *Mesh) Colors(v float64) [9]color.NRGBA {
	var out [9]color.NRGBA
	for i, c := range m.cells {
		out[i] = c.At(v)
	}
	return out
}

// Solid is the centre cell, used wherever a single colour must stand in
// for the whole background.
func (m *Mesh) Solid(v float64) color.NRGBA {
	return m.cells[4].At(v)
}

// Anchor returns the nine colours of one anchor: 0 cool, 1 neutral, 2 warm.
func (m *Mesh) Anchor(i int) [9]color.NRGBA {
	return m.Colors(AnchorValence(i))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad hex " + s)
	}
	return c
}
