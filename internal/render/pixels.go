// Package render turns composed frames into pixels or terminal text.
package render

import (
	"image/color"

	"gridpath/internal/core"
)

// Palette maps every core.Cell* display value to a colour.
type Palette []color.RGBA

// DefaultPalette returns the classic board colours: black walls on a grey
// field, green start, red goal, dark green frontier, dark red visited and a
// cyan path.
func DefaultPalette() Palette {
	p := make(Palette, core.CellKinds)
	p[core.CellOpen] = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}
	p[core.CellBlocked] = color.RGBA{A: 0xff}
	p[core.CellVisited] = color.RGBA{R: 0x80, A: 0xff}
	p[core.CellFrontier] = color.RGBA{G: 0x80, A: 0xff}
	p[core.CellPath] = color.RGBA{G: 0xff, B: 0xff, A: 0xff}
	p[core.CellStart] = color.RGBA{G: 0xff, A: 0xff}
	p[core.CellGoal] = color.RGBA{R: 0xff, A: 0xff}
	return p
}

// Color returns the colour for v; values past the end use the last entry.
func (p Palette) Color(v uint8) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	idx := int(v)
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}

// FillRGBA converts cell values into RGBA pixels in buf, which must hold
// four bytes per cell. An empty palette clears the buffer to transparent
// black.
func FillRGBA(buf []byte, cells []uint8, palette Palette) {
	for i, c := range cells {
		col := palette.Color(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
