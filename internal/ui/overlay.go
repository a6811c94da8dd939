//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridpath/internal/core"
	"gridpath/internal/grid"
)

// CursorSource reports the cell the latest step evaluated.
type CursorSource interface {
	Current() (grid.Point, bool)
}

// Overlay outlines the hovered cell and the cell under evaluation.
type Overlay struct {
	board    core.Board
	scale    int
	pixel    *ebiten.Image
	visible  bool
	hover    image.Point
	hasHover bool
}

// NewOverlay builds an overlay for a board drawn at scale.
func NewOverlay(board core.Board, scale int) *Overlay {
	o := &Overlay{board: board, scale: max(scale, 1), visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor; O toggles the overlay.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.visible = !o.visible
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := CellAt(mx, my, o.scale, o.board.Size())
	o.hover, o.hasHover = image.Pt(x, y), ok
}

// Draw renders the outlines. current may be nil.
func (o *Overlay) Draw(screen *ebiten.Image, current CursorSource) {
	if !o.visible {
		return
	}
	if o.hasHover {
		o.outline(screen, o.hover, color.RGBA{R: 255, G: 255, B: 255, A: 160})
	}
	if current == nil {
		return
	}
	if p, ok := current.Current(); ok {
		o.outline(screen, image.Pt(p.X, p.Y), color.RGBA{R: 255, G: 220, B: 0, A: 255})
	}
}

func (o *Overlay) outline(screen *ebiten.Image, cell image.Point, c color.RGBA) {
	s := o.scale
	r := image.Rect(cell.X*s, cell.Y*s, (cell.X+1)*s, (cell.Y+1)*s)
	t := max(s/8, 1)
	fillRect(screen, o.pixel, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fillRect(screen, o.pixel, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fillRect(screen, o.pixel, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fillRect(screen, o.pixel, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}
