//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a frame into a one-pixel-per-cell image and scales it
// onto the screen.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
	w   int
	h   int
}

// NewGridPainter allocates the backing image for a w x h board.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		w:   w,
		h:   h,
	}
}

// Blit writes cells through palette and draws them at the given scale.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, palette Palette, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	FillRGBA(p.buf, cells, palette)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
