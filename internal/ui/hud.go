//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gridpath/internal/core"
)

var (
	panelBG   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFG   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFG   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedFG   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disableBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disableFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the status and control panel to the right of the board.
type HUD struct {
	board    core.Board
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []controlState
	offsetX  int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD builds a panel of the given width for board.
func NewHUD(board core.Board, width int) *HUD {
	h := &HUD{board: board, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := board.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(p.ParameterControls())
		layoutControls(h.controls, h.width)
	}
	h.intSetter, _ = board.(core.IntParameterSetter)
	h.floatSetter, _ = board.(core.FloatParameterSetter)
	return h
}

// Update refreshes values and handles clicks on the -/+ buttons. It reports
// whether the click was consumed by the panel.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	if p, ok := h.board.(core.ParameterProvider); ok {
		h.snapshot = p.Parameters()
	}
	refreshControls(h.controls, h.snapshot)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	if i, dir, ok := hit(h.controls, mx-offsetX, my); ok {
		h.adjust(&h.controls[i], dir)
	}
	return true
}

func (h *HUD) adjust(s *controlState, direction int) {
	v, ok := s.target(direction)
	if !ok {
		return
	}
	accepted := false
	switch s.control.Type {
	case core.ParamTypeInt:
		accepted = h.intSetter != nil && h.intSetter.SetIntParameter(s.control.Key, int(v))
	case core.ParamTypeFloat:
		accepted = h.floatSetter != nil && h.floatSetter.SetFloatParameter(s.control.Key, v)
	}
	if accepted {
		s.commit(v)
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.board.Size().H * max(scale, 1)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.board.Name(), face, panelPadding, panelPadding+headerBaseline, titleFG)
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	y := controlsTop + len(h.controls)*lineHeight + statHeight
	for _, g := range h.snapshot.Groups {
		if g.Name != "Search" {
			continue
		}
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, mutedFG)
			b := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-b.Dx(), y, labelFG)
			y += statHeight
		}
	}
	if mode, ok := h.snapshot.Lookup("mode"); ok {
		text.Draw(h.panel, "Mode: "+mode.Value, face, panelPadding, y+statHeight, titleFG)
	}
	text.Draw(h.panel, "1/2/3 mode  Enter run  N step", face, panelPadding, height-panelPadding-statHeight, mutedFG)
	text.Draw(h.panel, "R reset  C clear  L layout", face, panelPadding, height-panelPadding, mutedFG)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(s *controlState) {
	face := basicfont.Face7x13
	y := s.top + labelBaseline
	text.Draw(h.panel, s.control.Label, face, panelPadding, y, labelFG)
	fg := labelFG
	if !s.hasValue {
		fg = mutedFG
	}
	b := text.BoundString(face, s.value)
	text.Draw(h.panel, s.value, face, s.minusRect.Min.X-buttonGap-b.Dx(), y, fg)
	_, minus := s.target(-1)
	_, plus := s.target(1)
	h.drawButton(s.minusRect, "-", minus)
	h.drawButton(s.plusRect, "+", plus)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, labelFG
	if !enabled {
		bg, fg = disableBG, disableFG
	}
	fillRect(h.panel, h.pixel, rect, bg)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func fillRect(dst, pixel *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	if pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	dst.DrawImage(pixel, op)
}
