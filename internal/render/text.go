package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridpath/internal/core"
)

var glyphs = [core.CellKinds]byte{
	core.CellOpen:     '.',
	core.CellBlocked:  '#',
	core.CellVisited:  'x',
	core.CellFrontier: 'o',
	core.CellPath:     '*',
	core.CellStart:    'S',
	core.CellGoal:     'G',
}

// Glyph returns the single-character form of a display value.
func Glyph(v uint8) byte {
	if int(v) >= len(glyphs) {
		return '?'
	}
	return glyphs[v]
}

// ASCII renders a frame one row per line using Glyph.
func ASCII(f *core.Frame) string {
	var b strings.Builder
	b.Grow((f.W + 1) * f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			b.WriteByte(Glyph(f.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Text renders frames with lipgloss background colours. Colour output
// follows the renderer's detected profile, so piping to a file yields the
// plain glyphs.
type Text struct {
	styles [core.CellKinds]lipgloss.Style
}

// NewText builds a renderer bound to r, or to the default renderer when r
// is nil.
func NewText(r *lipgloss.Renderer, palette Palette) *Text {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := &Text{}
	for v := range t.styles {
		col := palette.Color(uint8(v))
		hex := fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
		t.styles[v] = r.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color("#ffffff"))
	}
	return t
}

// Render draws each cell as its glyph followed by a space so cells come out
// roughly square in a terminal.
func (t *Text) Render(f *core.Frame) string {
	rows := make([]string, f.H)
	var b strings.Builder
	for y := 0; y < f.H; y++ {
		b.Reset()
		for x := 0; x < f.W; x++ {
			v := f.At(x, y)
			cell := string(Glyph(v)) + " "
			if int(v) < len(t.styles) {
				cell = t.styles[v].Render(cell)
			}
			b.WriteString(cell)
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
