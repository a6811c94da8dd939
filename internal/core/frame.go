package core

import "gridpath/internal/grid"

// Display values written into a Frame, in increasing paint priority.
const (
	CellOpen uint8 = iota
	CellBlocked
	CellVisited
	CellFrontier
	CellPath
	CellStart
	CellGoal

	CellKinds
)

// Frame is a row-major byte-per-cell picture of a board.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (f *Frame) Cells() []uint8 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// At returns the value at (x, y), or CellOpen outside the frame.
func (f *Frame) At(x, y int) uint8 {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return CellOpen
	}
	return f.data[f.Index(x, y)]
}

// Paint writes v at every in-bounds point.
func (f *Frame) Paint(points []grid.Point, v uint8) {
	for _, p := range points {
		if p.X < 0 || p.X >= f.W || p.Y < 0 || p.Y >= f.H {
			continue
		}
		f.data[f.Index(p.X, p.Y)] = v
	}
}

// Clear fills the frame with CellOpen.
func (f *Frame) Clear() {
	for i := range f.data {
		f.data[i] = CellOpen
	}
}

// FromGrid paints the static kinds of g. The frame must match its size.
func (f *Frame) FromGrid(g *grid.Grid) {
	for i := range f.data {
		if i >= g.Len() {
			break
		}
		switch g.KindAt(i) {
		case grid.Blocked:
			f.data[i] = CellBlocked
		case grid.Start:
			f.data[i] = CellStart
		case grid.Goal:
			f.data[i] = CellGoal
		default:
			f.data[i] = CellOpen
		}
	}
}
