// Package grid holds the fixed-size cell arena searched by the engine.
//
// Cells live in a single row-major slice. Adjacency and roles (start, goal)
// are stored as linear indices into that slice, never as references between
// cells.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrOutOfBounds is returned for coordinates outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// none marks an unset role or a missing index.
const none = -1

// MaxCells caps Width*Height. Each cell also carries up to four cached
// neighbor indices.
const MaxCells = 1 << 22

// Point identifies a cell by its column and row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Config describes the shape of a grid.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the 25x25 board used by the interactive drivers.
func DefaultConfig() Config {
	return Config{Width: 25, Height: 25}
}

// Grid stores cell kinds and the cached 4-connected adjacency.
type Grid struct {
	w, h  int
	kinds []Kind
	adj   [][]int
	start int
	goal  int
}

// New allocates a w x h grid with every cell Open.
func New(w, h int) (*Grid, error) {
	return NewWithConfig(Config{Width: w, Height: h})
}

// NewWithConfig allocates a grid described by cfg. Grids with more than
// MaxCells cells are rejected.
func NewWithConfig(cfg Config) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if !WithinCells(cfg.Width, cfg.Height, MaxCells) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, cfg.Width, cfg.Height, MaxCells)
	}
	g := &Grid{
		w:     cfg.Width,
		h:     cfg.Height,
		kinds: make([]Kind, cfg.Width*cfg.Height),
		start: none,
		goal:  none,
	}
	g.buildAdjacency()
	return g, nil
}

// WithinCells reports whether a w x h grid has at most limit cells, without
// overflowing. Non-positive dimensions are never within the limit.
func WithinCells(w, h, limit int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return w <= limit/h
}

// buildAdjacency runs once all cells exist. Neighbor order is left, right,
// up, down; the engine's tie-break depends on it.
func (g *Grid) buildAdjacency() {
	g.adj = make([][]int, len(g.kinds))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			n := make([]int, 0, 4)
			if x > 0 {
				n = append(n, g.Index(x-1, y))
			}
			if x < g.w-1 {
				n = append(n, g.Index(x+1, y))
			}
			if y > 0 {
				n = append(n, g.Index(x, y-1))
			}
			if y < g.h-1 {
				n = append(n, g.Index(x, y+1))
			}
			g.adj[g.Index(x, y)] = n
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.kinds) }

// Index returns the linear index for (x, y). It does not bounds check.
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Point converts a linear index back to coordinates.
func (g *Grid) Point(i int) Point { return Point{X: i % g.w, Y: i / g.w} }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) check(x, y int) error {
	if !g.In(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return nil
}

// Kind returns the classification of (x, y).
func (g *Grid) Kind(x, y int) (Kind, error) {
	if err := g.check(x, y); err != nil {
		return Open, err
	}
	return g.kinds[g.Index(x, y)], nil
}

// KindAt returns the classification at a linear index.
func (g *Grid) KindAt(i int) Kind { return g.kinds[i] }

// SetKind classifies (x, y). Setting Start or Goal demotes the previous
// holder of that role to Open; overwriting a role cell with Open or Blocked
// drops the role.
func (g *Grid) SetKind(x, y int, kind Kind) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	if !kind.valid() {
		return fmt.Errorf("grid: unknown kind %d", kind)
	}
	i := g.Index(x, y)
	g.release(i)
	switch kind {
	case Start:
		if g.start != none {
			g.kinds[g.start] = Open
		}
		g.start = i
	case Goal:
		if g.goal != none {
			g.kinds[g.goal] = Open
		}
		g.goal = i
	}
	g.kinds[i] = kind
	return nil
}

// release drops any role held by cell i.
func (g *Grid) release(i int) {
	if g.start == i {
		g.start = none
	}
	if g.goal == i {
		g.goal = none
	}
}

// ToggleObstacle flips (x, y) between Open and Blocked and reports whether
// the cell changed. The current Start and Goal cells are left untouched.
func (g *Grid) ToggleObstacle(x, y int) (bool, error) {
	if err := g.check(x, y); err != nil {
		return false, err
	}
	i := g.Index(x, y)
	switch g.kinds[i] {
	case Open:
		g.kinds[i] = Blocked
	case Blocked:
		g.kinds[i] = Open
	default:
		return false, nil
	}
	return true, nil
}

// Neighbors returns the in-bounds cells adjacent to (x, y) in left, right,
// up, down order. Blocked cells are included; filtering is the caller's job.
func (g *Grid) Neighbors(x, y int) ([]Point, error) {
	if err := g.check(x, y); err != nil {
		return nil, err
	}
	adj := g.adj[g.Index(x, y)]
	out := make([]Point, len(adj))
	for k, n := range adj {
		out[k] = g.Point(n)
	}
	return out, nil
}

// NeighborIndices exposes the cached adjacency of cell i. The returned slice
// is shared and must not be modified.
func (g *Grid) NeighborIndices(i int) []int { return g.adj[i] }

// Start returns the current start cell, if any.
func (g *Grid) Start() (Point, bool) { return g.role(g.start) }

// Goal returns the current goal cell, if any.
func (g *Grid) Goal() (Point, bool) { return g.role(g.goal) }

func (g *Grid) role(i int) (Point, bool) {
	if i == none {
		return Point{}, false
	}
	return g.Point(i), true
}

// Blocked returns a copy of the obstacle mask indexed linearly.
func (g *Grid) Blocked() []bool {
	mask := make([]bool, len(g.kinds))
	for i, k := range g.kinds {
		mask[i] = k == Blocked
	}
	return mask
}

// Clear resets every cell to Open and drops the start and goal roles.
func (g *Grid) Clear() {
	for i := range g.kinds {
		g.kinds[i] = Open
	}
	g.start = none
	g.goal = none
}
