package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gridpath/internal/grid"
)

// ErrMissingEndpoints is returned when the grid lacks a start or goal cell.
var ErrMissingEndpoints = errors.New("search: start and goal must both be set")

const noCell = -1

type cellState uint8

const (
	unseen cellState = iota
	inFrontier
	inVisited
)

// Engine owns the bookkeeping of one search attempt. It is not safe for
// concurrent use; drivers serialize calls to Step.
type Engine struct {
	grid *grid.Grid
	opts Options

	start, goal int
	goalPt      grid.Point
	blocked     []bool

	g, h, f []int
	parent  []int
	state   []cellState

	frontier []int
	visited  []int
	path     []int

	current int
	steps   int
	status  Status
}

// New prepares a search from the grid's start cell to its goal cell.
func New(g *grid.Grid, options ...Option) (*Engine, error) {
	startPt, okStart := g.Start()
	goalPt, okGoal := g.Goal()
	if !okStart || !okGoal {
		return nil, ErrMissingEndpoints
	}
	return NewBetween(g, startPt, goalPt, options...)
}

// NewBetween prepares a search between explicit endpoints. The obstacle
// layout is captured here; editing the grid afterwards does not affect this
// engine. A start equal to the goal is immediately Found with a one-cell
// path.
func NewBetween(g *grid.Grid, startPt, goalPt grid.Point, options ...Option) (*Engine, error) {
	for _, p := range []grid.Point{startPt, goalPt} {
		if !g.In(p.X, p.Y) {
			return nil, fmt.Errorf("search: endpoint (%d,%d): %w", p.X, p.Y, grid.ErrOutOfBounds)
		}
	}

	opts := defaultOptions()
	for _, o := range options {
		o(&opts)
	}

	n := g.Len()
	e := &Engine{
		grid:    g,
		opts:    opts,
		start:   g.Index(startPt.X, startPt.Y),
		goal:    g.Index(goalPt.X, goalPt.Y),
		goalPt:  goalPt,
		blocked: g.Blocked(),
		g:       make([]int, n),
		h:       make([]int, n),
		f:       make([]int, n),
		parent:  make([]int, n),
		state:   make([]cellState, n),
		current: noCell,
	}
	for i := range e.parent {
		e.parent[i] = noCell
	}

	e.h[e.start] = opts.Heuristic(startPt, goalPt)
	e.f[e.start] = e.h[e.start]
	e.state[e.start] = inFrontier
	e.frontier = append(e.frontier, e.start)

	if e.start == e.goal {
		e.path = []int{e.start}
		e.finish(Found)
	}
	return e, nil
}

// Step performs one expansion and returns the resulting status. Once the
// engine is Found or Exhausted, Step is a no-op.
func (e *Engine) Step() Status {
	if e.status == Idle {
		e.status = Running
	}
	if e.status != Running {
		return e.status
	}
	if len(e.frontier) == 0 {
		e.finish(Exhausted)
		return e.status
	}

	e.steps++
	k := e.lowestF()
	cur := e.frontier[k]
	e.current = cur

	if cur == e.goal {
		e.path = e.trace(cur)
		e.finish(Found)
		return e.status
	}

	e.frontier = slices.Delete(e.frontier, k, k+1)
	e.state[cur] = inVisited
	e.visited = append(e.visited, cur)

	for _, n := range e.grid.NeighborIndices(cur) {
		if e.state[n] == inVisited || e.blocked[n] {
			continue
		}
		tentative := e.g[cur] + 1
		if e.state[n] == inFrontier && tentative >= e.g[n] {
			continue
		}
		e.g[n] = tentative
		e.h[n] = e.opts.Heuristic(e.grid.Point(n), e.goalPt)
		e.f[n] = e.g[n] + e.h[n]
		e.parent[n] = cur
		if e.state[n] != inFrontier {
			e.state[n] = inFrontier
			e.frontier = append(e.frontier, n)
		}
	}
	return e.status
}

// lowestF returns the frontier position of the minimum f; the first
// minimum in discovery order wins.
func (e *Engine) lowestF() int {
	best := 0
	for k := 1; k < len(e.frontier); k++ {
		if e.f[e.frontier[k]] < e.f[e.frontier[best]] {
			best = k
		}
	}
	return best
}

// trace follows parent links from cell back to the start, goal first.
func (e *Engine) trace(cell int) []int {
	path := []int{cell}
	for cell != e.start {
		cell = e.parent[cell]
		if cell == noCell || len(path) > len(e.parent) {
			break
		}
		path = append(path, cell)
	}
	return path
}

func (e *Engine) finish(s Status) {
	e.status = s
	e.opts.Logger.Debug("search finished",
		slog.String("status", s.String()),
		slog.Int("steps", e.steps),
		slog.Int("visited", len(e.visited)),
		slog.Int("path_len", len(e.path)),
	)
}

// Run steps until the search is terminal or ctx is done.
func (e *Engine) Run(ctx context.Context) (Status, error) {
	for !e.status.Terminal() {
		if err := ctx.Err(); err != nil {
			return e.status, err
		}
		e.Step()
	}
	return e.status, nil
}

// Status returns the current state.
func (e *Engine) Status() Status { return e.status }

// Steps counts the expansions performed so far.
func (e *Engine) Steps() int { return e.steps }

// Start returns the cell the search began from.
func (e *Engine) Start() grid.Point { return e.grid.Point(e.start) }

// Goal returns the target cell.
func (e *Engine) Goal() grid.Point { return e.goalPt }

// Current returns the cell evaluated by the latest step.
func (e *Engine) Current() (grid.Point, bool) {
	if e.current == noCell {
		return grid.Point{}, false
	}
	return e.grid.Point(e.current), true
}

// Frontier returns the open set in discovery order.
func (e *Engine) Frontier() []grid.Point { return e.points(e.frontier) }

// Visited returns the closed set in evaluation order.
func (e *Engine) Visited() []grid.Point { return e.points(e.visited) }

// Path returns the goal-to-start path; it is empty unless Found.
func (e *Engine) Path() []grid.Point { return e.points(e.path) }

// Cost returns the best known g of p and whether p has been discovered.
func (e *Engine) Cost(p grid.Point) (int, bool) {
	if !e.grid.In(p.X, p.Y) {
		return 0, false
	}
	i := e.grid.Index(p.X, p.Y)
	if e.state[i] == unseen {
		return 0, false
	}
	return e.g[i], true
}

// Estimate returns the f value of p, if discovered.
func (e *Engine) Estimate(p grid.Point) (int, bool) {
	if _, ok := e.Cost(p); !ok {
		return 0, false
	}
	return e.f[e.grid.Index(p.X, p.Y)], true
}

func (e *Engine) points(cells []int) []grid.Point {
	out := make([]grid.Point, len(cells))
	for k, c := range cells {
		out[k] = e.grid.Point(c)
	}
	return out
}
