// Package session holds the driver-side state around one grid: the edit
// mode, the current search and the composed display frame.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"gridpath/internal/core"
	"gridpath/internal/grid"
	"gridpath/internal/logging"
	"gridpath/internal/search"
)

// ErrNoSearch is returned when stepping before a search has begun.
var ErrNoSearch = errors.New("no search in progress")

// Config controls the board a session edits.
type Config struct {
	Grid   grid.Config
	Layout string
	Params map[string]string
	Seed   int64
	TPS    int
}

// DefaultConfig returns a blank 25x25 board stepped 50 times per second.
func DefaultConfig() Config {
	return Config{Grid: grid.DefaultConfig(), Seed: 42, TPS: 50}
}

// Session wires a grid to at most one running engine.
type Session struct {
	cfg    Config
	grid   *grid.Grid
	engine *search.Engine
	frame  *core.Frame
	mode   Mode
	logger *slog.Logger
}

// New builds the grid described by cfg and applies its layout.
func New(cfg Config, logger *slog.Logger) (*Session, error) {
	g, err := grid.NewWithConfig(cfg.Grid)
	if err != nil {
		return nil, err
	}
	if cfg.Layout != "" {
		if _, err := core.NewLayout(cfg.Layout, cfg.Params); err != nil {
			return nil, err
		}
	}
	s := FromGrid(g, logger)
	s.cfg.Layout = cfg.Layout
	s.cfg.Params = maps.Clone(cfg.Params)
	s.cfg.Seed = cfg.Seed
	if cfg.TPS > 0 {
		s.cfg.TPS = cfg.TPS
	}
	if err := s.regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// FromGrid wraps an already configured grid.
func FromGrid(g *grid.Grid, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := DefaultConfig()
	cfg.Grid = grid.Config{Width: g.Width(), Height: g.Height()}
	return &Session{
		cfg:    cfg,
		grid:   g,
		frame:  core.NewFrame(g.Width(), g.Height()),
		logger: logger,
	}
}

// Name identifies the board for window titles.
func (s *Session) Name() string {
	if s.cfg.Layout == "" {
		return "astar"
	}
	return "astar: " + s.cfg.Layout
}

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Grid exposes the edited grid.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Engine returns the current search, or nil.
func (s *Session) Engine() *search.Engine { return s.engine }

// Mode returns the active edit mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode changes how Apply interprets cells.
func (s *Session) SetMode(m Mode) { s.mode = m }

// TPS returns the configured steps per second.
func (s *Session) TPS() int { return s.cfg.TPS }

// Apply edits (x, y) according to the current mode. Any change discards the
// current search.
func (s *Session) Apply(x, y int) error {
	var err error
	changed := true
	switch s.mode {
	case ModeStart:
		err = s.grid.SetKind(x, y, grid.Start)
	case ModeGoal:
		err = s.grid.SetKind(x, y, grid.Goal)
	case ModeObstacle:
		changed, err = s.grid.ToggleObstacle(x, y)
	default:
		return fmt.Errorf("apply: %v", s.mode)
	}
	if err != nil {
		return err
	}
	if changed {
		s.Discard()
	}
	return nil
}

// Ready reports whether both endpoints are placed.
func (s *Session) Ready() bool {
	_, okStart := s.grid.Start()
	_, okGoal := s.grid.Goal()
	return okStart && okGoal
}

// Begin starts a search unless one is already attached.
func (s *Session) Begin() error {
	if s.engine != nil {
		return nil
	}
	e, err := search.New(s.grid, search.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.engine = e
	start, goal := e.Start(), e.Goal()
	s.logger.Debug("search started",
		slog.Int("start_x", start.X), slog.Int("start_y", start.Y),
		slog.Int("goal_x", goal.X), slog.Int("goal_y", goal.Y))
	return nil
}

// Step advances the attached search by one tick, if any.
func (s *Session) Step() {
	if s.engine != nil {
		s.engine.Step()
	}
}

// Advance performs up to n steps, stopping early at a terminal status.
func (s *Session) Advance(n int) (search.Status, error) {
	if s.engine == nil {
		return search.Idle, ErrNoSearch
	}
	for i := 0; i < n && !s.engine.Status().Terminal(); i++ {
		s.engine.Step()
	}
	return s.engine.Status(), nil
}

// Status reports the search status, Idle when none is attached.
func (s *Session) Status() search.Status {
	if s.engine == nil {
		return search.Idle
	}
	return s.engine.Status()
}

// Discard drops the current search and keeps the grid.
func (s *Session) Discard() { s.engine = nil }

// Clear empties the grid and drops the search.
func (s *Session) Clear() {
	s.grid.Clear()
	s.Discard()
}

// Reset reapplies the configured layout with seed. Layout errors are logged.
func (s *Session) Reset(seed int64) {
	if err := s.regenerate(seed); err != nil {
		s.logger.Error("reset failed", slog.String("layout", s.cfg.Layout), slog.String("error", err.Error()))
	}
}

func (s *Session) regenerate(seed int64) error {
	s.Discard()
	s.cfg.Seed = seed
	if s.cfg.Layout == "" {
		s.grid.Clear()
		return nil
	}
	layout, err := core.NewLayout(s.cfg.Layout, s.cfg.Params)
	if err != nil {
		return err
	}
	return layout.Apply(s.grid, seed)
}

// Frame composes the grid and the search sets into display values.
func (s *Session) Frame() *core.Frame {
	f := s.frame
	f.FromGrid(s.grid)
	if s.engine == nil {
		return f
	}
	f.Paint(s.engine.Visited(), core.CellVisited)
	f.Paint(s.engine.Frontier(), core.CellFrontier)
	f.Paint(s.engine.Path(), core.CellPath)
	f.Paint([]grid.Point{s.engine.Start()}, core.CellStart)
	f.Paint([]grid.Point{s.engine.Goal()}, core.CellGoal)
	return f
}

// Cells returns the composed frame.
func (s *Session) Cells() []uint8 { return s.Frame().Cells() }
