package search

import (
	"log/slog"

	"gridpath/internal/grid"
)

// Heuristic estimates the remaining cost between two cells. It must not
// overestimate for the returned path to be optimal.
type Heuristic func(from, to grid.Point) int

// Manhattan is the admissible, consistent heuristic for 4-connected unit
// cost movement.
func Manhattan(a, b grid.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Zero turns the engine into uniform-cost search.
func Zero(grid.Point, grid.Point) int { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Options defines parameters for an engine.
type Options struct {
	Heuristic Heuristic
	Logger    *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the Manhattan default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithLogger routes terminal transitions to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func defaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		Logger:    slog.New(slog.DiscardHandler),
	}
}
