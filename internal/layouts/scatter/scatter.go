// Package scatter registers a layout that blocks cells independently at
// random.
package scatter

import (
	"gridpath/internal/core"
	"gridpath/internal/grid"
	"gridpath/internal/layouts"
	rng "gridpath/pkg/core"
)

// Config controls obstacle placement.
type Config struct {
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Density: 0.25}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Density = layouts.Probability(cfg, "density", c.Density)
	return c
}

// Scatter blocks each cell with probability Density.
type Scatter struct {
	cfg Config
}

// New returns a Scatter layout.
func New(cfg Config) *Scatter { return &Scatter{cfg: cfg} }

// Name returns the layout identifier.
func (s *Scatter) Name() string { return "scatter" }

// Config returns the active configuration.
func (s *Scatter) Config() Config { return s.cfg }

// Apply clears g, scatters obstacles and places the endpoints.
func (s *Scatter) Apply(g *grid.Grid, seed int64) error {
	g.Clear()
	r := rng.NewRNG(seed)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if r.Chance(s.cfg.Density) {
				if err := g.SetKind(x, y, grid.Blocked); err != nil {
					return err
				}
			}
		}
	}
	return layouts.PlaceEndpoints(g)
}

func init() {
	core.Register("scatter", func(cfg map[string]string) core.Layout {
		return New(FromMap(cfg))
	})
}
