// Package clusters registers a layout that grows obstacle blobs with random
// walks.
package clusters

import (
	"gridpath/internal/core"
	"gridpath/internal/grid"
	"gridpath/internal/layouts"
	rng "gridpath/pkg/core"
)

// Upper bounds for values read by FromMap.
const (
	MaxClusters = 256
	MaxWalk     = 10000
)

// Config controls the random walks.
type Config struct {
	Clusters int
	Walk     int
	Density  float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Clusters: 8, Walk: 200, Density: 0.25}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Counts above MaxClusters and MaxWalk are clamped.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Clusters = min(layouts.Int(cfg, "clusters", c.Clusters), MaxClusters)
	c.Walk = min(layouts.Int(cfg, "walk", c.Walk), MaxWalk)
	c.Density = layouts.Probability(cfg, "density", c.Density)
	return c
}

// Clusters drops a wall on each step of a wandering walker with probability
// Density.
type Clusters struct {
	cfg Config
}

// New returns a Clusters layout.
func New(cfg Config) *Clusters { return &Clusters{cfg: cfg} }

// Name returns the layout identifier.
func (c *Clusters) Name() string { return "clusters" }

// Config returns the active configuration.
func (c *Clusters) Config() Config { return c.cfg }

// Apply clears g, grows the clusters and places the endpoints.
func (c *Clusters) Apply(g *grid.Grid, seed int64) error {
	g.Clear()
	r := rng.NewRNG(seed)
	w, h := g.Width(), g.Height()
	for n := 0; n < c.cfg.Clusters; n++ {
		x, y := r.Cell(w, h)
		for s := 0; s < c.cfg.Walk; s++ {
			if r.Chance(c.cfg.Density) {
				if err := g.SetKind(x, y, grid.Blocked); err != nil {
					return err
				}
			}
			dx, dy := r.Direction()
			if g.In(x+dx, y+dy) {
				x, y = x+dx, y+dy
			}
		}
	}
	return layouts.PlaceEndpoints(g)
}

func init() {
	core.Register("clusters", func(cfg map[string]string) core.Layout {
		return New(FromMap(cfg))
	})
}
