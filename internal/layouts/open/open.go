// Package open registers the obstacle-free layout.
package open

import (
	"gridpath/internal/core"
	"gridpath/internal/grid"
	"gridpath/internal/layouts"
)

// Open leaves every cell passable.
type Open struct{}

// Name returns the layout identifier.
func (Open) Name() string { return "open" }

// Apply clears g and places the endpoints in opposite corners.
func (Open) Apply(g *grid.Grid, _ int64) error {
	g.Clear()
	return layouts.PlaceEndpoints(g)
}

func init() {
	core.Register("open", func(map[string]string) core.Layout { return Open{} })
}
