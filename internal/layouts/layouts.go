// Package layouts holds helpers shared by the registered obstacle layouts.
// Each layout lives in its own subpackage and registers itself with
// core.Register from init; import them for side effects.
package layouts

import (
	"fmt"
	"strconv"

	"gridpath/internal/grid"
)

// PlaceEndpoints puts the start in the top-left corner and the goal in the
// bottom-right corner, clearing any obstacle underneath. On a single-cell
// grid only the start is placed.
func PlaceEndpoints(g *grid.Grid) error {
	if err := g.SetKind(0, 0, grid.Start); err != nil {
		return fmt.Errorf("place start: %w", err)
	}
	if g.Len() == 1 {
		return nil
	}
	if err := g.SetKind(g.Width()-1, g.Height()-1, grid.Goal); err != nil {
		return fmt.Errorf("place goal: %w", err)
	}
	return nil
}

// Int reads a non-negative integer from cfg, falling back to def.
func Int(cfg map[string]string, key string, def int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}

// Probability reads a value in [0, 1] from cfg, falling back to def.
func Probability(cfg map[string]string, key string, def float64) float64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			return parsed
		}
	}
	return def
}
