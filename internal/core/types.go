package core

import (
	"errors"
	"fmt"
	"sort"

	"gridpath/internal/grid"
)

// ErrUnknownLayout is returned when no layout is registered under a name.
var ErrUnknownLayout = errors.New("unknown layout")

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Board is the contract a tick-driven view needs from whatever it displays.
type Board interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Layout places obstacles and endpoints on a freshly cleared grid.
type Layout interface {
	Name() string
	Apply(g *grid.Grid, seed int64) error
}

// Factory constructs a Layout using an optional configuration map.
type Factory func(cfg map[string]string) Layout

var layouts = map[string]Factory{}

// Register adds a layout factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	layouts[name] = f
}

// Layouts exposes the registry of available layout factories.
func Layouts() map[string]Factory {
	return layouts
}

// LayoutNames returns the registered names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLayout builds the named layout from cfg.
func NewLayout(name string, cfg map[string]string) (Layout, error) {
	f, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLayout, name)
	}
	return f(cfg), nil
}
