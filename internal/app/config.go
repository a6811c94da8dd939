// Package app runs the interactive window around a session.
package app

import (
	"errors"
	"maps"

	"github.com/spf13/pflag"

	"gridpath/internal/grid"
	"gridpath/internal/session"
)

// ErrGUIUnavailable is returned by Run in builds without the ebiten tag.
var ErrGUIUnavailable = errors.New("the GUI requires building with -tags ebiten")

// Config represents the command-line parameters for the window.
type Config struct {
	Width    int
	Height   int
	Layout   string
	Params   map[string]string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 25, Height: 25, Scale: 24, TPS: 50, Seed: 42, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid columns")
	fs.IntVar(&c.Height, "height", c.Height, "grid rows")
	fs.StringVar(&c.Layout, "layout", c.Layout, "initial obstacle layout (empty for a blank board)")
	fs.StringToStringVar(&c.Params, "param", c.Params, "layout parameters as key=value")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "search steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for layout generation")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "side panel width in pixels, 0 to hide")
}

// Session converts the window settings into a session configuration.
func (c *Config) Session() session.Config {
	return session.Config{
		Grid:   grid.Config{Width: c.Width, Height: c.Height},
		Layout: c.Layout,
		Params: maps.Clone(c.Params),
		Seed:   c.Seed,
		TPS:    c.TPS,
	}
}

// maxStepsPerFrame bounds catch-up work when frames run long.
const maxStepsPerFrame = 8
