package server

import (
	"time"

	"github.com/spf13/pflag"
)

// Config controls the HTTP API.
type Config struct {
	Addr            string
	Debug           bool
	MaxSearches     int
	MaxCells        int
	MaxSteps        int
	ShutdownTimeout time.Duration
}

// DefaultConfig listens on localhost:8080, keeps up to 256 searches and
// accepts boards of at most 65536 cells.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:8080",
		MaxSearches:     256,
		MaxCells:        1 << 16,
		MaxSteps:        10000,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "run gin in debug mode with its request logger")
	fs.IntVar(&c.MaxSearches, "max-searches", c.MaxSearches, "searches kept in memory at once")
	fs.IntVar(&c.MaxCells, "max-cells", c.MaxCells, "largest width*height accepted for a new search")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "largest n accepted by the step endpoint")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "grace period for in-flight requests")
}
