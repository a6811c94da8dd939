package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/internal/grid"
	"gridpath/internal/session"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("gui", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"--width", "10", "--layout", "scatter", "--param", "density=0.4", "--tps", "5", "--seed", "9",
	}))

	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 25, cfg.Height)
	assert.Equal(t, 24, cfg.Scale)

	sc := cfg.Session()
	assert.Equal(t, grid.Config{Width: 10, Height: 25}, sc.Grid)
	assert.Equal(t, "scatter", sc.Layout)
	assert.Equal(t, map[string]string{"density": "0.4"}, sc.Params)
	assert.Equal(t, 5, sc.TPS)
	assert.Equal(t, int64(9), sc.Seed)
}

func TestDefaultSessionIsBlank(t *testing.T) {
	s, err := session.New(NewConfig().Session(), nil)
	require.NoError(t, err)
	assert.False(t, s.Ready())
	assert.Equal(t, 50, s.TPS())
}
