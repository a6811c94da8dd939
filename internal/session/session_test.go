package session

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/internal/core"
	"gridpath/internal/grid"
	_ "gridpath/internal/layouts/scatter"
	"gridpath/internal/search"
)

func blank(t *testing.T, w, h int) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Grid = grid.Config{Width: w, Height: h}
	s, err := New(cfg, nil)
	require.NoError(t, err)
	return s
}

func TestModesDriveClicks(t *testing.T) {
	s := blank(t, 4, 4)

	s.SetMode(ModeStart)
	require.NoError(t, s.Apply(0, 0))
	require.NoError(t, s.Apply(1, 0))
	start, ok := s.Grid().Start()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 1, Y: 0}, start)
	k, _ := s.Grid().Kind(0, 0)
	assert.Equal(t, grid.Open, k)

	s.SetMode(ModeGoal)
	require.NoError(t, s.Apply(3, 3))
	assert.True(t, s.Ready())

	s.SetMode(ModeObstacle)
	require.NoError(t, s.Apply(2, 2))
	k, _ = s.Grid().Kind(2, 2)
	assert.Equal(t, grid.Blocked, k)
	require.NoError(t, s.Apply(1, 0))
	k, _ = s.Grid().Kind(1, 0)
	assert.Equal(t, grid.Start, k, "obstacle toggle leaves the start alone")

	assert.ErrorIs(t, s.Apply(4, 0), grid.ErrOutOfBounds)
}

func TestBeginRequiresEndpoints(t *testing.T) {
	s := blank(t, 3, 3)
	assert.ErrorIs(t, s.Begin(), search.ErrMissingEndpoints)
	_, err := s.Advance(1)
	assert.ErrorIs(t, err, ErrNoSearch)
	assert.Equal(t, search.Idle, s.Status())
}

func TestAdvanceStopsAtTerminal(t *testing.T) {
	s := blank(t, 5, 1)
	require.NoError(t, s.Apply(0, 0))
	s.SetMode(ModeGoal)
	require.NoError(t, s.Apply(4, 0))
	require.NoError(t, s.Begin())

	status, err := s.Advance(2)
	require.NoError(t, err)
	assert.Equal(t, search.Running, status)

	status, err = s.Advance(100)
	require.NoError(t, err)
	assert.Equal(t, search.Found, status)
	assert.Equal(t, 5, s.Engine().Steps())
}

func TestEditDiscardsSearch(t *testing.T) {
	s := blank(t, 3, 3)
	require.NoError(t, s.Apply(0, 0))
	s.SetMode(ModeGoal)
	require.NoError(t, s.Apply(2, 2))
	require.NoError(t, s.Begin())
	s.Step()
	require.NotNil(t, s.Engine())

	s.SetMode(ModeObstacle)
	require.NoError(t, s.Apply(2, 2)) // goal: no change
	assert.NotNil(t, s.Engine())
	require.NoError(t, s.Apply(1, 1))
	assert.Nil(t, s.Engine())
}

func TestBeginKeepsRunningSearch(t *testing.T) {
	s := blank(t, 4, 1)
	require.NoError(t, s.Apply(0, 0))
	s.SetMode(ModeGoal)
	require.NoError(t, s.Apply(3, 0))
	require.NoError(t, s.Begin())
	e := s.Engine()
	s.Step()
	require.NoError(t, s.Begin())
	assert.Same(t, e, s.Engine())
}

func TestFramePaintsSearchSets(t *testing.T) {
	s := blank(t, 4, 1)
	require.NoError(t, s.Apply(0, 0))
	s.SetMode(ModeGoal)
	require.NoError(t, s.Apply(3, 0))

	assert.Equal(t, []uint8{core.CellStart, core.CellOpen, core.CellOpen, core.CellGoal}, s.Cells())

	require.NoError(t, s.Begin())
	s.Step()
	assert.Equal(t, []uint8{core.CellStart, core.CellFrontier, core.CellOpen, core.CellGoal}, s.Cells())
	s.Step()
	assert.Equal(t, []uint8{core.CellStart, core.CellVisited, core.CellFrontier, core.CellGoal}, s.Cells())

	_, err := s.Advance(10)
	require.NoError(t, err)
	assert.Equal(t, []uint8{core.CellStart, core.CellPath, core.CellPath, core.CellGoal}, s.Cells())
}

func TestResetAppliesLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid = grid.Config{Width: 10, Height: 10}
	cfg.Layout = "scatter"
	cfg.Params = map[string]string{"density": "1"}
	s, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "astar: scatter", s.Name())
	assert.True(t, s.Ready())
	k, _ := s.Grid().Kind(5, 5)
	assert.Equal(t, grid.Blocked, k)

	require.True(t, s.SetFloatParameter("density", 0))
	s.Reset(7)
	for i := 0; i < s.Grid().Len(); i++ {
		assert.NotEqual(t, grid.Blocked, s.Grid().KindAt(i))
	}
	seed, ok := s.Parameters().Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "7", seed.Value)
}

func TestUnknownLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = "maze"
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, core.ErrUnknownLayout)
}

func TestParameterSetters(t *testing.T) {
	s := blank(t, 2, 2)
	assert.True(t, s.SetIntParameter("tps", 1000))
	assert.Equal(t, maxTPS, s.TPS())
	assert.True(t, s.SetIntParameter("tps", 0))
	assert.Equal(t, 1, s.TPS())
	assert.False(t, s.SetIntParameter("density", 3))

	assert.True(t, s.SetFloatParameter("density", 1.5))
	p, ok := s.Parameters().Lookup("density")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)

	keys := []string{}
	for _, c := range s.ParameterControls() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"tps", "density"}, keys)
}

func TestParametersReportSearch(t *testing.T) {
	s := blank(t, 3, 1)
	require.NoError(t, s.Apply(0, 0))
	s.SetMode(ModeGoal)
	require.NoError(t, s.Apply(2, 0))
	require.NoError(t, s.Begin())
	_, err := s.Advance(10)
	require.NoError(t, err)

	snap := s.Parameters()
	want := map[string]string{
		"status": "found",
		"steps":  "3",
		"path":   "3",
		"cost":   strconv.Itoa(2),
		"mode":   "goal",
		"layout": "blank",
	}
	for key, v := range want {
		p, ok := snap.Lookup(key)
		require.Truef(t, ok, "missing %s", key)
		assert.Equalf(t, v, p.Value, "param %s", key)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Obstacle")
	require.NoError(t, err)
	assert.Equal(t, ModeObstacle, m)
	_, err = ParseMode("wall")
	assert.Error(t, err)
	assert.Equal(t, "goal", ModeGoal.String())
}
