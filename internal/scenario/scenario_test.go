package scenario

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/internal/core"
	"gridpath/internal/grid"
	_ "gridpath/internal/layouts/scatter"
	"gridpath/internal/search"
)

func TestLoadRowsMap(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "detour.yaml"))
	require.NoError(t, err)

	g, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 0, Y: 2}, start)
	k, _ := g.Kind(2, 1)
	assert.Equal(t, grid.Blocked, k)

	e, err := search.New(g)
	require.NoError(t, err)
	status, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Found, status)
	assert.Len(t, e.Path(), 7)
}

func TestLoadLayoutWithOverrides(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "layout.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0.3", s.Params["density"])

	g, err := s.Build()
	require.NoError(t, err)
	k, _ := g.Kind(5, 5)
	assert.Equal(t, grid.Blocked, k)
	goal, ok := g.Goal()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 6, Y: 6}, goal)
	k, _ = g.Kind(11, 7)
	assert.NotEqual(t, grid.Goal, k, "layout goal demoted by explicit goal")

	again, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, g.Blocked(), again.Blocked())
}

func TestDefaultsToStandardBoard(t *testing.T) {
	s, err := Parse([]byte("start: [0, 0]\ngoal: [24, 24]\n"))
	require.NoError(t, err)
	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 25, H: 25}, size)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour: red\n",
		"ragged rows":   "rows: ['S..', '.G']\n",
		"bad rune":      "rows: ['S.x', '..G']\n",
		"row mismatch":  "width: 4\nrows: ['S..', '..G']\n",
		"short coord":   "width: 3\nheight: 3\nstart: [1]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Parse([]byte(doc))
			if err == nil {
				_, err = s.Build()
			}
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestBuildPropagatesGridErrors(t *testing.T) {
	s := &Scenario{Width: 3, Height: 3, Walls: []Coord{{5, 5}}}
	_, err := s.Build()
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	s = &Scenario{Width: -1, Height: 3}
	_, err = s.Build()
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	s = &Scenario{Width: 3, Height: 3, Layout: "nope"}
	_, err = s.Build()
	assert.ErrorIs(t, err, core.ErrUnknownLayout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
