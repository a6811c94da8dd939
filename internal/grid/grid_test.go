package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g, err := New(dims[0], dims[1])
		require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		assert.Nil(t, g)
	}
}

func TestNewRejectsOversizedDimensions(t *testing.T) {
	for _, dims := range [][2]int{{math.MaxInt, math.MaxInt}, {math.MaxInt/2 + 1, 2}, {60000, 60000}, {MaxCells + 1, 1}, {1, MaxCells + 1}} {
		var g *Grid
		var err error
		require.NotPanics(t, func() { g, err = New(dims[0], dims[1]) }, "dims %v", dims)
		require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		assert.Nil(t, g)
	}
}

func TestWithinCells(t *testing.T) {
	assert.True(t, WithinCells(16, 16, 256))
	assert.False(t, WithinCells(17, 16, 256))
	assert.False(t, WithinCells(math.MaxInt, math.MaxInt, 256))
	assert.False(t, WithinCells(0, 4, 256))
	assert.False(t, WithinCells(4, -1, 256))
}

func TestNewAllOpenRowMajor(t *testing.T) {
	g, err := New(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, Open, g.KindAt(i))
	}
	assert.Equal(t, Point{X: 1, Y: 2}, g.Point(9))
	assert.Equal(t, 9, g.Index(1, 2))
}

func TestNeighborsClippedAndOrdered(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	corner, err := g.Neighbors(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, corner)

	center, err := g.Neighbors(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, center)

	edge, err := g.Neighbors(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 1}, {2, 0}, {2, 2}}, edge)

	_, err = g.Neighbors(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNeighborsStableAcrossEdits(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	before, _ := g.Neighbors(1, 1)
	_, err = g.ToggleObstacle(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetKind(2, 1, Start))
	after, _ := g.Neighbors(1, 1)
	assert.Equal(t, before, after)
}

func TestSetKindOutOfBounds(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	err = g.SetKind(-1, 0, Blocked)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, err = g.Kind(0, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSetKindSingleStartAndGoal(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetKind(0, 0, Start))
	require.NoError(t, g.SetKind(1, 1, Start))
	k, _ := g.Kind(0, 0)
	assert.Equal(t, Open, k, "previous start demoted")
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, Point{1, 1}, start)

	require.NoError(t, g.SetKind(2, 2, Goal))
	require.NoError(t, g.SetKind(2, 0, Goal))
	k, _ = g.Kind(2, 2)
	assert.Equal(t, Open, k, "previous goal demoted")
	goal, ok := g.Goal()
	require.True(t, ok)
	assert.Equal(t, Point{2, 0}, goal)
}

func TestSetKindOverRoleDropsRole(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetKind(0, 0, Start))
	require.NoError(t, g.SetKind(0, 0, Goal))

	_, ok := g.Start()
	assert.False(t, ok, "goal replaced the start cell")
	goal, ok := g.Goal()
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, goal)

	require.NoError(t, g.SetKind(0, 0, Blocked))
	_, ok = g.Goal()
	assert.False(t, ok)
}

func TestToggleObstacle(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	changed, err := g.ToggleObstacle(1, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	k, _ := g.Kind(1, 1)
	assert.Equal(t, Blocked, k)

	changed, err = g.ToggleObstacle(1, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	k, _ = g.Kind(1, 1)
	assert.Equal(t, Open, k)

	require.NoError(t, g.SetKind(0, 0, Start))
	require.NoError(t, g.SetKind(2, 2, Goal))
	for _, p := range []Point{{0, 0}, {2, 2}} {
		changed, err = g.ToggleObstacle(p.X, p.Y)
		require.NoError(t, err)
		assert.False(t, changed, "role cell %v must not toggle", p)
	}

	_, err = g.ToggleObstacle(5, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBlockedMaskIsCopy(t *testing.T) {
	g, err := New(2, 1)
	require.NoError(t, err)
	_, _ = g.ToggleObstacle(1, 0)
	mask := g.Blocked()
	assert.Equal(t, []bool{false, true}, mask)
	mask[0] = true
	k, _ := g.Kind(0, 0)
	assert.Equal(t, Open, k)
}

func TestClear(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetKind(0, 0, Start))
	require.NoError(t, g.SetKind(1, 1, Goal))
	_, _ = g.ToggleObstacle(1, 0)

	g.Clear()
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, Open, g.KindAt(i))
	}
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Goal()
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Blocked")
	require.NoError(t, err)
	assert.Equal(t, Blocked, k)
	assert.Equal(t, "goal", Goal.String())
	_, err = ParseKind("lava")
	assert.Error(t, err)
}
