package open

import (
	"testing"

	"gridpath/internal/core"
	"gridpath/internal/grid"
)

func TestOpenClearsAndPlacesEndpoints(t *testing.T) {
	g, err := grid.New(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = g.ToggleObstacle(2, 2)

	layout, err := core.NewLayout("open", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Apply(g, 1); err != nil {
		t.Fatal(err)
	}
	for _, blocked := range g.Blocked() {
		if blocked {
			t.Fatal("open layout left an obstacle")
		}
	}
	if _, ok := g.Start(); !ok {
		t.Fatal("start not placed")
	}
	if _, ok := g.Goal(); !ok {
		t.Fatal("goal not placed")
	}
}
