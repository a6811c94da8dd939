package scatter

import (
	"slices"
	"testing"

	"gridpath/internal/grid"
)

func apply(t *testing.T, cfg Config, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(20, 15)
	if err != nil {
		t.Fatal(err)
	}
	if err := New(cfg).Apply(g, seed); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestScatterDeterministic(t *testing.T) {
	a := apply(t, DefaultConfig(), 42)
	b := apply(t, DefaultConfig(), 42)
	if !slices.Equal(a.Blocked(), b.Blocked()) {
		t.Fatal("same seed produced different obstacles")
	}
	c := apply(t, DefaultConfig(), 43)
	if slices.Equal(a.Blocked(), c.Blocked()) {
		t.Fatal("different seeds should produce different obstacles")
	}
}

func TestScatterDensityExtremes(t *testing.T) {
	empty := apply(t, Config{Density: 0}, 1)
	for i, b := range empty.Blocked() {
		if b {
			t.Fatalf("cell %d blocked at density 0", i)
		}
	}

	full := apply(t, Config{Density: 1}, 1)
	blocked := 0
	for _, b := range full.Blocked() {
		if b {
			blocked++
		}
	}
	if want := full.Len() - 2; blocked != want {
		t.Fatalf("blocked = %d, want %d (all but endpoints)", blocked, want)
	}
}

func TestFromMap(t *testing.T) {
	if got := FromMap(map[string]string{"density": "0.6"}).Density; got != 0.6 {
		t.Fatalf("density = %v, want 0.6", got)
	}
	if got := FromMap(nil).Density; got != DefaultConfig().Density {
		t.Fatalf("nil map density = %v", got)
	}
}
