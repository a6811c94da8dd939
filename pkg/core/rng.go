package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n), or 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Cell picks a random coordinate inside a w x h area.
func (r *RNG) Cell(w, h int) (int, int) {
	return r.IntN(w), r.IntN(h)
}

var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Direction picks one of the four cardinal unit offsets.
func (r *RNG) Direction() (int, int) {
	d := directions[r.r.IntN(len(directions))]
	return d[0], d[1]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
