package search

import "gridpath/internal/grid"

// Snapshot is a read-only copy of the engine state after a step.
type Snapshot struct {
	Step       int          `json:"step"`
	Status     Status       `json:"status"`
	Current    grid.Point   `json:"current"`
	HasCurrent bool         `json:"has_current"`
	Frontier   []grid.Point `json:"frontier"`
	Visited    []grid.Point `json:"visited"`
	Path       []grid.Point `json:"path,omitempty"`
}

// Snapshot copies the observable state.
func (e *Engine) Snapshot() Snapshot {
	cur, ok := e.Current()
	return Snapshot{
		Step:       e.steps,
		Status:     e.status,
		Current:    cur,
		HasCurrent: ok,
		Frontier:   e.Frontier(),
		Visited:    e.Visited(),
		Path:       e.Path(),
	}
}

// Result summarizes a search.
type Result struct {
	Path     []grid.Point
	Cost     int
	Expanded int
	Found    bool
}

// Result reports the outcome so far. Cost is the goal's g when Found.
func (e *Engine) Result() Result {
	r := Result{
		Path:     e.Path(),
		Expanded: len(e.visited),
		Found:    e.status == Found,
	}
	if r.Found {
		r.Cost = e.g[e.goal]
	}
	return r
}
