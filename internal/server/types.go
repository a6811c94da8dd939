package server

import (
	"time"

	"gridpath/internal/grid"
	"gridpath/internal/search"
)

// SearchResponse is the JSON view of a stored search.
type SearchResponse struct {
	ID       string        `json:"id"`
	Created  time.Time     `json:"created"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Status   search.Status `json:"status"`
	Step     int           `json:"step"`
	Start    grid.Point    `json:"start"`
	Goal     grid.Point    `json:"goal"`
	Current  *grid.Point   `json:"current,omitempty"`
	Walls    []grid.Point  `json:"walls"`
	Frontier []grid.Point  `json:"frontier"`
	Visited  []grid.Point  `json:"visited"`
	Path     []grid.Point  `json:"path"`
	Cost     int           `json:"cost"`
}

// LayoutsResponse lists the registered layouts.
type LayoutsResponse struct {
	Layouts []string `json:"layouts"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Searches int    `json:"searches"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toResponse(e *entry) SearchResponse {
	s := e.session
	g := s.Grid()
	eng := s.Engine()
	snap := eng.Snapshot()

	walls := []grid.Point{}
	for i := 0; i < g.Len(); i++ {
		if g.KindAt(i) == grid.Blocked {
			walls = append(walls, g.Point(i))
		}
	}
	resp := SearchResponse{
		ID:       e.id,
		Created:  e.created,
		Width:    g.Width(),
		Height:   g.Height(),
		Status:   snap.Status,
		Step:     snap.Step,
		Start:    eng.Start(),
		Goal:     eng.Goal(),
		Walls:    walls,
		Frontier: snap.Frontier,
		Visited:  snap.Visited,
		Path:     snap.Path,
		Cost:     eng.Result().Cost,
	}
	if snap.HasCurrent {
		cur := snap.Current
		resp.Current = &cur
	}
	if resp.Path == nil {
		resp.Path = []grid.Point{}
	}
	return resp
}
