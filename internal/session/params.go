package session

import (
	"strconv"

	"gridpath/internal/core"
)

const (
	maxTPS         = 240
	defaultDensity = 0.25
)

// Parameters reports the search counters and board settings for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	status := s.Status()
	steps, frontier, visited, path, cost := 0, 0, 0, 0, 0
	if e := s.engine; e != nil {
		res := e.Result()
		steps = e.Steps()
		frontier = len(e.Frontier())
		visited = len(e.Visited())
		path = len(res.Path)
		cost = res.Cost
	}
	layout := s.cfg.Layout
	if layout == "" {
		layout = "blank"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Search",
			Params: []core.Parameter{
				core.StringParam("status", "Status", status.String()),
				core.IntParam("steps", "Steps", steps),
				core.IntParam("frontier", "Frontier", frontier),
				core.IntParam("visited", "Visited", visited),
				core.IntParam("path", "Path", path),
				core.IntParam("cost", "Cost", cost),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", s.mode.String()),
				core.StringParam("layout", "Layout", layout),
				core.IntParam("tps", "Steps/sec", s.cfg.TPS),
				core.FloatParam("density", "Density", s.density()),
				core.StringParam("seed", "Seed", strconv.FormatInt(s.cfg.Seed, 10)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tps", Label: "Steps/sec", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: maxTPS, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates integer settings.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "tps":
		s.cfg.TPS = min(max(value, 1), maxTPS)
		return true
	}
	return false
}

// SetFloatParameter updates float settings. Density applies on the next
// Reset.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		value = min(max(value, 0), 1)
		if s.cfg.Params == nil {
			s.cfg.Params = map[string]string{}
		}
		s.cfg.Params["density"] = strconv.FormatFloat(value, 'f', -1, 64)
		return true
	}
	return false
}

func (s *Session) density() float64 {
	if v, ok := s.cfg.Params["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return defaultDensity
}
