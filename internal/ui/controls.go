// Package ui draws the side panel and board overlays of the GUI. Only the
// input-independent pieces build without the ebiten tag.
package ui

import (
	"image"
	"math"
	"strconv"

	"gridpath/internal/core"
)

const (
	panelPadding          = 12
	lineHeight            = 36
	statHeight            = 18
	buttonSize            = 24
	buttonGap             = 6
	headerBaseline        = 18
	labelBaseline         = 24
	controlsTop           = panelPadding + headerBaseline + 14
	defaultFloatIncrement = 0.05
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(ctrls []core.ParameterControl) []controlState {
	states := make([]controlState, len(ctrls))
	for i, c := range ctrls {
		states[i] = controlState{control: c, value: "--"}
	}
	return states
}

// refreshControls copies current values out of snap.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		s := &states[i]
		s.hasValue = false
		s.value = "--"
		p, ok := snap.Lookup(s.control.Key)
		if !ok {
			continue
		}
		switch s.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				continue
			}
			s.intValue, s.floatValue = v, float64(v)
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				continue
			}
			s.floatValue = v
		default:
			continue
		}
		s.hasValue = true
		s.value = formatValue(s.control, s.floatValue)
	}
}

// target returns the clamped value one increment in direction and whether it
// differs from the current one.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	c := s.control
	switch c.Type {
	case core.ParamTypeInt:
		step := int(math.Round(c.Step))
		if step <= 0 {
			step = 1
		}
		t := s.intValue + direction*step
		if c.HasMin {
			t = max(t, int(math.Round(c.Min)))
		}
		if c.HasMax {
			t = min(t, int(math.Round(c.Max)))
		}
		return float64(t), t != s.intValue
	case core.ParamTypeFloat:
		step := c.Step
		if step <= 0 {
			step = defaultFloatIncrement
		}
		t := s.floatValue + float64(direction)*step
		if c.HasMin {
			t = math.Max(t, c.Min)
		}
		if c.HasMax {
			t = math.Min(t, c.Max)
		}
		return t, math.Abs(t-s.floatValue) >= 1e-9
	}
	return 0, false
}

// commit records a value the board accepted.
func (s *controlState) commit(v float64) {
	if s.control.Type == core.ParamTypeInt {
		s.intValue = int(v)
	}
	s.floatValue = v
	s.value = formatValue(s.control, v)
}

func formatValue(c core.ParameterControl, v float64) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	step := c.Step
	if step <= 0 {
		step = defaultFloatIncrement
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// layoutControls places the -/+ buttons of each row against the right edge
// of a panel of the given width.
func layoutControls(states []controlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

// hit reports which control button contains (x, y), as a control index and
// a direction.
func hit(states []controlState, x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range states {
		if !states[i].hasValue {
			continue
		}
		if pt.In(states[i].minusRect) {
			return i, -1, true
		}
		if pt.In(states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// CellAt maps a screen position to board coordinates for a board drawn at
// the origin with the given scale.
func CellAt(px, py, scale int, size core.Size) (int, int, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
