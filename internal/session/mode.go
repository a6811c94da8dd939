package session

import (
	"fmt"
	"strings"
)

// Mode decides what a click on a cell does.
type Mode int

const (
	ModeStart Mode = iota
	ModeGoal
	ModeObstacle
)

var modeNames = [...]string{"start", "goal", "obstacle"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a mode name back to its value.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return ModeStart, fmt.Errorf("unknown mode %q", s)
}
