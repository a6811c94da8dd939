package search

import "fmt"

// Status is the engine's position in its state machine.
type Status int

const (
	// Idle means no Step has been taken yet.
	Idle Status = iota
	// Running means the frontier may still reach the goal.
	Running
	// Found means the goal was evaluated and the path is available.
	Found
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool { return s == Found || s == Exhausted }

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	for _, v := range []Status{Idle, Running, Found, Exhausted} {
		if v.String() == string(b) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}
