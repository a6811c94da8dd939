package grid

import (
	"fmt"
	"strings"
)

// Kind classifies a cell. Start and Goal mark otherwise open cells.
type Kind uint8

const (
	Open Kind = iota
	Blocked
	Start
	Goal
)

var kindNames = [...]string{"open", "blocked", "start", "goal"}

func (k Kind) valid() bool { return int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Passable reports whether a search may enter a cell of this kind.
func (k Kind) Passable() bool { return k != Blocked }

// ParseKind maps a kind name back to its value.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return Open, fmt.Errorf("grid: unknown kind %q", s)
}
