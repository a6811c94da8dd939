// Package scenario loads grid setups from YAML documents.
//
// A scenario may start from a registered layout and then overlay an ASCII
// map, explicit walls and explicit endpoints, in that order:
//
//	width: 8
//	height: 4
//	layout: scatter
//	seed: 7
//	params:
//	  density: "0.2"
//	walls: [[3, 0], [3, 1]]
//	start: [0, 0]
//	goal: [7, 3]
//
// or, equivalently for a fixed map:
//
//	rows:
//	  - "S..#...."
//	  - "...#...."
//	  - "........"
//	  - ".......G"
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridpath/internal/core"
	"gridpath/internal/grid"
)

// ErrInvalid is returned for structurally broken scenario documents.
var ErrInvalid = errors.New("invalid scenario")

// Coord is an [x, y] pair.
type Coord []int

func (c Coord) point() (grid.Point, error) {
	if len(c) != 2 {
		return grid.Point{}, fmt.Errorf("%w: coordinate %v must have two elements", ErrInvalid, []int(c))
	}
	return grid.Point{X: c[0], Y: c[1]}, nil
}

// Scenario describes a grid and its endpoints.
type Scenario struct {
	Width  int               `yaml:"width,omitempty" json:"width,omitempty"`
	Height int               `yaml:"height,omitempty" json:"height,omitempty"`
	Layout string            `yaml:"layout,omitempty" json:"layout,omitempty"`
	Seed   int64             `yaml:"seed,omitempty" json:"seed,omitempty"`
	Params map[string]string `yaml:"params,omitempty" json:"params,omitempty"`
	Rows   []string          `yaml:"rows,omitempty" json:"rows,omitempty"`
	Walls  []Coord           `yaml:"walls,omitempty" json:"walls,omitempty"`
	Start  Coord             `yaml:"start,omitempty" json:"start,omitempty"`
	Goal   Coord             `yaml:"goal,omitempty" json:"goal,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &s, nil
}

// Size resolves the grid dimensions. Rows, when present, define them.
func (s *Scenario) Size() (core.Size, error) {
	if len(s.Rows) == 0 {
		if s.Width == 0 && s.Height == 0 {
			d := grid.DefaultConfig()
			return core.Size{W: d.Width, H: d.Height}, nil
		}
		return core.Size{W: s.Width, H: s.Height}, nil
	}
	w := len(s.Rows[0])
	for i, row := range s.Rows {
		if len(row) != w {
			return core.Size{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalid, i, len(row), w)
		}
	}
	h := len(s.Rows)
	if (s.Width != 0 && s.Width != w) || (s.Height != 0 && s.Height != h) {
		return core.Size{}, fmt.Errorf("%w: rows are %dx%d but width/height say %dx%d", ErrInvalid, w, h, s.Width, s.Height)
	}
	return core.Size{W: w, H: h}, nil
}

// Build creates the grid described by the scenario.
func (s *Scenario) Build() (*grid.Grid, error) {
	size, err := s.Size()
	if err != nil {
		return nil, err
	}
	g, err := grid.New(size.W, size.H)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply writes the scenario onto an existing grid of matching size.
func (s *Scenario) Apply(g *grid.Grid) error {
	if s.Layout != "" {
		layout, err := core.NewLayout(s.Layout, s.Params)
		if err != nil {
			return err
		}
		if err := layout.Apply(g, s.Seed); err != nil {
			return fmt.Errorf("layout %s: %w", s.Layout, err)
		}
	}
	for y, row := range s.Rows {
		for x, r := range row {
			kind, err := kindOf(r)
			if err != nil {
				return fmt.Errorf("%w: row %d col %d: %v", ErrInvalid, y, x, err)
			}
			if err := g.SetKind(x, y, kind); err != nil {
				return err
			}
		}
	}
	for _, c := range s.Walls {
		p, err := c.point()
		if err != nil {
			return err
		}
		if err := g.SetKind(p.X, p.Y, grid.Blocked); err != nil {
			return fmt.Errorf("wall: %w", err)
		}
	}
	if err := setRole(g, s.Start, grid.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := setRole(g, s.Goal, grid.Goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	return nil
}

func setRole(g *grid.Grid, c Coord, kind grid.Kind) error {
	if c == nil {
		return nil
	}
	p, err := c.point()
	if err != nil {
		return err
	}
	return g.SetKind(p.X, p.Y, kind)
}

func kindOf(r rune) (grid.Kind, error) {
	switch r {
	case '.', ' ':
		return grid.Open, nil
	case '#':
		return grid.Blocked, nil
	case 'S', 's':
		return grid.Start, nil
	case 'G', 'g':
		return grid.Goal, nil
	default:
		return grid.Open, fmt.Errorf("unknown cell %q", r)
	}
}
