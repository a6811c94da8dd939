package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gridpath/internal/grid"
	"gridpath/internal/render"
	"gridpath/internal/scenario"
	"gridpath/internal/search"
	"gridpath/internal/session"
)

type solveOptions struct {
	layout  string
	params  map[string]string
	seed    int64
	width   int
	height  int
	animate bool
	tps     int
	plain   bool
	json    bool
}

type solveOutput struct {
	Status   search.Status `json:"status"`
	Steps    int           `json:"steps"`
	Expanded int           `json:"expanded"`
	Cost     int           `json:"cost"`
	Path     []grid.Point  `json:"path"`
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	d := grid.DefaultConfig()
	o := &solveOptions{layout: "clusters", seed: 42, width: d.Width, height: d.Height, tps: 50}
	cmd := &cobra.Command{
		Use:   "solve [scenario.yaml]",
		Short: "Run a search to completion and print the board",
		Long: `Solve builds a board from a scenario file, or from the layout flags when
no file is given, and steps the search until the goal is found or the
frontier is exhausted.

Board legend: S start, G goal, # wall, * path, o frontier, x visited.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := &scenario.Scenario{
				Width:  o.width,
				Height: o.height,
				Layout: o.layout,
				Seed:   o.seed,
				Params: o.params,
			}
			if len(args) == 1 {
				loaded, err := scenario.Load(args[0])
				if err != nil {
					return err
				}
				sc = loaded
			}
			return runSolve(cmd, root.logger, sc, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.layout, "layout", o.layout, "layout used when no scenario file is given")
	f.StringToStringVar(&o.params, "param", o.params, "layout parameters as key=value")
	f.Int64Var(&o.seed, "seed", o.seed, "layout seed")
	f.IntVar(&o.width, "width", o.width, "grid columns")
	f.IntVar(&o.height, "height", o.height, "grid rows")
	f.BoolVar(&o.animate, "animate", o.animate, "print every step")
	f.IntVar(&o.tps, "tps", o.tps, "steps per second with --animate")
	f.BoolVar(&o.plain, "plain", o.plain, "print glyphs without colour")
	f.BoolVar(&o.json, "json", o.json, "print the result as JSON")
	return cmd
}

func runSolve(cmd *cobra.Command, logger *slog.Logger, sc *scenario.Scenario, o *solveOptions) error {
	g, err := sc.Build()
	if err != nil {
		return err
	}
	s := session.FromGrid(g, logger)
	if err := s.Begin(); err != nil {
		return err
	}
	e := s.Engine()
	out := cmd.OutOrStdout()
	draw := frameWriter(out, o.plain)

	if o.animate && !o.json {
		tps := max(o.tps, 1)
		ticker := time.NewTicker(time.Second / time.Duration(tps))
		defer ticker.Stop()
		ctx := cmd.Context()
		for !e.Status().Terminal() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			s.Step()
			fmt.Fprint(out, "\x1b[H\x1b[2J")
			fmt.Fprintf(out, "step %d\n%s\n", e.Steps(), draw(s))
		}
	} else if _, err := e.Run(cmd.Context()); err != nil {
		return err
	}

	res := e.Result()
	logger.Debug("solve finished", slog.String("status", e.Status().String()), slog.Int("steps", e.Steps()))
	if o.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{
			Status:   e.Status(),
			Steps:    e.Steps(),
			Expanded: res.Expanded,
			Cost:     res.Cost,
			Path:     res.Path,
		})
	}
	if !o.animate {
		fmt.Fprintln(out, draw(s))
	}
	fmt.Fprintf(out, "status: %s  steps: %d  expanded: %d", e.Status(), e.Steps(), res.Expanded)
	if res.Found {
		fmt.Fprintf(out, "  cost: %d\npath: %s", res.Cost, formatPath(res.Path))
	}
	fmt.Fprintln(out)
	return nil
}

func frameWriter(out io.Writer, plain bool) func(*session.Session) string {
	if plain {
		return func(s *session.Session) string { return strings.TrimRight(render.ASCII(s.Frame()), "\n") }
	}
	t := render.NewText(lipgloss.NewRenderer(out), render.DefaultPalette())
	return func(s *session.Session) string { return t.Render(s.Frame()) }
}

func formatPath(path []grid.Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
