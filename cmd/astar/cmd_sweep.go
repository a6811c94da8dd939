package main

import (
	"fmt"
	"maps"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"gridpath/internal/sweep"
)

func newSweepCmd(root *rootOptions) *cobra.Command {
	cfg := sweep.DefaultConfig()
	var (
		params    map[string]string
		densities []float64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve many seeded layouts and summarize the outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Params = variants(params, densities)
			cfg.Logger = root.logger
			rep, err := sweep.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %dx%d, %d seeds from %d\n", cfg.Layout, cfg.Width, cfg.Height, cfg.Seeds, cfg.FirstSeed)
			fmt.Fprintln(out, summaryTable(cfg.Params, rep))
			fmt.Fprintf(out, "elapsed %s\n", rep.Summary.Elapsed.Round(time.Millisecond))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.Layout, "layout", cfg.Layout, "layout to generate")
	f.StringToStringVar(&params, "param", nil, "layout parameters as key=value")
	f.Float64SliceVar(&densities, "density", nil, "obstacle densities to compare; one row each")
	f.IntVar(&cfg.Width, "width", cfg.Width, "grid columns")
	f.IntVar(&cfg.Height, "height", cfg.Height, "grid rows")
	f.IntVar(&cfg.Seeds, "seeds", cfg.Seeds, "seeds per parameter set")
	f.Int64Var(&cfg.FirstSeed, "first-seed", cfg.FirstSeed, "first seed")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent searches")
	return cmd
}

// variants expands the density list into one parameter set per value.
func variants(base map[string]string, densities []float64) []map[string]string {
	if len(densities) == 0 {
		return []map[string]string{base}
	}
	out := make([]map[string]string, len(densities))
	for i, d := range densities {
		p := maps.Clone(base)
		if p == nil {
			p = map[string]string{}
		}
		p["density"] = strconv.FormatFloat(d, 'f', -1, 64)
		out[i] = p
	}
	return out
}

func summaryTable(params []map[string]string, rep *sweep.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PARAMS", "RUNS", "FOUND", "EXHAUSTED", "MEAN STEPS", "MEAN PATH", "MEAN COST")
	for i, s := range rep.ByVariant() {
		t.Row(
			sweep.FormatParams(params[i]),
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Found),
			strconv.Itoa(s.Exhausted),
			strconv.FormatFloat(s.MeanSteps, 'f', 1, 64),
			strconv.FormatFloat(s.MeanPathLen, 'f', 1, 64),
			strconv.FormatFloat(s.MeanCost, 'f', 1, 64),
		)
	}
	return t.String()
}
