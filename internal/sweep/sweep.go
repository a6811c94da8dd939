// Package sweep runs one search per seeded layout across a bounded pool of
// workers and aggregates the outcomes.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gridpath/internal/core"
	"gridpath/internal/grid"
	"gridpath/internal/logging"
	"gridpath/internal/search"
)

// Config selects the layouts and seeds to run.
type Config struct {
	Layout    string
	Params    []map[string]string
	Width     int
	Height    int
	Seeds     int
	FirstSeed int64
	Workers   int
	Logger    *slog.Logger
}

// DefaultConfig sweeps 100 seeds of the clusters layout on a 25x25 grid.
func DefaultConfig() Config {
	return Config{
		Layout:    "clusters",
		Width:     25,
		Height:    25,
		Seeds:     100,
		FirstSeed: 1,
		Workers:   runtime.NumCPU(),
	}
}

// Result is the outcome of one layout/seed pair.
type Result struct {
	Variant  int
	Params   map[string]string
	Seed     int64
	Status   search.Status
	Steps    int
	Expanded int
	PathLen  int
	Cost     int
}

// Summary aggregates results. Means over path length and cost only count
// found searches.
type Summary struct {
	Runs        int
	Found       int
	Exhausted   int
	MeanSteps   float64
	MeanPathLen float64
	MeanCost    float64
	Elapsed     time.Duration
}

// Report bundles the ordered results and their summary.
type Report struct {
	Results []Result
	Summary Summary
}

type job struct {
	slot    int
	variant int
	params  map[string]string
	seed    int64
}

// Run executes the sweep. The first error cancels the remaining jobs.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Seeds <= 0 {
		return nil, fmt.Errorf("sweep: seeds must be positive, got %d", cfg.Seeds)
	}
	if _, err := grid.NewWithConfig(grid.Config{Width: cfg.Width, Height: cfg.Height}); err != nil {
		return nil, err
	}
	variants := cfg.Params
	if len(variants) == 0 {
		variants = []map[string]string{nil}
	}
	for _, p := range variants {
		if _, err := core.NewLayout(cfg.Layout, p); err != nil {
			return nil, err
		}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	jobs := make([]job, 0, len(variants)*cfg.Seeds)
	for v, p := range variants {
		for i := 0; i < cfg.Seeds; i++ {
			jobs = append(jobs, job{slot: len(jobs), variant: v, params: p, seed: cfg.FirstSeed + int64(i)})
		}
	}
	logger.Info("sweep started",
		slog.String("layout", cfg.Layout),
		slog.Int("variants", len(variants)),
		slog.Int("seeds", cfg.Seeds),
		slog.Int("workers", workers))

	start := time.Now()
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		g.Go(func() error {
			res, err := runOne(gctx, cfg, j)
			if err != nil {
				return fmt.Errorf("sweep: seed %d: %w", j.seed, err)
			}
			results[j.slot] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := Summarize(results)
	sum.Elapsed = time.Since(start)
	logger.Info("sweep finished",
		slog.Int("runs", sum.Runs),
		slog.Int("found", sum.Found),
		slog.Duration("elapsed", sum.Elapsed))
	return &Report{Results: results, Summary: sum}, nil
}

func runOne(ctx context.Context, cfg Config, j job) (Result, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return Result{}, err
	}
	layout, err := core.NewLayout(cfg.Layout, j.params)
	if err != nil {
		return Result{}, err
	}
	if err := layout.Apply(g, j.seed); err != nil {
		return Result{}, err
	}
	e, err := search.New(g)
	if err != nil {
		return Result{}, err
	}
	if _, err := e.Run(ctx); err != nil {
		return Result{}, err
	}
	r := e.Result()
	return Result{
		Variant:  j.variant,
		Params:   maps.Clone(j.params),
		Seed:     j.seed,
		Status:   e.Status(),
		Steps:    e.Steps(),
		Expanded: r.Expanded,
		PathLen:  len(r.Path),
		Cost:     r.Cost,
	}, nil
}

// Summarize aggregates a set of results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	steps, pathLen, cost := 0, 0, 0
	for _, r := range results {
		steps += r.Steps
		switch r.Status {
		case search.Found:
			s.Found++
			pathLen += r.PathLen
			cost += r.Cost
		case search.Exhausted:
			s.Exhausted++
		}
	}
	if s.Runs > 0 {
		s.MeanSteps = float64(steps) / float64(s.Runs)
	}
	if s.Found > 0 {
		s.MeanPathLen = float64(pathLen) / float64(s.Found)
		s.MeanCost = float64(cost) / float64(s.Found)
	}
	return s
}

// ByVariant splits a report into per-variant summaries in variant order.
func (r *Report) ByVariant() []Summary {
	groups := map[int][]Result{}
	for _, res := range r.Results {
		groups[res.Variant] = append(groups[res.Variant], res)
	}
	keys := slices.Sorted(maps.Keys(groups))
	out := make([]Summary, len(keys))
	for i, k := range keys {
		out[i] = Summarize(groups[k])
	}
	return out
}

// FormatParams renders a parameter map as sorted key=value pairs.
func FormatParams(p map[string]string) string {
	if len(p) == 0 {
		return "defaults"
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, " ")
}
