package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/internal/grid"
	"gridpath/internal/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const detour = `rows:
  - "....."
  - ".###."
  - "S#G#."
  - ".#..."
  - "....."
`

func TestLayoutsCommand(t *testing.T) {
	out, err := execute(t, "layouts")
	require.NoError(t, err)
	assert.Equal(t, "clusters\nopen\nscatter\n", out)
}

func TestSolveScenarioPlain(t *testing.T) {
	out, err := execute(t, "solve", "--plain", writeScenario(t, detour))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "S#G#", lines[2][:4])
	assert.Contains(t, out, "status: found")
	assert.Contains(t, out, "cost: 6")
	assert.Contains(t, out, "path: (2,2)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "(0,2)"))
}

func TestSolveJSON(t *testing.T) {
	out, err := execute(t, "solve", "--json", "--layout", "open", "--width", "4", "--height", "3")
	require.NoError(t, err)

	var res solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, search.Found, res.Status)
	assert.Equal(t, 5, res.Cost)
	require.Len(t, res.Path, 6)
	assert.Equal(t, grid.Point{X: 3, Y: 2}, res.Path[0])
}

func TestSolveExhausted(t *testing.T) {
	body := "rows:\n  - \"S#.\"\n  - \"##G\"\n"
	out, err := execute(t, "solve", "--plain", writeScenario(t, body))
	require.NoError(t, err)
	assert.Contains(t, out, "status: exhausted")
	assert.NotContains(t, out, "path:")
}

func TestSolveAnimate(t *testing.T) {
	out, err := execute(t, "solve", "--plain", "--animate", "--tps", "1000", "--layout", "open", "--width", "3", "--height", "1")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "step "))
	assert.Contains(t, out, "status: found")
}

func TestSolveErrors(t *testing.T) {
	_, err := execute(t, "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "solve", writeScenario(t, "width: 3\nheight: 3\n"))
	assert.ErrorIs(t, err, search.ErrMissingEndpoints)

	_, err = execute(t, "solve", "--layout", "spiral")
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "loud", "layouts")
	assert.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--layout", "scatter", "--density", "0,1",
		"--width", "6", "--height", "6", "--seeds", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "scatter 6x6, 3 seeds from 1")
	assert.Contains(t, out, "density=0")
	assert.Contains(t, out, "density=1")
	assert.Contains(t, out, "MEAN PATH")
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []map[string]string{nil}, variants(nil, nil))
	got := variants(map[string]string{"walk": "5"}, []float64{0.1, 0.5})
	assert.Equal(t, []map[string]string{
		{"walk": "5", "density": "0.1"},
		{"walk": "5", "density": "0.5"},
	}, got)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(assert.AnError))
	assert.Equal(t, 2, exitCode(&exitError{code: 2, err: assert.AnError}))
}
