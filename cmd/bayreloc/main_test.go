package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateThenSolve(t *testing.T) {
	dir := t.TempDir()
	inst := filepath.Join(dir, "bay4x3.dat")
	results := filepath.Join(dir, "results.txt")
	paths := filepath.Join(dir, "path.txt")
	prom := filepath.Join(dir, "bayreloc.prom")

	_, err := execute(t, "generate", "-m", "4", "--tiers", "3", "--seed", "11", "-o", inst)
	require.NoError(t, err)

	out, err := execute(t, "solve", inst,
		"-n", "5", "-d", "2", "-t", "1m", "--seed", "3", "--max-trajectories", "10",
		"--result-file", results, "--path-file", paths, "--metrics-file", prom,
		"--log-level", "error")
	require.NoError(t, err)

	line := strings.TrimRight(out, "\n")
	assert.True(t, strings.HasPrefix(line, "  bay4x3.dat   4   5  12"), "result line: %q", line)

	logged, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Equal(t, line+"\n", string(logged))

	dump, err := os.ReadFile(paths)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dump), "step 0\n"))

	metricsText, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), `bayreloc_trajectories_total{instance="bay4x3.dat"`)
}

func TestSolveJSON(t *testing.T) {
	dir := t.TempDir()
	inst := filepath.Join(dir, "tiny.json")
	require.NoError(t, os.WriteFile(inst, []byte(`{"stacks":[[1,2],[]]}`), 0o600))

	out, err := execute(t, "solve", "-f", inst, "-n", "2", "--json", "--stop-at-lower-bound", "--log-level", "error")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 1, doc["moves"])
	assert.Equal(t, true, doc["optimal"])
	assert.Equal(t, []any{"0->1"}, doc["relocations"])
}

func TestSolveErrors(t *testing.T) {
	_, err := execute(t, "solve", "-n", "3")
	require.Error(t, err)

	_, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.dat"), "-n", "3", "--log-level", "error")
	require.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	inst := filepath.Join(dir, "tall.dat")
	require.NoError(t, os.WriteFile(inst, []byte("1 3\n3 1 2 3\n"), 0o600))
	_, err = execute(t, "solve", inst, "-n", "2", "--log-level", "error")
	require.Error(t, err, "a stack above the constant cap is rejected")
}

// TestSolveRerunDoesNotReuseFiles runs one command tree twice; files given to
// the first run must not leak into the second.
func TestSolveRerunDoesNotReuseFiles(t *testing.T) {
	dir := t.TempDir()
	inst := filepath.Join(dir, "tiny.dat")
	require.NoError(t, os.WriteFile(inst, []byte("2 2\n2 1 2\n0\n"), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)

	root.SetArgs([]string{"solve", inst, "-n", "2", "--stop-at-lower-bound", "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, 1, strings.Count(out.String(), "tiny.dat"))

	out.Reset()
	root.SetArgs([]string{"solve", "-n", "2", "--log-level", "error"})
	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no instance file given")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bayreloc dev\n", out)
}
