package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flexograph/benchutil"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	app := newApp()
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"memcounter", "--log-format", "json", "--log-level", "error"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestAlloc(t *testing.T) {
	stdout, _, err := runApp(t, "alloc", "--mb", "4", "--label", "grow")
	require.NoError(t, err)

	require.Contains(t, stdout, "grow: ")
	require.Contains(t, stdout, " major faults, ")
	require.Contains(t, stdout, " block input operations, ")
	require.Contains(t, stdout, "Wall Time:")
}

func TestAllocStatsToStderr(t *testing.T) {
	_, stderr, err := runApp(t, "alloc", "--mb", "1", "--log-stats-to-stderr")
	require.NoError(t, err)

	var stats struct {
		Rtime time.Duration
		Label string          `json:"label"`
		Delta benchutil.Delta `json:"delta"`
		NumGC uint32
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &stats))
	require.Equal(t, benchutil.DefaultLabel, stats.Label)
	require.Greater(t, stats.Rtime, time.Duration(0))
}

func TestAllocRejectsSize(t *testing.T) {
	_, _, err := runApp(t, "alloc", "--mb", "0")
	require.ErrorContains(t, err, "--mb must be positive")
}

func TestExec(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	stdout, _, err := runApp(t, "exec", "--", "true")
	require.NoError(t, err)
	require.Contains(t, stdout, "true: ")
	require.Contains(t, stdout, " block output operations\n")
}

func TestExecFailureStillReports(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	stdout, _, err := runApp(t, "exec", "--label", "broken", "--", "false")
	require.Error(t, err)
	require.Equal(t, 3, strings.Count(stdout, "broken: "))
}

func TestExecNoCommand(t *testing.T) {
	_, _, err := runApp(t, "exec")
	require.EqualError(t, err, "exec: no command given")
}

func TestRunPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := "name: smoke\nsteps:\n  - duration: 1ms\n  - {name: grow, mb: 2}\n"
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	stdout, _, err := runApp(t, "run", "--plan", path, "--label", "total")
	require.NoError(t, err)

	require.Contains(t, stdout, "Plan:")
	require.Contains(t, stdout, "Steps:                     2\n")
	for _, label := range []string{"step-1: ", "grow: ", "total: "} {
		require.Equal(t, 3, strings.Count(stdout, label), "report lines for %q", label)
	}
	require.Contains(t, stdout, "    1")
	require.Contains(t, stdout, "    2")
	// The spanning report comes last.
	require.Greater(t, strings.LastIndex(stdout, "total: "), strings.LastIndex(stdout, "grow: "))
}

func TestRunPlanRejectsAllocUnderChildren(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := "sampler: children\nsteps:\n  - {name: grow, mb: 64}\n"
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	stdout, _, err := runApp(t, "run", "--plan", path)
	require.ErrorContains(t, err, `step "grow": alloc runs in-process`)
	require.NotContains(t, stdout, "grow: ")
}

func TestRunPlanMissing(t *testing.T) {
	_, _, err := runApp(t, "run", "--plan", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadLogLevel(t *testing.T) {
	app := newApp()
	app.Writer, app.ErrWriter = &bytes.Buffer{}, &bytes.Buffer{}
	err := app.Run([]string{"memcounter", "--log-level", "loud", "alloc", "--mb", "1"})
	require.ErrorContains(t, err, `log level "loud"`)
}
