package plan

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStepRunExec(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil || runtime.GOOS == "windows" {
		t.Skip("echo not available")
	}

	var stdout, stderr bytes.Buffer
	s := Step{Name: "hello", Kind: KindExec, Command: []string{"echo", "hello"}}
	require.NoError(t, s.Run(context.Background(), &stdout, &stderr))
	require.Equal(t, "hello\n", stdout.String())
}

func TestStepRunExecFailure(t *testing.T) {
	s := Step{Name: "missing", Kind: KindExec, Command: []string{"/nonexistent/benchutil-test"}}
	err := s.Run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `step "missing"`)
}

func TestStepRunExecEmptyCommand(t *testing.T) {
	err := Step{Name: "bare", Kind: KindExec}.Run(context.Background(), nil, nil)
	require.EqualError(t, err, `step "bare": exec requires a command`)
}

func TestStepRunSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := Step{Name: "nap", Kind: KindSleep, Duration: time.Hour}
	err := s.Run(ctx, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStepRunSleep(t *testing.T) {
	s := Step{Name: "nap", Kind: KindSleep, Duration: 5 * time.Millisecond}
	start := time.Now()
	require.NoError(t, s.Run(context.Background(), nil, nil))
	require.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestStepRunAlloc(t *testing.T) {
	s := Step{Name: "grow", Kind: KindAlloc, MB: 2}
	require.NoError(t, s.Run(context.Background(), nil, nil))
}

func TestStepRunUnknownKind(t *testing.T) {
	err := Step{Name: "odd", Kind: "fork"}.Run(context.Background(), nil, nil)
	require.EqualError(t, err, `step "odd": unknown kind "fork"`)
}
