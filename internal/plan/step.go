package plan

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"
)

var pageSize = os.Getpagesize()

// Run executes the step. Output of exec steps goes to stdout and stderr.
func (s Step) Run(ctx context.Context, stdout, stderr io.Writer) error {
	switch s.Kind {
	case KindExec:
		if len(s.Command) == 0 {
			return fmt.Errorf("step %q: exec requires a command", s.Name)
		}
		cmd := exec.CommandContext(ctx, s.Command[0], s.Command[1:]...)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("step %q: %w", s.Name, err)
		}
		return nil
	case KindAlloc:
		Touch(s.MB)
		return nil
	case KindSleep:
		t := time.NewTimer(s.Duration)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("step %q: %w", s.Name, ctx.Err())
		case <-t.C:
			return nil
		}
	}
	return fmt.Errorf("step %q: unknown kind %q", s.Name, s.Kind)
}

// Touch allocates mb MiB and writes one byte per page so that every page
// becomes resident.
func Touch(mb int) {
	buf := make([]byte, mb<<20)
	for i := 0; i < len(buf); i += pageSize {
		buf[i] = 1
	}
	runtime.KeepAlive(buf)
}
