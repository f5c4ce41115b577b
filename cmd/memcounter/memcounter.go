package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/flexograph/benchutil"
	"github.com/flexograph/benchutil/internal/logging"
	"github.com/flexograph/benchutil/internal/plan"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var AppHelpTemplate = `{{.Name}} - {{.Usage}}

USAGE:
  {{.Name}} exec [--log-stats-to-stderr] -- ./bfs -g 20
  {{.Name}} alloc --mb 100
  {{.Name}} run --plan plan.yaml

COMMANDS:
  {{range .VisibleCommands}}{{.Name}}{{"\t"}}{{.Usage}}
  {{end}}
OPTIONS:
  {{range .VisibleFlags}}{{.}}
  {{end}}
`

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// measurement couples a counter configuration with the wall time of the
// region it measured.
type measurement struct {
	label   string
	sampler benchutil.Sampler
	out     io.Writer
	elapsed time.Duration
}

func (m *measurement) run(fn func() error) (*benchutil.Report, error) {
	var t benchutil.Timer
	return benchutil.Measure(func() error {
		t.Start()
		err := fn()
		t.Stop()
		m.elapsed = t.Elapsed()
		return err
	},
		benchutil.WithSampler(m.sampler),
		benchutil.WithLabel(m.label),
		benchutil.WithOutput(m.out),
		benchutil.WithLogger(logger),
	)
}

func logStats(w io.Writer, elapsed time.Duration, r *benchutil.Report) error {
	var fullStats struct {
		// Wall-clock time
		Rtime time.Duration

		// OS-reported statistics for the measured window
		*benchutil.Report

		// Memory statistics of this process (see runtime.MemStats)
		TotalAlloc uint64
		HeapAlloc  uint64
		HeapInuse  uint64
		Mallocs    uint64
		Frees      uint64
		NumGC      uint32
	}
	fullStats.Rtime = elapsed
	fullStats.Report = r

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	fullStats.TotalAlloc = memStats.TotalAlloc
	fullStats.HeapAlloc = memStats.HeapAlloc
	fullStats.HeapInuse = memStats.HeapInuse
	fullStats.Mallocs = memStats.Mallocs
	fullStats.Frees = memStats.Frees
	fullStats.NumGC = memStats.NumGC

	return json.NewEncoder(w).Encode(&fullStats)
}

func samplerFor(name string) benchutil.Sampler {
	if name == plan.SamplerChildren {
		return benchutil.ChildrenSampler
	}
	return benchutil.SelfSampler
}

func finish(c *cli.Context, m *measurement, r *benchutil.Report, err error) error {
	if r != nil {
		benchutil.NewPrinter(c.App.Writer).Time("Wall Time", m.elapsed.Seconds())
		if c.Bool("log-stats-to-stderr") {
			if encErr := logStats(c.App.ErrWriter, m.elapsed, r); encErr != nil {
				err = errors.Join(err, encErr)
			}
		}
	}
	return err
}

func execAction(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return errors.New("exec: no command given")
	}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	label := c.String("label")
	if label == "" {
		label = filepath.Base(args[0])
	}
	step := plan.Step{Name: label, Kind: plan.KindExec, Command: args}
	m := &measurement{label: label, sampler: benchutil.ChildrenSampler, out: c.App.Writer}

	logger.Debug().Strs("command", args).Msg("running")
	r, err := m.run(func() error { return step.Run(ctx, c.App.Writer, c.App.ErrWriter) })
	return finish(c, m, r, err)
}

func allocAction(c *cli.Context) error {
	mb := c.Int("mb")
	if mb <= 0 {
		return fmt.Errorf("alloc: --mb must be positive, got %d", mb)
	}
	m := &measurement{label: c.String("label"), sampler: benchutil.SelfSampler, out: c.App.Writer}
	r, err := m.run(func() error {
		plan.Touch(mb)
		return nil
	})
	return finish(c, m, r, err)
}

func runAction(c *cli.Context) error {
	p, err := plan.Load(c.String("plan"))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := benchutil.NewPrinter(c.App.Writer)
	if p.Name != "" {
		printer.Label("Plan", p.Name)
	}
	printer.Step("Steps", int64(len(p.Steps)))

	sampler := samplerFor(p.Sampler)
	total := &measurement{label: c.String("label"), sampler: sampler, out: c.App.Writer}
	r, err := total.run(func() error {
		for i, step := range p.Steps {
			logger.Info().Str("step", step.Name).Str("kind", step.Kind).Msg("starting step")
			m := &measurement{label: step.Name, sampler: sampler, out: c.App.Writer}
			if _, err := m.run(func() error { return step.Run(ctx, c.App.Writer, c.App.ErrWriter) }); err != nil {
				return err
			}
			printer.StepNumber(i+1, m.elapsed.Seconds(), -1)
		}
		return nil
	})
	return finish(c, total, r, err)
}

func labelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "label",
		Value: benchutil.DefaultLabel,
		Usage: "prefix of the report lines",
	}
}

func statsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "log-stats-to-stderr",
		Usage: "Logs a JSON object to stderr containing the measured deltas and wall time after the workload finishes",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "memcounter"
	app.Version = benchutil.Version()
	app.Usage = "report peak memory, page faults and block I/O of a workload"
	app.CustomAppHelpTemplate = AppHelpTemplate
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "minimum level of diagnostics written to stderr (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: logging.FormatAuto,
			Usage: "diagnostics format: auto, json or console",
		},
	}
	app.Before = func(c *cli.Context) error {
		l, err := logging.New(c.App.ErrWriter, c.String("log-level"), c.String("log-format"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:      "exec",
			Usage:     "run a command and report the resources used by it and its children",
			ArgsUsage: "-- command [args...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "label",
					Usage: "prefix of the report lines (default: command name)",
				},
				statsFlag(),
			},
			Action: execAction,
		},
		{
			Name:  "alloc",
			Usage: "allocate and touch a buffer inside this process and report the resources used",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "mb",
					Value: 100,
					Usage: "size of the buffer in MiB",
				},
				labelFlag(),
				statsFlag(),
			},
			Action: allocAction,
		},
		{
			Name:  "run",
			Usage: "run the steps of a YAML plan, reporting each step and the whole plan",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "plan",
					Required: true,
					Usage:    "path to the plan file",
				},
				labelFlag(),
				statsFlag(),
			},
			Action: runAction,
		},
	}
	return app
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		logger.Fatal().Err(err).Msg("memcounter failed")
	}
}
