package benchutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultLabel prefixes every report line unless WithLabel overrides it.
const DefaultLabel = "MemoryCounter"

// ErrStopped is returned by Stop once the counter has already reported.
var ErrStopped = errors.New("memory counter already stopped")

// MemoryCounter measures resource usage over a window of code. It samples
// when created and again when stopped, then prints the difference.
//
// The counters are process wide, so a MemoryCounter only attributes usage
// correctly when the measured code is the only thing running. It must not be
// shared between goroutines.
type MemoryCounter struct {
	sampler Sampler
	out     io.Writer
	label   string
	logger  zerolog.Logger

	before  Snapshot
	stopped bool
}

// Option configures a MemoryCounter.
type Option func(*MemoryCounter)

// WithSampler replaces SelfSampler as the source of snapshots.
func WithSampler(s Sampler) Option {
	return func(mc *MemoryCounter) { mc.sampler = s }
}

// WithOutput sends the report to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(mc *MemoryCounter) { mc.out = w }
}

// WithLabel sets the prefix of each report line.
func WithLabel(label string) Option {
	return func(mc *MemoryCounter) { mc.label = label }
}

// WithLogger logs samples at debug level and negative deltas at warn level.
func WithLogger(l zerolog.Logger) Option {
	return func(mc *MemoryCounter) { mc.logger = l }
}

// NewMemoryCounter takes the first sample and returns an armed counter.
func NewMemoryCounter(opts ...Option) (*MemoryCounter, error) {
	mc := &MemoryCounter{
		sampler: SelfSampler,
		out:     os.Stdout,
		label:   DefaultLabel,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(mc)
	}

	before, err := mc.sampler.Sample()
	if err != nil {
		return nil, fmt.Errorf("%s: sampling before: %w", mc.label, err)
	}
	mc.before = before
	mc.logger.Debug().Str("label", mc.label).Interface("snapshot", before).Msg("sampled before")
	return mc, nil
}

// MustStartMemoryCounter is like NewMemoryCounter but panics if the first
// sample cannot be taken.
func MustStartMemoryCounter(opts ...Option) *MemoryCounter {
	mc, err := NewMemoryCounter(opts...)
	if err != nil {
		panic(err)
	}
	return mc
}

// Stop takes the second sample and writes the report. Only the first call
// does anything; later calls return ErrStopped.
func (mc *MemoryCounter) Stop() (*Report, error) {
	if mc.stopped {
		return nil, ErrStopped
	}
	mc.stopped = true

	after, err := mc.sampler.Sample()
	if err != nil {
		return nil, fmt.Errorf("%s: sampling after: %w", mc.label, err)
	}
	mc.logger.Debug().Str("label", mc.label).Interface("snapshot", after).Msg("sampled after")

	r := &Report{
		Label:  mc.label,
		Before: mc.before,
		After:  after,
		Delta:  Diff(mc.before, after),
	}
	if bad := r.Delta.Anomalies(); len(bad) > 0 {
		mc.logger.Warn().Str("label", mc.label).Strs("fields", bad).Msg("resource counters decreased")
	}
	if _, err := r.WriteTo(mc.out); err != nil {
		return r, fmt.Errorf("%s: writing report: %w", mc.label, err)
	}
	return r, nil
}

// Done stops the counter and panics if the final sample fails. It is meant
// for defer:
//
//	defer benchutil.MustStartMemoryCounter().Done()
func (mc *MemoryCounter) Done() {
	if _, err := mc.Stop(); err != nil && !errors.Is(err, ErrStopped) {
		panic(err)
	}
}

// Measure runs fn inside a MemoryCounter and returns its report. The report
// is written however fn exits, including by panic, in which case the panic
// resumes afterwards. A failed final sample during a panic cannot be
// returned, so it is logged at error level instead.
func Measure(fn func() error, opts ...Option) (r *Report, err error) {
	mc, err := NewMemoryCounter(opts...)
	if err != nil {
		return nil, err
	}
	returned := false
	defer func() {
		var stopErr error
		r, stopErr = mc.Stop()
		if stopErr == nil {
			return
		}
		if !returned {
			mc.logger.Error().Err(stopErr).Str("label", mc.label).Msg("measured region panicked and the final sample failed")
		}
		err = errors.Join(err, stopErr)
	}()
	err = fn()
	returned = true
	return nil, err
}
