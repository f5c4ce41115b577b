package benchutil

import (
	"fmt"

	"github.com/flexograph/benchutil/internal/rusage"
)

// Snapshot is a point-in-time reading of resource usage counters. Values are
// kept in the units the operating system reports them in.
type Snapshot struct {
	// Peak resident set size, in rusage.MaxRSSUnit bytes per unit.
	MaxRSS uint64 `json:"max_rss"`

	MajorFaults uint64 `json:"major_faults"`
	MinorFaults uint64 `json:"minor_faults"`

	InBlocks  uint64 `json:"in_blocks"`
	OutBlocks uint64 `json:"out_blocks"`
}

// MaxRSSBytes returns the peak resident set size in bytes.
func (s Snapshot) MaxRSSBytes() uint64 {
	return s.MaxRSS * rusage.MaxRSSUnit
}

// A Sampler reads the current resource usage counters.
type Sampler interface {
	Sample() (Snapshot, error)
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func() (Snapshot, error)

// Sample calls f().
func (f SamplerFunc) Sample() (Snapshot, error) {
	return f()
}

var (
	// SelfSampler samples the calling process.
	SelfSampler Sampler = whoSampler(rusage.Self)

	// ChildrenSampler samples terminated, waited-for child processes. Its
	// MaxRSS is the peak of the largest child, not a sum.
	ChildrenSampler Sampler = whoSampler(rusage.Children)
)

func whoSampler(who rusage.Who) Sampler {
	return SamplerFunc(func() (Snapshot, error) {
		ru, err := rusage.Stats(who)
		if err != nil {
			return Snapshot{}, fmt.Errorf("getrusage(%s): %w", who, err)
		}
		return Snapshot{
			MaxRSS:      ru.MaxRSS,
			MajorFaults: ru.MajorFaults,
			MinorFaults: ru.MinorFaults,
			InBlocks:    ru.FSInBlocks,
			OutBlocks:   ru.FSOutBlocks,
		}, nil
	})
}

// Capture samples the calling process with a single getrusage call.
func Capture() (Snapshot, error) {
	return SelfSampler.Sample()
}
