package benchutil

import (
	"fmt"
	"io"

	"github.com/flexograph/benchutil/internal/rusage"
)

const mib = 1 << 20

// Report is the outcome of one measurement window.
type Report struct {
	Label  string   `json:"label"`
	Before Snapshot `json:"before"`
	After  Snapshot `json:"after"`
	Delta  Delta    `json:"delta"`
}

// BeforeMB is the peak resident set size at the start of the window, in MiB.
func (r *Report) BeforeMB() uint64 {
	return r.Before.MaxRSSBytes() / mib
}

// AfterMB is the peak resident set size at the end of the window, in MiB.
func (r *Report) AfterMB() uint64 {
	return r.After.MaxRSSBytes() / mib
}

// DeltaMB is the change in peak resident set size, in MiB. It truncates
// towards zero and keeps the sign of the raw delta.
func (r *Report) DeltaMB() int64 {
	return r.Delta.MaxRSS * int64(rusage.MaxRSSUnit) / mib
}

// WriteTo writes the three line text form of the report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"%[1]s: %[2]d MB -> %[3]d MB, %[4]d MB total\n"+
			"%[1]s: %[5]d major faults, %[6]d minor faults\n"+
			"%[1]s: %[7]d block input operations, %[8]d block output operations\n",
		r.Label,
		r.BeforeMB(), r.AfterMB(), r.DeltaMB(),
		r.Delta.MajorFaults, r.Delta.MinorFaults,
		r.Delta.InBlocks, r.Delta.OutBlocks,
	)
	return int64(n), err
}
