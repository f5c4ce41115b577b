// Package rusage is a small wrapper around the POSIX system call getrusage.
package rusage

// Who selects whose resource usage is reported.
type Who int

const (
	// Self is the calling process, all threads included.
	Self Who = iota

	// Children is every descendant that has terminated and been waited for.
	Children
)

func (w Who) String() string {
	switch w {
	case Self:
		return "self"
	case Children:
		return "children"
	}
	return "unknown"
}

// Resources summarises the memory and I/O counters of one getrusage call.
// CPU times are omitted because the callers only difference these fields.
type Resources struct {
	// Maximum resident segment size, in MaxRSSUnit bytes per unit:
	// - Linux, Dragonfly, FreeBSD, NetBSD, OpenBSD, AIX: kilobytes
	// - Darwin: bytes
	// - Solaris, Illumos: pages
	MaxRSS uint64

	// Counts of minor and major page faults
	MinorFaults, MajorFaults uint64

	// Counts of file system performing input / output
	FSInBlocks, FSOutBlocks uint64
}
