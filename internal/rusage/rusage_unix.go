//go:build unix

package rusage

import (
	"golang.org/x/sys/unix"
)

// Stats returns the resources used by who according to getrusage(2).
func Stats(who Who) (*Resources, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(who.flag(), &usage); err != nil {
		return nil, err
	}

	return &Resources{
		// Note: These integer casts aren't redundant on 32-bit arches
		MaxRSS:      uint64(usage.Maxrss),
		MinorFaults: uint64(usage.Minflt),
		MajorFaults: uint64(usage.Majflt),
		FSInBlocks:  uint64(usage.Inblock),
		FSOutBlocks: uint64(usage.Oublock),
	}, nil
}

func (w Who) flag() int {
	if w == Children {
		return unix.RUSAGE_CHILDREN
	}
	return unix.RUSAGE_SELF
}
