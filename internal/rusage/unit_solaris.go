package rusage

import "golang.org/x/sys/unix"

// MaxRSSUnit is the number of bytes in one unit of Resources.MaxRSS, which
// Solaris and Illumos report in pages.
var MaxRSSUnit = uint64(unix.Getpagesize())
