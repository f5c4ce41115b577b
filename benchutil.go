/*
Package benchutil holds the small measurement helpers shared by benchmark
kernels: aligned result printing, a wall-clock timer, integer ranges and
MemoryCounter, which reports peak memory, page faults and block I/O used by a
region of code.

	defer benchutil.MustStartMemoryCounter().Done()

The memcounter command wraps the same counter around other programs:
go install github.com/flexograph/benchutil/cmd/memcounter
*/
package benchutil

// RandSeed seeds the random generators of benchmark kernels so that inputs
// are reproducible between runs.
const RandSeed int64 = 27491095

var version = "dev"

// Version returns the library version, set at link time.
func Version() string {
	return version
}
