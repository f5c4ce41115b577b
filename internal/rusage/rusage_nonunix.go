//go:build !unix

package rusage

import (
	"fmt"
	"runtime"
)

// Stats reports a "not implemented" error.
func Stats(who Who) (*Resources, error) {
	return nil, fmt.Errorf("getrusage(%s) not implemented for %s", who, runtime.GOOS)
}
