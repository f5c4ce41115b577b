package benchutil

import "iter"

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range yields 0, 1, ..., to-1.
func Range[T Integer](to T) iter.Seq[T] {
	return RangeFrom(0, to)
}

// RangeFrom yields from, from+1, ..., to-1. It yields nothing when
// from >= to.
func RangeFrom[T Integer](from, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := from; x < to; x++ {
			if !yield(x) {
				return
			}
		}
	}
}
