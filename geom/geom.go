// Package geom provides utilities for discretizing lines and polygon
// outlines onto an integer grid.
//
// It is patterned after image.Point, but works over any integer
// coordinate type and never fails for in-range input.
package geom

import "golang.org/x/exp/constraints"

// Integer is a constraint for the coordinate types that geom types
// and functions can handle.
type Integer interface {
	constraints.Integer
}

// span returns the magnitude of the difference between a and b along
// with whether the walk from a to b moves in the negative direction.
// The magnitude is exact for every pair of values of any integer type
// up to 64 bits wide.
func span[T Integer](a, b T) (d uint64, neg bool) {
	if b < a {
		return uint64(a) - uint64(b), true
	}
	return uint64(b) - uint64(a), false
}

func step[T Integer](v T, neg bool) T {
	if neg {
		return v - 1
	}
	return v + 1
}
