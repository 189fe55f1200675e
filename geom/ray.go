package geom

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// Raytrace returns at most maxLength cells of the trace from start
// towards end, in order from start. If maxLength is less than one,
// the result is empty but non-nil.
func Raytrace[T Integer](start, end Point[T], maxLength int) []Point[T] {
	if maxLength < 1 {
		return []Point[T]{}
	}

	size := min(lineCap(start, end), maxLength)
	return slices.AppendSeq(make([]Point[T], 0, size), TracedRay(start, end, maxLength))
}

// TracedRay is the same as [Raytrace] but yields the cells from an
// iterator. Cells past maxLength are never computed.
func TracedRay[T Integer](start, end Point[T], maxLength int) iter.Seq[Point[T]] {
	if maxLength < 1 {
		return func(func(Point[T]) bool) {}
	}
	return xiter.Limit(TracedLine(start, end), maxLength)
}
