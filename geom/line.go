package geom

import (
	"iter"
	"math"
	"slices"
)

// Line returns the cells of the discretized straight segment from
// start to end, inclusive of both. The result always begins with
// start and ends with end, and is a single cell if they coincide.
//
// The walk is an integer Bresenham that advances the axis with the
// larger delta on every step. When the deltas are equal the y axis is
// treated as dominant. The error term starts at half of the dominant
// delta and the minor axis steps whenever subtracting the minor delta
// would make it negative. Because of that tie-break, a line traced
// backwards is not always the reverse of the line traced forwards,
// though it is whenever the dominant delta is odd.
func Line[T Integer](start, end Point[T]) []Point[T] {
	return slices.AppendSeq(make([]Point[T], 0, lineCap(start, end)), TracedLine(start, end))
}

// LineXY is the same as [Line] but takes the endpoints as separate
// coordinates.
func LineXY[T Integer](x0, y0, x1, y1 T) []Point[T] {
	return Line(Pt(x0, y0), Pt(x1, y1))
}

// LineLen returns the number of cells in the trace of the segment
// from start to end without walking it. The result wraps to zero for
// the single segment that spans the entire range of a 64-bit type.
func LineLen[T Integer](start, end Point[T]) uint64 {
	dx, _ := span(start.X, end.X)
	dy, _ := span(start.Y, end.Y)
	return max(dx, dy) + 1
}

// TracedLine is the same as [Line] except that it yields the cells
// from an iterator instead of collecting them into a slice. Stopping
// the iteration early stops the walk.
func TracedLine[T Integer](start, end Point[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		dx, negx := span(start.X, end.X)
		dy, negy := span(start.Y, end.Y)

		p := start
		major, minor := &p.X, &p.Y
		target := end.X
		dmaj, dmin := dx, dy
		negMaj, negMin := negx, negy
		if dx <= dy {
			major, minor = &p.Y, &p.X
			target = end.Y
			dmaj, dmin = dy, dx
			negMaj, negMin = negy, negx
		}

		// err holds the floor of the real valued error term. Its
		// fractional part is either always zero or always one half,
		// so the floor goes negative exactly when the real value does.
		err := dmaj / 2
		for *major != target {
			if !yield(p) {
				return
			}

			if err < dmin {
				*minor = step(*minor, negMin)
				err += dmaj - dmin
			} else {
				err -= dmin
			}
			*major = step(*major, negMaj)
		}

		yield(end)
	}
}

// lineCap is a capacity hint for collecting the trace from start to
// end into a slice.
func lineCap[T Integer](start, end Point[T]) int {
	n := LineLen(start, end)
	if n == 0 || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}
