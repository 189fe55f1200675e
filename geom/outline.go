package geom

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// PolygonOutline returns the cells of the boundary of polygon, which
// is treated as a closed loop with an implicit edge from its last
// vertex back to its first. Polygons with fewer than two vertices
// have no edges and are returned as a copy of the input.
//
// Each edge is traced with [Line] and the traces are joined so that
// every shared vertex appears only once. The outline starts at
// polygon[0] and does not repeat it at the end, so for a polygon
// whose last vertex differs from its first the result has one cell
// fewer per vertex than the sum of its edge traces. If every vertex
// is the same cell, the result is just that cell.
func PolygonOutline[T Integer](polygon []Point[T]) []Point[T] {
	if len(polygon) <= 1 {
		return slices.Clone(polygon)
	}

	var size int
	for i, v := range polygon {
		size += lineCap(v, polygon[(i+1)%len(polygon)])
	}
	return slices.AppendSeq(make([]Point[T], 0, size), TracedPolygonOutline(slices.Values(polygon)))
}

// TracedPolygonOutline is the same as [PolygonOutline] except that it
// reads the vertices from an iterator and yields the outline from
// one. The vertices are only iterated once.
func TracedPolygonOutline[T Integer](vertices iter.Seq[Point[T]]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		// The most recent cell is held back until the next one arrives
		// so that the cell closing the loop can be dropped.
		var held Point[T]
		var n int
		emit := func(c Point[T]) bool {
			if n > 0 && !yield(held) {
				return false
			}
			held = c
			n++
			return true
		}

		edge := func(from, to Point[T], shared bool) bool {
			cells := TracedLine(from, to)
			if shared {
				cells = xiter.Skip(cells, 1)
			}
			for c := range cells {
				if !emit(c) {
					return false
				}
			}
			return true
		}

		var first, prev Point[T]
		var count int
		for i, v := range xiter.Enumerate(vertices) {
			count = i + 1
			if i == 0 {
				first, prev = v, v
				continue
			}

			if !edge(prev, v, i > 1) {
				return
			}
			prev = v
		}

		switch count {
		case 0:
			return
		case 1:
			yield(first)
			return
		}

		if !edge(prev, first, true) {
			return
		}

		// The held cell is always first again. It only survives if
		// nothing else was emitted.
		if n == 1 {
			yield(held)
		}
	}
}
