// Package xgrid discretizes line segments and polygon outlines onto
// an integer grid using plain int coordinates.
//
// The functions here are thin wrappers around the generic ones in
// [deedles.dev/xgrid/geom] for callers that do not need a different
// coordinate type.
package xgrid

import "deedles.dev/xgrid/geom"

// Cell is a single integer grid coordinate.
type Cell = geom.Point[int]

// Bresenham returns the cells of the line from start to end,
// inclusive. See [geom.Line].
func Bresenham(start, end Cell) []Cell {
	return geom.Line(start, end)
}

// BresenhamXY is the same as [Bresenham] but takes the endpoints as
// coordinates.
func BresenhamXY(x0, y0, x1, y1 int) []Cell {
	return geom.LineXY(x0, y0, x1, y1)
}

// Raytrace returns at most maxLength cells of the line from start to
// end. See [geom.Raytrace].
func Raytrace(start, end Cell, maxLength int) []Cell {
	return geom.Raytrace(start, end, maxLength)
}

// PolygonOutlineCells returns the outline of the closed polygon with
// the given vertices. See [geom.PolygonOutline].
//
// sizeX is the width of the caller's grid. It is accepted for
// compatibility and does not limit the length of any edge.
func PolygonOutlineCells(polygon []Cell, sizeX int) []Cell {
	return geom.PolygonOutline(polygon)
}
