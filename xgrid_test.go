package xgrid_test

import (
	"math"
	"testing"

	"deedles.dev/xgrid"
	"github.com/stretchr/testify/require"
)

func TestBresenham(t *testing.T) {
	start, end := xgrid.Cell{X: 1, Y: -2}, xgrid.Cell{X: 6, Y: 8}
	cells := xgrid.Bresenham(start, end)
	require.Equal(t, cells, xgrid.BresenhamXY(start.X, start.Y, end.X, end.Y))
	require.Len(t, cells, 11)
	require.Equal(t, start, cells[0])
	require.Equal(t, end, cells[len(cells)-1])
}

func TestRaytrace(t *testing.T) {
	start, end := xgrid.Cell{X: 0, Y: 0}, xgrid.Cell{X: 5, Y: 0}
	require.Equal(t, []xgrid.Cell{{0, 0}, {1, 0}, {2, 0}}, xgrid.Raytrace(start, end, 3))
	require.Empty(t, xgrid.Raytrace(start, end, 0))
	require.Empty(t, xgrid.Raytrace(start, end, -5))
}

func TestPolygonOutlineCells(t *testing.T) {
	square := []xgrid.Cell{{0, 0}, {5, 0}, {5, 5}, {0, 5}}
	outline := xgrid.PolygonOutlineCells(square, math.MaxInt)
	require.Len(t, outline, 20)
	require.Equal(t, xgrid.Cell{X: 0, Y: 1}, outline[19])

	// The grid width never truncates an edge.
	require.Equal(t, outline, xgrid.PolygonOutlineCells(square, 1))
	require.Equal(t, outline, xgrid.PolygonOutlineCells(square, 0))

	require.Equal(t, []xgrid.Cell{{0, 0}}, xgrid.PolygonOutlineCells([]xgrid.Cell{{0, 0}}, math.MaxInt))
}
