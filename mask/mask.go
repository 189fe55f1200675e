// Package mask provides an occupancy grid that traced cells can be
// stamped onto and read back from.
//
// A Mask is an image, so it can be drawn with image/draw and encoded
// with any of the standard image encoders for inspection.
package mask

import (
	"image"
	"image/color"
	"iter"

	"deedles.dev/xgrid/geom"
)

// Mask is a grid of cells that are each either set or unset. Cells
// are stored one byte each in row-major order.
type Mask struct {
	Rect image.Rectangle
	Pix  []byte
}

// New returns an empty Mask covering r.
func New(r image.Rectangle) *Mask {
	r = r.Canon()
	return &Mask{
		Rect: r,
		Pix:  make([]byte, r.Dx()*r.Dy()),
	}
}

func (m *Mask) Bounds() image.Rectangle { return m.Rect }

func (m *Mask) ColorModel() color.Model { return Model }

func (m *Mask) At(x, y int) color.Color {
	return Color(m.Has(geom.Pt(x, y)))
}

func (m *Mask) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(m.Rect) {
		return
	}

	var v byte
	if Model.Convert(c).(Color) {
		v = 1
	}
	m.Pix[m.PixOffset(x, y)] = v
}

// Stride returns the distance in bytes between vertically adjacent
// cells.
func (m *Mask) Stride() int {
	return m.Rect.Dx()
}

// PixOffset returns the index of the byte in Pix that holds the cell
// at (x, y).
func (m *Mask) PixOffset(x, y int) int {
	x -= m.Rect.Min.X
	y -= m.Rect.Min.Y
	return (m.Stride() * y) + x
}

func (m *Mask) in(p geom.Point[int]) bool {
	return image.Pt(p.X, p.Y).In(m.Rect)
}

// Has reports whether the cell at p is set. Cells outside of the
// mask are never set.
func (m *Mask) Has(p geom.Point[int]) bool {
	if !m.in(p) {
		return false
	}
	return m.Pix[m.PixOffset(p.X, p.Y)] != 0
}

// Mark sets every cell yielded by cells that lies inside of the mask
// and returns the number of cells that were not already set. Cells
// outside of the mask are skipped.
func (m *Mask) Mark(cells iter.Seq[geom.Point[int]]) int {
	var n int
	for p := range cells {
		if !m.in(p) {
			continue
		}

		i := m.PixOffset(p.X, p.Y)
		if m.Pix[i] == 0 {
			m.Pix[i] = 1
			n++
		}
	}
	return n
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	var n int
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear unsets every cell.
func (m *Mask) Clear() {
	clear(m.Pix)
}

// Cells returns an iterator over the set cells in row-major order.
func (m *Mask) Cells() iter.Seq[geom.Point[int]] {
	return func(yield func(geom.Point[int]) bool) {
		for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
			row := m.Pix[m.PixOffset(m.Rect.Min.X, y):][:m.Stride()]
			for i, v := range row {
				if v == 0 {
					continue
				}
				if !yield(geom.Pt(m.Rect.Min.X+i, y)) {
					return
				}
			}
		}
	}
}
