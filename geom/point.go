package geom

import "fmt"

// Point is a single cell of an integer grid. Points are plain values
// and compare equal with == exactly when both coordinates match.
type Point[T Integer] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Eq reports whether p and q are the same cell.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}
