// Package xrect provides utilities for manipulating axis-aligned
// rectangles.
//
// It is patterned heavily after image.Rectangle, but is generic over
// the coordinate type and vastly extends its capabilities.
package xrect

import (
	"deedles.dev/xrect/vec"
)

// Rect is an axis-aligned rectangle defined by its top-left and
// bottom-right corners on axes that grow rightwards and downwards. It
// is well-formed if TopLeft.X <= BottomRight.X and TopLeft.Y <=
// BottomRight.Y. A rectangle's methods never modify it, and none of
// them reorder its corners: most operations only make sense on
// well-formed rectangles, and [Rect.Canon] produces one from a
// rectangle that might not be.
//
// The zero value is the zero rectangle, with both corners at the
// origin.
type Rect[T vec.Scalar] struct {
	TopLeft, BottomRight vec.Vec[T]
}

// New returns a rectangle with the given corners. The corners are
// stored exactly as given, even if they are not in well-formed order.
func New[T vec.Scalar](topLeft, bottomRight vec.Vec[T]) Rect[T] {
	return Rect[T]{TopLeft: topLeft, BottomRight: bottomRight}
}

// Rt is shorthand for New(vec.New(x0, y0), vec.New(x1, y1)). Unlike
// image.Rect, it does not reorder the coordinates.
func Rt[T vec.Scalar](x0, y0, x1, y1 T) Rect[T] {
	return New(vec.New(x0, y0), vec.New(x1, y1))
}

// Width returns r's width as a plain difference of coordinates. If r
// is not well-formed, the result is negative, or wraps around if T is
// unsigned.
func (r Rect[T]) Width() T {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns r's height. The subtraction is unchecked exactly
// like Width's.
func (r Rect[T]) Height() T {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Size returns r's width and height as a vector.
func (r Rect[T]) Size() vec.Vec[T] {
	return vec.New(r.Width(), r.Height())
}

// TopRight returns r's top-right corner.
func (r Rect[T]) TopRight() vec.Vec[T] {
	return vec.New(r.BottomRight.X, r.TopLeft.Y)
}

// BottomLeft returns r's bottom-left corner.
func (r Rect[T]) BottomLeft() vec.Vec[T] {
	return vec.New(r.TopLeft.X, r.BottomRight.Y)
}

// Corners returns r's four corners in clockwise order, starting from
// the top-left.
func (r Rect[T]) Corners() [4]vec.Vec[T] {
	return [4]vec.Vec[T]{
		r.TopLeft,
		r.TopRight(),
		r.BottomRight,
		r.BottomLeft(),
	}
}

// Add returns r translated by delta.
func (r Rect[T]) Add(delta vec.Vec[T]) Rect[T] {
	return Rect[T]{
		TopLeft:     r.TopLeft.Add(delta),
		BottomRight: r.BottomRight.Add(delta),
	}
}

// Sub returns r translated by -delta. The components are subtracted
// directly, so Sub can move a rectangle with unsigned coordinates
// towards the origin without a negated vector.
func (r Rect[T]) Sub(delta vec.Vec[T]) Rect[T] {
	return Rect[T]{
		TopLeft:     r.TopLeft.Sub(delta),
		BottomRight: r.BottomRight.Sub(delta),
	}
}

// Resize returns a rectangle with the same top-left corner as r and
// the given size.
func (r Rect[T]) Resize(size vec.Vec[T]) Rect[T] {
	return Rect[T]{
		TopLeft:     r.TopLeft,
		BottomRight: r.TopLeft.Add(size),
	}
}

// Center returns the point in the middle of r.
func (r Rect[T]) Center() vec.Vec[T] {
	return vec.New(r.TopLeft.X+r.Width()/2, r.TopLeft.Y+r.Height()/2)
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p vec.Vec[T]) Rect[T] {
	return r.Add(p.Sub(r.Center()))
}

// Canon returns the canonical version of r, swapping coordinates
// between the corners as necessary to make it well-formed.
func (r Rect[T]) Canon() Rect[T] {
	return Rect[T]{
		TopLeft:     r.TopLeft.Min(r.BottomRight),
		BottomRight: r.TopLeft.Max(r.BottomRight),
	}
}

// Intersect returns the largest rectangle contained by both r and s.
// If r and s have no overlapping area, Intersect returns the zero
// rectangle and false. Rectangles that share only an edge or a corner
// do not overlap.
func (r Rect[T]) Intersect(s Rect[T]) (Rect[T], bool) {
	i := Rect[T]{
		TopLeft:     r.TopLeft.Max(s.TopLeft),
		BottomRight: r.BottomRight.Min(s.BottomRight),
	}
	if !i.IsPositiveArea() {
		return Rect[T]{}, false
	}
	return i, true
}

// Union returns the smallest rectangle that contains both r and s.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	return Rect[T]{
		TopLeft:     r.TopLeft.Min(s.TopLeft),
		BottomRight: r.BottomRight.Max(s.BottomRight),
	}
}

// IsZeroArea reports whether r's corners coincide on either axis,
// collapsing it to a line or a point.
//
// IsZeroArea is not the negation of IsPositiveArea: a rectangle whose
// corners compare in the wrong order on some axis is neither
// zero-area nor positive-area.
func (r Rect[T]) IsZeroArea() bool {
	return r.TopLeft.X == r.BottomRight.X || r.TopLeft.Y == r.BottomRight.Y
}

// IsPositiveArea reports whether r's bottom-right corner is strictly
// below and to the right of its top-left corner, giving it positive
// area.
func (r Rect[T]) IsPositiveArea() bool {
	return r.TopLeft.X < r.BottomRight.X && r.TopLeft.Y < r.BottomRight.Y
}

// Contains reports whether p is inside r. The rectangle covers the
// half-open ranges between its corners: points on the top and left
// edges are inside, and points on the bottom and right edges are not.
func (r Rect[T]) Contains(p vec.Vec[T]) bool {
	return p.X >= r.TopLeft.X && p.X < r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y < r.BottomRight.Y
}

// String returns a string representation of r like "(3,4)-(6,5)".
func (r Rect[T]) String() string {
	return r.TopLeft.String() + "-" + r.BottomRight.String()
}
