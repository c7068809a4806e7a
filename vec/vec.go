// Package vec provides a small generic 2D vector.
//
// It is patterned after image.Point, but is generic over its
// component type.
package vec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that can be used as a Vec's
// components.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec is a 2D vector. Its zero value is the zero vector.
type Vec[T Scalar] struct {
	X, Y T
}

// New returns a vector with the given components.
func New[T Scalar](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Add returns the component-wise sum of v and u.
func (v Vec[T]) Add(u Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns the component-wise difference of v and u.
func (v Vec[T]) Sub(u Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - u.X, Y: v.Y - u.Y}
}

// Min returns the component-wise minimum of v and u.
func (v Vec[T]) Min(u Vec[T]) Vec[T] {
	return Vec[T]{X: min(v.X, u.X), Y: min(v.Y, u.Y)}
}

// Max returns the component-wise maximum of v and u.
func (v Vec[T]) Max(u Vec[T]) Vec[T] {
	return Vec[T]{X: max(v.X, u.X), Y: max(v.Y, u.Y)}
}

// String returns a string representation of v like "(3,4)".
func (v Vec[T]) String() string {
	return fmt.Sprintf("(%v,%v)", v.X, v.Y)
}
