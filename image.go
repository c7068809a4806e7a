package xrect

import (
	"image"
	"math"

	"deedles.dev/xrect/vec"
)

// ImageRect returns the smallest image.Rectangle that contains r,
// rounding outwards for fractional coordinate types.
func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.TopLeft.X))),
		int(math.Floor(float64(r.TopLeft.Y))),
		int(math.Ceil(float64(r.BottomRight.X))),
		int(math.Ceil(float64(r.BottomRight.Y))),
	)
}

// FromImageRect returns the Rect with the same corners as r.
func FromImageRect[T vec.Scalar](r image.Rectangle) Rect[T] {
	return Rt(T(r.Min.X), T(r.Min.Y), T(r.Max.X), T(r.Max.Y))
}
