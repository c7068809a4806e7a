package xrect

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xrect/vec"
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T vec.Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(vec.New(w, r.Height()))
	right = r.Resize(vec.New(r.Width()-w, r.Height())).Add(vec.New(w, 0))
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[T vec.Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resize(vec.New(r.Width(), h))
	bottom = r.Resize(vec.New(r.Width(), r.Height()-h)).Add(vec.New(0, h))
	return top, bottom
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]xrect.RectF, 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T vec.Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T vec.Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		size := vec.New(0, r.Height()/T(numtiles))
		c, _ := vsplit(r, size.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]xrect.RectF, 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally[T vec.Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T vec.Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		size := vec.New(r.Width()/T(numtiles), 0)
		c, _ := hsplit(r, size.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T vec.Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T vec.Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified.
func Align[T vec.Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.TopLeft.Y, inner.BottomRight.Y = outer.TopLeft.Y, outer.TopLeft.Y+inner.Height()
		if edges&EdgeBottom != 0 {
			inner.BottomRight.Y = outer.BottomRight.Y
		}
	case edges&EdgeBottom != 0:
		inner.TopLeft.Y, inner.BottomRight.Y = outer.BottomRight.Y-inner.Height(), outer.BottomRight.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.TopLeft.X, inner.BottomRight.X = outer.TopLeft.X, outer.TopLeft.X+inner.Width()
		if edges&EdgeRight != 0 {
			inner.BottomRight.X = outer.BottomRight.X
		}
	case edges&EdgeRight != 0:
		inner.TopLeft.X, inner.BottomRight.X = outer.BottomRight.X-inner.Width(), outer.BottomRight.X
	}

	return inner
}

func insertTilesFromSeq[T vec.Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
