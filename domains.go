package xrect

// Aliases for the most common coordinate types.
type (
	// RectF is a rectangle with 32-bit floating-point coordinates.
	RectF = Rect[float32]

	// RectU is a rectangle with unsigned 32-bit integer coordinates.
	RectU = Rect[uint32]

	// RectI is a rectangle with signed 32-bit integer coordinates.
	RectI = Rect[int32]
)

// Zero rectangles of the common coordinate types.
var (
	ZeroF RectF
	ZeroU RectU
	ZeroI RectI
)
