//go:build go1.24

package xrect_test

import (
	"testing"

	"deedles.dev/xrect"
	"deedles.dev/xrect/vec"
)

func BenchmarkIntersect(b *testing.B) {
	r1 := xrect.Rt[float32](100, 100, 200, 200)
	r2 := xrect.Rt[float32](125, 50, 175, 500)
	for b.Loop() {
		r1.Intersect(r2)
	}
}

func BenchmarkContains(b *testing.B) {
	r := xrect.Rt[float32](0, 0, 1920, 1080)
	p := vec.New[float32](123.45, 678.9)
	for b.Loop() {
		r.Contains(p)
	}
}

func BenchmarkTileRows(b *testing.B) {
	r := xrect.Rt[float32](0, 0, 1920, 1080)
	tiles := make([]xrect.RectF, 10)
	for b.Loop() {
		xrect.TileRows(tiles, r, 3)
	}
}
