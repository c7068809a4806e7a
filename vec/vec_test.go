package vec_test

import (
	"testing"

	"deedles.dev/xrect/vec"
	"github.com/stretchr/testify/require"
)

func TestArith(t *testing.T) {
	v := vec.New[int32](3, -4)
	u := vec.New[int32](1, 2)

	require.Equal(t, vec.New[int32](4, -2), v.Add(u))
	require.Equal(t, vec.New[int32](2, -6), v.Sub(u))
	require.Equal(t, v, v.Add(u).Sub(u))
}

func TestMinMax(t *testing.T) {
	v := vec.New[float32](1, 7)
	u := vec.New[float32](2, 3)

	require.Equal(t, vec.New[float32](1, 3), v.Min(u))
	require.Equal(t, vec.New[float32](2, 7), v.Max(u))
	require.Equal(t, v.Min(u), u.Min(v))
	require.Equal(t, v.Max(u), u.Max(v))
}

func TestZero(t *testing.T) {
	var zero vec.Vec[uint32]
	v := vec.New[uint32](12, 34)

	require.Equal(t, vec.New[uint32](0, 0), zero)
	require.Equal(t, v, v.Add(zero))
	require.Equal(t, v, v.Sub(zero))
}

func TestString(t *testing.T) {
	require.Equal(t, "(3,4)", vec.New[int32](3, 4).String())
	require.Equal(t, "(-1.5,0)", vec.New[float32](-1.5, 0).String())
}
