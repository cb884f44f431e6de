package aabb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	testIntersects[float64](t)
	testIntersects[int32](t)
}

func testIntersects[T Number](t *testing.T) {
	a := Box[T]{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	b := Box[T]{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}
	c := Box[T]{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30}
	d := Box[T]{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20} // touches a at a single corner

	require.True(t, intersects(a, b))
	require.True(t, intersects(b, a))
	require.False(t, intersects(a, c))
	require.True(t, intersects(a, d), "touching at a corner counts as intersecting")
}

func TestContains(t *testing.T) {
	testContains[float64](t)
	testContains[int32](t)
}

func testContains[T Number](t *testing.T) {
	outer := Box[T]{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	inner := Box[T]{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}
	equal := Box[T]{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	outside := Box[T]{MinX: 2, MinY: 2, MaxX: 12, MaxY: 8}

	require.True(t, contains(outer, inner))
	require.True(t, contains(outer, equal))
	require.False(t, contains(outer, outside))
	require.False(t, contains(inner, outer))
}

func TestContainsPoint(t *testing.T) {
	testContainsPoint[float64](t)
	testContainsPoint[int32](t)
}

func testContainsPoint[T Number](t *testing.T) {
	b := Box[T]{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	require.True(t, containsPoint(b, 0, 0))
	require.True(t, containsPoint(b, 10, 10))
	require.True(t, containsPoint(b, 5, 5))
	require.False(t, containsPoint(b, 11, 5))
}

func TestSqDistPointBox(t *testing.T) {
	testSqDistPointBox[float64](t)
	testSqDistPointBox[int32](t)
}

func testSqDistPointBox[T Number](t *testing.T) {
	b := Box[T]{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	require.Equal(t, 0.0, sqDistPointBox(T(5), T(5), b), "point inside the box is zero distance")
	require.Equal(t, 25.0, sqDistPointBox(T(15), T(0), b), "dx=5 outside on x, inside on y")
	require.Equal(t, 50.0, sqDistPointBox(T(15), T(15), b), "dx=5, dy=5 outside both axes")
}

func TestInvertedBoxUnion(t *testing.T) {
	b := invertedBox[float64]()
	require.True(t, math.IsInf(float64(b.MinX), 1))
	require.True(t, math.IsInf(float64(b.MaxX), -1))
	b.union(Box[float64]{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4})
	require.Equal(t, Box[float64]{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}, b)

	bi := invertedBox[int32]()
	require.Equal(t, int32(math.MaxInt32), bi.MinX)
	require.Equal(t, int32(math.MinInt32), bi.MaxX)
	bi.union(Box[int32]{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5})
	require.Equal(t, Box[int32]{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}, bi)
}

func TestBoxCenter(t *testing.T) {
	b := Box[float64]{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4}
	cx, cy := b.center()
	require.Equal(t, 5.0, cx)
	require.Equal(t, 2.0, cy)
}
