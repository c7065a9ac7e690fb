package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleBBox(t *testing.T) {
	r := Rectangle{Left: 1, Top: 2, Right: 11, Bottom: 22}

	assert.Equal(t, r, r.BBox(Spacing{}))
	assert.Equal(t,
		Rectangle{Left: 0.5, Top: 2 - 0.25, Right: 14, Bottom: 22 + 4},
		r.BBox(Spacing{Top: 0.25, Right: 3, Bottom: 4, Left: 0.5}),
	)
	assert.Equal(t,
		Rectangle{Left: 0, Top: 1, Right: 12, Bottom: 23},
		r.BBox(UniformSpacing(1)),
	)
}

func TestRectangleUnionContains(t *testing.T) {
	a := Rectangle{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b := Rectangle{Left: 5, Top: -5, Right: 20, Bottom: 8}
	u := a.Union(b)
	assert.Equal(t, Rectangle{Left: 0, Top: -5, Right: 20, Bottom: 10}, u)
	assert.Equal(t, 20.0, u.Width())
	assert.Equal(t, 15.0, u.Height())

	assert.True(t, a.Contains(NewPoint(10, 0)))
	assert.False(t, a.Contains(NewPoint(10.5, 0)))
}

func TestRectangleText(t *testing.T) {
	r := Rectangle{Left: -1, Top: 2.5, Right: 3, Bottom: 4}
	b, err := r.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "-1,2.5;3,4", string(b))

	var r2 Rectangle
	assert.NoError(t, r2.UnmarshalText(b))
	assert.Equal(t, r, r2)

	assert.Error(t, r2.UnmarshalText([]byte("1,2,3,4")))
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(NewPoint(1, 2), 10, 20)
	assert.Equal(t, [4]Point{{1, 2}, {11, 2}, {11, 22}, {1, 22}}, b.Corners())
	assert.Equal(t, NewPoint(6, 12), b.Center())
	assert.Equal(t, Rectangle{Left: 1, Top: 2, Right: 11, Bottom: 22}, b.Rectangle())
}
