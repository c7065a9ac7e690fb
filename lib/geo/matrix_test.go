package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPointInDelta(t *testing.T, exp, got Point) {
	t.Helper()
	assert.InDelta(t, exp.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, exp.Y, got.Y, 1e-9, "y of %v", got)
}

func TestMatrixIdentity(t *testing.T) {
	p := NewPoint(3, -4)
	assert.Equal(t, p, Identity().TransformPoint(p))
	assert.Equal(t, NewPoint(4, -2), Translate(1, 2).TransformPoint(p))
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// scale then translate differs from translate then scale
	s := Identity()
	s.SetAngleAndScales(0, 2, 3)
	tr := Translate(1, 1)

	p := NewPoint(1, 1)
	assertPointInDelta(t, NewPoint(3, 4), Multiply(s, tr).TransformPoint(p))
	assertPointInDelta(t, NewPoint(4, 6), Multiply(tr, s).TransformPoint(p))
}

func TestMatrixRotation(t *testing.T) {
	m := Identity()
	m.SetAngleAndScales(math.Pi/2, 1, 1)
	// y grows downward, so +90 degrees takes +x onto +y
	assertPointInDelta(t, NewPoint(0, 1), m.TransformPoint(NewPoint(1, 0)))
	assertPointInDelta(t, NewPoint(-1, 0), m.TransformPoint(NewPoint(0, 1)))
}

func TestRotateAbout(t *testing.T) {
	c := NewPoint(5, 10)
	m := RotateAbout(c, 90)
	assertPointInDelta(t, c, m.TransformPoint(c))
	assertPointInDelta(t, NewPoint(15, 5), m.TransformPoint(NewPoint(0, 0)))

	full := RotateAbout(c, 360)
	assertPointInDelta(t, NewPoint(0, 0), full.TransformPoint(NewPoint(0, 0)))
}
