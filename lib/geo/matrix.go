package geo

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2-D affine transform. The underlying Aff3 is row-major:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Matrix f64.Aff3

func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0}
}

func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, tx, 0, 1, ty}
}

// SetAngleAndScales replaces the linear part of m with a rotation by angle radians
// (clockwise on a y-down canvas) combined with scales sx and sy. The translation is kept.
func (m *Matrix) SetAngleAndScales(angle, sx, sy float64) {
	sin, cos := math.Sincos(angle)
	m[0] = cos * sx
	m[1] = -sin * sy
	m[3] = sin * sx
	m[4] = cos * sy
}

// Multiply returns the transform that applies a, then b.
func Multiply(a, b Matrix) Matrix {
	return Matrix{
		b[0]*a[0] + b[1]*a[3],
		b[0]*a[1] + b[1]*a[4],
		b[0]*a[2] + b[1]*a[5] + b[2],
		b[3]*a[0] + b[4]*a[3],
		b[3]*a[1] + b[4]*a[4],
		b[3]*a[2] + b[4]*a[5] + b[5],
	}
}

func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// RotateAbout returns the rotation by deg degrees around c.
func RotateAbout(c Point, deg float64) Matrix {
	m := Translate(c.X, c.Y)
	m.SetAngleAndScales(DegreesToRadians(deg), 1, 1)
	return Multiply(Translate(-c.X, -c.Y), m)
}
