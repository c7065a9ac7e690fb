package element

import (
	"oss.terrastruct.com/diaelem/lib/geo"
)

// Poly returns the corners top left, top right, bottom right, bottom left, turned
// angle degrees about the center.
func (e *Element) Poly(angle float64) [4]geo.Point {
	g := e.Geometry()
	corners := g.Box().Corners()
	if angle == 0 {
		return corners
	}

	m := geo.RotateAbout(g.Center(), angle)
	for i := range corners {
		corners[i] = m.TransformPoint(corners[i])
	}
	return corners
}
