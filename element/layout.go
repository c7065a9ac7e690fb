package element

import (
	"fmt"

	"oss.terrastruct.com/diaelem/diaobject"
)

// UpdateBoundingBox derives the bounding box from the geometry and ExtraSpacing.
func (e *Element) UpdateBoundingBox() {
	e.BoundingBox = e.Geometry().Box().Rectangle().BBox(e.ExtraSpacing)
}

// UpdateHandles places the eight resize handles on the corners and edge midpoints.
func (e *Element) UpdateHandles() {
	g := e.Geometry()
	for i := range e.ResizeHandles {
		c := Compass(i)
		e.ResizeHandles[i].ID = c.HandleID()
		e.ResizeHandles[i].Pos = g.at(c)
	}
}

// UpdateConnectionsRectangle lays out nine connection points: the top row left to
// right, then the middle row, then the bottom row, then the center. Only shapes that
// store their points in this order may use it, otherwise saved connections end up
// on the wrong points.
//
// It panics if the element or cps has fewer than nine connection points.
func (e *Element) UpdateConnectionsRectangle(cps []*diaobject.ConnectionPoint) {
	if len(e.Connections) < NumConnections || len(cps) < NumConnections {
		panic(fmt.Sprintf("element: rectangle layout needs %d connection points, got %d", NumConnections, len(cps)))
	}

	g := e.Geometry()
	for c := NW; c <= Center; c++ {
		cps[c].Pos = g.at(c)
		cps[c].Directions = compassSlots[c].dirs
	}
}

// UpdateConnectionsDirections sets the directions of already placed connection points
// from the quadrant each lies in relative to the center. A point on an axis gets no
// direction along it. The main point can always be left in every direction.
//
// This suits any number of points but works best for symmetric shapes.
func (e *Element) UpdateConnectionsDirections(cps []*diaobject.ConnectionPoint) {
	center := e.Geometry().Center()

	for _, cp := range cps {
		cp.Directions = diaobject.DirNone
		if cp.Pos.X > center.X {
			cp.Directions |= diaobject.DirEast
		} else if cp.Pos.X < center.X {
			cp.Directions |= diaobject.DirWest
		}
		if cp.Pos.Y > center.Y {
			cp.Directions |= diaobject.DirSouth
		} else if cp.Pos.Y < center.Y {
			cp.Directions |= diaobject.DirNorth
		}
		if cp.IsMain() {
			cp.Directions |= diaobject.DirAll
		}
	}
}
