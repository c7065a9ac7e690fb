package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/lib/geo"
)

func TestUpdateBoundingBox(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		g       Geometry
		spacing geo.Spacing
		exp     geo.Rectangle
	}{
		{
			name: "unpadded",
			g:    Geometry{Corner: geo.NewPoint(1, 2), Width: 10, Height: 20},
			exp:  geo.Rectangle{Left: 1, Top: 2, Right: 11, Bottom: 22},
		},
		{
			name:    "uniform",
			g:       Geometry{Corner: geo.NewPoint(1, 2), Width: 10, Height: 20},
			spacing: geo.UniformSpacing(0.05),
			exp:     geo.Rectangle{Left: 0.95, Top: 1.95, Right: 11.05, Bottom: 22.05},
		},
		{
			name:    "per_edge",
			g:       Geometry{Corner: geo.NewPoint(-5, 0), Width: 0, Height: 3},
			spacing: geo.Spacing{Top: 1, Right: 2, Bottom: 3, Left: 4},
			exp:     geo.Rectangle{Left: -9, Top: -1, Right: -3, Bottom: 6},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := newTestElement(tc.g.Corner, tc.g.Width, tc.g.Height)
			e.ExtraSpacing = tc.spacing
			e.UpdateBoundingBox()
			assert.InDelta(t, tc.exp.Left, e.BoundingBox.Left, 1e-9)
			assert.InDelta(t, tc.exp.Top, e.BoundingBox.Top, 1e-9)
			assert.InDelta(t, tc.exp.Right, e.BoundingBox.Right, 1e-9)
			assert.InDelta(t, tc.exp.Bottom, e.BoundingBox.Bottom, 1e-9)
			assert.True(t, e.BoundingBox.Contains(tc.g.Corner))
			assert.True(t, e.BoundingBox.Contains(tc.g.Box().BottomRight()))
		})
	}
}

func TestUpdateConnectionsRectangle(t *testing.T) {
	t.Parallel()

	e := newTestElement(geo.NewPoint(0, 0), 10, 20)
	e.UpdateConnectionsRectangle(e.Connections)

	expPos := []geo.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 0, Y: 20}, {X: 5, Y: 20}, {X: 10, Y: 20}, {X: 5, Y: 10}}
	expDirs := []diaobject.Direction{
		diaobject.DirNorth | diaobject.DirWest,
		diaobject.DirNorth,
		diaobject.DirNorth | diaobject.DirEast,
		diaobject.DirWest,
		diaobject.DirEast,
		diaobject.DirSouth | diaobject.DirWest,
		diaobject.DirSouth,
		diaobject.DirSouth | diaobject.DirEast,
		diaobject.DirAll,
	}
	for i, cp := range e.Connections {
		assert.Equal(t, expPos[i], cp.Pos, Compass(i).String())
		assert.Equal(t, expDirs[i], cp.Directions, Compass(i).String())
	}
}

func TestUpdateConnectionsRectangleTooFew(t *testing.T) {
	t.Parallel()

	e := &Element{}
	e.Init(NumResizeHandles, 8)
	assert.Panics(t, func() {
		e.UpdateConnectionsRectangle(e.Connections)
	})
}

func TestHandlesMirrorConnections(t *testing.T) {
	t.Parallel()

	for _, g := range []Geometry{
		{Corner: geo.NewPoint(0, 0), Width: 10, Height: 20},
		{Corner: geo.NewPoint(-3.5, 7.25), Width: 0.1, Height: 1e6},
		{Corner: geo.NewPoint(2, 2), Width: 0, Height: 0},
	} {
		e := newTestElement(g.Corner, g.Width, g.Height)
		e.UpdateHandles()
		e.UpdateConnectionsRectangle(e.Connections)
		for i := 0; i < NumResizeHandles; i++ {
			assert.Equal(t, e.Connections[i].Pos, e.ResizeHandles[i].Pos)
			assert.Equal(t, Compass(i).HandleID(), e.ResizeHandles[i].ID)
		}
	}
}

func TestUpdateConnectionsDirections(t *testing.T) {
	t.Parallel()

	// center is (5, 10)
	e := newTestElement(geo.NewPoint(0, 0), 10, 20)
	cps := []*diaobject.ConnectionPoint{
		{Pos: geo.NewPoint(0, 0)},
		{Pos: geo.NewPoint(5, 0)},
		{Pos: geo.NewPoint(10, 10)},
		{Pos: geo.NewPoint(7, 19)},
		{Pos: geo.NewPoint(5, 10)},
		{Pos: geo.NewPoint(5, 10), Flags: diaobject.CPFlagsMain},
		{Pos: geo.NewPoint(0, 20), Flags: diaobject.CPFlagsMain},
		{Pos: geo.NewPoint(1, 11), Directions: diaobject.DirAll},
	}
	e.UpdateConnectionsDirections(cps)

	exp := []diaobject.Direction{
		diaobject.DirNorth | diaobject.DirWest,
		diaobject.DirNorth,
		diaobject.DirEast,
		diaobject.DirSouth | diaobject.DirEast,
		diaobject.DirNone,
		diaobject.DirAll,
		diaobject.DirAll,
		diaobject.DirSouth | diaobject.DirWest,
	}
	for i, cp := range cps {
		assert.Equal(t, exp[i], cp.Directions, "point %d at %v", i, cp.Pos)
	}
}
