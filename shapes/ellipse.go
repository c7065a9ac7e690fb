package shapes

import (
	"context"
	"math"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/element"
	"oss.terrastruct.com/diaelem/lib/geo"
	"oss.terrastruct.com/diaelem/undo"
)

const EllipseType = "Standard - Ellipse"

const (
	// perimeter points, counterclockwise from east
	ellipsePerimeter   = 8
	ellipseConnections = ellipsePerimeter + 1
	ellipseHandles     = element.NumResizeHandles + 1

	// HandleEllipseCenter drags the whole ellipse by its center.
	HandleEllipseCenter = diaobject.HandleCustom1
)

// ellipseUnits are unit vectors 45 degrees apart, counterclockwise from east with y
// growing downwards. Axis points are exact so their directions stay single.
var ellipseUnits = [ellipsePerimeter]geo.Point{
	{X: 1, Y: 0},
	{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	{X: 0, Y: -1},
	{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	{X: -1, Y: 0},
	{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	{X: 0, Y: 1},
	{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
}

// Ellipse is inscribed in its element's rectangle. It has eight connection points
// spread around the perimeter, the main one at the center and an extra handle there
// for moving it.
type Ellipse struct {
	base
	Style

	centerHandle diaobject.Handle
}

var _ Shape = &Ellipse{}

func NewEllipse(table *element.Table, corner geo.Point, width, height float64) *Ellipse {
	e := &Ellipse{
		base:  base{typ: EllipseType, table: table},
		Style: DefaultStyle(),
	}
	e.Init(ellipseHandles, ellipseConnections)
	e.initCenter()
	e.Connections[ellipsePerimeter].Flags = diaobject.CPFlagsMain
	e.SetGeometry(element.Geometry{Corner: corner, Width: width, Height: height})
	e.UpdateData()
	e.register(e.UpdateData)
	return e
}

func (e *Ellipse) initCenter() {
	e.centerHandle = diaobject.Handle{
		ID:          HandleEllipseCenter,
		Type:        diaobject.HandleMajorControl,
		ConnectType: diaobject.HandleNonConnectable,
	}
	e.Handles[element.NumResizeHandles] = &e.centerHandle
}

func (e *Ellipse) Element() *element.Element {
	return &e.base.Element
}

func (e *Ellipse) UpdateData() {
	if e.Aspect == AspectSquare {
		side := go2.Max(e.Width, e.Height)
		e.Width = side
		e.Height = side
	}

	e.ExtraSpacing = e.spacing()
	e.UpdateBoundingBox()
	e.Position = e.Corner

	center := e.Geometry().Center()
	rx, ry := e.Width/2, e.Height/2
	for i, u := range ellipseUnits {
		e.Connections[i].Pos = geo.NewPoint(center.X+rx*u.X, center.Y+ry*u.Y)
	}
	e.Connections[ellipsePerimeter].Pos = center
	e.UpdateConnectionsDirections(e.Connections)

	e.UpdateHandles()
	e.centerHandle.Pos = center
}

func (e *Ellipse) MoveHandle(ctx context.Context, id diaobject.HandleID, to geo.Point, cp *diaobject.ConnectionPoint, reason diaobject.HandleMoveReason, mods diaobject.ModifierKeys) undo.Change {
	c := e.change()
	if id == HandleEllipseCenter {
		e.Corner = to.Sub(geo.NewPoint(e.Width/2, e.Height/2))
	} else {
		e.resize(ctx, e.Aspect, id, to, mods)
	}
	e.UpdateData()
	return c
}

func (e *Ellipse) Move(to geo.Point) undo.Change {
	c := e.change()
	e.Corner = to
	e.UpdateData()
	return c
}

func (e *Ellipse) Copy() Shape {
	ne := &Ellipse{
		base:  base{typ: e.typ, table: e.table},
		Style: e.Style,
	}
	e.base.Element.Copy(&ne.base.Element)
	ne.initCenter()
	ne.UpdateData()
	ne.register(ne.UpdateData)
	return ne
}

// Save refreshes the derived state first so the saved bounding box matches the style.
func (e *Ellipse) Save(node *diaxml.ObjectNode) {
	e.UpdateData()
	e.base.Element.Save(node)
	e.Style.save(node)
}

func (e *Ellipse) Load(node *diaxml.ObjectNode) (err error) {
	defer xdefer.Errorf(&err, "failed to load ellipse")

	err = e.base.Element.Load(node)
	if err != nil {
		return err
	}
	err = e.Style.load(node)
	if err != nil {
		return err
	}
	e.UpdateData()
	return nil
}

func (e *Ellipse) Destroy() {
	e.destroy()
}
