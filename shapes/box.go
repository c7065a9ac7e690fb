package shapes

import (
	"context"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/element"
	"oss.terrastruct.com/diaelem/lib/geo"
	"oss.terrastruct.com/diaelem/undo"
)

const BoxType = "Standard - Box"

// Box is a plain rectangle with a connection point on every corner, every edge
// midpoint and the center.
type Box struct {
	base
	Style
}

var _ Shape = &Box{}

func NewBox(table *element.Table, corner geo.Point, width, height float64) *Box {
	b := &Box{
		base:  base{typ: BoxType, table: table},
		Style: DefaultStyle(),
	}
	b.Init(element.NumResizeHandles, element.NumConnections)
	b.Connections[element.Center].Flags = diaobject.CPFlagsMain
	b.SetGeometry(element.Geometry{Corner: corner, Width: width, Height: height})
	b.UpdateData()
	b.register(b.UpdateData)
	return b
}

func (b *Box) Element() *element.Element {
	return &b.base.Element
}

func (b *Box) UpdateData() {
	if b.Aspect == AspectSquare {
		side := go2.Max(b.Width, b.Height)
		b.Width = side
		b.Height = side
	}

	b.ExtraSpacing = b.spacing()
	b.UpdateBoundingBox()
	b.Position = b.Corner

	b.UpdateConnectionsRectangle(b.Connections)
	b.UpdateHandles()
}

func (b *Box) MoveHandle(ctx context.Context, id diaobject.HandleID, to geo.Point, cp *diaobject.ConnectionPoint, reason diaobject.HandleMoveReason, mods diaobject.ModifierKeys) undo.Change {
	c := b.change()
	b.resize(ctx, b.Aspect, id, to, mods)
	b.UpdateData()
	return c
}

func (b *Box) Move(to geo.Point) undo.Change {
	c := b.change()
	b.Corner = to
	b.UpdateData()
	return c
}

func (b *Box) Copy() Shape {
	nb := &Box{
		base:  base{typ: b.typ, table: b.table},
		Style: b.Style,
	}
	b.base.Element.Copy(&nb.base.Element)
	nb.UpdateData()
	nb.register(nb.UpdateData)
	return nb
}

// Save refreshes the derived state first so the saved bounding box matches the style.
func (b *Box) Save(node *diaxml.ObjectNode) {
	b.UpdateData()
	b.base.Element.Save(node)
	b.Style.save(node)
}

func (b *Box) Load(node *diaxml.ObjectNode) (err error) {
	defer xdefer.Errorf(&err, "failed to load box")

	err = b.base.Element.Load(node)
	if err != nil {
		return err
	}
	err = b.Style.load(node)
	if err != nil {
		return err
	}
	b.UpdateData()
	return nil
}

func (b *Box) Destroy() {
	b.destroy()
}
