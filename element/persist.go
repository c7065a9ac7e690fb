package element

import (
	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/lib/geo"
)

const (
	AttrCorner = "elem_corner"
	AttrWidth  = "elem_width"
	AttrHeight = "elem_height"
)

// Load defaults, used when a file leaves an attribute out.
const (
	DefaultWidth  = 1.0
	DefaultHeight = 1.0
)

func (e *Element) Save(node *diaxml.ObjectNode) {
	e.Object.Save(node)

	node.NewAttribute(AttrCorner).AddPoint(e.Corner)
	node.NewAttribute(AttrWidth).AddReal(e.Width)
	node.NewAttribute(AttrHeight).AddReal(e.Height)
}

// Load reads the geometry written by Save. Absent attributes fall back to a corner
// at the origin and a 1x1 size. Present but malformed ones are errors, and leave the
// geometry as it was.
func (e *Element) Load(node *diaxml.ObjectNode) (err error) {
	defer xdefer.Errorf(&err, "failed to load element")

	err = e.Object.Load(node)
	if err != nil {
		return err
	}

	corner := geo.NewPoint(0, 0)
	if d := firstData(node, AttrCorner); d != nil {
		corner, err = d.Point()
		if err != nil {
			return err
		}
	}

	width := DefaultWidth
	if d := firstData(node, AttrWidth); d != nil {
		width, err = d.Real()
		if err != nil {
			return err
		}
	}

	height := DefaultHeight
	if d := firstData(node, AttrHeight); d != nil {
		height, err = d.Real()
		if err != nil {
			return err
		}
	}

	e.SetGeometry(Geometry{Corner: corner, Width: width, Height: height})
	return nil
}

func firstData(node *diaxml.ObjectNode, name string) *diaxml.DataNode {
	attr := node.FindAttribute(name)
	if attr == nil {
		return nil
	}
	return attr.FirstData()
}
