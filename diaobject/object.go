// Package diaobject is the generic part of every diagram object: its handles,
// connection points, position and bounding box, and how those are copied and saved.
package diaobject

import (
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/lib/geo"
)

type Object struct {
	Type        string
	Position    geo.Point
	BoundingBox geo.Rectangle

	// Handles holds pointers into storage owned by the concrete object.
	Handles     []*Handle
	Connections []*ConnectionPoint
}

// Init allocates numHandles empty handle slots and numConnections connection points.
// The caller points the handle slots at its own handles.
func (o *Object) Init(numHandles, numConnections int) {
	o.Handles = make([]*Handle, numHandles)
	o.Connections = make([]*ConnectionPoint, numConnections)
	for i := range o.Connections {
		o.Connections[i] = &ConnectionPoint{Object: o}
	}
}

// Copy makes to a copy of o. Handle slots are left empty for the caller to fill and
// connection points are fresh, carrying no connections.
func (o *Object) Copy(to *Object) {
	to.Type = o.Type
	to.Position = o.Position
	to.BoundingBox = o.BoundingBox

	to.Handles = make([]*Handle, len(o.Handles))
	to.Connections = make([]*ConnectionPoint, len(o.Connections))
	for i, cp := range o.Connections {
		to.Connections[i] = &ConnectionPoint{
			Object:     to,
			Pos:        cp.Pos,
			Directions: cp.Directions,
			Flags:      cp.Flags,
			Name:       cp.Name,
		}
	}
}

// Destroy disconnects o from everything. o must not be used afterwards.
func (o *Object) Destroy() {
	o.UnconnectAll()
	o.Handles = nil
	o.Connections = nil
}

func (o *Object) HandleByID(id HandleID) *Handle {
	i := slices.IndexFunc(o.Handles, func(h *Handle) bool {
		return h != nil && h.ID == id
	})
	if i == -1 {
		return nil
	}
	return o.Handles[i]
}

// ConnectHandle attaches handle h of o to cp.
func (o *Object) ConnectHandle(h *Handle, cp *ConnectionPoint) {
	o.UnconnectHandle(h)
	h.ConnectedTo = cp
	cp.Connected = append(cp.Connected, o)
}

func (o *Object) UnconnectHandle(h *Handle) {
	cp := h.ConnectedTo
	if cp == nil {
		return
	}
	h.ConnectedTo = nil
	if i := slices.Index(cp.Connected, o); i != -1 {
		cp.Connected = slices.Delete(cp.Connected, i, i+1)
	}
}

// UnconnectAll detaches o's handles from other objects and other objects from o.
func (o *Object) UnconnectAll() {
	for _, h := range o.Handles {
		if h != nil {
			o.UnconnectHandle(h)
		}
	}
	for _, cp := range o.Connections {
		for len(cp.Connected) > 0 {
			other := cp.Connected[0]
			cp.Connected = cp.Connected[1:]
			for _, h := range other.Handles {
				if h != nil && h.ConnectedTo == cp {
					h.ConnectedTo = nil
				}
			}
		}
	}
}

func (o *Object) Save(node *diaxml.ObjectNode) {
	node.NewAttribute("obj_pos").AddPoint(o.Position)
	node.NewAttribute("obj_bb").AddRectangle(o.BoundingBox)
}

// Load reads what Save wrote. Missing attributes leave the fields untouched.
func (o *Object) Load(node *diaxml.ObjectNode) (err error) {
	defer xdefer.Errorf(&err, "failed to load object %q", node.ID())

	if attr := node.FindAttribute("obj_pos"); attr != nil {
		if d := attr.FirstData(); d != nil {
			o.Position, err = d.Point()
			if err != nil {
				return err
			}
		}
	}
	if attr := node.FindAttribute("obj_bb"); attr != nil {
		if d := attr.FirstData(); d != nil {
			o.BoundingBox, err = d.Rectangle()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
