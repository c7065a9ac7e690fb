// Package element implements the rectangular skeleton shared by box-shaped objects:
// a corner, a width and a height, eight resize handles on the corners and edge
// midpoints, and connection points in the same places plus the center.
//
// Handle and connection point positions are caches of (Corner, Width, Height).
// Anything that changes the geometry must call UpdateHandles and
// UpdateBoundingBox (or the owning shape's update) before they are read again.
//
// An Element is never used on its own. A concrete shape embeds it and calls Init,
// Copy, Destroy, Save and Load from its own versions of those operations.
package element

import (
	"fmt"

	"github.com/google/uuid"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/lib/geo"
)

// Compass names a handle or connection point slot.
//
// The order is part of the saved file format: handles and the first nine
// connection points are stored in exactly this order. Never reorder it.
type Compass int

const (
	NW Compass = iota
	N
	NE
	W
	E
	SW
	S
	SE
	Center
)

const (
	NumResizeHandles = 8
	// NumConnections is the least number of connection points an element has.
	NumConnections = 9
)

var compassNames = [...]string{"nw", "n", "ne", "w", "e", "sw", "s", "se", "center"}

func (c Compass) String() string {
	if c < NW || c > Center {
		return fmt.Sprintf("Compass(%d)", int(c))
	}
	return compassNames[c]
}

// HandleID returns the resize handle sitting at c. Center has no handle.
func (c Compass) HandleID() diaobject.HandleID {
	return diaobject.HandleResizeNW + diaobject.HandleID(c)
}

// compassSlots gives, per slot, its place as a fraction of width and height, and the
// directions a connection may leave it in.
var compassSlots = [...]struct {
	fx, fy float64
	dirs   diaobject.Direction
}{
	NW:     {0, 0, diaobject.DirNorth | diaobject.DirWest},
	N:      {0.5, 0, diaobject.DirNorth},
	NE:     {1, 0, diaobject.DirNorth | diaobject.DirEast},
	W:      {0, 0.5, diaobject.DirWest},
	E:      {1, 0.5, diaobject.DirEast},
	SW:     {0, 1, diaobject.DirSouth | diaobject.DirWest},
	S:      {0.5, 1, diaobject.DirSouth},
	SE:     {1, 1, diaobject.DirSouth | diaobject.DirEast},
	Center: {0.5, 0.5, diaobject.DirAll},
}

type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	return ID(id), err
}

func (id ID) IsZero() bool {
	return id == ID(uuid.Nil)
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Geometry is the authoritative state of an element. Everything else is derived from it.
type Geometry struct {
	Corner geo.Point `json:"corner"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

func (g Geometry) Box() *geo.Box {
	return geo.NewBox(g.Corner, g.Width, g.Height)
}

func (g Geometry) Center() geo.Point {
	return g.Box().Center()
}

// at returns the position of slot c.
func (g Geometry) at(c Compass) geo.Point {
	s := compassSlots[c]
	return geo.NewPoint(g.Corner.X+g.Width*s.fx, g.Corner.Y+g.Height*s.fy)
}

type Element struct {
	diaobject.Object

	// ID is set when the element is added to a Table.
	ID ID

	Corner geo.Point
	Width  float64
	Height float64

	// ExtraSpacing pads the bounding box only. Handles and connection points ignore it.
	ExtraSpacing geo.Spacing

	ResizeHandles [NumResizeHandles]diaobject.Handle

	update func()
}

func (e *Element) Geometry() Geometry {
	return Geometry{Corner: e.Corner, Width: e.Width, Height: e.Height}
}

func (e *Element) SetGeometry(g Geometry) {
	e.Corner = g.Corner
	e.Width = g.Width
	e.Height = g.Height
}

// OnUpdate registers the shape's own refresh, run after undo or redo swaps the geometry.
// Without one, handles and the bounding box are refreshed.
func (e *Element) OnUpdate(fn func()) {
	e.update = fn
}

func (e *Element) refresh() {
	if e.update != nil {
		e.update()
		return
	}
	e.UpdateHandles()
	e.UpdateBoundingBox()
}

// Init sets up the object with numHandles handles, the first eight being the resize
// handles, and numConnections connection points which the caller lays out.
func (e *Element) Init(numHandles, numConnections int) {
	if numHandles < NumResizeHandles {
		panic(fmt.Sprintf("element: need at least %d handles, got %d", NumResizeHandles, numHandles))
	}

	e.Object.Init(numHandles, numConnections)
	for i := range e.ResizeHandles {
		h := &e.ResizeHandles[i]
		h.ID = Compass(i).HandleID()
		h.ConnectType = diaobject.HandleNonConnectable
		h.ConnectedTo = nil
		h.Type = diaobject.HandleMajorControl
		e.Handles[i] = h
	}
}

// Copy copies from into to. Handle connections are not carried over and the copy
// gets no ID until it is added to a Table.
func (e *Element) Copy(to *Element) {
	e.Object.Copy(&to.Object)

	to.Corner = e.Corner
	to.Width = e.Width
	to.Height = e.Height

	for i := range to.ResizeHandles {
		to.ResizeHandles[i] = e.ResizeHandles[i]
		to.ResizeHandles[i].ConnectedTo = nil
		to.Handles[i] = &to.ResizeHandles[i]
	}

	to.ExtraSpacing = e.ExtraSpacing
}

// Destroy releases the object's connections. The memory of e belongs to the shape
// embedding it.
func (e *Element) Destroy() {
	e.Object.Destroy()
}
