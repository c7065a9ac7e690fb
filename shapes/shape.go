// Package shapes holds the concrete box-shaped objects built on element.Element and
// the registry mapping saved object types to them.
package shapes

import (
	"context"
	"fmt"

	"cdr.dev/slog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/element"
	"oss.terrastruct.com/diaelem/lib/geo"
	"oss.terrastruct.com/diaelem/lib/log"
	"oss.terrastruct.com/diaelem/undo"
)

type Shape interface {
	Type() string
	Element() *element.Element
	Object() *diaobject.Object
	// AspectMode is how the shape ties width to height when a handle is dragged.
	AspectMode() Aspect

	// MoveHandle drags handle id to the point to and returns the change that
	// undoes it. cp is the connection point the handle is being dropped on, if any.
	MoveHandle(ctx context.Context, id diaobject.HandleID, to geo.Point, cp *diaobject.ConnectionPoint, reason diaobject.HandleMoveReason, mods diaobject.ModifierKeys) undo.Change
	// Move puts the top left corner at to.
	Move(to geo.Point) undo.Change

	// Copy returns a copy registered in the same table.
	Copy() Shape
	Save(node *diaxml.ObjectNode)
	// Load reads the shape from node and refreshes everything derived.
	Load(node *diaxml.ObjectNode) error
	// Destroy disconnects the shape and removes it from its table.
	Destroy()

	// UpdateData recomputes handles, connection points and the bounding box from the
	// geometry and style.
	UpdateData()
}

type constructor func(table *element.Table, corner geo.Point, width, height float64) Shape

var registry = map[string]constructor{
	BoxType: func(table *element.Table, corner geo.Point, width, height float64) Shape {
		return NewBox(table, corner, width, height)
	},
	EllipseType: func(table *element.Table, corner geo.Point, width, height float64) Shape {
		return NewEllipse(table, corner, width, height)
	},
}

// Types lists the object types NewShape and LoadShape know, sorted.
func Types() []string {
	types := maps.Keys(registry)
	slices.Sort(types)
	return types
}

// NewShape creates a shape of the saved type typ and adds it to table.
func NewShape(typ string, table *element.Table, corner geo.Point, width, height float64) (Shape, error) {
	newFn, ok := registry[typ]
	if !ok {
		return nil, fmt.Errorf("unknown object type %q", typ)
	}
	return newFn(table, corner, width, height), nil
}

// LoadShape creates the shape node describes and adds it to table.
func LoadShape(ctx context.Context, node *diaxml.ObjectNode, table *element.Table) (_ Shape, err error) {
	defer xdefer.Errorf(&err, "failed to load %q", node.ID())

	s, err := NewShape(node.Type(), table, geo.Point{}, element.DefaultWidth, element.DefaultHeight)
	if err != nil {
		return nil, err
	}
	err = s.Load(node)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	log.Debug(ctx, "loaded shape",
		slog.F("id", node.ID()),
		slog.F("type", s.Type()),
		slog.F("element", s.Element().ID.String()),
	)
	return s, nil
}

// base is what every shape shares: the element and the table it lives in. Shapes
// define Element themselves, so inside them the field is b.base.Element.
type base struct {
	element.Element
	typ   string
	table *element.Table
}

func (b *base) Type() string {
	return b.typ
}

func (b *base) Object() *diaobject.Object {
	return &b.Element.Object
}

// register adds the element to the table with update as its undo refresh.
func (b *base) register(update func()) {
	b.Element.Object.Type = b.typ
	b.OnUpdate(update)
	b.table.Add(&b.Element)
}

func (b *base) destroy() {
	b.table.Remove(b.ID)
	b.Element.Destroy()
}

// change snapshots the geometry before an edit.
func (b *base) change() *element.Change {
	c, err := element.NewChange(b.table, b.ID)
	if err != nil {
		panic(fmt.Sprintf("shapes: %s used after Destroy: %v", b.typ, err))
	}
	return c
}

// resize drags a resize handle the way the aspect setting and modifiers ask for.
func (b *base) resize(ctx context.Context, aspect Aspect, id diaobject.HandleID, to geo.Point, mods diaobject.ModifierKeys) {
	switch {
	case aspect == AspectSquare:
		b.MoveHandleAspect(ctx, id, to, 1)
	case aspect == AspectFixed || mods.Has(diaobject.ModShift):
		ratio, ok := b.ratio()
		if !ok {
			b.Element.MoveHandle(ctx, id, to)
			return
		}
		b.MoveHandleAspect(ctx, id, to, ratio)
	default:
		b.Element.MoveHandle(ctx, id, to)
	}
}

// ratio is width:height, if there is one to keep.
func (b *base) ratio() (float64, bool) {
	if b.Width <= 0 || b.Height <= 0 {
		return 0, false
	}
	return b.Width / b.Height, true
}
