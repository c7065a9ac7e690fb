package element

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/undo"
)

var (
	ErrNotFound    = errors.New("element not found")
	ErrWrongTarget = errors.New("change applied to another object")
)

// Resolver finds live elements by ID. Table is the usual one.
type Resolver interface {
	Lookup(ID) (*Element, error)
}

// Change undoes and redoes a geometry edit of one element.
//
// It refers to the element by ID and looks it up on every use, so a change
// outliving its element fails with ErrNotFound instead of touching freed state.
type Change struct {
	resolver Resolver
	id       ID
	geometry Geometry
}

var _ undo.Change = &Change{}

// NewChange snapshots the current geometry of element id. Call it before changing
// the geometry so the snapshot holds the state to return to.
func NewChange(r Resolver, id ID) (*Change, error) {
	e, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return &Change{
		resolver: r,
		id:       id,
		geometry: e.Geometry(),
	}, nil
}

func (c *Change) ElementID() ID {
	return c.id
}

// Snapshot is the geometry the next Apply or Revert will put in place.
func (c *Change) Snapshot() Geometry {
	return c.geometry
}

// Apply and Revert are the same operation: the snapshot and the element's geometry
// trade places. Whichever was called last, calling either again undoes it.
func (c *Change) Apply(target *diaobject.Object) error {
	return c.swap(target)
}

func (c *Change) Revert(target *diaobject.Object) error {
	return c.swap(target)
}

func (c *Change) Free() {}

func (c *Change) swap(target *diaobject.Object) error {
	e, err := c.resolver.Lookup(c.id)
	if err != nil {
		return err
	}
	if target != nil && target != &e.Object {
		return fmt.Errorf("%w: element %s", ErrWrongTarget, c.id)
	}

	cur := e.Geometry()
	e.SetGeometry(c.geometry)
	c.geometry = cur

	e.refresh()
	return nil
}
