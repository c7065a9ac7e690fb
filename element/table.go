package element

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Table owns the set of live elements of a diagram and hands out IDs for them.
// Changes hold IDs rather than pointers, so removing an element here is enough to
// invalidate them.
type Table struct {
	elems    map[ID]*Element
	orderIDs []ID // insertion order for deterministic iteration
}

var _ Resolver = &Table{}

func NewTable() *Table {
	return &Table{
		elems: make(map[ID]*Element),
	}
}

// Add registers e, giving it a fresh ID first if it has none, and returns its ID.
func (t *Table) Add(e *Element) ID {
	if e.ID.IsZero() {
		e.ID = NewID()
	}
	if _, ok := t.elems[e.ID]; !ok {
		t.orderIDs = append(t.orderIDs, e.ID)
	}
	t.elems[e.ID] = e
	return e.ID
}

func (t *Table) Lookup(id ID) (*Element, error) {
	e, ok := t.elems[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

func (t *Table) Remove(id ID) {
	if _, ok := t.elems[id]; !ok {
		return
	}
	delete(t.elems, id)

	if i := slices.Index(t.orderIDs, id); i != -1 {
		t.orderIDs = slices.Delete(t.orderIDs, i, i+1)
	}
}

func (t *Table) Len() int {
	return len(t.elems)
}

// IDs returns the IDs in insertion order.
func (t *Table) IDs() []ID {
	return append([]ID(nil), t.orderIDs...)
}
