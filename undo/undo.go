// Package undo keeps reversible edits in undo and redo stacks.
package undo

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/lib/log"
)

// Change is one reversible edit.
//
// Apply redoes the edit, Revert undoes it. target is the object the edit was made
// on, or nil when the caller does not know it. Free is called once the history
// forgets the change.
type Change interface {
	Apply(target *diaobject.Object) error
	Revert(target *diaobject.Object) error
	Free()
}

const DefaultMax = 50

type History struct {
	undo []Change
	redo []Change
	max  int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultMax
	}
	return &History{
		undo: make([]Change, 0, max),
		max:  max,
	}
}

// Push records a change that has already been applied. Pending redos are dropped.
func (h *History) Push(ctx context.Context, c Change) {
	if c == nil {
		return
	}
	for _, r := range h.redo {
		r.Free()
	}
	h.redo = h.redo[:0]

	h.undo = append(h.undo, c)
	if len(h.undo) > h.max {
		h.undo[0].Free()
		h.undo = h.undo[1:]
		log.Debug(ctx, "history full, dropped oldest change", slog.F("max", h.max))
	}
}

func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo reverts the most recent change. It reports false when there is nothing to undo.
func (h *History) Undo(ctx context.Context) (bool, error) {
	if !h.CanUndo() {
		return false, nil
	}
	last := len(h.undo) - 1
	c := h.undo[last]
	if err := c.Revert(nil); err != nil {
		return false, fmt.Errorf("failed to undo: %w", err)
	}
	h.undo = h.undo[:last]
	h.redo = append(h.redo, c)
	log.Debug(ctx, "undo", slog.F("undo", len(h.undo)), slog.F("redo", len(h.redo)))
	return true, nil
}

// Redo applies the most recently undone change again.
func (h *History) Redo(ctx context.Context) (bool, error) {
	if !h.CanRedo() {
		return false, nil
	}
	last := len(h.redo) - 1
	c := h.redo[last]
	if err := c.Apply(nil); err != nil {
		return false, fmt.Errorf("failed to redo: %w", err)
	}
	h.redo = h.redo[:last]
	h.undo = append(h.undo, c)
	log.Debug(ctx, "redo", slog.F("undo", len(h.undo)), slog.F("redo", len(h.redo)))
	return true, nil
}

// Clear frees every recorded change.
func (h *History) Clear() {
	for _, c := range h.undo {
		c.Free()
	}
	for _, c := range h.redo {
		c.Free()
	}
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Stats returns how many changes can be undone and redone.
func (h *History) Stats() (undo, redo int) {
	return len(h.undo), len(h.redo)
}
