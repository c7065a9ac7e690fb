package element

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/lib/geo"
	"oss.terrastruct.com/diaelem/lib/log"
)

// edge says which side of an axis a handle drags.
type edge int

const (
	// the handle does not move along this axis
	edgeNone edge = iota
	// left or top: the corner moves with the handle
	edgeMin
	// right or bottom: only the extent changes
	edgeMax
)

// handleRule describes one resize handle for both resize engines.
//
// moveX and moveY are the share of an aspect-locked size change that shifts the
// corner: 1 keeps the far edge fixed, 0 keeps the corner fixed, 0.5 keeps the
// middle fixed. They are fixed values, not derived from x and y.
type handleRule struct {
	x, y         edge
	moveX, moveY float64
}

var handleRules = [NumResizeHandles]handleRule{
	NW: {x: edgeMin, y: edgeMin, moveX: 1, moveY: 1},
	N:  {x: edgeNone, y: edgeMin, moveX: 0.5, moveY: 1},
	NE: {x: edgeMax, y: edgeMin, moveX: 0, moveY: 1},
	W:  {x: edgeMin, y: edgeNone, moveX: 1, moveY: 0.5},
	E:  {x: edgeMax, y: edgeNone, moveX: 0, moveY: 0.5},
	SW: {x: edgeMin, y: edgeMax, moveX: 1, moveY: 0},
	S:  {x: edgeNone, y: edgeMax, moveX: 0.5, moveY: 0},
	SE: {x: edgeMax, y: edgeMax, moveX: 0, moveY: 0},
}

func ruleFor(id diaobject.HandleID) (handleRule, bool) {
	if !id.IsResize() {
		return handleRule{}, false
	}
	return handleRules[id-diaobject.HandleResizeNW], true
}

// Resize returns g after dragging resize handle id to the point to.
//
// A dragged edge never crosses the opposite edge: a left or top edge is only moved
// while to stays before the far edge, and a right or bottom edge only takes a
// positive extent. Otherwise that axis is left alone.
//
// ok is false, and g returned unchanged, when id is not a resize handle.
func Resize(g Geometry, id diaobject.HandleID, to geo.Point) (_ Geometry, ok bool) {
	r, ok := ruleFor(id)
	if !ok {
		return g, false
	}
	p := to.Sub(g.Corner)
	g.Corner.X, g.Width = resizeAxis(r.x, to.X, g.Corner.X, g.Width, p.X)
	g.Corner.Y, g.Height = resizeAxis(r.y, to.Y, g.Corner.Y, g.Height, p.Y)
	return g, true
}

func resizeAxis(e edge, to, corner, extent, delta float64) (float64, float64) {
	switch e {
	case edgeMin:
		if to < corner+extent {
			corner += delta
			extent -= delta
		}
	case edgeMax:
		if delta > 0 {
			extent = delta
		}
	}
	return corner, extent
}

// ResizeAspect returns g after dragging resize handle id to the point to while
// keeping width:height equal to aspectRatio.
//
// Each dragged axis proposes an extent. When the proposed width is too wide for the
// proposed height the width wins, otherwise the height does. If either comes out
// negative the shape collapses to zero by zero.
//
// aspectRatio must be positive. ok is false, and g returned unchanged, when id is
// not a resize handle.
func ResizeAspect(g Geometry, id diaobject.HandleID, to geo.Point, aspectRatio float64) (_ Geometry, ok bool) {
	if aspectRatio <= 0 {
		panic(fmt.Sprintf("element: aspect ratio must be positive, got %v", aspectRatio))
	}
	r, ok := ruleFor(id)
	if !ok {
		return g, false
	}
	p := to.Sub(g.Corner)

	newWidth := aspectCandidate(r.x, g.Width, p.X)
	newHeight := aspectCandidate(r.y, g.Height, p.Y)

	if newWidth > newHeight*aspectRatio {
		newHeight = newWidth / aspectRatio
	} else {
		newWidth = newHeight * aspectRatio
	}

	if newWidth < 0 || newHeight < 0 {
		newWidth = 0
		newHeight = 0
	}

	g.Corner.X -= (newWidth - g.Width) * r.moveX
	g.Corner.Y -= (newHeight - g.Height) * r.moveY
	g.Width = newWidth
	g.Height = newHeight
	return g, true
}

func aspectCandidate(e edge, extent, delta float64) float64 {
	switch e {
	case edgeMin:
		return extent - delta
	case edgeMax:
		return delta
	}
	return 0
}

// MoveHandle drags resize handle id to the point to. It only changes the geometry;
// callers wanting undo create a Change first, and refresh handles and the bounding
// box after.
func (e *Element) MoveHandle(ctx context.Context, id diaobject.HandleID, to geo.Point) {
	g, ok := Resize(e.Geometry(), id, to)
	if !ok {
		log.Warn(ctx, "element.MoveHandle called with wrong handle id", slog.F("handle", id.String()))
		return
	}
	e.SetGeometry(g)
}

// MoveHandleAspect is MoveHandle keeping width:height at aspectRatio, which must be positive.
func (e *Element) MoveHandleAspect(ctx context.Context, id diaobject.HandleID, to geo.Point, aspectRatio float64) {
	g, ok := ResizeAspect(e.Geometry(), id, to, aspectRatio)
	if !ok {
		log.Warn(ctx, "element.MoveHandleAspect called with wrong handle id", slog.F("handle", id.String()))
		return
	}
	e.SetGeometry(g)
}
