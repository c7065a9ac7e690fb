package diaobject

import (
	"fmt"

	"oss.terrastruct.com/diaelem/lib/geo"
)

// HandleID identifies a handle within its object. The numeric values are compared
// against ranges and must not be reordered.
type HandleID int

const (
	HandleResizeNW HandleID = iota
	HandleResizeN
	HandleResizeNE
	HandleResizeW
	HandleResizeE
	HandleResizeSW
	HandleResizeS
	HandleResizeSE
	HandleMoveStartpoint
	HandleMoveEndpoint

	HandleCustom1 HandleID = 200 + iota - 10
	HandleCustom2
	HandleCustom3
	HandleCustom4
	HandleCustom5
	HandleCustom6
	HandleCustom7
	HandleCustom8
	HandleCustom9
)

var handleNames = map[HandleID]string{
	HandleResizeNW:       "nw",
	HandleResizeN:        "n",
	HandleResizeNE:       "ne",
	HandleResizeW:        "w",
	HandleResizeE:        "e",
	HandleResizeSW:       "sw",
	HandleResizeS:        "s",
	HandleResizeSE:       "se",
	HandleMoveStartpoint: "start",
	HandleMoveEndpoint:   "end",
}

// IsResize reports whether id is one of the eight corner and edge resize handles.
func (id HandleID) IsResize() bool {
	return id >= HandleResizeNW && id <= HandleResizeSE
}

func (id HandleID) String() string {
	if s, ok := handleNames[id]; ok {
		return s
	}
	if id >= HandleCustom1 && id <= HandleCustom9 {
		return fmt.Sprintf("custom%d", id-HandleCustom1+1)
	}
	return fmt.Sprintf("HandleID(%d)", int(id))
}

// ParseHandleID is the inverse of HandleID.String.
func ParseHandleID(s string) (HandleID, error) {
	for id, name := range handleNames {
		if name == s {
			return id, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "custom%d", &n); err == nil && n >= 1 && n <= 9 {
		return HandleCustom1 + HandleID(n-1), nil
	}
	return 0, fmt.Errorf("unknown handle %q", s)
}

type HandleType int

const (
	HandleNonMovable HandleType = iota
	HandleMajorControl
	HandleMinorControl
)

type ConnectType int

const (
	HandleNonConnectable ConnectType = iota
	HandleConnectable
	HandleConnectableNoBreak
)

// HandleMoveReason says what is dragging a handle.
type HandleMoveReason int

const (
	HandleMoveUser HandleMoveReason = iota
	HandleMoveUserFinal
	HandleMoveConnected
	HandleMoveCreate
	HandleMoveCreateFinal
)

type ModifierKeys int

const ModNone ModifierKeys = 0

const (
	ModShift ModifierKeys = 1 << iota
	ModControl
	ModAlt
)

func (m ModifierKeys) Has(k ModifierKeys) bool {
	return m&k != 0
}

type Handle struct {
	ID          HandleID
	Type        HandleType
	Pos         geo.Point
	ConnectType ConnectType
	ConnectedTo *ConnectionPoint
}
