package diaobject

import (
	"strings"

	"oss.terrastruct.com/diaelem/lib/geo"
)

// Direction is a set of compass directions a connection may leave a point in.
type Direction uint8

const (
	DirNone  Direction = 0
	DirNorth Direction = 1 << 0
	DirEast  Direction = 1 << 1
	DirSouth Direction = 1 << 2
	DirWest  Direction = 1 << 3
	DirAll             = DirNorth | DirEast | DirSouth | DirWest
)

func (d Direction) Has(d2 Direction) bool {
	return d&d2 == d2
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirAll:
		return "all"
	}
	var parts []string
	for _, e := range []struct {
		d    Direction
		name string
	}{{DirNorth, "n"}, {DirSouth, "s"}, {DirEast, "e"}, {DirWest, "w"}} {
		if d.Has(e.d) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "")
}

type CPFlags int

const (
	// CPFlagsMain marks the point standing for the whole object, usually its center.
	CPFlagsMain CPFlags = 1
)

type ConnectionPoint struct {
	Object     *Object
	Pos        geo.Point
	Directions Direction
	Flags      CPFlags
	Name       string

	// Connected lists the objects with a handle attached here.
	Connected []*Object
}

func (cp *ConnectionPoint) IsMain() bool {
	return cp.Flags&CPFlagsMain != 0
}
