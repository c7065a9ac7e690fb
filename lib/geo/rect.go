package geo

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"math"

	"oss.terrastruct.com/util-go/xdefer"
)

// Rectangle is an axis-aligned rectangle stored by its edges. Top is the smaller y.
type Rectangle struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

var _ encoding.TextMarshaler = Rectangle{}
var _ encoding.TextUnmarshaler = &Rectangle{}

// Spacing is extra room added outside each edge of a rectangle.
type Spacing struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

func UniformSpacing(v float64) Spacing {
	return Spacing{Top: v, Right: v, Bottom: v, Left: v}
}

func (r Rectangle) Width() float64 {
	return r.Right - r.Left
}

func (r Rectangle) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

func (r Rectangle) Union(r2 Rectangle) Rectangle {
	return Rectangle{
		Left:   math.Min(r.Left, r2.Left),
		Top:    math.Min(r.Top, r2.Top),
		Right:  math.Max(r.Right, r2.Right),
		Bottom: math.Max(r.Bottom, r2.Bottom),
	}
}

// BBox returns r with every edge pushed outward by its spacing.
func (r Rectangle) BBox(s Spacing) Rectangle {
	return Rectangle{
		Left:   r.Left - s.Left,
		Top:    r.Top - s.Top,
		Right:  r.Right + s.Right,
		Bottom: r.Bottom + s.Bottom,
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%v,%v;%v,%v]", r.Left, r.Top, r.Right, r.Bottom)
}

// MarshalText encodes r as "left,top;right,bottom".
func (r Rectangle) MarshalText() ([]byte, error) {
	tl, _ := NewPoint(r.Left, r.Top).MarshalText()
	br, _ := NewPoint(r.Right, r.Bottom).MarshalText()
	return []byte(fmt.Sprintf("%s;%s", tl, br)), nil
}

func (r *Rectangle) UnmarshalText(b []byte) (err error) {
	defer xdefer.Errorf(&err, "failed to unmarshal Rectangle from %q", b)

	i := bytes.IndexByte(b, ';')
	if i == -1 {
		return errors.New("missing bottom right corner")
	}
	var tl, br Point
	err = tl.UnmarshalText(b[:i])
	if err != nil {
		return err
	}
	err = br.UnmarshalText(b[i+1:])
	if err != nil {
		return err
	}
	*r = Rectangle{Left: tl.X, Top: tl.Y, Right: br.X, Bottom: br.Y}
	return nil
}
