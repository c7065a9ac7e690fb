package geo

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strconv"

	"oss.terrastruct.com/util-go/xdefer"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var _ fmt.Stringer = Point{}
var _ encoding.TextMarshaler = Point{}
var _ encoding.TextUnmarshaler = &Point{}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p1 Point) Equals(p2 Point) bool {
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p1 Point) Add(p2 Point) Point {
	return Point{X: p1.X + p2.X, Y: p1.Y + p2.Y}
}

// Sub returns p1 - p2, the offset from p2 to p1.
func (p1 Point) Sub(p2 Point) Point {
	return Point{X: p1.X - p2.X, Y: p1.Y - p2.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// point t% of the way between a and b
func (a Point) Interpolate(b Point, t float64) Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// MarshalText encodes p as "x,y" with the shortest representation that parses back to
// the same float64 values.
func (p Point) MarshalText() ([]byte, error) {
	return []byte(FormatFloat(p.X) + "," + FormatFloat(p.Y)), nil
}

func (p *Point) UnmarshalText(b []byte) (err error) {
	defer xdefer.Errorf(&err, "failed to unmarshal Point from %q", b)

	fields := bytes.Split(b, []byte{','})
	if len(fields) != 2 {
		return errors.New("expected two fields")
	}
	p.X, err = parseFloat(fields[0])
	if err != nil {
		return err
	}
	p.Y, err = parseFloat(fields[1])
	return err
}

// FormatFloat is the shortest text that parses back to f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloat(b []byte) (float64, error) {
	return strconv.ParseFloat(string(bytes.TrimSpace(b)), 64)
}
