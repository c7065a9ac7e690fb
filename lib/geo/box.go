package geo

import "fmt"

type Box struct {
	TopLeft Point
	Width   float64
	Height  float64
}

func NewBox(tl Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Center() Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b *Box) BottomRight() Point {
	return NewPoint(b.TopLeft.X+b.Width, b.TopLeft.Y+b.Height)
}

// Rectangle returns the unpadded edges of b.
func (b *Box) Rectangle() Rectangle {
	return Rectangle{
		Left:   b.TopLeft.X,
		Top:    b.TopLeft.Y,
		Right:  b.TopLeft.X + b.Width,
		Bottom: b.TopLeft.Y + b.Height,
	}
}

// Corners returns the four corners clockwise from the top left.
func (b *Box) Corners() [4]Point {
	tl := b.TopLeft
	tr := NewPoint(tl.X+b.Width, tl.Y)
	br := NewPoint(tr.X, tr.Y+b.Height)
	bl := NewPoint(tl.X, br.Y)
	return [4]Point{tl, tr, br, bl}
}

func (b *Box) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %v, Height: %v}", b.TopLeft, b.Width, b.Height)
}
