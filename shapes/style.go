package shapes

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/lib/color"
	"oss.terrastruct.com/diaelem/lib/geo"
)

// Aspect says how a shape's width and height are tied together while resizing.
type Aspect int

const (
	AspectFree Aspect = iota
	AspectFixed
	// AspectSquare keeps width and height equal. For an ellipse that is a circle.
	AspectSquare
)

func (a Aspect) String() string {
	switch a {
	case AspectFree:
		return "free"
	case AspectFixed:
		return "fixed"
	case AspectSquare:
		return "square"
	}
	return fmt.Sprintf("Aspect(%d)", int(a))
}

const DefaultLineWidth = 0.1

// Style is the look shared by boxes and ellipses.
type Style struct {
	LineWidth      float64
	BorderColor    colorful.Color
	InnerColor     colorful.Color
	ShowBackground bool
	Aspect         Aspect
}

func DefaultStyle() Style {
	return Style{
		LineWidth:      DefaultLineWidth,
		BorderColor:    color.Black,
		InnerColor:     color.White,
		ShowBackground: true,
	}
}

func (s Style) AspectMode() Aspect {
	return s.Aspect
}

// spacing is how far the border pokes out of the geometry.
func (s Style) spacing() geo.Spacing {
	return geo.UniformSpacing(s.LineWidth / 2)
}

func (s Style) save(node *diaxml.ObjectNode) {
	node.NewAttribute("border_width").AddReal(s.LineWidth)
	node.NewAttribute("border_color").AddColor(s.BorderColor)
	node.NewAttribute("inner_color").AddColor(s.InnerColor)
	node.NewAttribute("show_background").AddBoolean(s.ShowBackground)
	node.NewAttribute("aspect").AddEnum(int(s.Aspect))
}

// load reads what save wrote. Absent attributes keep the default style.
func (s *Style) load(node *diaxml.ObjectNode) (err error) {
	defer xdefer.Errorf(&err, "failed to load style")

	*s = DefaultStyle()
	if d := firstData(node, "border_width"); d != nil {
		s.LineWidth, err = d.Real()
		if err != nil {
			return err
		}
	}
	if d := firstData(node, "border_color"); d != nil {
		s.BorderColor, err = d.Color()
		if err != nil {
			return err
		}
	}
	if d := firstData(node, "inner_color"); d != nil {
		s.InnerColor, err = d.Color()
		if err != nil {
			return err
		}
	}
	if d := firstData(node, "show_background"); d != nil {
		s.ShowBackground, err = d.Boolean()
		if err != nil {
			return err
		}
	}
	if d := firstData(node, "aspect"); d != nil {
		a, err := d.Enum()
		if err != nil {
			return err
		}
		if a < int(AspectFree) || a > int(AspectSquare) {
			return fmt.Errorf("unknown aspect %d", a)
		}
		s.Aspect = Aspect(a)
	}
	return nil
}

func firstData(node *diaxml.ObjectNode, name string) *diaxml.DataNode {
	attr := node.FindAttribute(name)
	if attr == nil {
		return nil
	}
	return attr.FirstData()
}
