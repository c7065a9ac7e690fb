package diaxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/lucasb-eyer/go-colorful"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/diaelem/lib/color"
	"oss.terrastruct.com/diaelem/lib/geo"
)

// DataNode is one typed value inside an attribute, e.g. <dia:real val="1.5"/>.
type DataNode struct {
	n *xmlquery.Node
}

const (
	TypeReal      = "real"
	TypeInt       = "int"
	TypeBoolean   = "boolean"
	TypeEnum      = "enum"
	TypePoint     = "point"
	TypeRectangle = "rectangle"
	TypeColor     = "color"
	TypeString    = "string"
)

func (a *AttributeNode) addValue(typ, val string) {
	n := newElement(typ)
	xmlquery.AddAttr(n, "val", val)
	xmlquery.AddChild(a.n, n)
}

func (a *AttributeNode) AddReal(v float64) {
	a.addValue(TypeReal, geo.FormatFloat(v))
}

func (a *AttributeNode) AddInt(v int) {
	a.addValue(TypeInt, strconv.Itoa(v))
}

func (a *AttributeNode) AddEnum(v int) {
	a.addValue(TypeEnum, strconv.Itoa(v))
}

func (a *AttributeNode) AddBoolean(v bool) {
	a.addValue(TypeBoolean, strconv.FormatBool(v))
}

func (a *AttributeNode) AddPoint(p geo.Point) {
	b, _ := p.MarshalText()
	a.addValue(TypePoint, string(b))
}

func (a *AttributeNode) AddRectangle(r geo.Rectangle) {
	b, _ := r.MarshalText()
	a.addValue(TypeRectangle, string(b))
}

func (a *AttributeNode) AddColor(c colorful.Color) {
	a.addValue(TypeColor, c.Hex())
}

// AddString stores s between '#' markers so leading and trailing blanks survive.
func (a *AttributeNode) AddString(s string) {
	n := newElement(TypeString)
	xmlquery.AddChild(n, &xmlquery.Node{
		Type: xmlquery.TextNode,
		Data: "#" + s + "#",
	})
	xmlquery.AddChild(a.n, n)
}

func (d *DataNode) Type() string {
	return d.n.Data
}

func (d *DataNode) value(typ string) (string, error) {
	if d.n.Data != typ {
		return "", fmt.Errorf("expected %s data, found %s", typ, d.n.Data)
	}
	for _, attr := range d.n.Attr {
		if attr.Name.Local == "val" {
			return attr.Value, nil
		}
	}
	return "", fmt.Errorf("%s data is missing its value", typ)
}

func (d *DataNode) Real() (_ float64, err error) {
	defer xdefer.Errorf(&err, "failed to read real")

	v, err := d.value(TypeReal)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

func (d *DataNode) Int() (_ int, err error) {
	defer xdefer.Errorf(&err, "failed to read int")

	v, err := d.value(TypeInt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func (d *DataNode) Enum() (_ int, err error) {
	defer xdefer.Errorf(&err, "failed to read enum")

	v, err := d.value(TypeEnum)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func (d *DataNode) Boolean() (_ bool, err error) {
	defer xdefer.Errorf(&err, "failed to read boolean")

	v, err := d.value(TypeBoolean)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}

func (d *DataNode) Point() (p geo.Point, err error) {
	defer xdefer.Errorf(&err, "failed to read point")

	v, err := d.value(TypePoint)
	if err != nil {
		return p, err
	}
	err = p.UnmarshalText([]byte(v))
	return p, err
}

func (d *DataNode) Rectangle() (r geo.Rectangle, err error) {
	defer xdefer.Errorf(&err, "failed to read rectangle")

	v, err := d.value(TypeRectangle)
	if err != nil {
		return r, err
	}
	err = r.UnmarshalText([]byte(v))
	return r, err
}

func (d *DataNode) Color() (_ colorful.Color, err error) {
	defer xdefer.Errorf(&err, "failed to read color")

	v, err := d.value(TypeColor)
	if err != nil {
		return colorful.Color{}, err
	}
	// older files carry an alpha byte we do not keep
	v = strings.TrimSpace(v)
	if len(v) == 9 && v[0] == '#' {
		v = v[:7]
	}
	c, err := colorful.Hex(v)
	if err == nil {
		return c, nil
	}
	// hand-edited files use CSS names and functions
	return color.Parse(v)
}

// Text reads string data.
func (d *DataNode) Text() (_ string, err error) {
	defer xdefer.Errorf(&err, "failed to read string")

	if d.n.Data != TypeString {
		return "", fmt.Errorf("expected %s data, found %s", TypeString, d.n.Data)
	}
	s := d.n.InnerText()
	if len(s) < 2 || s[0] != '#' || s[len(s)-1] != '#' {
		return "", fmt.Errorf("string %q is not enclosed in #", s)
	}
	return s[1 : len(s)-1], nil
}
