package diaxml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	tassert "oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/lib/geo"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<dia:diagram xmlns:dia="http://www.lysator.liu.se/~alla/dia/">
  <dia:layer name="Background" visible="true">
    <dia:object type="Standard - Box" version="0" id="O0">
      <dia:attribute name="elem_corner">
        <dia:point val="1.5,2"/>
      </dia:attribute>
      <dia:attribute name="elem_width">
        <dia:real val="3"/>
      </dia:attribute>
      <dia:attribute name="border_color">
        <dia:color val="#ff0000ff"/>
      </dia:attribute>
      <dia:attribute name="text">
        <dia:string>#  padded #</dia:string>
      </dia:attribute>
    </dia:object>
    <dia:object type="Standard - Ellipse" version="0" id="O1"/>
  </dia:layer>
</dia:diagram>
`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := diaxml.Parse(strings.NewReader(sample))
	tassert.Success(t, err)

	layers := doc.Layers()
	if assert.Len(t, layers, 1) {
		assert.Equal(t, "Background", layers[0].Name())
		assert.Len(t, layers[0].Objects(), 2)
	}

	objs := doc.Objects()
	if !assert.Len(t, objs, 2) {
		return
	}
	o := objs[0]
	assert.Equal(t, "Standard - Box", o.Type())
	assert.Equal(t, "0", o.Version())
	assert.Equal(t, "O0", o.ID())
	assert.Equal(t, []string{"elem_corner", "elem_width", "border_color", "text"}, o.AttributeNames())

	p, err := o.FindAttribute("elem_corner").FirstData().Point()
	tassert.Success(t, err)
	assert.Equal(t, geo.NewPoint(1.5, 2), p)

	w, err := o.FindAttribute("elem_width").FirstData().Real()
	tassert.Success(t, err)
	assert.Equal(t, 3.0, w)

	c, err := o.FindAttribute("border_color").FirstData().Color()
	tassert.Success(t, err)
	assert.Equal(t, "#ff0000", c.Hex())

	s, err := o.FindAttribute("text").FirstData().Text()
	tassert.Success(t, err)
	assert.Equal(t, "  padded ", s)

	assert.Nil(t, o.FindAttribute("elem_height"))
	assert.Equal(t, "O1", doc.Object("O1").ID())
	assert.Nil(t, doc.Object("O9"))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := diaxml.Parse(strings.NewReader(`<?xml version="1.0"?><svg/>`))
	assert.EqualError(t, err, `failed to parse diagram: unexpected root element "svg"`)

	_, err = diaxml.Parse(strings.NewReader(`<?xml version="1.0"?>`))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	doc := diaxml.NewDocument()
	l := doc.AddLayer("Background")
	o := l.AddObject("Standard - Box", 0, "O0")

	third := 1.0 / 3
	o.NewAttribute("elem_corner").AddPoint(geo.NewPoint(third, -7.25))
	o.NewAttribute("elem_width").AddReal(third * 100)
	o.NewAttribute("obj_bb").AddRectangle(geo.Rectangle{Left: -1, Top: -2, Right: 3, Bottom: 4})
	o.NewAttribute("aspect").AddEnum(2)
	o.NewAttribute("count").AddInt(-4)
	o.NewAttribute("show_background").AddBoolean(true)
	o.NewAttribute("inner_color").AddColor(colorful.Color{R: 0, G: 1, B: 0})
	o.NewAttribute("name").AddString(`a <b> & "c"`)

	buf := &bytes.Buffer{}
	_, err := doc.WriteTo(buf)
	tassert.Success(t, err)

	doc2, err := diaxml.Parse(buf)
	tassert.Success(t, err)
	o2 := doc2.Object("O0")
	if !assert.NotNil(t, o2) {
		return
	}
	assert.Equal(t, "Standard - Box", o2.Type())

	p, err := o2.FindAttribute("elem_corner").FirstData().Point()
	tassert.Success(t, err)
	assert.Equal(t, geo.NewPoint(third, -7.25), p)

	w, err := o2.FindAttribute("elem_width").FirstData().Real()
	tassert.Success(t, err)
	assert.Equal(t, third*100, w)

	r, err := o2.FindAttribute("obj_bb").FirstData().Rectangle()
	tassert.Success(t, err)
	assert.Equal(t, geo.Rectangle{Left: -1, Top: -2, Right: 3, Bottom: 4}, r)

	e, err := o2.FindAttribute("aspect").FirstData().Enum()
	tassert.Success(t, err)
	assert.Equal(t, 2, e)

	i, err := o2.FindAttribute("count").FirstData().Int()
	tassert.Success(t, err)
	assert.Equal(t, -4, i)

	b, err := o2.FindAttribute("show_background").FirstData().Boolean()
	tassert.Success(t, err)
	assert.True(t, b)

	c, err := o2.FindAttribute("inner_color").FirstData().Color()
	tassert.Success(t, err)
	assert.Equal(t, "#00ff00", c.Hex())

	s, err := o2.FindAttribute("name").FirstData().Text()
	tassert.Success(t, err)
	assert.Equal(t, `a <b> & "c"`, s)
}

func TestNewAttributeReplaces(t *testing.T) {
	t.Parallel()

	o := diaxml.NewDocument().AddLayer("l").AddObject("Standard - Box", 0, "O0")
	o.NewAttribute("elem_width").AddReal(1)
	o.NewAttribute("elem_height").AddReal(2)
	o.NewAttribute("elem_width").AddReal(3)

	assert.Equal(t, []string{"elem_height", "elem_width"}, o.AttributeNames())
	w, err := o.FindAttribute("elem_width").FirstData().Real()
	tassert.Success(t, err)
	assert.Equal(t, 3.0, w)
}

func TestDataTypeMismatch(t *testing.T) {
	t.Parallel()

	o := diaxml.NewDocument().AddLayer("l").AddObject("Standard - Box", 0, "O0")
	o.NewAttribute("elem_width").AddPoint(geo.NewPoint(1, 2))
	o.NewAttribute("empty")

	_, err := o.FindAttribute("elem_width").FirstData().Real()
	assert.EqualError(t, err, "failed to read real: expected real data, found point")
	assert.Nil(t, o.FindAttribute("empty").FirstData())
}

func TestColorValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		val string
		exp string
		err bool
	}{
		{val: "#336699", exp: "#336699"},
		{val: "#336699ff", exp: "#336699"},
		{val: "#0f0", exp: "#00ff00"},
		{val: "red", exp: "#ff0000"},
		{val: "cornflowerblue", exp: "#6495ed"},
		{val: "rgb(0, 0, 255)", exp: "#0000ff"},
		{val: "not a color", err: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.val, func(t *testing.T) {
			t.Parallel()

			doc, err := diaxml.Parse(strings.NewReader(`<?xml version="1.0"?>
<dia:diagram xmlns:dia="http://www.lysator.liu.se/~alla/dia/">
  <dia:layer name="Background">
    <dia:object type="Standard - Box" version="0" id="O0">
      <dia:attribute name="inner_color">
        <dia:color val="` + tc.val + `"/>
      </dia:attribute>
    </dia:object>
  </dia:layer>
</dia:diagram>`))
			tassert.Success(t, err)

			c, err := doc.Object("O0").FindAttribute("inner_color").FirstData().Color()
			if tc.err {
				assert.Error(t, err)
				return
			}
			tassert.Success(t, err)
			assert.Equal(t, tc.exp, c.Hex())
		})
	}
}
