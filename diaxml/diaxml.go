// Package diaxml reads and writes the attributed object tree diagrams are saved as.
//
// A document looks like
//
//	<dia:diagram xmlns:dia="http://www.lysator.liu.se/~alla/dia/">
//	  <dia:layer name="Background" visible="true">
//	    <dia:object type="Standard - Box" version="0" id="O0">
//	      <dia:attribute name="elem_corner">
//	        <dia:point val="1,2"/>
//	      </dia:attribute>
//	    </dia:object>
//	  </dia:layer>
//	</dia:diagram>
//
// Elements are matched by local name so documents with or without the dia prefix load.
package diaxml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"oss.terrastruct.com/util-go/xdefer"
)

const (
	Namespace = "http://www.lysator.liu.se/~alla/dia/"
	Prefix    = "dia"

	header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
)

type Document struct {
	doc  *xmlquery.Node
	root *xmlquery.Node
}

type Layer struct {
	n *xmlquery.Node
}

type ObjectNode struct {
	n *xmlquery.Node
}

type AttributeNode struct {
	n *xmlquery.Node
}

func NewDocument() *Document {
	doc := &xmlquery.Node{Type: xmlquery.DocumentNode}
	root := newElement("diagram")
	xmlquery.AddAttr(root, "xmlns:"+Prefix, Namespace)
	xmlquery.AddChild(doc, root)
	return &Document{doc: doc, root: root}
}

func Parse(r io.Reader) (_ *Document, err error) {
	defer xdefer.Errorf(&err, "failed to parse diagram")

	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			if c.Data != "diagram" {
				return nil, fmt.Errorf("unexpected root element %q", c.Data)
			}
			return &Document{doc: doc, root: c}, nil
		}
	}
	return nil, errors.New("missing diagram element")
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, header+d.root.OutputXML(true)+"\n")
	return int64(n), err
}

func (d *Document) String() string {
	b := &strings.Builder{}
	d.WriteTo(b)
	return b.String()
}

func (d *Document) AddLayer(name string) *Layer {
	n := newElement("layer")
	xmlquery.AddAttr(n, "name", name)
	xmlquery.AddAttr(n, "visible", "true")
	xmlquery.AddChild(d.root, n)
	return &Layer{n: n}
}

func (d *Document) Layers() []*Layer {
	var layers []*Layer
	for _, n := range xmlquery.Find(d.root, "./*[local-name()='layer']") {
		layers = append(layers, &Layer{n: n})
	}
	return layers
}

// Objects returns every object of every layer in document order.
func (d *Document) Objects() []*ObjectNode {
	return objects(d.root, "//*[local-name()='object']")
}

// Object returns the object with the given id or nil.
func (d *Document) Object(id string) *ObjectNode {
	for _, o := range d.Objects() {
		if o.ID() == id {
			return o
		}
	}
	return nil
}

func (l *Layer) Name() string {
	return l.n.SelectAttr("name")
}

func (l *Layer) AddObject(typ string, version int, id string) *ObjectNode {
	n := newElement("object")
	xmlquery.AddAttr(n, "type", typ)
	xmlquery.AddAttr(n, "version", fmt.Sprint(version))
	xmlquery.AddAttr(n, "id", id)
	xmlquery.AddChild(l.n, n)
	return &ObjectNode{n: n}
}

func (l *Layer) Objects() []*ObjectNode {
	return objects(l.n, "./*[local-name()='object']")
}

func (o *ObjectNode) Type() string {
	return o.n.SelectAttr("type")
}

func (o *ObjectNode) Version() string {
	return o.n.SelectAttr("version")
}

func (o *ObjectNode) ID() string {
	return o.n.SelectAttr("id")
}

// NewAttribute appends an empty attribute called name, dropping any earlier one of
// the same name.
func (o *ObjectNode) NewAttribute(name string) *AttributeNode {
	if old := o.FindAttribute(name); old != nil {
		xmlquery.RemoveFromTree(old.n)
	}
	n := newElement("attribute")
	xmlquery.AddAttr(n, "name", name)
	xmlquery.AddChild(o.n, n)
	return &AttributeNode{n: n}
}

// FindAttribute returns nil when the object has no attribute called name.
func (o *ObjectNode) FindAttribute(name string) *AttributeNode {
	for c := o.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == "attribute" && c.SelectAttr("name") == name {
			return &AttributeNode{n: c}
		}
	}
	return nil
}

// AttributeNames lists the attribute names in document order.
func (o *ObjectNode) AttributeNames() []string {
	var names []string
	for c := o.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == "attribute" {
			names = append(names, c.SelectAttr("name"))
		}
	}
	return names
}

func (a *AttributeNode) Name() string {
	return a.n.SelectAttr("name")
}

// FirstData returns nil for an attribute without data.
func (a *AttributeNode) FirstData() *DataNode {
	for c := a.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return &DataNode{n: c}
		}
	}
	return nil
}

func objects(top *xmlquery.Node, expr string) []*ObjectNode {
	var objs []*ObjectNode
	for _, n := range xmlquery.Find(top, expr) {
		objs = append(objs, &ObjectNode{n: n})
	}
	return objs
}

func newElement(name string) *xmlquery.Node {
	return &xmlquery.Node{
		Type:   xmlquery.ElementNode,
		Data:   name,
		Prefix: Prefix,
	}
}
