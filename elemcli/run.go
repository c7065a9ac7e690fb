// Package elemcli is the diaelem command: it loads a diagram, drags a handle of one
// of its box-shaped objects and reports and saves the result.
package elemcli

import (
	"bytes"
	"context"
	"encoding"
	"errors"
	"fmt"
	"io"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/diaxml"
	"oss.terrastruct.com/diaelem/element"
	"oss.terrastruct.com/diaelem/lib/geo"
	"oss.terrastruct.com/diaelem/lib/log"
	"oss.terrastruct.com/diaelem/lib/version"
	"oss.terrastruct.com/diaelem/lib/xmain"
	"oss.terrastruct.com/diaelem/shapes"
	"oss.terrastruct.com/diaelem/undo"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	objectFlag := ms.Opts.String("", "object", "O", "", "id of the object to work on. Defaults to the first object diaelem can load.")
	handleFlag := ms.Opts.String("", "handle", "H", "", "resize handle to drag: nw, n, ne, w, e, sw, s, se, or custom1 for an ellipse's center.")
	toFlag := ms.Opts.String("", "to", "t", "", `point to drag the handle to, as "x,y".`)
	aspectFlag, err := ms.Opts.Float64("DIAELEM_ASPECT", "aspect", "a", 0, "width:height ratio to keep while dragging. 0 lets the shape decide. Square shapes reject it.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	angleFlag, err := ms.Opts.Float64("", "angle", "", 0, "rotation in degrees applied to the reported polygon.")
	if err != nil {
		return err
	}
	undoFlag, err := ms.Opts.Bool("", "undo", "u", false, "undo the drag before saving.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}

	err = ms.Opts.Parse()
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return err
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}
	if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}
	if *aspectFlag < 0 {
		return xmain.UsageErrorf("--aspect must not be negative, got %v", *aspectFlag)
	}

	var drag *dragOpts
	if *handleFlag != "" || *toFlag != "" {
		drag, err = parseDrag(*handleFlag, *toFlag)
		if err != nil {
			return xmain.UsageErrorf("%v", err)
		}
		drag.aspect = *aspectFlag
	}

	inputPath := args[0]
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	doc, err := diaxml.Parse(bytes.NewReader(input))
	if err != nil {
		return err
	}

	d, err := load(ctx, ms, doc)
	if err != nil {
		return err
	}
	target, err := d.pick(*objectFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	if drag != nil {
		err = d.drag(ctx, target, *drag)
		if err != nil {
			return err
		}
		if *undoFlag {
			_, err = d.history.Undo(ctx)
			if err != nil {
				return err
			}
		}
	}

	if len(args) < 2 {
		report(ms.Stdout, target, *angleFlag)
		return nil
	}
	outputPath := args[1]
	if outputPath == "-" {
		report(ms.Stderr, target, *angleFlag)
	} else {
		report(ms.Stdout, target, *angleFlag)
	}

	for _, o := range d.objects {
		o.shape.Save(o.node)
	}
	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)
	if err != nil {
		return err
	}
	err = ms.WritePath(outputPath, buf.Bytes())
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("wrote %s", outputPath)
	}
	return nil
}

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [--handle se --to 10,5] [flags...] input.dia [output.dia]

%[1]s loads a Dia diagram, drags a handle of one of its box or ellipse objects and
prints the object's geometry, bounding box and outline. Use - for stdin or stdout.

Flags:
%[2]s
`, ms.Name, ms.Opts.Help())
}

type dragOpts struct {
	handle diaobject.HandleID
	to     geo.Point
	aspect float64
}

func parseDrag(handle, to string) (*dragOpts, error) {
	if handle == "" || to == "" {
		return nil, errors.New("--handle and --to go together")
	}
	id, err := diaobject.ParseHandleID(handle)
	if err != nil {
		return nil, err
	}
	var p geo.Point
	err = p.UnmarshalText([]byte(to))
	if err != nil {
		return nil, err
	}
	return &dragOpts{handle: id, to: p}, nil
}

type object struct {
	node  *diaxml.ObjectNode
	shape shapes.Shape
}

type diagram struct {
	table   *element.Table
	history *undo.History
	objects []object
}

// load builds a shape for every object of a known type. Others are left as they are.
func load(ctx context.Context, ms *xmain.State, doc *diaxml.Document) (*diagram, error) {
	d := &diagram{
		table:   element.NewTable(),
		history: undo.NewHistory(undo.DefaultMax),
	}
	known := shapes.Types()
	for _, node := range doc.Objects() {
		if !go2.Contains(known, node.Type()) {
			ms.Log.Debug.Printf("skipping %s of type %q", node.ID(), node.Type())
			continue
		}
		s, err := shapes.LoadShape(ctx, node, d.table)
		if err != nil {
			return nil, err
		}
		d.objects = append(d.objects, object{node: node, shape: s})
	}
	if len(d.objects) == 0 {
		return nil, fmt.Errorf("no objects of type %s", strings.Join(known, " or "))
	}
	return d, nil
}

func (d *diagram) pick(id string) (*object, error) {
	if id == "" {
		return &d.objects[0], nil
	}
	for i := range d.objects {
		if d.objects[i].node.ID() == id {
			return &d.objects[i], nil
		}
	}
	return nil, fmt.Errorf("no loadable object with id %q", id)
}

func (d *diagram) drag(ctx context.Context, o *object, opts dragOpts) error {
	if o.shape.Object().HandleByID(opts.handle) == nil {
		return xmain.UsageErrorf("%s has no handle %s", o.node.ID(), opts.handle)
	}

	if opts.aspect == 0 {
		d.history.Push(ctx, o.shape.MoveHandle(ctx, opts.handle, opts.to, nil, diaobject.HandleMoveUserFinal, diaobject.ModNone))
		return nil
	}

	if !opts.handle.IsResize() {
		return xmain.UsageErrorf("--aspect only applies to resize handles")
	}
	if o.shape.AspectMode() == shapes.AspectSquare {
		return xmain.UsageErrorf("%s is kept square, --aspect does not apply", o.node.ID())
	}
	e := o.shape.Element()
	c, err := element.NewChange(d.table, e.ID)
	if err != nil {
		return err
	}
	e.MoveHandleAspect(ctx, opts.handle, opts.to, opts.aspect)
	o.shape.UpdateData()
	d.history.Push(ctx, c)
	return nil
}

// report prints the geometry of o, one "key: value" per line.
func report(w io.Writer, o *object, angle float64) {
	e := o.shape.Element()
	poly := e.Poly(angle)
	corners := make([]string, len(poly))
	for i, p := range poly {
		corners[i] = text(p)
	}

	fmt.Fprintf(w, "object: %s (%s)\n", o.node.ID(), o.shape.Type())
	fmt.Fprintf(w, "corner: %s\n", text(e.Corner))
	fmt.Fprintf(w, "size: %sx%s\n", geo.FormatFloat(e.Width), geo.FormatFloat(e.Height))
	fmt.Fprintf(w, "bbox: %s\n", text(e.BoundingBox))
	fmt.Fprintf(w, "poly: %s\n", strings.Join(corners, " "))
}

func text(m encoding.TextMarshaler) string {
	b, _ := m.MarshalText()
	return string(b)
}
