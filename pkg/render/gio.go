package render

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/viewtk/viewtk/pkg/scene"
	"github.com/viewtk/viewtk/pkg/view"
)

// labelTextSp is the unscaled label size; the view transform scales it with
// the rest of the content.
const labelTextSp = 12

// RenderScene pushes the controller's compose transform and draws every
// shape in world coordinates. The transform stack is popped before
// returning, so callers can draw screen-space overlays afterwards.
func RenderScene(gtx layout.Context, ctrl *view.Controller, doc *scene.Document, theme Theme) {
	stack := ctrl.Compose(gtx.Ops)
	defer stack.Pop()

	var shaper *text.Shaper

	for _, shape := range doc.Shapes {
		switch {
		case shape.Rect != nil:
			renderRect(gtx, shape.Rect, theme)

		case shape.Circle != nil:
			renderCircle(gtx, shape.Circle, theme)

		case shape.Line != nil:
			l := shape.Line
			renderStroke(gtx, []scene.Position{l.From, l.To}, l.Width, theme.LayerColor(l.Layer))

		case shape.Polyline != nil:
			p := shape.Polyline
			renderStroke(gtx, p.Points, p.Width, theme.LayerColor(p.Layer))

		case shape.Label != nil:
			if shaper == nil {
				shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
			}
			renderLabel(gtx, shape.Label, shaper, theme)
		}
	}
}

func renderRect(gtx layout.Context, r *scene.Rect, theme Theme) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(r.At.X), float32(r.At.Y)))
	path.LineTo(f32.Pt(float32(r.At.X+r.Size.Width), float32(r.At.Y)))
	path.LineTo(f32.Pt(float32(r.At.X+r.Size.Width), float32(r.At.Y+r.Size.Height)))
	path.LineTo(f32.Pt(float32(r.At.X), float32(r.At.Y+r.Size.Height)))
	path.Close()

	fillOutline(gtx, path.End(), r.Filled, r.Width, theme.LayerColor(r.Layer))
}

func renderCircle(gtx layout.Context, c *scene.Circle, theme Theme) {
	center := f32.Pt(float32(c.At.X), float32(c.At.Y))

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(center.X+float32(c.Radius), center.Y))
	path.ArcTo(center, center, 2*math.Pi)
	path.Close()

	fillOutline(gtx, path.End(), c.Filled, c.Width, theme.LayerColor(c.Layer))
}

// fillOutline paints a closed path either solid or as an outline stroke.
func fillOutline(gtx layout.Context, spec clip.PathSpec, filled bool, width float64, shapeColor color.NRGBA) {
	if filled {
		paint.FillShape(gtx.Ops, shapeColor, clip.Outline{Path: spec}.Op())
		return
	}
	paint.FillShape(gtx.Ops, shapeColor, clip.Stroke{
		Path:  spec,
		Width: strokeWidth(width),
	}.Op())
}

func renderStroke(gtx layout.Context, points []scene.Position, width float64, strokeColor color.NRGBA) {
	if len(points) < 2 {
		return
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(points[0].X), float32(points[0].Y)))
	for _, pt := range points[1:] {
		path.LineTo(f32.Pt(float32(pt.X), float32(pt.Y)))
	}

	paint.FillShape(gtx.Ops, strokeColor, clip.Stroke{
		Path:  path.End(),
		Width: strokeWidth(width),
	}.Op())
}

func strokeWidth(width float64) float32 {
	if width <= 0 {
		return 1
	}
	return float32(width)
}

func renderLabel(gtx layout.Context, l *scene.Label, shaper *text.Shaper, theme Theme) {
	// Record into a macro so label layout cannot leak constraints or clips
	// into the surrounding frame.
	macro := op.Record(gtx.Ops)

	stack := op.Affine(f32.Affine2D{}.
		Offset(f32.Pt(float32(l.At.X), float32(l.At.Y)))).Push(gtx.Ops)

	paint.ColorOp{Color: theme.LayerColor(l.Layer)}.Add(gtx.Ops)

	label := widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}
	label.Layout(gtx, shaper, font.Font{}, unit.Sp(labelTextSp), l.Text, op.CallOp{})

	stack.Pop()
	call := macro.Stop()
	call.Add(gtx.Ops)
}
