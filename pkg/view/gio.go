package view

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// Gio bindings: the compose step for the render path and an event adapter
// for the frame loop.

// Affine rebuilds the current view transform as a Gio affine matrix:
// translate, then uniform scale, then rotation about the focus center.
// The order is load-bearing; reordering changes what the user sees.
func (c *Controller) Affine() f32.Affine2D {
	return f32.Affine2D{}.
		Rotate(f32.Pt(float32(c.focus.CenterX()), float32(c.focus.CenterY())), float32(c.rotation)).
		Scale(f32.Point{}, f32.Pt(float32(c.scale), float32(c.scale))).
		Offset(f32.Pt(float32(c.translateX), float32(c.translateY)))
}

// Compose pushes the view transform onto the op stack. Content recorded
// until the returned stack is popped is drawn in the transformed space.
func (c *Controller) Compose(ops *op.Ops) op.TransformStack {
	return op.Affine(c.Affine()).Push(ops)
}

// Update drains this frame's pointer and key events for tag and dispatches
// them to the gesture handlers. The host registers tag over its content
// area (clip area + event.Op) before calling Update.
func (c *Controller) Update(gtx layout.Context, tag event.Tag) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameCtrl})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok {
			switch ke.State {
			case key.Press:
				c.ModifierDown()
			case key.Release:
				c.ModifierUp()
			}
		}
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  tag,
			Kinds:   pointer.Press | pointer.Drag | pointer.Scroll,
			ScrollX: pointer.ScrollRange{Min: -120, Max: 120},
			ScrollY: pointer.ScrollRange{Min: -120, Max: 120},
		})
		if !ok {
			break
		}

		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pe.Kind {
		case pointer.Press:
			if pe.Buttons == pointer.ButtonPrimary {
				c.PointerDown(float64(pe.Position.X), float64(pe.Position.Y))
			}
		case pointer.Drag:
			if pe.Buttons == pointer.ButtonPrimary {
				c.PointerDrag(float64(pe.Position.X), float64(pe.Position.Y))
			}
		case pointer.Scroll:
			c.Wheel(float64(pe.Scroll.Y), float64(pe.Position.X), float64(pe.Position.Y))
		}
	}
}
