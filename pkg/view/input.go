package view

import "math"

// Gesture handlers. These are thin adapters from host input events onto the
// Drag/Rotate/Zoom operations: press records the tracking origin, drag pans
// or rotates depending on the modifier mode, and the wheel zooms toward the
// pointer. The host delivers events in order on its event thread; pointer
// coordinates are surface-local.

// dragRotateDivisor maps vertical drag distance to rotation: 500px ≈ π rad.
const dragRotateDivisor = 500.0

// PointerDown records the pointer position as the origin for subsequent
// drag deltas. No transform change.
func (c *Controller) PointerDown(x, y float64) {
	c.prevX = x
	c.prevY = y
}

// PointerDrag dispatches the delta since the last pointer event: panning by
// default, rotation while the modifier key is held (only vertical motion
// contributes).
func (c *Controller) PointerDrag(x, y float64) {
	if !c.rotating {
		c.Drag(x-c.prevX, y-c.prevY)
	} else {
		c.Rotate((y - c.prevY) * math.Pi / dragRotateDivisor)
	}

	c.prevX = x
	c.prevY = y
}

// Wheel zooms toward the pointer position. ticks is the signed scroll
// amount; the -10 divisor sets sensitivity and makes scrolling up zoom in.
// Requests a redraw (Zoom itself does not).
func (c *Controller) Wheel(ticks, x, y float64) {
	c.Zoom((c.scale+ticks/-10.0)/c.scale, x, y)

	c.surface.Invalidate()
}

// ModifierDown enters rotation mode. No transform change, no redraw.
func (c *Controller) ModifierDown() { c.rotating = true }

// ModifierUp leaves rotation mode.
func (c *Controller) ModifierUp() { c.rotating = false }

// Rotating reports whether drags currently rotate instead of pan.
func (c *Controller) Rotating() bool { return c.rotating }
