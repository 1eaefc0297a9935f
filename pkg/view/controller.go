// Package view implements an interactive 2D view transform: a pannable,
// zoomable, rotatable coordinate space layered over a drawing surface.
//
// The Controller owns the net transform state (translation, uniform scale,
// rotation) plus a focus rectangle that acts as the pivot for rotation and
// the reference for centering. State is mutated through Drag, Rotate, Zoom,
// and Center, or through the gesture handlers in input.go; the full transform
// is rebuilt from the scalar fields on every frame, never accumulated as a
// matrix.
package view

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenterX returns the x coordinate of the rectangle's center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Surface is the hosting drawable the controller is attached to. The host
// reports its viewport size and schedules redraws; the controller never
// draws or blocks.
type Surface interface {
	// Size returns the current viewport width and height in pixels.
	Size() (width, height float64)
	// Invalidate requests a future redraw.
	Invalidate()
}

// Controller accumulates drag, zoom, and rotate actions into a persistent
// view transform. All methods must be called from the host's event thread.
type Controller struct {
	surface Surface

	translateX float64
	translateY float64
	scale      float64
	rotation   float64 // radians, unbounded
	focus      Rect

	// Pointer tracking for drags.
	prevX, prevY float64
	rotating     bool
}

// NewController returns a controller with the identity transform and an
// empty focus rectangle, attached to the given surface.
func NewController(surface Surface) *Controller {
	return &Controller{
		surface: surface,
		scale:   1.0,
	}
}

// Focus returns the bounding box of the focused content.
func (c *Controller) Focus() Rect { return c.focus }

// SetFocus sets the bounding box of the focused content. The box is the
// pivot for rotation and the reference for Center.
func (c *Controller) SetFocus(focus Rect) { c.focus = focus }

// Translation returns the current net translation.
func (c *Controller) Translation() (x, y float64) {
	return c.translateX, c.translateY
}

// Scale returns the current net scale factor.
func (c *Controller) Scale() float64 { return c.scale }

// Rotation returns the current net rotation in radians.
func (c *Controller) Rotation() float64 { return c.rotation }

// Drag translates the view by the given pixel deltas and requests a redraw.
// Signs follow the surface's coordinate axes.
func (c *Controller) Drag(dx, dy float64) {
	c.translateX += dx
	c.translateY += dy

	c.surface.Invalidate()
}

// Rotate adds angle (radians) to the net rotation and requests a redraw.
// Rotation accumulates without wrapping.
func (c *Controller) Rotate(angle float64) {
	c.rotation += angle

	c.surface.Invalidate()
}

// Zoom multiplies the current scale by factor while keeping the point
// (targetX, targetY), in surface coordinates, visually fixed. A factor that
// would flip the sign of the scale is ignored.
//
// Zoom does not request a redraw; Center relies on that to apply two zooms
// with no repaint in between. Callers wanting a visible update must
// invalidate themselves.
func (c *Controller) Zoom(factor, targetX, targetY float64) {
	if c.scale*factor < 0 {
		return
	}

	prevScaleX := c.scale
	prevScaleY := c.scale

	c.scale *= factor

	// Kept per-axis so a future anisotropic scale only changes the fields.
	qx := c.scale / prevScaleX
	qy := c.scale / prevScaleY

	c.translateX = qx*c.translateX + (1-qx)*targetX
	c.translateY = qy*c.translateY + (1-qy)*targetY
}

// Center positions the focus rectangle's center on the surface's center,
// preserving the current scale and rotation, and requests a redraw.
func (c *Controller) Center() {
	width, height := c.surface.Size()
	scale := c.scale

	// Drop back to unit scale, recompute the translation directly, then
	// restore the scale anchored at the surface center.
	c.Zoom(1.0/scale, 0, 0)

	c.translateX = -c.focus.X + (width-c.focus.Width)/2
	c.translateY = -c.focus.Y + (height-c.focus.Height)/2

	c.Zoom(scale, width/2, height/2)

	c.surface.Invalidate()
}

// Fit zooms so the focus rectangle occupies about 90% of the surface and
// centers it. A degenerate focus or surface leaves the scale untouched.
func (c *Controller) Fit() {
	width, height := c.surface.Size()
	if c.focus.Width > 0 && c.focus.Height > 0 && width > 0 && height > 0 {
		fitX := width * 0.9 / c.focus.Width
		fitY := height * 0.9 / c.focus.Height
		fit := fitX
		if fitY < fit {
			fit = fitY
		}
		c.Zoom(fit/c.scale, width/2, height/2)
	}
	c.Center()
}

// Reset restores the identity transform and requests a redraw. The focus
// rectangle is kept.
func (c *Controller) Reset() {
	c.translateX = 0
	c.translateY = 0
	c.scale = 1.0
	c.rotation = 0

	c.surface.Invalidate()
}
