package view

import "math"

// Transform is an immutable snapshot of a controller's view transform,
// suitable for hit-testing and coordinate conversion outside the render
// path. Applying it reproduces exactly what Compose pushes onto the op
// stack: translate, then uniform scale, then rotation about the pivot.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotation   float64 // radians
	PivotX     float64 // rotation pivot (focus center)
	PivotY     float64
}

// View returns a snapshot of the controller's current transform.
func (c *Controller) View() Transform {
	return Transform{
		TranslateX: c.translateX,
		TranslateY: c.translateY,
		Scale:      c.scale,
		Rotation:   c.rotation,
		PivotX:     c.focus.CenterX(),
		PivotY:     c.focus.CenterY(),
	}
}

// Apply maps a world position to surface coordinates.
func (t Transform) Apply(x, y float64) (float64, float64) {
	// Rotate about the pivot.
	if t.Rotation != 0 {
		cos := math.Cos(t.Rotation)
		sin := math.Sin(t.Rotation)
		rx := x - t.PivotX
		ry := y - t.PivotY
		x = rx*cos - ry*sin + t.PivotX
		y = rx*sin + ry*cos + t.PivotY
	}

	// Scale about the origin.
	x *= t.Scale
	y *= t.Scale

	// Translate.
	x += t.TranslateX
	y += t.TranslateY

	return x, y
}

// ApplyInverse maps a surface position back to world coordinates. A zero
// scale leaves the scale step out rather than dividing.
func (t Transform) ApplyInverse(x, y float64) (float64, float64) {
	x -= t.TranslateX
	y -= t.TranslateY

	if t.Scale != 0 {
		x /= t.Scale
		y /= t.Scale
	}

	if t.Rotation != 0 {
		cos := math.Cos(-t.Rotation)
		sin := math.Sin(-t.Rotation)
		rx := x - t.PivotX
		ry := y - t.PivotY
		x = rx*cos - ry*sin + t.PivotX
		y = rx*sin + ry*cos + t.PivotY
	}

	return x, y
}
