package scene

// BoundingBox represents a rectangular boundary in scene coordinates.
type BoundingBox struct {
	Min Position
	Max Position
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},
		Max: Position{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box contains no points.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Width returns the box width.
func (bb BoundingBox) Width() float64 { return bb.Max.X - bb.Min.X }

// Height returns the box height.
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Center returns the box center.
func (bb BoundingBox) Center() Position {
	return Position{X: (bb.Min.X + bb.Max.X) / 2, Y: (bb.Min.Y + bb.Max.Y) / 2}
}

// Expand grows the box to include a position.
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// BoundingBox calculates the bounding box of every shape in the document.
// Labels contribute only their anchor point.
func (d *Document) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()

	for _, shape := range d.Shapes {
		switch {
		case shape.Rect != nil:
			r := shape.Rect
			bbox.Expand(r.At)
			bbox.Expand(Position{X: r.At.X + r.Size.Width, Y: r.At.Y + r.Size.Height})

		case shape.Circle != nil:
			c := shape.Circle
			bbox.Expand(Position{X: c.At.X - c.Radius, Y: c.At.Y - c.Radius})
			bbox.Expand(Position{X: c.At.X + c.Radius, Y: c.At.Y + c.Radius})

		case shape.Line != nil:
			bbox.Expand(shape.Line.From)
			bbox.Expand(shape.Line.To)

		case shape.Polyline != nil:
			for _, pt := range shape.Polyline.Points {
				bbox.Expand(pt)
			}

		case shape.Label != nil:
			bbox.Expand(shape.Label.At)
		}
	}

	return bbox
}
