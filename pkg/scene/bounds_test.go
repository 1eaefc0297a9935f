package scene

import "testing"

func TestBoundingBoxCoversAllShapes(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	doc, err := parser.ParseString(`
(scene
  (rect (at 10 10) (size 30 20))
  (circle (at 0 0) (radius 5))
  (line (from 60 -8) (to 70 12))
  (label (at 100 50) (text "far corner")))
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	bbox := doc.BoundingBox()
	if bbox.IsEmpty() {
		t.Fatalf("bounding box is empty")
	}

	// Circle extends to (-5,-5); the label anchor is the far corner.
	if bbox.Min.X != -5 || bbox.Min.Y != -8 {
		t.Fatalf("min = %+v, want (-5, -8)", bbox.Min)
	}
	if bbox.Max.X != 100 || bbox.Max.Y != 50 {
		t.Fatalf("max = %+v, want (100, 50)", bbox.Max)
	}
	if bbox.Width() != 105 || bbox.Height() != 58 {
		t.Fatalf("size = %v x %v, want 105 x 58", bbox.Width(), bbox.Height())
	}
}

func TestBoundingBoxOfEmptyScene(t *testing.T) {
	doc := &Document{}
	if !doc.BoundingBox().IsEmpty() {
		t.Fatalf("empty scene produced a non-empty bounding box")
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Expand(Position{X: 0, Y: 0})
	bbox.Expand(Position{X: 100, Y: 60})

	c := bbox.Center()
	if c.X != 50 || c.Y != 30 {
		t.Fatalf("center = %+v, want (50, 30)", c)
	}
}
