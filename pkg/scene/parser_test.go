package scene

import "testing"

func TestParseFullScene(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	doc, err := parser.ParseString(`
; demo scene
(scene
  (title "demo")
  (rect (at 0 0) (size 100 60) (layer outline))
  (circle (at 50 30) (radius 12) (layer fill) (filled))
  (line (from 0 0) (to 100 60) (width 2) (layer wire))
  (polyline (xy 0 60) (xy 50 0) (xy 100 60) (layer wire))
  (label (at 4 8) (text "origin") (layer text)))
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Title != "demo" {
		t.Fatalf("title = %q, want %q", doc.Title, "demo")
	}
	if len(doc.Shapes) != 5 {
		t.Fatalf("shape count = %d, want 5", len(doc.Shapes))
	}

	rect := doc.Shapes[0].Rect
	if rect == nil {
		t.Fatalf("first shape is not a rect: %+v", doc.Shapes[0])
	}
	if rect.At.X != 0 || rect.At.Y != 0 || rect.Size.Width != 100 || rect.Size.Height != 60 {
		t.Fatalf("rect geometry = %+v", rect)
	}
	if rect.Layer != "outline" {
		t.Fatalf("rect layer = %q, want %q", rect.Layer, "outline")
	}
	if rect.Filled {
		t.Fatalf("rect parsed as filled")
	}

	circle := doc.Shapes[1].Circle
	if circle == nil {
		t.Fatalf("second shape is not a circle")
	}
	if circle.Radius != 12 || !circle.Filled {
		t.Fatalf("circle = %+v", circle)
	}

	line := doc.Shapes[2].Line
	if line == nil || line.Width != 2 || line.To.X != 100 {
		t.Fatalf("line = %+v", line)
	}

	poly := doc.Shapes[3].Polyline
	if poly == nil || len(poly.Points) != 3 {
		t.Fatalf("polyline = %+v", poly)
	}
	if poly.Points[1].X != 50 || poly.Points[1].Y != 0 {
		t.Fatalf("polyline midpoint = %+v", poly.Points[1])
	}

	label := doc.Shapes[4].Label
	if label == nil || label.Text != "origin" {
		t.Fatalf("label = %+v", label)
	}
}

func TestParseNegativeAndDecimalCoordinates(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	doc, err := parser.ParseString(`(scene (line (from -12.5 -0.25) (to 3.75 4)))`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	line := doc.Shapes[0].Line
	if line.From.X != -12.5 || line.From.Y != -0.25 {
		t.Fatalf("from = %+v", line.From)
	}
	if line.To.X != 3.75 || line.To.Y != 4 {
		t.Fatalf("to = %+v", line.To)
	}
}

func TestParseEmptyScene(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	doc, err := parser.ParseString(`(scene)`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Title != "" || len(doc.Shapes) != 0 {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	inputs := []string{
		``,
		`(scene`,
		`(board (rect (at 0 0) (size 1 1)))`,
		`(scene (rect (size 1 1) (at 0 0)))`, // properties out of order
		`(scene (circle (at 0 0)))`,          // radius missing
	}

	for _, input := range inputs {
		if _, err := parser.ParseString(input); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestParseFileFromTestdata(t *testing.T) {
	doc, err := ParseFile("testdata/demo.scene")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Title == "" {
		t.Fatalf("testdata scene has no title")
	}
	if len(doc.Shapes) == 0 {
		t.Fatalf("testdata scene has no shapes")
	}
}
