package view

import (
	"math"
	"testing"
)

func TestTransformApplyOrder(t *testing.T) {
	// Rotation about the pivot happens first, then scale, then translation.
	tr := Transform{
		TranslateX: 10,
		TranslateY: 20,
		Scale:      2,
		Rotation:   math.Pi / 2,
		PivotX:     50,
		PivotY:     50,
	}

	// (60,50) rotates about (50,50) to (50,60), scales to (100,120),
	// translates to (110,140).
	x, y := tr.Apply(60, 50)
	if math.Abs(x-110) > 1e-9 || math.Abs(y-140) > 1e-9 {
		t.Fatalf("Apply(60, 50) = (%v, %v), want (110, 140)", x, y)
	}
}

func TestTransformPivotIsFixedUnderRotation(t *testing.T) {
	tr := Transform{Scale: 1, Rotation: 1.234, PivotX: 30, PivotY: -7}

	x, y := tr.Apply(30, -7)
	if math.Abs(x-30) > 1e-9 || math.Abs(y+7) > 1e-9 {
		t.Fatalf("pivot moved to (%v, %v)", x, y)
	}
}

func TestTransformInverseRoundTrip(t *testing.T) {
	cases := []Transform{
		{Scale: 1},
		{TranslateX: 150, TranslateY: 100, Scale: 1},
		{TranslateX: -12, TranslateY: 7, Scale: 3.5, Rotation: 0.9, PivotX: 50, PivotY: 50},
		{Scale: 0.25, Rotation: -4 * math.Pi, PivotX: -10, PivotY: 200},
	}

	points := []struct{ x, y float64 }{
		{0, 0}, {100, 100}, {-33.5, 78.25},
	}

	for _, tr := range cases {
		for _, p := range points {
			sx, sy := tr.Apply(p.x, p.y)
			wx, wy := tr.ApplyInverse(sx, sy)
			if math.Abs(wx-p.x) > 1e-9 || math.Abs(wy-p.y) > 1e-9 {
				t.Fatalf("round trip of (%v, %v) through %+v = (%v, %v)", p.x, p.y, tr, wx, wy)
			}
		}
	}
}

func TestViewSnapshotTracksController(t *testing.T) {
	c, _ := newTestController()
	c.SetFocus(Rect{X: 10, Y: 20, Width: 80, Height: 40})
	c.Drag(5, 6)
	c.Zoom(2, 0, 0)
	c.Rotate(0.5)

	tr := c.View()
	if tr.Scale != 2 || tr.Rotation != 0.5 {
		t.Fatalf("snapshot = %+v", tr)
	}
	if tr.PivotX != 50 || tr.PivotY != 40 {
		t.Fatalf("pivot = (%v, %v), want focus center (50, 40)", tr.PivotX, tr.PivotY)
	}

	// Compose is a pure function of the scalar state: mutating afterwards
	// must not affect an earlier snapshot.
	c.Drag(100, 100)
	if tr.TranslateX != 10 || tr.TranslateY != 12 {
		t.Fatalf("snapshot translation = (%v, %v), want (10, 12)", tr.TranslateX, tr.TranslateY)
	}
}

func TestInverseToleratesZeroScale(t *testing.T) {
	tr := Transform{TranslateX: 5, TranslateY: 5}

	// Scale zero skips the division instead of producing Inf.
	x, y := tr.ApplyInverse(15, 25)
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		t.Fatalf("ApplyInverse with zero scale = (%v, %v)", x, y)
	}
}
