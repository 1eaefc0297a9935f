package render

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/chewxy/math32"

	"github.com/viewtk/viewtk/pkg/view"
)

// minGridSpacingPx is the smallest on-screen distance between grid lines
// before the grid steps up to the next power of ten.
const minGridSpacingPx = 24

// gridStep picks a power-of-ten world-unit spacing whose on-screen distance
// is at least minGridSpacingPx at the given scale.
func gridStep(scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	exp := math32.Ceil(math32.Log10(minGridSpacingPx / float32(scale)))
	return float64(math32.Pow(10, exp))
}

// Grid draws the background grid in screen space, aligned to world-unit
// multiples of the adaptive step. Drawn before the scene so content paints
// over it.
func Grid(gtx layout.Context, tr view.Transform, size image.Point, theme Theme) {
	step := gridStep(tr.Scale)
	if step <= 0 {
		return
	}

	// World-space extent of the viewport: map all four screen corners back
	// (rotation can make any corner the extreme one).
	corners := [4][2]float64{
		{0, 0},
		{float64(size.X), 0},
		{0, float64(size.Y)},
		{float64(size.X), float64(size.Y)},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range corners {
		wx, wy := tr.ApplyInverse(corner[0], corner[1])
		minX = math.Min(minX, wx)
		maxX = math.Max(maxX, wx)
		minY = math.Min(minY, wy)
		maxY = math.Max(maxY, wy)
	}

	gridColor := theme.GridColor()

	// Vertical lines at world x = n*step.
	for x := math.Floor(minX/step) * step; x <= maxX; x += step {
		x1, y1 := tr.Apply(x, minY)
		x2, y2 := tr.Apply(x, maxY)
		gridLine(gtx, x1, y1, x2, y2, gridColor)
	}
	// Horizontal lines at world y = n*step.
	for y := math.Floor(minY/step) * step; y <= maxY; y += step {
		x1, y1 := tr.Apply(minX, y)
		x2, y2 := tr.Apply(maxX, y)
		gridLine(gtx, x1, y1, x2, y2, gridColor)
	}
}

// gridLine strokes a 1px hairline between two screen positions.
func gridLine(gtx layout.Context, x1, y1, x2, y2 float64, lineColor color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: 1,
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}
