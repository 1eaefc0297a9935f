package render

import (
	"math"
	"testing"
)

func TestGridStepKeepsMinimumSpacing(t *testing.T) {
	cases := []struct {
		scale float64
		want  float64
	}{
		{1.0, 100},    // 10 units would be 10px, too dense
		{10.0, 10},    // 10 units at 10x = 100px
		{0.01, 10000}, // zoomed far out
		{300.0, 0.1},
	}

	for _, tc := range cases {
		got := gridStep(tc.scale)
		// The step comes out of float32 math; compare with a relative
		// tolerance.
		if math.Abs(got-tc.want)/tc.want > 1e-6 {
			t.Fatalf("gridStep(%v) = %v, want %v", tc.scale, got, tc.want)
		}
		if px := got * tc.scale; px < minGridSpacingPx*(1-1e-6) {
			t.Fatalf("gridStep(%v) = %v yields %vpx spacing, want >= %v", tc.scale, got, px, minGridSpacingPx)
		}
	}
}

func TestGridStepDegenerateScale(t *testing.T) {
	if got := gridStep(0); got != 0 {
		t.Fatalf("gridStep(0) = %v, want 0", got)
	}
	if got := gridStep(-2); got != 0 {
		t.Fatalf("gridStep(-2) = %v, want 0", got)
	}
}

func TestParseTheme(t *testing.T) {
	cases := []struct {
		name string
		want Theme
	}{
		{"dark", ThemeDark},
		{"Light", ThemeLight},
		{"NORD", ThemeNord},
	}

	for _, tc := range cases {
		got, err := ParseTheme(tc.name)
		if err != nil {
			t.Fatalf("ParseTheme(%q) returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTheme(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}

	if _, err := ParseTheme("solarized"); err == nil {
		t.Fatalf("ParseTheme accepted an unknown theme")
	}
}

func TestLayerColorFallsBackToGray(t *testing.T) {
	for theme := range ThemeNames {
		c := theme.LayerColor("no-such-layer")
		if c.R != 128 || c.G != 128 || c.B != 128 {
			t.Fatalf("theme %v unknown-layer color = %+v, want gray", theme, c)
		}
		// Known layers must differ from the fallback.
		if theme.LayerColor("wire") == c {
			t.Fatalf("theme %v wire color equals the fallback gray", theme)
		}
	}
}
