// Package render draws parsed scenes into a Gio frame under the view
// transform, with a themed palette and an adaptive background grid.
package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme selects a color palette for scene layers.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
	ThemeNord
)

// ThemeNames maps theme enum to display name.
var ThemeNames = map[Theme]string{
	ThemeDark:  "Dark",
	ThemeLight: "Light",
	ThemeNord:  "Nord",
}

// ParseTheme resolves a theme by (case-insensitive) name.
func ParseTheme(name string) (Theme, error) {
	for theme, themeName := range ThemeNames {
		if strings.EqualFold(name, themeName) {
			return theme, nil
		}
	}
	return ThemeDark, fmt.Errorf("unknown theme %q (want dark, light, or nord)", name)
}

// Dark theme layer colors
var darkColors = map[string]color.NRGBA{
	"outline": {R: 208, G: 210, B: 205, A: 255}, // light gray
	"wire":    {R: 200, G: 52, B: 52, A: 255},   // red
	"fill":    {R: 227, G: 183, B: 46, A: 255},  // gold
	"accent":  {R: 77, G: 127, B: 196, A: 255},  // blue
	"text":    {R: 242, G: 237, B: 161, A: 255}, // pale yellow
}

// Light theme layer colors
var lightColors = map[string]color.NRGBA{
	"outline": {R: 60, G: 60, B: 60, A: 255},
	"wire":    {R: 179, G: 31, B: 31, A: 255},
	"fill":    {R: 12, G: 98, B: 179, A: 255},
	"accent":  {R: 0, G: 132, B: 132, A: 255},
	"text":    {R: 40, G: 40, B: 40, A: 255},
}

// Nord theme layer colors (based on the Nord palette)
var nordColors = map[string]color.NRGBA{
	"outline": {R: 229, G: 233, B: 240, A: 255}, // Nord5
	"wire":    {R: 191, G: 97, B: 106, A: 255},  // Nord11 (red)
	"fill":    {R: 235, G: 203, B: 139, A: 255}, // Nord13 (yellow)
	"accent":  {R: 129, G: 161, B: 193, A: 255}, // Nord9 (blue)
	"text":    {R: 236, G: 239, B: 244, A: 255}, // Nord6 (light)
}

// Background returns the surface clear color for the theme.
func (t Theme) Background() color.NRGBA {
	switch t {
	case ThemeLight:
		return color.NRGBA{R: 250, G: 250, B: 248, A: 255}
	case ThemeNord:
		return color.NRGBA{R: 46, G: 52, B: 64, A: 255} // Nord0
	default:
		return color.NRGBA{R: 0, G: 16, B: 35, A: 255} // dark blue
	}
}

// GridColor returns the background grid line color for the theme.
func (t Theme) GridColor() color.NRGBA {
	switch t {
	case ThemeLight:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 28}
	default:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 24}
	}
}

// LayerColor returns the color for a named scene layer. Unknown layers (and
// shapes with no layer) fall back to gray.
func (t Theme) LayerColor(layer string) color.NRGBA {
	var colors map[string]color.NRGBA

	switch t {
	case ThemeLight:
		colors = lightColors
	case ThemeNord:
		colors = nordColors
	default:
		colors = darkColors
	}

	if c, ok := colors[layer]; ok {
		return c
	}
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}
