// Package scene parses the viewtk scene description format: a small
// s-expression file listing 2D shapes on named layers. A scene is the
// content a viewer displays under the view transform; its bounding box
// becomes the transform controller's focus rectangle.
//
// Example:
//
//	(scene
//	  (title "demo")
//	  (rect (at 0 0) (size 100 60) (layer outline))
//	  (circle (at 50 30) (radius 12) (layer fill) (filled))
//	  (line (from 0 0) (to 100 60) (width 2) (layer wire))
//	  (polyline (xy 0 60) (xy 50 0) (xy 100 60) (layer wire))
//	  (label (at 4 8) (text "origin") (layer text)))
package scene

// Position is a point in scene (world) coordinates.
type Position struct {
	X float64 `@Number`
	Y float64 `@Number`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `@Number`
	Height float64 `@Number`
}

// Document is a parsed scene file.
type Document struct {
	Title  string   `LParen "scene" ( LParen "title" @String RParen )?`
	Shapes []*Shape `@@* RParen`
}

// Shape is one drawable element. Exactly one of the fields is set.
type Shape struct {
	Rect     *Rect     `  @@`
	Circle   *Circle   `| @@`
	Line     *Line     `| @@`
	Polyline *Polyline `| @@`
	Label    *Label    `| @@`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	At     Position `LParen "rect" LParen "at" @@ RParen`
	Size   Size     `LParen "size" @@ RParen`
	Layer  string   `( LParen "layer" @( String | Ident ) RParen )?`
	Width  float64  `( LParen "width" @Number RParen )?`
	Filled bool     `( LParen @"filled" RParen )? RParen`
}

// Circle is a circle defined by center and radius.
type Circle struct {
	At     Position `LParen "circle" LParen "at" @@ RParen`
	Radius float64  `LParen "radius" @Number RParen`
	Layer  string   `( LParen "layer" @( String | Ident ) RParen )?`
	Width  float64  `( LParen "width" @Number RParen )?`
	Filled bool     `( LParen @"filled" RParen )? RParen`
}

// Line is a straight stroke between two points.
type Line struct {
	From  Position `LParen "line" LParen "from" @@ RParen`
	To    Position `LParen "to" @@ RParen`
	Width float64  `( LParen "width" @Number RParen )?`
	Layer string   `( LParen "layer" @( String | Ident ) RParen )? RParen`
}

// Polyline is an open stroke through a sequence of points.
type Polyline struct {
	Points []Position `LParen "polyline" ( LParen "xy" @@ RParen )+`
	Width  float64    `( LParen "width" @Number RParen )?`
	Layer  string     `( LParen "layer" @( String | Ident ) RParen )? RParen`
}

// Label is a text annotation anchored at a point.
type Label struct {
	At    Position `LParen "label" LParen "at" @@ RParen`
	Text  string   `LParen "text" @String RParen`
	Layer string   `( LParen "layer" @( String | Ident ) RParen )? RParen`
}
