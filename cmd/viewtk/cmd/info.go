package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viewtk/viewtk/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info <scene_file>",
	Short: "Show scene statistics",
	Long:  `Parses a scene file and prints its title, shape counts, and bounding box.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := scene.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("error parsing scene: %w", err)
		}
		printSceneInfo(args[0], doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printSceneInfo(filename string, doc *scene.Document) {
	fmt.Printf("Scene: %s\n", filename)
	if doc.Title != "" {
		fmt.Printf("Title: %s\n", doc.Title)
	}

	var rects, circles, lines, polylines, labels int
	for _, s := range doc.Shapes {
		switch {
		case s.Rect != nil:
			rects++
		case s.Circle != nil:
			circles++
		case s.Line != nil:
			lines++
		case s.Polyline != nil:
			polylines++
		case s.Label != nil:
			labels++
		}
	}

	fmt.Printf("Shapes: %d\n", len(doc.Shapes))
	fmt.Printf("  Rects:     %d\n", rects)
	fmt.Printf("  Circles:   %d\n", circles)
	fmt.Printf("  Lines:     %d\n", lines)
	fmt.Printf("  Polylines: %d\n", polylines)
	fmt.Printf("  Labels:    %d\n", labels)

	bbox := doc.BoundingBox()
	if !bbox.IsEmpty() {
		fmt.Printf("Bounds: (%.2f, %.2f) to (%.2f, %.2f)\n",
			bbox.Min.X, bbox.Min.Y, bbox.Max.X, bbox.Max.Y)
		fmt.Printf("Size: %.2f x %.2f\n", bbox.Width(), bbox.Height())
	}
}
