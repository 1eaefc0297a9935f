package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/viewtk/viewtk/internal/ui"
	"github.com/viewtk/viewtk/pkg/render"
	"github.com/viewtk/viewtk/pkg/scene"
)

var themeName string

var viewCmd = &cobra.Command{
	Use:   "view <scene_file>",
	Short: "View a scene file in the interactive viewer",
	Long: `Opens a scene file in an interactive viewer with pan, zoom, and rotation
controls.

Controls:
  Drag              - Pan
  Scroll Wheel      - Zoom toward the pointer
  Ctrl + Drag       - Rotate (vertical motion)
  C                 - Center scene
  F                 - Fit scene to window
  R                 - Reset view
  T                 - Cycle color theme`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&themeName, "theme", "dark", "color theme (dark, light, nord)")
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]

	theme, err := render.ParseTheme(themeName)
	if err != nil {
		return err
	}

	doc, err := scene.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing scene: %w", err)
	}

	if verbose {
		printSceneInfo(filename, doc)
	}

	// Run the Gio application
	go func() {
		if err := ui.NewApp(filename, doc, theme).Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
