package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "viewtk",
	Short: "viewtk - pannable, zoomable, rotatable 2D scene viewer",
	Long: `viewtk displays 2D scene files in an interactive viewport with pan,
zoom, and rotation controls.

Examples:
  viewtk view demo.scene          # Open the interactive viewer
  viewtk info demo.scene          # Show scene statistics
  viewtk debug sexp demo.scene    # Dump the raw s-expression tree`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
