package cmd

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Low-level inspection of scene files",
}

var debugSexpCmd = &cobra.Command{
	Use:   "sexp <scene_file>",
	Short: "Dump the raw s-expression tree of a scene file",
	Long: `Parses a scene file with a generic s-expression reader, bypassing the
scene grammar. Useful when a file fails to load and you want to see what
the parser is actually looking at.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebugSexp,
}

func init() {
	debugCmd.AddCommand(debugSexpCmd)
	rootCmd.AddCommand(debugCmd)
}

func runDebugSexp(cmd *cobra.Command, args []string) error {
	filename := args[0]
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	fmt.Printf("File size: %d bytes\n", info.Size())

	sexps, err := sexp.Parse(file)
	if err != nil {
		return fmt.Errorf("s-expression parse failed: %w", err)
	}

	fmt.Printf("Parsed %d top-level s-expressions\n", len(sexps))
	for i, s := range sexps {
		if s == nil {
			continue
		}
		if s.IsLeaf() {
			fmt.Printf("#%d: leaf %v\n", i, s)
			continue
		}
		fmt.Printf("#%d: %d leaves\n", i, s.LeafCount())
		if verbose {
			fmt.Println(s)
		}
	}
	return nil
}
