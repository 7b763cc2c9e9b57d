package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes/internal/presentation/tui"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a markdown reference sheet of the catalog",
	Long: `Renders the whole catalog as a styled reference sheet: one section per
piece with its cell count, orientation count and base drawing.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSheet(cmd); err != nil {
			fmt.Printf("Sheet failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(cmd *cobra.Command) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	entries := make([]tui.SheetEntry, 0, cat.Len())
	for _, piece := range cat.Pieces() {
		entries = append(entries, tui.SheetEntry{
			Name:  piece.Name(),
			Shape: piece.Shape(),
		})
	}

	out, err := tui.Sheet(entries)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
