package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes"
	"github.com/arbaregni/pentominoes/internal/logging"
	"github.com/arbaregni/pentominoes/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe [piece...]",
	Short: "Show every distinct orientation of the catalog pieces",
	Long: `For each piece, prints how many geometrically distinct orientations it
has and draws each one as a grid. With no arguments, describes the whole
catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDescribe(cmd, args); err != nil {
			fmt.Printf("Describe failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.FromVerbose(verbose)

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "pieces", cat.Len())

	var pieces []pentominoes.Piece
	if len(args) == 0 {
		pieces = cat.Pieces()
	} else {
		for _, name := range args {
			piece, err := cat.Get(name)
			if err != nil {
				return err
			}
			pieces = append(pieces, piece)
		}
	}

	reporter := pentominoes.NewReporter(os.Stdout)
	reporter.Renderer = tui.Renderer(shapeStyle(cmd))
	return reporter.Describe(pieces...)
}
