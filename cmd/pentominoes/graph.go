package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <piece>",
	Short: "Export a piece's orientation graph",
	Long:  `Inspects a catalog piece and outputs a Mermaid diagram (graph TD) mapping it to each of its distinct orientations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("Piece name required, e.g. 'pentominoes graph F'")
			os.Exit(1)
		}

		cat, err := loadCatalog(cmd)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		piece, err := cat.Get(args[0])
		if err != nil {
			fmt.Printf("Error resolving piece: %v\n", err)
			os.Exit(1)
		}

		// Generate and print Mermaid graph
		output := graph.GenerateMermaid(piece.Name(), piece.Shape())
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
