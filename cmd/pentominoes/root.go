package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes"
	"github.com/arbaregni/pentominoes/internal/presentation/tui"
	"github.com/arbaregni/pentominoes/pkg/adapters/file"
)

var rootCmd = &cobra.Command{
	Use:   "pentominoes",
	Short: "Pentominoes enumerates the distinct orientations of grid shapes",
	Long: `Pentominoes explores how polyomino pieces behave under rotation and
reflection: for each piece it lists every orientation that is genuinely
different on the board, collapsing the ones that coincide up to translation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("pieces", "", "Directory of YAML piece definitions (default: embedded catalog)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colored output")
}

// loadCatalog builds the piece catalog, honoring the --pieces flag.
func loadCatalog(cmd *cobra.Command) (*pentominoes.Catalog, error) {
	dir, _ := cmd.Flags().GetString("pieces")
	if dir == "" {
		return pentominoes.Load()
	}

	src, err := file.New(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load pieces from %s: %w", dir, err)
	}
	return pentominoes.Load(pentominoes.WithSource(src))
}

// shapeStyle maps the --plain flag to a rendering style.
func shapeStyle(cmd *cobra.Command) tui.Style {
	plain, _ := cmd.Flags().GetBool("plain")
	if plain {
		return tui.StylePlain
	}
	return tui.StyleColor
}
