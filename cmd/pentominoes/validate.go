package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a piece directory for consistency",
	Long: `Crawls a directory of YAML piece documents and reports every problem found:
malformed files, duplicate names, empty layouts, and pieces that repeat
another piece's shape up to rotation and reflection.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Piece set is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var dir string
	var err error

	if len(args) > 0 {
		dir = args[0]
	} else if flagDir, _ := cmd.Flags().GetString("pieces"); flagDir != "" {
		dir = flagDir
	} else {
		dir, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	return validator.ValidatePieces(dir)
}
