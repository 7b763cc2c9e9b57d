package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pentominoes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pentominoes version %s\n", strings.TrimSpace(pentominoes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
