package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbaregni/pentominoes"
	"github.com/arbaregni/pentominoes/internal/presentation/tui"
	"github.com/arbaregni/pentominoes/pkg/grid"
)

var orientationsCmd = &cobra.Command{
	Use:   "orientations [row...]",
	Short: "Enumerate the distinct orientations of an ad-hoc shape",
	Long: `Reads a shape as grid rows ('X' marks a cell, '.' marks empty space)
and prints every geometrically distinct orientation. Rows can be passed as
arguments or piped on stdin, one row per line.

Example:

  pentominoes orientations "XX." ".XX"`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runOrientations(cmd, args); err != nil {
			fmt.Printf("Orientations failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(orientationsCmd)
}

func runOrientations(cmd *cobra.Command, args []string) error {
	rows := args
	if len(rows) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			rows = append(rows, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read shape from stdin: %w", err)
		}
	}

	shape, err := grid.Parse(rows...)
	if err != nil {
		return err
	}

	reporter := pentominoes.NewReporter(os.Stdout)
	reporter.Renderer = tui.Renderer(shapeStyle(cmd))
	return reporter.DescribeShape("shape", shape)
}
