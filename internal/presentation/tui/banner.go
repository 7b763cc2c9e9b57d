package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs a colored strip of pentominoes (X, T, Z, W and V) as
// the interactive banner, followed by the version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String("  ██    ██████  ████    ██      ██    ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("██████    ██      ██    ████    ██    ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("  ██      ██      ████    ████  ██████").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("p e n t o m i n o e s").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(strings.TrimSpace(version)).Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println()
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
