package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// pieceDoc is the on-disk document format the file source reads back.
type pieceDoc struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// The five free tetrominoes: distinct shapes under rotation and reflection.
var tetrominoes = []pieceDoc{
	{Name: "I", Rows: []string{"XXXX"}},
	{Name: "O", Rows: []string{"XX", "XX"}},
	{Name: "T", Rows: []string{"XXX", ".X."}},
	{Name: "S", Rows: []string{".XX", "XX."}},
	{Name: "L", Rows: []string{"X.", "X.", "XX"}},
}

func main() {
	targetDir := "examples/tetrominoes"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating tetromino piece set in: %s\n", targetDir)

	for _, doc := range tetrominoes {
		data, err := yaml.Marshal(doc)
		check(err)

		filename := strings.ToLower(doc.Name) + ".yaml"
		err = os.WriteFile(filepath.Join(targetDir, filename), data, 0644)
		check(err)
	}

	fmt.Println("Done. Verify contents in", targetDir)
	fmt.Println("Try: pentominoes describe --pieces", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
