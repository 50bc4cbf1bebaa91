// Swatch - colour list arithmetic, slicing and naming
//
// Swatch parses, combines, slices and prints lists of colours using
// scripting-style indexing and canonical colour names.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
