// Command shadersig extracts function signatures from GLSL shader chunks.
//
// Usage:
//
//	shadersig <command> [options]
//
// Examples:
//
//	shadersig parse blend.glsl           # First function definition
//	shadersig prototypes blend.glsl      # Forward declarations
//	shadersig index shaders/             # Build the signature catalog
//	shadersig deps --strict              # Check every prototype has a provider
package main

import (
	"os"

	"github.com/gogpu/shadersig/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
