// Package main provides the panel CLI, which lays out scene files and
// checks them against their expected bounds.
//
// Usage:
//
//	panel layout [flags] scene...   Compute and print bounds
//	panel check [flags] scene...    Compare bounds against each scene's expect block
//	panel watch [flags] scene       Re-run layout whenever the scene changes
//	panel version                   Print version information
//
// Examples:
//
//	panel layout testdata/dock.yaml
//	panel check --format json testdata/*.yaml
//	panel watch --no-color form.toml
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-panel/internal/debug"
)

func main() {
	err := newRootCmd().Execute()
	_ = debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
