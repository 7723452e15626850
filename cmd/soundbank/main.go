// SPDX-License-Identifier: EPL-2.0

// Package main provides the soundbank CLI.
//
// Usage:
//
//	soundbank [flags] <command> [args]
//
// Commands:
//
//	paths    - Resolve the release listing into per-item locations
//	audio    - Download, segment, process and save every recording
//	info     - Print (and save) the release metadata table
//	labels   - Print (and save) the label tables
//	process  - Segment and process a single file or URL
//
// Configuration:
//
//	Settings are read from ~/.soundbank/config.yaml when present, then from
//	SOUNDBANK_* environment variables, then from flags.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/soundbank/cmd/soundbank/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
