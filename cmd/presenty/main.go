// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     main
// Description: presenty command line entry point
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/presenty/cmd/presenty/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
