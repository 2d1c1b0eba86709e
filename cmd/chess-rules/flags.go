// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")

	// Display options
	unicode  = flag.Bool("unicode", false, "Draw pieces with chess symbols")
	noCoords = flag.Bool("nocoords", false, "Don't label rows and columns")
	noMarks  = flag.Bool("nomarks", false, "Don't mark legal destinations on 'board r c'")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file instead of stderr")
	verbosity = flag.Int("v", -1, "Verbosity: 0=quiet, 1=errors and results, 2=commentary")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count positions to this depth from the start and exit")
	workers    = flag.Int("workers", 0, "Perft worker goroutines (default: one per CPU)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides configuration values with flags that were given.
func applyFlags(cfg *config.Config) {
	if *unicode {
		cfg.Display.Glyphs = config.UnicodeGlyphs
	}
	if *noCoords {
		cfg.Display.ShowCoordinates = false
	}
	if *noMarks {
		cfg.Display.HighlightMoves = false
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
