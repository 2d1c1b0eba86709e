// chess-rules plays a game of chess from typed commands, enforcing the
// rules of movement, check, castling, en passant and promotion.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	session := NewSession(cfg, engine.NewGameState())

	if *perftDepth > 0 {
		if err := session.perft(*perftDepth); err != nil {
			fmt.Fprintf(cfg.LogFile, "perft: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := session.Run(os.Stdin); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading commands: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the -config file, or returns the defaults.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// setupLogFile opens the log file named by -l, unless the configuration
// file already opened the same one.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" || *logFile == cfg.LogFilePath {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	cfg.LogFilePath = *logFile
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reads commands from standard input, one per line.\n")
	fmt.Fprintf(os.Stderr, "Squares are given as row and column, 0-7; row 0 is Black's back row.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
