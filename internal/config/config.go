// Package config provides configuration for the chess-rules tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics on LogFile:
	// 0=nothing, 1=errors and results, 2=running commentary.
	Verbosity int `yaml:"verbosity"`

	// LogFilePath, when set, names a file that replaces stderr as LogFile.
	LogFilePath string `yaml:"log_file"`

	Display DisplayConfig `yaml:"display"`
	Perft   PerftConfig   `yaml:"perft"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    *NewDisplayConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer diagnostics are printed to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Verbosity < 0 {
		result = multierror.Append(result, invalidf("verbosity %d is negative", c.Verbosity))
	}
	if err := c.Display.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Perft.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
