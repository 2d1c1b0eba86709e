package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGlyphs sets the glyph set for text boards.
func (b *ConfigBuilder) WithGlyphs(glyphs GlyphSet) *ConfigBuilder {
	b.cfg.Display.Glyphs = glyphs
	return b
}

// WithCoordinates controls row and column labels on text boards.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCoordinates = show
	return b
}

// WithHighlight controls legal-move highlighting.
func (b *ConfigBuilder) WithHighlight(enabled bool) *ConfigBuilder {
	b.cfg.Display.HighlightMoves = enabled
	return b
}

// WithSquareSize sets the SVG square edge in pixels.
func (b *ConfigBuilder) WithSquareSize(px int) *ConfigBuilder {
	b.cfg.Display.SquareSize = px
	return b
}

// WithPerftWorkers sets the number of perft goroutines.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
