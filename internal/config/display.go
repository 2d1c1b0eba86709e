package config

import "github.com/hashicorp/go-multierror"

// GlyphSet selects how pieces are drawn in text output.
type GlyphSet string

const (
	ASCIIGlyphs   GlyphSet = "ascii"   // PNBRQK / pnbrqk
	UnicodeGlyphs GlyphSet = "unicode" // chess symbols U+2654..U+265F
)

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Glyphs selects letters or chess symbols for text boards
	Glyphs GlyphSet `yaml:"glyphs"`

	// ShowCoordinates labels rows and columns around text boards
	ShowCoordinates bool `yaml:"coordinates"`

	// HighlightMoves marks legal destinations when a piece is selected
	HighlightMoves bool `yaml:"highlight_moves"`

	// SquareSize is the edge of one square in SVG diagrams, in pixels
	SquareSize int `yaml:"square_size"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:          ASCIIGlyphs,
		ShowCoordinates: true,
		HighlightMoves:  true,
		SquareSize:      45,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	var result *multierror.Error
	switch d.Glyphs {
	case ASCIIGlyphs, UnicodeGlyphs:
	default:
		result = multierror.Append(result, invalidf("unknown glyph set %q", d.Glyphs))
	}
	if d.SquareSize < 8 {
		result = multierror.Append(result, invalidf("square size %d is below 8 pixels", d.SquareSize))
	}
	return result.ErrorOrNil()
}
