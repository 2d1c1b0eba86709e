package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var unicodeGlyphs = map[chess.Piece]rune{
	chess.W(chess.King): '♔', chess.W(chess.Queen): '♕', chess.W(chess.Rook): '♖',
	chess.W(chess.Bishop): '♗', chess.W(chess.Knight): '♘', chess.W(chess.Pawn): '♙',
	chess.B(chess.King): '♚', chess.B(chess.Queen): '♛', chess.B(chess.Rook): '♜',
	chess.B(chess.Bishop): '♝', chess.B(chess.Knight): '♞', chess.B(chess.Pawn): '♟',
}

// Glyph returns the character drawn for p in the given glyph set.
func Glyph(p chess.Piece, glyphs config.GlyphSet) rune {
	if glyphs == config.UnicodeGlyphs {
		if r, ok := unicodeGlyphs[p]; ok {
			return r
		}
	}
	return rune(p.Letter())
}

// TextWriter draws boards as eight lines of text, row 0 at the top. Each
// square is a glyph followed by a marker: '*' on a legal destination of
// the selected piece, '+' on a king in check.
type TextWriter struct {
	w   io.Writer
	cfg *config.DisplayConfig
}

// NewTextWriter creates a new text board writer.
func NewTextWriter(w io.Writer, cfg *config.DisplayConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteBoard writes the board followed by its status line.
func (tw *TextWriter) WriteBoard(g *engine.GameState, selected *chess.Square) error {
	m := boardMarkers(g, selected, tw.cfg.HighlightMoves)
	board := g.Board()

	bw := bufio.NewWriter(tw.w)
	if tw.cfg.ShowCoordinates {
		bw.WriteString("  0 1 2 3 4 5 6 7\n")
	}

	var line strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		line.Reset()
		if tw.cfg.ShowCoordinates {
			fmt.Fprintf(&line, "%d ", row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			line.WriteRune(Glyph(board.At(sq), tw.cfg.Glyphs))
			switch {
			case m.targets[sq]:
				line.WriteByte('*')
			case m.check != nil && *m.check == sq:
				line.WriteByte('+')
			default:
				line.WriteByte(' ')
			}
		}
		bw.WriteString(strings.TrimRight(line.String(), " "))
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, StatusLine(g))
	return bw.Flush()
}
