package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break as the line
// length allows.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove renders a log entry in row/column notation: the piece letter,
// origin, '-' or 'x', destination, then "=Q" style promotion and " e.p."
// markers. Castling is written O-O or O-O-O.
func FormatMove(e engine.MoveLogEntry) string {
	if e.IsCastling() {
		if e.To.Col > e.From.Col {
			return "O-O"
		}
		return "O-O-O"
	}

	sep := "-"
	if e.IsCapture() {
		sep = "x"
	}
	s := string(e.Piece.Kind.Letter()) + e.From.String() + sep + e.To.String()
	if e.Promotion != chess.NoPiece {
		s += "=" + string(e.Promotion.Letter())
	}
	if e.IsEnPassant() {
		s += " e.p."
	}
	return s
}

// WriteMoveLog writes the moves as numbered pairs wrapped at maxLineLength.
func WriteMoveLog(w io.Writer, log []engine.MoveLogEntry, maxLineLength int) {
	if len(log) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)

	number := 1
	for i, e := range log {
		switch {
		case e.Piece.Colour == chess.White:
			ow.Write(strconv.Itoa(number) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(number) + "...")
		}
		ow.Write(FormatMove(e))
		if e.Piece.Colour == chess.Black {
			number++
		}
	}
	ow.NewLine()
}
