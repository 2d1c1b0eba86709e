package output

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const (
	lightSquare  = "fill:#f0d9b5"
	darkSquare   = "fill:#b58863"
	checkSquare  = "fill:#e05252"
	targetMarker = "fill:#3a7d44;fill-opacity:0.6"
)

// SVGWriter draws boards as SVG documents, one per call. Pieces always use
// the Unicode chess symbols.
type SVGWriter struct {
	w   io.Writer
	cfg *config.DisplayConfig
}

// NewSVGWriter creates a new SVG board writer.
func NewSVGWriter(w io.Writer, cfg *config.DisplayConfig) *SVGWriter {
	return &SVGWriter{w: w, cfg: cfg}
}

// WriteBoard writes a complete SVG document for the position.
func (sw *SVGWriter) WriteBoard(g *engine.GameState, selected *chess.Square) error {
	m := boardMarkers(g, selected, sw.cfg.HighlightMoves)
	board := g.Board()

	size := sw.cfg.SquareSize
	margin := 0
	if sw.cfg.ShowCoordinates {
		margin = size / 2
	}
	edge := chess.BoardSize*size + 2*margin

	ew := &errWriter{w: sw.w}
	canvas := svg.New(ew)
	canvas.Start(edge, edge)
	canvas.Title(StatusLine(g))

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			x, y := margin+col*size, margin+row*size

			style := lightSquare
			if (row+col)%2 == 1 {
				style = darkSquare
			}
			if m.check != nil && *m.check == sq {
				style = checkSquare
			}
			canvas.Rect(x, y, size, size, style)

			if p := board.At(sq); !p.IsEmpty() {
				canvas.Text(x+size/2, y+size*4/5, string(Glyph(p, config.UnicodeGlyphs)),
					fmt.Sprintf("font-size:%dpx;text-anchor:middle", size*4/5))
			}
			if m.targets[sq] {
				canvas.Circle(x+size/2, y+size/2, size/6, targetMarker)
			}
		}
	}

	if sw.cfg.ShowCoordinates {
		label := fmt.Sprintf("font-size:%dpx;text-anchor:middle;fill:#555", size/3)
		for i := 0; i < chess.BoardSize; i++ {
			mid := margin + i*size + size/2
			canvas.Text(mid, margin*2/3, strconv.Itoa(i), label)
			canvas.Text(margin/2, mid+size/8, strconv.Itoa(i), label)
		}
	}

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error, since the SVG canvas does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
