// Package output renders game positions as text, SVG and JSON.
package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// BoardWriter is the interface for drawing a position. selected, when not
// nil, names the square whose legal moves should be marked.
type BoardWriter interface {
	WriteBoard(g *engine.GameState, selected *chess.Square) error
}

// markers collects the squares a renderer decorates.
type markers struct {
	targets map[chess.Square]bool
	check   *chess.Square
}

// boardMarkers computes move targets for selected and the checked king of
// the side to move.
func boardMarkers(g *engine.GameState, selected *chess.Square, highlight bool) markers {
	var m markers
	if highlight && selected != nil {
		m.targets = make(map[chess.Square]bool)
		for _, sq := range g.LegalMoves(*selected) {
			m.targets[sq] = true
		}
	}
	if g.IsInCheck(g.Turn()) {
		if king, err := g.FindKingSquare(g.Turn()); err == nil {
			m.check = &king
		}
	}
	return m
}

// StatusLine describes whose turn it is and how the game stands.
func StatusLine(g *engine.GameState) string {
	side := g.Turn()
	if sq, ok := g.PromotionPending(); ok {
		return side.Opposite().String() + " must promote the pawn on " + sq.String()
	}
	switch g.Status(side) {
	case chess.Checkmate:
		return "Checkmate, " + side.Opposite().String() + " wins"
	case chess.Stalemate:
		return "Stalemate"
	case chess.Check:
		return side.String() + " to move, in check"
	}
	return side.String() + " to move"
}
