package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// newTestGame builds a validated game from a board diagram.
func newTestGame(t *testing.T, toMove chess.Colour, rights chess.CastlingRights, rows ...string) *GameState {
	t.Helper()
	g, err := NewFromSetup(Setup{
		Board:    testutil.MustBoard(t, rows...),
		ToMove:   toMove,
		Castling: rights,
	})
	if err != nil {
		t.Fatalf("NewFromSetup() error: %v", err)
	}
	return g
}

// rawGame places pieces on an otherwise empty board without validation,
// for exercising raw move generation in isolation.
func rawGame(pieces map[chess.Square]chess.Piece) *GameState {
	g := &GameState{toMove: chess.White}
	for sq, p := range pieces {
		g.board.Set(sq, p)
	}
	return g
}

// mustMove applies from->to and fails the test on error.
func mustMove(t *testing.T, g *GameState, from, to chess.Square) MoveResult {
	t.Helper()
	result, err := g.MovePiece(from, to)
	if err != nil {
		t.Fatalf("MovePiece(%v, %v) error: %v", from, to, err)
	}
	return result
}

// playMoves applies a sequence of {fromRow, fromCol, toRow, toCol} moves.
func playMoves(t *testing.T, g *GameState, moves [][4]int) {
	t.Helper()
	for _, m := range moves {
		mustMove(t, g, chess.Sq(m[0], m[1]), chess.Sq(m[2], m[3]))
	}
}

// countLegalMoves totals the legal moves of the side to move.
func countLegalMoves(g *GameState) int {
	total := 0
	for _, moves := range g.AllLegalMoves() {
		total += len(moves)
	}
	return total
}
