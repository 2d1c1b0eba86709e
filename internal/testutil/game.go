// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// EmptyRows is an 8x8 diagram of an empty board.
var EmptyRows = []string{
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
}

// InitialRows is the diagram of the standard starting position.
var InitialRows = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// MustBoard builds a board from an eight-line diagram, row 0 first,
// uppercase for White, lowercase for Black and '.' for empty squares.
// It calls t.Fatal if the diagram is malformed.
func MustBoard(t *testing.T, rows ...string) chess.Board {
	t.Helper()
	board, ok := chess.ParseBoard(rows)
	if !ok {
		t.Fatalf("malformed board diagram:\n%v", rows)
	}
	return *board
}

// Place returns a copy of board with each piece placed on its square.
func Place(board chess.Board, pieces map[chess.Square]chess.Piece) chess.Board {
	for sq, p := range pieces {
		board.Set(sq, p)
	}
	return board
}

// NoCastling is a castling-rights value with every right revoked.
func NoCastling() chess.CastlingRights {
	return chess.CastlingRights{}
}

// SquareSet converts a slice of squares to a set for membership checks.
func SquareSet(squares []chess.Square) map[chess.Square]bool {
	set := make(map[chess.Square]bool, len(squares))
	for _, sq := range squares {
		set[sq] = true
	}
	return set
}
