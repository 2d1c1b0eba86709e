package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func (g *GameState) IsCheckmate(colour chess.Colour) bool {
	return g.IsInCheck(colour) && !g.hasAnyLegalMove(colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func (g *GameState) IsStalemate(colour chess.Colour) bool {
	return !g.IsInCheck(colour) && !g.hasAnyLegalMove(colour)
}

// Status classifies the position from colour's point of view. Checkmate
// and stalemate are exclusive because they disagree on IsInCheck.
func (g *GameState) Status(colour chess.Colour) chess.GameStatus {
	inCheck := g.IsInCheck(colour)
	canMove := g.hasAnyLegalMove(colour)

	switch {
	case inCheck && !canMove:
		return chess.Checkmate
	case !canMove:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	}
	return chess.Ongoing
}
