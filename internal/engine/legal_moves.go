package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the destinations the piece on from may legally move
// to. It returns nil when the square is empty, holds a piece of the side
// not to move, or while a promotion is waiting to be resolved.
func (g *GameState) LegalMoves(from chess.Square) []chess.Square {
	if g.promotion || !from.InBounds() {
		return nil
	}
	piece := g.board.At(from)
	if piece.IsEmpty() || piece.Colour != g.toMove {
		return nil
	}
	return g.legalMovesFrom(from)
}

// GetLegalMoves is LegalMoves addressed by row and column.
func (g *GameState) GetLegalMoves(row, col int) []chess.Square {
	return g.LegalMoves(chess.Sq(row, col))
}

// AllLegalMoves returns every legal move of the side to move, grouped by
// origin square in board order.
func (g *GameState) AllLegalMoves() map[chess.Square][]chess.Square {
	all := make(map[chess.Square][]chess.Square)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if moves := g.LegalMoves(from); len(moves) > 0 {
				all[from] = moves
			}
		}
	}
	return all
}

// legalMovesFrom filters the raw moves of the piece on from, whatever its
// colour, down to those that do not leave its own king in check.
func (g *GameState) legalMovesFrom(from chess.Square) []chess.Square {
	var legal []chess.Square
	for _, to := range g.pseudoLegalMoves(from) {
		if !g.leavesKingInCheck(from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// hasAnyLegalMove returns true if the given colour has at least one legal move.
func (g *GameState) hasAnyLegalMove(colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if !g.board.IsFriendly(from, colour) {
				continue
			}
			for _, to := range g.pseudoLegalMoves(from) {
				if !g.leavesKingInCheck(from, to) {
					return true
				}
			}
		}
	}
	return false
}

// leavesKingInCheck plays from->to on the live board, asks whether the
// mover's king is attacked and puts the board back before returning.
func (g *GameState) leavesKingInCheck(from, to chess.Square) bool {
	colour := g.board.At(from).Colour
	restore := g.simulate(from, to)
	defer restore()

	return g.IsInCheck(colour)
}

// simulate applies the board part of from->to, including the removal of an
// en passant victim, and returns a function that undoes exactly that change.
// Castling rook relocation is not simulated: any line the rook could block
// also crosses the king's home square, which castlingMoves requires to be
// unattacked.
func (g *GameState) simulate(from, to chess.Square) (restore func()) {
	moving := g.board.At(from)
	captured := g.board.At(to)

	var victimSq chess.Square
	var victim chess.Piece
	epCapture := g.isEnPassantCapture(moving, from, to)
	if epCapture {
		victimSq = enPassantVictim(from, to)
		victim = g.board.Remove(victimSq)
	}

	g.board.Set(to, moving)
	g.board.Set(from, chess.Empty)

	return func() {
		g.board.Set(from, moving)
		g.board.Set(to, captured)
		if epCapture {
			g.board.Set(victimSq, victim)
		}
	}
}
