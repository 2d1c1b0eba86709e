package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves returns the two-column king moves currently available as
// raw candidates. A side is offered when its right is held, the king and
// rook stand on their home squares, the squares between them are empty,
// the king is not in check and the square it crosses is not attacked. The
// landing square is left to the ordinary self-check filter.
func (g *GameState) castlingMoves(from chess.Square, colour chess.Colour) []chess.Square {
	rights := g.castling.For(colour)
	if !rights.Any() {
		return nil
	}

	row := chess.HomeRow(colour)
	if from != chess.Sq(row, chess.KingCol) {
		return nil
	}

	enemy := colour.Opposite()
	if isSquareAttacked(&g.board, from, enemy) {
		return nil
	}

	var moves []chess.Square
	if rights.Kingside && g.castlePathClear(colour, row, chess.KingsideCol) &&
		!isSquareAttacked(&g.board, from.Offset(0, 1), enemy) {
		moves = append(moves, from.Offset(0, 2))
	}
	if rights.Queenside && g.castlePathClear(colour, row, chess.QueensideCol) &&
		!isSquareAttacked(&g.board, from.Offset(0, -1), enemy) {
		moves = append(moves, from.Offset(0, -2))
	}
	return moves
}

// castlePathClear reports whether the rook is on rookCol and every square
// between it and the king is empty.
func (g *GameState) castlePathClear(colour chess.Colour, row, rookCol int) bool {
	if !g.board.Get(row, rookCol).Is(colour, chess.Rook) {
		return false
	}
	step := sign(rookCol - chess.KingCol)
	for col := chess.KingCol + step; col != rookCol; col += step {
		if !g.board.IsEmpty(chess.Sq(row, col)) {
			return false
		}
	}
	return true
}

// isCastling reports whether moving piece from->to is a castling move.
func isCastling(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// castlingRookSquares returns where the rook starts and ends for a king
// castling from->to.
func castlingRookSquares(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	if to.Col > from.Col {
		return chess.Sq(from.Row, chess.KingsideCol), chess.Sq(from.Row, to.Col-1)
	}
	return chess.Sq(from.Row, chess.QueensideCol), chess.Sq(from.Row, to.Col+1)
}

// updateCastlingRights revokes rights after piece moves from->to having
// captured captured. Rights are only ever cleared, never restored.
func (g *GameState) updateCastlingRights(piece chess.Piece, from, to chess.Square, captured chess.Piece) {
	if piece.Kind == chess.King {
		g.castling.RevokeAll(piece.Colour)
	}
	if piece.Kind == chess.Rook {
		updateCastlingRightsForRook(&g.castling, piece.Colour, from)
	}
	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(&g.castling, captured.Colour, to)
	}
}

// updateCastlingRightsForRook removes the right governed by a rook of the
// given colour that leaves, or is captured on, sq.
func updateCastlingRightsForRook(rights *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.HomeRow(colour) {
		return
	}
	switch sq.Col {
	case chess.KingsideCol:
		rights.RevokeKingside(colour)
	case chess.QueensideCol:
		rights.RevokeQueenside(colour)
	}
}
