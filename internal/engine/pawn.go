package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves returns the raw pawn destinations: one step forward onto an
// empty square, two steps from the starting row through empty squares,
// and diagonal captures onto enemy pieces or the en passant target.
func (g *GameState) pawnMoves(from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.PawnDirection(colour)

	// Forward moves
	one := from.Offset(dir, 0)
	if one.InBounds() && g.board.IsEmpty(one) {
		moves = append(moves, one)
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnRow(colour) && g.board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.InBounds() {
			continue
		}
		if g.board.IsEnemy(to, colour) || g.canCaptureEnPassant(from, to, colour) {
			moves = append(moves, to)
		}
	}

	return moves
}

// canCaptureEnPassant reports whether a pawn of the given colour on from
// may capture en passant onto to. The target only belongs to the side that
// did not make the double step, which is the side whose pawns stand beside
// the advanced pawn.
func (g *GameState) canCaptureEnPassant(from, to chess.Square, colour chess.Colour) bool {
	if !g.isEnPassantTarget(to) {
		return false
	}
	victim := g.board.At(enPassantVictim(from, to))
	return victim.Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from->to: the origin's row, the destination's column.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isEnPassantCapture reports whether moving piece from->to is an en
// passant capture in the current position.
func (g *GameState) isEnPassantCapture(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && from.Col != to.Col && g.isEnPassantTarget(to)
}

// isDoublePawnPush reports whether moving piece from->to advances a pawn
// two rows.
func isDoublePawnPush(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && abs(to.Row-from.Row) == 2
}

// reachesPromotionRow reports whether piece standing on sq must be promoted.
func reachesPromotionRow(piece chess.Piece, sq chess.Square) bool {
	return piece.Kind == chess.Pawn && sq.Row == chess.PromotionRow(piece.Colour)
}
