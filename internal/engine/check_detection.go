package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked by any
// enemy piece. A board without that king is never in check.
func (g *GameState) IsInCheck(colour chess.Colour) bool {
	kingSq, err := g.FindKingSquare(colour)
	if err != nil {
		return false
	}
	return isSquareAttacked(&g.board, kingSq, colour.Opposite())
}

// FindKingSquare locates the king of the given colour.
func (g *GameState) FindKingSquare(colour chess.Colour) (chess.Square, error) {
	king := chess.NewPiece(colour, chess.King)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if g.board.Get(row, col) == king {
				return chess.Sq(row, col), nil
			}
		}
	}
	return chess.Square{}, errors.Wrapf(errors.ErrKingNotFound, "%v", colour)
}

// isSquareAttacked returns true if any piece of colour byColour could
// capture on sq. This matches scanning every enemy piece's raw moves for
// sq, without generating them.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one row behind sq from
	// the attacker's point of view.
	pawnRow := sq.Row - chess.PawnDirection(byColour)
	for dc := -1; dc <= 1; dc += 2 {
		from := chess.Sq(pawnRow, sq.Col+dc)
		if from.InBounds() && board.At(from).Is(byColour, chess.Pawn) {
			return true
		}
	}

	if attackedByLeaper(board, sq, byColour, chess.Knight, knightJumps) {
		return true
	}
	if attackedByLeaper(board, sq, byColour, chess.King, kingSteps) {
		return true
	}

	// Sliding pieces along diagonals
	if attackedBySlider(board, sq, byColour, chess.Bishop, diagonalDirs) {
		return true
	}

	// Sliding pieces along straight lines
	return attackedBySlider(board, sq, byColour, chess.Rook, straightDirs)
}

// attackedByLeaper reports whether a piece of the given kind stands one
// offset away from sq.
func attackedByLeaper(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.PieceKind, offsets [][2]int) bool {
	for _, off := range offsets {
		from := sq.Offset(off[0], off[1])
		if from.InBounds() && board.At(from).Is(byColour, kind) {
			return true
		}
	}
	return false
}

// attackedBySlider reports whether the first piece met along any direction
// is a queen or a piece of the given kind.
func attackedBySlider(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.PieceKind, dirs [][2]int) bool {
	for _, dir := range dirs {
		from := sq.Offset(dir[0], dir[1])
		for from.InBounds() {
			piece := board.At(from)
			if !piece.IsEmpty() {
				if piece.Is(byColour, kind) || piece.Is(byColour, chess.Queen) {
					return true
				}
				break // Blocked
			}
			from = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
