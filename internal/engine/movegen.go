package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offset tables as {row delta, col delta}. Generation walks them in order,
// which keeps move lists deterministic for a given position.
var (
	straightDirs = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightJumps = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// pseudoLegalMoves returns the raw destinations of the piece on from,
// ignoring whether the move would leave its own king in check.
func (g *GameState) pseudoLegalMoves(from chess.Square) []chess.Square {
	piece := g.board.At(from)

	switch piece.Kind {
	case chess.Pawn:
		return g.pawnMoves(from, piece.Colour)

	case chess.Knight:
		return leaperMoves(&g.board, from, piece.Colour, knightJumps)

	case chess.Bishop:
		return sliderMoves(&g.board, from, piece.Colour, diagonalDirs)

	case chess.Rook:
		return sliderMoves(&g.board, from, piece.Colour, straightDirs)

	case chess.Queen:
		return sliderMoves(&g.board, from, piece.Colour, queenDirs)

	case chess.King:
		moves := leaperMoves(&g.board, from, piece.Colour, kingSteps)
		return append(moves, g.castlingMoves(from, piece.Colour)...)
	}

	return nil
}

// sliderMoves walks each direction until blocked. An enemy-occupied
// blocking square is included, a friendly one is not.
func sliderMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.InBounds() {
			if board.IsEmpty(to) {
				moves = append(moves, to)
			} else {
				if board.IsEnemy(to, colour) {
					moves = append(moves, to)
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// leaperMoves returns each offset square that is on the board and not
// occupied by a friendly piece.
func leaperMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to.InBounds() && !board.IsFriendly(to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}
