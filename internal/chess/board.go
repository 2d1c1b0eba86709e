package chess

import "strings"

// Board is an 8x8 grid of pieces indexed [row][col]. The zero value is an
// empty board. Callers validate coordinates with InBounds before indexing.
type Board [BoardSize][BoardSize]Piece

// backRank lists the starting back rank from column 0 to column 7.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b[HomeRow(Black)][col] = B(backRank[col])
		b[PawnRow(Black)][col] = B(Pawn)
		b[PawnRow(White)][col] = W(Pawn)
		b[HomeRow(White)][col] = W(backRank[col])
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	*b = Board{}
}

// At returns the piece on the square.
func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Get returns the piece at (row, col).
func (b *Board) Get(row, col int) Piece {
	return b[row][col]
}

// Set places a piece on the square, replacing any occupant.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Remove empties the square and returns what was there.
func (b *Board) Remove(sq Square) Piece {
	p := b[sq.Row][sq.Col]
	b[sq.Row][sq.Col] = Empty
	return p
}

// IsEmpty reports whether the square is vacant.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsEmpty()
}

// IsEnemy reports whether the square holds a piece not of the given colour.
func (b *Board) IsEnemy(sq Square, colour Colour) bool {
	p := b.At(sq)
	return !p.IsEmpty() && p.Colour != colour
}

// IsFriendly reports whether the square holds a piece of the given colour.
func (b *Board) IsFriendly(sq Square, colour Colour) bool {
	p := b.At(sq)
	return !p.IsEmpty() && p.Colour == colour
}

// Find returns every square holding the given piece, scanning row by row.
func (b *Board) Find(p Piece) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == p {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// Count returns how many squares hold the given piece.
func (b *Board) Count(p Piece) int {
	return len(b.Find(p))
}

// String renders the board as eight lines of piece letters, row 0 first.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n") + "\n"
}

// Rows returns the board as eight strings of piece letters, row 0 first,
// the inverse of ParseBoard.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	line := make([]byte, BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			line[col] = b[row][col].Letter()
		}
		rows[row] = string(line)
	}
	return rows
}

// ParseBoard builds a board from eight strings of piece letters, row 0
// first, using '.' for empty squares.
func ParseBoard(rows []string) (*Board, bool) {
	if len(rows) != BoardSize {
		return nil, false
	}
	b := NewBoard()
	for row, line := range rows {
		if len(line) != BoardSize {
			return nil, false
		}
		for col := 0; col < BoardSize; col++ {
			p, ok := PieceFromLetter(line[col])
			if !ok {
				return nil, false
			}
			b[row][col] = p
		}
	}
	return b, true
}
