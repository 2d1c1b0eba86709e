// Package chess provides core chess types: colours, pieces, squares and
// castling rights.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a single pawn step: White pawns
// move towards row 0, Black pawns towards row 7.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func PawnRow(colour Colour) int {
	return HomeRow(colour) + PawnDirection(colour)
}

// PromotionRow returns the farthest row for the colour's pawns.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// PieceKind identifies the type of a piece. The zero value is NoPiece.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the lower-case name of a piece kind.
func (k PieceKind) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may be promoted to this kind.
func (k PieceKind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// ParsePieceKind converts a piece name such as "queen" (any case) into a kind.
func ParsePieceKind(name string) (PieceKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pawn", "p":
		return Pawn, true
	case "knight", "n":
		return Knight, true
	case "bishop", "b":
		return Bishop, true
	case "rook", "r":
		return Rook, true
	case "queen", "q":
		return Queen, true
	case "king", "k":
		return King, true
	}
	return NoPiece, false
}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// Empty is the occupant of a vacant square.
var Empty = Piece{}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether p is the empty square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the piece letter: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable form such as "white queen".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return strings.ToLower(p.Colour.String()) + " " + p.Kind.String()
}

// PieceFromLetter is the inverse of Piece.Letter.
func PieceFromLetter(l byte) (Piece, bool) {
	if l == '.' {
		return Empty, true
	}
	colour := White
	if l >= 'a' && l <= 'z' {
		colour = Black
		l -= 'a' - 'A'
	}
	for k := Pawn; k < NumPieceKinds; k++ {
		if k.Letter() == l {
			return NewPiece(colour, k), true
		}
	}
	return Empty, false
}

// Constants for board dimensions.
const (
	BoardSize = 8

	QueensideCol = 0
	KingCol      = 4
	KingsideCol  = BoardSize - 1
)

// Square addresses a board cell. Row 0 is Black's back rank.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return InBounds(s.Row, s.Col)
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// SideRights holds the castling rights of one colour.
type SideRights struct {
	Kingside  bool
	Queenside bool
}

// Any reports whether either right is still held.
func (r SideRights) Any() bool {
	return r.Kingside || r.Queenside
}

// CastlingRights holds both colours' castling rights. It is a value type:
// copying it takes a full snapshot.
type CastlingRights struct {
	White SideRights
	Black SideRights
}

// AllCastlingRights returns the rights of the starting position.
func AllCastlingRights() CastlingRights {
	all := SideRights{Kingside: true, Queenside: true}
	return CastlingRights{White: all, Black: all}
}

// For returns the rights of the given colour.
func (c CastlingRights) For(colour Colour) SideRights {
	if colour == White {
		return c.White
	}
	return c.Black
}

// side returns a pointer to the rights of the given colour.
func (c *CastlingRights) side(colour Colour) *SideRights {
	if colour == White {
		return &c.White
	}
	return &c.Black
}

// RevokeAll clears both rights of the given colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	*c.side(colour) = SideRights{}
}

// RevokeKingside clears the kingside right of the given colour.
func (c *CastlingRights) RevokeKingside(colour Colour) {
	c.side(colour).Kingside = false
}

// RevokeQueenside clears the queenside right of the given colour.
func (c *CastlingRights) RevokeQueenside(colour Colour) {
	c.side(colour).Queenside = false
}

// GameStatus summarises a side's situation.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}
