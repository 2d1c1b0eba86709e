// Package engine provides chess move generation, legality checking and
// move application over a single game's state.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// GameState owns a board and everything derived from the moves played on
// it. A GameState must only be used by one goroutine at a time; use Clone
// to hand an independent copy to another goroutine.
type GameState struct {
	board    chess.Board
	toMove   chess.Colour
	castling chess.CastlingRights

	// Is en passant capture possible? If so then epSquare is the square
	// the last pawn skipped over.
	enPassant bool
	epSquare  chess.Square

	// Is a pawn waiting to be promoted? If so then promoSquare holds it.
	promotion   bool
	promoSquare chess.Square

	log []MoveLogEntry
}

// Setup describes a custom starting position.
type Setup struct {
	Board     chess.Board
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant *chess.Square
}

// MoveResult reports whether applying a move left a promotion to resolve.
type MoveResult struct {
	PromotionRequired bool
	PromotionSquare   chess.Square
}

// NewGameState creates a game in the standard starting position.
func NewGameState() *GameState {
	g := &GameState{}
	g.Reset()
	return g
}

// NewFromSetup creates a game from a custom position. The position is
// checked with Validate and rejected if any invariant is broken.
func NewFromSetup(s Setup) (*GameState, error) {
	g := &GameState{
		board:    s.Board,
		toMove:   s.ToMove,
		castling: s.Castling,
	}
	if s.EnPassant != nil {
		g.enPassant = true
		g.epSquare = *s.EnPassant
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset re-initialises the game to the standard starting position with
// White to move, full castling rights and an empty history.
func (g *GameState) Reset() {
	g.board.SetupInitialPosition()
	g.toMove = chess.White
	g.castling = chess.AllCastlingRights()
	g.enPassant = false
	g.epSquare = chess.Square{}
	g.promotion = false
	g.promoSquare = chess.Square{}
	g.log = nil
}

// Clone returns a deep copy of the game.
func (g *GameState) Clone() *GameState {
	c := *g
	c.log = append([]MoveLogEntry(nil), g.log...)
	return &c
}

// PieceAt returns the occupant of the square. The square must be in bounds.
func (g *GameState) PieceAt(sq chess.Square) chess.Piece {
	return g.board.At(sq)
}

// GetPiece returns the occupant of (row, col). The square must be in bounds.
func (g *GameState) GetPiece(row, col int) chess.Piece {
	return g.board.Get(row, col)
}

// Board returns a copy of the board.
func (g *GameState) Board() chess.Board {
	return g.board
}

// Turn returns the colour to move.
func (g *GameState) Turn() chess.Colour {
	return g.toMove
}

// CastlingRights returns a snapshot of both colours' castling rights.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square a pawn skipped over on the previous
// move, if that move was a two-square advance.
func (g *GameState) EnPassantTarget() (chess.Square, bool) {
	return g.epSquare, g.enPassant
}

// PromotionPending returns the square of a pawn awaiting promotion, if any.
func (g *GameState) PromotionPending() (chess.Square, bool) {
	return g.promoSquare, g.promotion
}

// MoveLog returns a copy of the moves applied so far, oldest first.
func (g *GameState) MoveLog() []MoveLogEntry {
	return append([]MoveLogEntry(nil), g.log...)
}

// Ply returns the number of moves applied so far.
func (g *GameState) Ply() int {
	return len(g.log)
}

// isEnPassantTarget reports whether sq is the current en passant target.
func (g *GameState) isEnPassantTarget(sq chess.Square) bool {
	return g.enPassant && g.epSquare == sq
}
