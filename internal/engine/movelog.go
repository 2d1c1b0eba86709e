package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveLogEntry records a move together with the state it replaced, enough
// to reverse it. Entries are appended by MovePiece; only PromotePawn
// touches one afterwards, to note the piece chosen.
type MoveLogEntry struct {
	Piece    chess.Piece  // The piece that moved, as it was before any promotion
	From     chess.Square // Origin square
	To       chess.Square // Destination square
	Captured chess.Piece  // Occupant of To before the move (empty for en passant)

	// Promotion is the kind the pawn became, NoPiece otherwise.
	Promotion chess.PieceKind

	// En passant target before the move.
	EnPassantBefore    chess.Square
	HadEnPassantBefore bool

	// Castling rights before the move.
	CastlingBefore chess.CastlingRights
}

// newLogEntry captures the pre-move state for piece moving from->to.
func (g *GameState) newLogEntry(piece chess.Piece, from, to chess.Square, captured chess.Piece) MoveLogEntry {
	return MoveLogEntry{
		Piece:              piece,
		From:               from,
		To:                 to,
		Captured:           captured,
		EnPassantBefore:    g.epSquare,
		HadEnPassantBefore: g.enPassant,
		CastlingBefore:     g.castling,
	}
}

// IsEnPassant reports whether the entry is an en passant capture.
func (e MoveLogEntry) IsEnPassant() bool {
	return e.HadEnPassantBefore && e.Piece.Kind == chess.Pawn &&
		e.From.Col != e.To.Col && e.To == e.EnPassantBefore
}

// IsCastling reports whether the entry is a castling move.
func (e MoveLogEntry) IsCastling() bool {
	return isCastling(e.Piece, e.From, e.To)
}

// IsCapture reports whether the move removed an enemy piece.
func (e MoveLogEntry) IsCapture() bool {
	return !e.Captured.IsEmpty() || e.IsEnPassant()
}

// LastMove returns the most recent log entry, if any.
func (g *GameState) LastMove() (MoveLogEntry, bool) {
	if len(g.log) == 0 {
		return MoveLogEntry{}, false
	}
	return g.log[len(g.log)-1], true
}

// UndoMove takes back the most recent move, restoring the board, castling
// rights, en passant target and turn exactly as they were before it. It
// fails with ErrNothingToUndo on an empty log and with ErrPromotionPending
// while the last move's promotion is unresolved.
func (g *GameState) UndoMove() (MoveLogEntry, error) {
	entry, ok := g.LastMove()
	if !ok {
		return MoveLogEntry{}, errors.ErrNothingToUndo
	}
	if g.promotion {
		return MoveLogEntry{}, errors.NewMoveError(errors.ErrPromotionPending, entry.From, entry.To, len(g.log),
			"promote the pawn before undoing")
	}

	g.log = g.log[:len(g.log)-1]

	// The moved piece goes back unpromoted; the destination gets back
	// whatever it held.
	g.board.Set(entry.From, entry.Piece)
	g.board.Set(entry.To, entry.Captured)

	if entry.IsEnPassant() {
		g.board.Set(enPassantVictim(entry.From, entry.To), chess.NewPiece(entry.Piece.Colour.Opposite(), chess.Pawn))
	}
	if entry.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(entry.From, entry.To)
		g.board.Set(rookFrom, g.board.Remove(rookTo))
	}

	g.castling = entry.CastlingBefore
	g.enPassant = entry.HadEnPassantBefore
	g.epSquare = entry.EnPassantBefore
	g.toMove = entry.Piece.Colour
	return entry, nil
}
