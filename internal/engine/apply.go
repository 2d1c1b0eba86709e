package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MovePiece validates from->to against LegalMoves and applies it. On
// success the move is logged, the board updated, castling rights and the
// en passant target refreshed and the turn passed to the other side. The
// result says whether the moved pawn now waits for PromotePawn.
//
// A move is rejected with ErrPromotionPending while a promotion is
// outstanding and with ErrInvalidMove when it is not legal. Nothing is
// changed when an error is returned.
func (g *GameState) MovePiece(from, to chess.Square) (MoveResult, error) {
	if err := g.validateMove(from, to); err != nil {
		return MoveResult{}, err
	}
	return g.applyMove(from, to), nil
}

// validateMove checks that from->to may be applied in the current position.
func (g *GameState) validateMove(from, to chess.Square) error {
	ply := len(g.log) + 1

	if g.promotion {
		return errors.NewMoveError(errors.ErrPromotionPending, from, to, ply,
			"promote the pawn on "+g.promoSquare.String()+" first")
	}
	if !from.InBounds() || !to.InBounds() {
		return errors.NewMoveError(errors.ErrInvalidMove, from, to, ply, "square off the board")
	}

	piece := g.board.At(from)
	if piece.IsEmpty() {
		return errors.NewMoveError(errors.ErrInvalidMove, from, to, ply, "no piece on origin")
	}
	if piece.Colour != g.toMove {
		return errors.NewMoveError(errors.ErrInvalidMove, from, to, ply, g.toMove.String()+" to move")
	}

	for _, legal := range g.legalMovesFrom(from) {
		if legal == to {
			return nil
		}
	}
	return errors.NewMoveError(errors.ErrInvalidMove, from, to, ply, "destination not reachable")
}

// applyMove applies a move already known to be legal.
func (g *GameState) applyMove(from, to chess.Square) MoveResult {
	piece := g.board.At(from)
	captured := g.board.At(to)

	g.log = append(g.log, g.newLogEntry(piece, from, to, captured))

	// Handle en passant capture
	if g.isEnPassantCapture(piece, from, to) {
		g.board.Remove(enPassantVictim(from, to))
	}

	// Move the rook when castling
	if isCastling(piece, from, to) {
		rookFrom, rookTo := castlingRookSquares(from, to)
		g.board.Set(rookTo, g.board.Remove(rookFrom))
	}

	// Move the piece
	g.board.Set(to, piece)
	g.board.Set(from, chess.Empty)

	g.updateCastlingRights(piece, from, to, captured)
	g.updateEnPassant(piece, from, to)
	g.toMove = g.toMove.Opposite()

	if reachesPromotionRow(piece, to) {
		g.promotion = true
		g.promoSquare = to
		return MoveResult{PromotionRequired: true, PromotionSquare: to}
	}
	return MoveResult{}
}

// updateEnPassant sets the target after a double pawn push and clears it
// after any other move.
func (g *GameState) updateEnPassant(piece chess.Piece, from, to chess.Square) {
	if isDoublePawnPush(piece, from, to) {
		g.enPassant = true
		g.epSquare = chess.Sq((from.Row+to.Row)/2, to.Col)
		return
	}
	g.enPassant = false
	g.epSquare = chess.Square{}
}

// PromotePawn replaces the pawn on sq with a piece of the given kind and
// the same colour, and clears the pending promotion. Only queen, rook,
// bishop and knight are accepted; anything else fails with
// ErrInvalidPromotionKind. When a promotion is pending sq must be its
// square; otherwise sq must hold a pawn on its last row.
func (g *GameState) PromotePawn(sq chess.Square, kind chess.PieceKind) error {
	if !kind.IsPromotionChoice() {
		return errors.Wrapf(errors.ErrInvalidPromotionKind, "cannot promote to %v", kind)
	}
	if g.promotion && sq != g.promoSquare {
		return errors.Wrapf(errors.ErrInvalidMove, "promotion pending on %v, not %v", g.promoSquare, sq)
	}
	if !sq.InBounds() || !reachesPromotionRow(g.board.At(sq), sq) {
		return errors.Wrapf(errors.ErrInvalidMove, "no pawn to promote on %v", sq)
	}

	pawn := g.board.At(sq)
	g.board.Set(sq, chess.NewPiece(pawn.Colour, kind))
	if g.promotion && len(g.log) > 0 {
		g.log[len(g.log)-1].Promotion = kind
	}
	g.promotion = false
	g.promoSquare = chess.Square{}
	return nil
}

// PromotePawnNamed is PromotePawn taking the piece name ("queen", "rook",
// "bishop" or "knight", any case).
func (g *GameState) PromotePawnNamed(row, col int, name string) error {
	kind, ok := chess.ParsePieceKind(name)
	if !ok {
		return errors.Wrapf(errors.ErrInvalidPromotionKind, "unknown piece %q", name)
	}
	return g.PromotePawn(chess.Sq(row, col), kind)
}

// CaptureTarget returns the piece a move from->to would capture and the
// square it stands on, which differs from to for en passant. The move is
// not checked for legality; off-board squares capture nothing.
func (g *GameState) CaptureTarget(from, to chess.Square) (chess.Piece, chess.Square, bool) {
	if !from.InBounds() || !to.InBounds() {
		return chess.Empty, chess.Square{}, false
	}
	moving := g.board.At(from)
	if g.isEnPassantCapture(moving, from, to) {
		sq := enPassantVictim(from, to)
		return g.board.At(sq), sq, true
	}
	if !moving.IsEmpty() && g.board.IsEnemy(to, moving.Colour) {
		return g.board.At(to), to, true
	}
	return chess.Empty, chess.Square{}, false
}
