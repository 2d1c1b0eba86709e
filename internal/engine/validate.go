package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Validate checks the board invariants the engine relies on and reports
// every violation found, each wrapping ErrInvalidPosition:
//   - exactly one king of each colour;
//   - no pawn on either back row, except one awaiting promotion;
//   - castling rights only where king and rook are still at home;
//   - an en passant target that is empty, on the right row, and sits
//     behind a pawn of the side that just moved;
//   - the side not to move is not in check.
func (g *GameState) Validate() error {
	var result *multierror.Error
	invalid := func(format string, args ...interface{}) {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidPosition, format, args...))
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := g.board.Count(chess.NewPiece(colour, chess.King)); n != 1 {
			invalid("%v has %d kings", colour, n)
		}

		for _, sq := range g.board.Find(chess.NewPiece(colour, chess.Pawn)) {
			if sq.Row == chess.HomeRow(colour) {
				invalid("%v pawn on its back row at %v", colour, sq)
			}
			if sq.Row == chess.PromotionRow(colour) && !(g.promotion && g.promoSquare == sq) {
				invalid("%v pawn on %v must be promoted", colour, sq)
			}
		}

		rights := g.castling.For(colour)
		row := chess.HomeRow(colour)
		if rights.Any() && !g.board.Get(row, chess.KingCol).Is(colour, chess.King) {
			invalid("%v may castle but its king has left %v", colour, chess.Sq(row, chess.KingCol))
		}
		if rights.Kingside && !g.board.Get(row, chess.KingsideCol).Is(colour, chess.Rook) {
			invalid("%v may castle kingside without a rook on %v", colour, chess.Sq(row, chess.KingsideCol))
		}
		if rights.Queenside && !g.board.Get(row, chess.QueensideCol).Is(colour, chess.Rook) {
			invalid("%v may castle queenside without a rook on %v", colour, chess.Sq(row, chess.QueensideCol))
		}
	}

	if g.enPassant {
		if err := g.validateEnPassant(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if g.board.Count(chess.NewPiece(g.toMove.Opposite(), chess.King)) == 1 && g.IsInCheck(g.toMove.Opposite()) {
		invalid("%v is in check but it is %v's turn", g.toMove.Opposite(), g.toMove)
	}

	return result.ErrorOrNil()
}

// validateEnPassant checks the en passant target against the side that
// made the double step, which is the side not to move.
func (g *GameState) validateEnPassant() error {
	sq := g.epSquare
	mover := g.toMove.Opposite()

	if !sq.InBounds() {
		return errors.Wrapf(errors.ErrInvalidPosition, "en passant target %v off the board", sq)
	}
	if sq.Row != chess.PawnRow(mover)+chess.PawnDirection(mover) {
		return errors.Wrapf(errors.ErrInvalidPosition, "en passant target %v on the wrong row for %v", sq, mover)
	}
	if !g.board.IsEmpty(sq) {
		return errors.Wrapf(errors.ErrInvalidPosition, "en passant target %v is occupied", sq)
	}
	pawnSq := sq.Offset(chess.PawnDirection(mover), 0)
	if !g.board.At(pawnSq).Is(mover, chess.Pawn) {
		return errors.Wrap(errors.ErrInvalidPosition, fmt.Sprintf("no %v pawn in front of en passant target %v", mover, sq))
	}
	return nil
}
