package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewGameState(t *testing.T) {
	g := NewGameState()

	testutil.AssertEqual(t, g.Turn(), chess.White)
	testutil.AssertEqual(t, g.CastlingRights(), chess.AllCastlingRights())
	testutil.AssertEqual(t, g.Board(), testutil.MustBoard(t, testutil.InitialRows...))
	testutil.AssertEqual(t, g.Ply(), 0)

	_, ok := g.EnPassantTarget()
	testutil.AssertFalse(t, ok, "en passant target")
	_, ok = g.PromotionPending()
	testutil.AssertFalse(t, ok, "promotion pending")
	testutil.AssertNoError(t, g.Validate())
}

func TestReset(t *testing.T) {
	g := NewGameState()
	playMoves(t, g, [][4]int{{6, 4, 4, 4}, {1, 3, 3, 3}, {4, 4, 3, 3}, {0, 3, 3, 3}, {7, 4, 6, 4}})

	g.Reset()

	testutil.AssertEqual(t, g.Turn(), chess.White)
	testutil.AssertEqual(t, g.CastlingRights(), chess.AllCastlingRights())
	testutil.AssertEqual(t, g.Board(), testutil.MustBoard(t, testutil.InitialRows...))
	testutil.AssertEqual(t, len(g.MoveLog()), 0)
	_, ok := g.EnPassantTarget()
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, countLegalMoves(g), 20)
}

func TestClone_Independent(t *testing.T) {
	g := NewGameState()
	mustMove(t, g, chess.Sq(6, 4), chess.Sq(4, 4))

	c := g.Clone()
	mustMove(t, c, chess.Sq(1, 4), chess.Sq(3, 4))

	testutil.AssertEqual(t, g.Turn(), chess.Black)
	testutil.AssertEqual(t, g.GetPiece(1, 4), chess.B(chess.Pawn))
	testutil.AssertEqual(t, g.Ply(), 1)
	testutil.AssertEqual(t, c.Ply(), 2)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	g := NewGameState()
	mustMove(t, g, chess.Sq(6, 4), chess.Sq(4, 4))

	board := g.Board()
	board.Set(chess.Sq(7, 4), chess.Empty)
	testutil.AssertEqual(t, g.GetPiece(7, 4), chess.W(chess.King))

	log := g.MoveLog()
	log[0].Piece = chess.B(chess.Queen)
	testutil.AssertEqual(t, g.MoveLog()[0].Piece, chess.W(chess.Pawn))

	rights := g.CastlingRights()
	rights.RevokeAll(chess.White)
	testutil.AssertEqual(t, g.CastlingRights(), chess.AllCastlingRights())
}

func TestNewFromSetup_EnPassant(t *testing.T) {
	ep := chess.Sq(2, 3)
	g, err := NewFromSetup(Setup{
		Board: testutil.MustBoard(t,
			"....k...",
			"........",
			"........",
			"...pP...",
			"........",
			"........",
			"........",
			"....K...",
		),
		ToMove:    chess.White,
		EnPassant: &ep,
	})
	testutil.AssertNoError(t, err)

	testutil.AssertSameSquares(t, g.GetLegalMoves(3, 4), []chess.Square{chess.Sq(2, 4), chess.Sq(2, 3)})
}

func TestNewFromSetup_Invalid(t *testing.T) {
	_, err := NewFromSetup(Setup{Board: testutil.MustBoard(t, testutil.EmptyRows...)})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
}
