package engine

import (
	"math/rand"
	"testing"

	oracle "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// Random playouts checked move by move against github.com/notnil/chess.

const (
	oracleGames    = 40
	oracleMaxPlies = 160
)

func fromOracleSquare(sq oracle.Square) chess.Square {
	return chess.Sq(7-int(sq.Rank()), int(sq.File()))
}

func fromOracleColour(c oracle.Color) chess.Colour {
	if c == oracle.White {
		return chess.White
	}
	return chess.Black
}

func fromOraclePromo(p oracle.PieceType) chess.PieceKind {
	switch p {
	case oracle.Queen:
		return chess.Queen
	case oracle.Rook:
		return chess.Rook
	case oracle.Bishop:
		return chess.Bishop
	case oracle.Knight:
		return chess.Knight
	}
	return chess.NoPiece
}

// oracleMoves groups the reference moves by origin, collapsing the four
// promotion choices of one pawn move into a single destination.
func oracleMoves(game *oracle.Game) map[chess.Square][]chess.Square {
	moves := make(map[chess.Square][]chess.Square)
	seen := make(map[[2]chess.Square]bool)
	for _, m := range game.ValidMoves() {
		from, to := fromOracleSquare(m.S1()), fromOracleSquare(m.S2())
		if seen[[2]chess.Square{from, to}] {
			continue
		}
		seen[[2]chess.Square{from, to}] = true
		moves[from] = append(moves[from], to)
	}
	return moves
}

func TestLegalMoves_MatchReferenceEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))

	for n := 0; n < oracleGames; n++ {
		g := NewGameState()
		ref := oracle.NewGame()

		for ply := 0; ply < oracleMaxPlies && ref.Outcome() == oracle.NoOutcome; ply++ {
			if g.Turn() != fromOracleColour(ref.Position().Turn()) {
				t.Fatalf("game %d ply %d: turn %v, reference has %v", n, ply, g.Turn(), ref.Position().Turn())
			}

			got := g.AllLegalMoves()
			want := oracleMoves(ref)
			if len(got) != len(want) {
				t.Fatalf("game %d ply %d: %d movable pieces, reference has %d\n%s",
					n, ply, len(got), len(want), g.board.String())
			}
			for from, targets := range want {
				testutil.AssertSameSquares(t, got[from], targets, "game %d ply %d from %v\n%s", n, ply, from, g.board.String())
			}
			if t.Failed() {
				return
			}

			valid := ref.ValidMoves()
			m := valid[rng.Intn(len(valid))]
			if err := ref.Move(m); err != nil {
				t.Fatalf("reference rejected its own move %v: %v", m, err)
			}

			from, to := fromOracleSquare(m.S1()), fromOracleSquare(m.S2())
			result := mustMove(t, g, from, to)
			if result.PromotionRequired != (m.Promo() != oracle.NoPieceType) {
				t.Fatalf("game %d ply %d: promotion required %v for %v", n, ply, result.PromotionRequired, m)
			}
			if result.PromotionRequired {
				testutil.AssertNoError(t, g.PromotePawn(to, fromOraclePromo(m.Promo())))
			}

			testutil.AssertEqual(t, g.board.Count(chess.W(chess.King)), 1)
			testutil.AssertEqual(t, g.board.Count(chess.B(chess.King)), 1)
		}

		side := g.Turn()
		switch ref.Method() {
		case oracle.Checkmate:
			testutil.AssertEqual(t, g.Status(side), chess.Checkmate, "game %d", n)
		case oracle.Stalemate:
			testutil.AssertEqual(t, g.Status(side), chess.Stalemate, "game %d", n)
		default:
			// Draws by rule are not modelled; the position itself must
			// still be playable.
			if ref.Outcome() == oracle.NoOutcome {
				testutil.AssertTrue(t, g.hasAnyLegalMove(side), "game %d", n)
			}
		}
	}
}
