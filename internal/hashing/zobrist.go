// Package hashing provides position keys and count tables for repeated
// positions met while searching the move tree.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys: one per (piece, square), one per castling right, one per
// en passant column, plus side-to-move and pending-promotion flags.
var (
	pieceKeys     [2][chess.NumPieceKinds][chess.BoardSize][chess.BoardSize]uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
	whiteToMove   uint64
	promotionKey  uint64
)

func init() {
	// Fixed seed so keys are stable between runs.
	rng := rand.New(rand.NewSource(0x5eed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for r := range pieceKeys[c][k] {
				for f := range pieceKeys[c][k][r] {
					pieceKeys[c][k][r][f] = rng.Uint64()
				}
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
	whiteToMove = rng.Uint64()
	promotionKey = rng.Uint64()
}

// PositionKey returns a 64-bit Zobrist key of everything that decides the
// legal moves in g: placement, side to move, castling rights, en passant
// target and a pending promotion. The move log is not part of the key.
func PositionKey(g *engine.GameState) uint64 {
	var key uint64

	board := g.Board()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Get(row, col)
			if !p.IsEmpty() {
				key ^= pieceKeys[p.Colour][p.Kind][row][col]
			}
		}
	}

	if g.Turn() == chess.White {
		key ^= whiteToMove
	}

	rights := g.CastlingRights()
	for i, held := range []bool{rights.White.Kingside, rights.White.Queenside, rights.Black.Kingside, rights.Black.Queenside} {
		if held {
			key ^= castlingKeys[i]
		}
	}

	if sq, ok := g.EnPassantTarget(); ok {
		key ^= enPassantKeys[sq.Col]
	}
	if _, ok := g.PromotionPending(); ok {
		key ^= promotionKey
	}
	return key
}
