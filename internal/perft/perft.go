// Package perft counts the positions reachable from a game state, the
// standard way of checking a move generator against published totals.
package perft

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// promotionKinds is the order promotions are expanded in.
var promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Move is a fully specified move: a pawn reaching the last row carries the
// piece it becomes.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceKind
}

func (m Move) String() string {
	if m.Promotion == chess.NoPiece {
		return fmt.Sprintf("%v->%v", m.From, m.To)
	}
	return fmt.Sprintf("%v->%v=%c", m.From, m.To, m.Promotion.Letter())
}

// Moves lists the legal moves of the side to move in board order, with one
// entry per promotion choice.
func Moves(g *engine.GameState) []Move {
	var moves []Move
	for from, targets := range g.AllLegalMoves() {
		piece := g.PieceAt(from)
		for _, to := range targets {
			if piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
				for _, kind := range promotionKinds {
					moves = append(moves, Move{From: from, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.From != b.From {
			return squareLess(a.From, b.From)
		}
		if a.To != b.To {
			return squareLess(a.To, b.To)
		}
		return a.Promotion > b.Promotion
	})
	return moves
}

func squareLess(a, b chess.Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// Play applies m to g, resolving the promotion when there is one.
func Play(g *engine.GameState, m Move) error {
	result, err := g.MovePiece(m.From, m.To)
	if err != nil {
		return err
	}
	if result.PromotionRequired {
		return g.PromotePawn(result.PromotionSquare, m.Promotion)
	}
	return nil
}

// Cache stores subtree counts by position key and depth.
// hashing.CountTable and hashing.ThreadSafeCountTable implement it.
type Cache interface {
	Lookup(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

// Count returns the number of move sequences of exactly depth plies from
// g. The game is left as it was found.
func Count(g *engine.GameState, depth int) (uint64, error) {
	return CountCached(g, depth, nil)
}

// CountCached is Count reusing subtree counts from cache, which may be nil.
func CountCached(g *engine.GameState, depth int, cache Cache) (uint64, error) {
	if depth < 0 {
		return 0, errors.Wrapf(errors.ErrInvalidDepth, "%d", depth)
	}
	return count(g, depth, cache)
}

func count(g *engine.GameState, depth int, cache Cache) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves := Moves(g)
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var key uint64
	if cache != nil {
		key = hashing.PositionKey(g)
		if n, ok := cache.Lookup(key, depth); ok {
			return n, nil
		}
	}

	var nodes uint64
	for _, m := range moves {
		if err := Play(g, m); err != nil {
			return 0, errors.Wrapf(err, "perft %v", m)
		}
		n, err := count(g, depth-1, cache)
		if err != nil {
			return 0, err
		}
		nodes += n
		if _, err := g.UndoMove(); err != nil {
			return 0, errors.Wrapf(err, "perft undo %v", m)
		}
	}

	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes, nil
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide counts the nodes below each root move on a pool of workers, each
// working on its own copy of g. Entries come back in Moves order. cache,
// when not nil, is shared by all workers and must be safe for concurrent
// use.
func Divide(g *engine.GameState, depth, workers int, cache Cache) ([]DivideEntry, uint64, error) {
	if depth < 1 {
		return nil, 0, errors.Wrapf(errors.ErrInvalidDepth, "divide needs depth >= 1, got %d", depth)
	}

	moves := Moves(g)
	search := func(item worker.WorkItem) worker.ProcessResult {
		return searchItem(item, cache)
	}
	pool := worker.NewPool(search, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{
				Position:  g.Clone(),
				From:      m.From,
				To:        m.To,
				Promotion: m.Promotion,
				Depth:     depth - 1,
				Index:     i,
			})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, len(moves))
	var total uint64
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		entries[r.Index] = DivideEntry{Move: moves[r.Index], Nodes: r.Nodes}
		total += r.Nodes
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}
	return entries, total, nil
}

// CountParallel is CountCached with the root moves spread over workers.
func CountParallel(g *engine.GameState, depth, workers int, cache Cache) (uint64, error) {
	if depth < 1 {
		return CountCached(g, depth, cache)
	}
	_, total, err := Divide(g, depth, workers, cache)
	return total, err
}

func searchItem(item worker.WorkItem, cache Cache) worker.ProcessResult {
	result := worker.ProcessResult{
		Index:     item.Index,
		From:      item.From,
		To:        item.To,
		Promotion: item.Promotion,
	}
	m := Move{From: item.From, To: item.To, Promotion: item.Promotion}
	if err := Play(item.Position, m); err != nil {
		result.Error = errors.Wrapf(err, "perft %v", m)
		return result
	}
	result.Nodes, result.Error = count(item.Position, item.Depth, cache)
	return result
}
