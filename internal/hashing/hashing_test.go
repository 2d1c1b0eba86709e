package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func play(t *testing.T, g *engine.GameState, moves ...[4]int) {
	t.Helper()
	for _, m := range moves {
		if _, err := g.MovePiece(chess.Sq(m[0], m[1]), chess.Sq(m[2], m[3])); err != nil {
			t.Fatalf("MovePiece(%v) error: %v", m, err)
		}
	}
}

func TestPositionKey_Transposition(t *testing.T) {
	a := engine.NewGameState()
	play(t, a, [4]int{7, 6, 5, 5}, [4]int{0, 1, 2, 2}, [4]int{7, 1, 5, 2})

	b := engine.NewGameState()
	play(t, b, [4]int{7, 1, 5, 2}, [4]int{0, 1, 2, 2}, [4]int{7, 6, 5, 5})

	if PositionKey(a) != PositionKey(b) {
		t.Error("same position reached by different move orders has different keys")
	}
}

func TestPositionKey_Distinguishes(t *testing.T) {
	start := engine.NewGameState()
	startKey := PositionKey(start)

	t.Run("piece placement", func(t *testing.T) {
		g := engine.NewGameState()
		play(t, g, [4]int{6, 4, 5, 4})
		if PositionKey(g) == startKey {
			t.Error("key unchanged after a move")
		}
	})

	t.Run("en passant target", func(t *testing.T) {
		afterE4 := []string{
			"rnbqkbnr",
			"pppppppp",
			"........",
			"........",
			"....P...",
			"........",
			"PPPP.PPP",
			"RNBQKBNR",
		}
		board, ok := chess.ParseBoard(afterE4)
		if !ok {
			t.Fatal("bad diagram")
		}
		target := chess.Sq(5, 4)
		setup := engine.Setup{Board: *board, ToMove: chess.Black, Castling: chess.AllCastlingRights()}

		without, err := engine.NewFromSetup(setup)
		if err != nil {
			t.Fatal(err)
		}
		setup.EnPassant = &target
		with, err := engine.NewFromSetup(setup)
		if err != nil {
			t.Fatal(err)
		}

		if PositionKey(with) == PositionKey(without) {
			t.Error("en passant target does not change the key")
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		moved := engine.NewGameState()
		play(t, moved,
			[4]int{7, 6, 5, 5}, [4]int{0, 6, 2, 5},
			[4]int{7, 7, 7, 6}, [4]int{2, 5, 0, 6},
			[4]int{7, 6, 7, 7}, [4]int{0, 6, 2, 5},
			[4]int{5, 5, 7, 6}, [4]int{2, 5, 0, 6},
		)
		if moved.Board() != start.Board() {
			t.Fatal("pieces did not return home")
		}
		if PositionKey(moved) == startKey {
			t.Error("lost castling right does not change the key")
		}
	})
}

func TestPositionKey_UndoRestores(t *testing.T) {
	g := engine.NewGameState()
	before := PositionKey(g)

	play(t, g, [4]int{6, 3, 4, 3})
	if _, err := g.UndoMove(); err != nil {
		t.Fatal(err)
	}
	if got := PositionKey(g); got != before {
		t.Errorf("key after undo = %x, want %x", got, before)
	}
}

func TestCountTable(t *testing.T) {
	table := NewCountTable(0)

	if _, ok := table.Lookup(1, 2); ok {
		t.Error("empty table found a count")
	}
	table.Store(1, 2, 400)
	table.Store(1, 3, 8902)

	if n, ok := table.Lookup(1, 2); !ok || n != 400 {
		t.Errorf("Lookup(1, 2) = %d, %v; want 400, true", n, ok)
	}
	if n, ok := table.Lookup(1, 3); !ok || n != 8902 {
		t.Errorf("Lookup(1, 3) = %d, %v; want 8902, true", n, ok)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d; want 2", table.Len())
	}
	if table.Hits() != 2 {
		t.Errorf("Hits() = %d; want 2", table.Hits())
	}
}

func TestCountTable_Capacity(t *testing.T) {
	table := NewCountTable(2)
	table.Store(1, 1, 10)
	table.Store(2, 1, 20)
	if !table.IsFull() {
		t.Fatal("table with 2 of 2 entries should be full")
	}
	table.Store(3, 1, 30)

	if _, ok := table.Lookup(3, 1); ok {
		t.Error("full table stored a new count")
	}
	if n, _ := table.Lookup(1, 1); n != 10 {
		t.Error("existing counts must survive")
	}
	if NewCountTable(0).IsFull() {
		t.Error("unlimited table reports full")
	}
}

func TestThreadSafeCountTable_Concurrent(t *testing.T) {
	table := NewThreadSafeCountTable(0)

	const numWorkers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				key := uint64(w*perWorker + i)
				table.Store(key, 2, key*10)
				if n, ok := table.Lookup(key, 2); !ok || n != key*10 {
					t.Errorf("Lookup(%d) = %d, %v", key, n, ok)
				}
			}
		}(w)
	}
	wg.Wait()

	if table.Len() != numWorkers*perWorker {
		t.Errorf("Len() = %d; want %d", table.Len(), numWorkers*perWorker)
	}
	if table.Hits() != numWorkers*perWorker {
		t.Errorf("Hits() = %d; want %d", table.Hits(), numWorkers*perWorker)
	}
}
