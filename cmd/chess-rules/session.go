package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

const commandHelp = `  board [r c]           show the board, marking moves of the piece on r c
  moves r c             list legal destinations of the piece on r c
  move r1 c1 r2 c2      move a piece
  promote r c piece     promote a pawn to queen, rook, bishop or knight
  undo                  take back the last move
  reset                 start a new game
  status                show whose turn it is and whether the game is over
  log                   show the moves played
  json                  dump the position as JSON
  svg file [r c]        write the board as an SVG diagram
  perft depth           count positions below each legal move
  help                  show this list
  quit                  leave
`

// errQuit ends Run without error.
var errQuit = errors.New("quit")

// Session executes commands against one game.
type Session struct {
	cfg  *config.Config
	game *engine.GameState
	out  io.Writer
}

// NewSession creates a session printing to cfg.OutputFile.
func NewSession(cfg *config.Config, game *engine.GameState) *Session {
	return &Session{cfg: cfg, game: game, out: cfg.OutputFile}
}

// Run executes commands read from r until EOF or quit. Command failures
// are reported and do not stop the session; only read errors are returned.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := s.Execute(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			s.cfg.Logf(1, "command %q: %v", scanner.Text(), err)
		}
	}
	return scanner.Err()
}

// Execute runs a single command line.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "board", "b":
		return s.board(args)
	case "moves":
		return s.moves(args)
	case "move", "m":
		return s.move(args)
	case "promote", "p":
		return s.promote(args)
	case "undo", "u":
		return s.undo()
	case "reset":
		s.game.Reset()
		s.cfg.Logf(2, "new game")
		return s.board(nil)
	case "status":
		fmt.Fprintln(s.out, output.StatusLine(s.game))
		return nil
	case "log":
		output.WriteMoveLog(s.out, s.game.MoveLog(), 80)
		return nil
	case "json":
		return output.WritePositionJSON(s.out, s.game)
	case "svg":
		return s.svg(args)
	case "perft":
		if len(args) != 1 {
			return usageError("perft depth")
		}
		depth, err := strconv.Atoi(args[0])
		if err != nil {
			return usageError("perft depth")
		}
		return s.perft(depth)
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	}
	return fmt.Errorf("unknown command %q, try help", cmd)
}

func usageError(form string) error {
	return fmt.Errorf("usage: %s", form)
}

// parseSquares reads row/column pairs. Range checks are left to the engine.
func parseSquares(args []string) ([]chess.Square, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("squares need a row and a column")
	}
	squares := make([]chess.Square, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		row, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("bad row %q", args[i])
		}
		col, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("bad column %q", args[i+1])
		}
		squares = append(squares, chess.Sq(row, col))
	}
	return squares, nil
}

// selection parses an optional "r c" pair.
func selection(args []string) (*chess.Square, error) {
	if len(args) == 0 {
		return nil, nil
	}
	squares, err := parseSquares(args)
	if err != nil || len(squares) != 1 {
		return nil, usageError("r c")
	}
	return &squares[0], nil
}

func (s *Session) board(args []string) error {
	selected, err := selection(args)
	if err != nil {
		return err
	}
	return output.NewTextWriter(s.out, &s.cfg.Display).WriteBoard(s.game, selected)
}

func (s *Session) moves(args []string) error {
	squares, err := parseSquares(args)
	if err != nil || len(squares) != 1 {
		return usageError("moves r c")
	}
	targets := s.game.LegalMoves(squares[0])
	if len(targets) == 0 {
		fmt.Fprintln(s.out, "no legal moves")
		return nil
	}
	parts := make([]string, len(targets))
	for i, sq := range targets {
		parts[i] = sq.String()
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
	return nil
}

func (s *Session) move(args []string) error {
	squares, err := parseSquares(args)
	if err != nil || len(squares) != 2 {
		return usageError("move r1 c1 r2 c2")
	}
	from, to := squares[0], squares[1]

	victim, victimSq, capture := s.game.CaptureTarget(from, to)
	result, err := s.game.MovePiece(from, to)
	if err != nil {
		return err
	}

	if last, ok := s.game.LastMove(); ok {
		s.cfg.Logf(2, "ply %d: %s", s.game.Ply(), output.FormatMove(last))
	}
	if capture {
		fmt.Fprintf(s.out, "captured %v on %v\n", victim, victimSq)
	}
	if result.PromotionRequired {
		fmt.Fprintf(s.out, "promote the pawn: promote %d %d queen|rook|bishop|knight\n",
			result.PromotionSquare.Row, result.PromotionSquare.Col)
		return nil
	}
	return s.board(nil)
}

func (s *Session) promote(args []string) error {
	if len(args) != 3 {
		return usageError("promote r c piece")
	}
	squares, err := parseSquares(args[:2])
	if err != nil {
		return usageError("promote r c piece")
	}
	if err := s.game.PromotePawnNamed(squares[0].Row, squares[0].Col, args[2]); err != nil {
		return err
	}
	s.cfg.Logf(2, "promoted %v to %s", squares[0], args[2])
	return s.board(nil)
}

func (s *Session) undo() error {
	entry, err := s.game.UndoMove()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "took back %s\n", output.FormatMove(entry))
	return s.board(nil)
}

func (s *Session) svg(args []string) error {
	if len(args) == 0 {
		return usageError("svg file [r c]")
	}
	selected, err := selection(args[1:])
	if err != nil {
		return usageError("svg file [r c]")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return errors.Wrap(err, "svg")
	}
	if err := output.NewSVGWriter(f, &s.cfg.Display).WriteBoard(s.game, selected); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", args[0])
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", args[0])
	}
	fmt.Fprintf(s.out, "wrote %s\n", args[0])
	return nil
}

func (s *Session) perft(depth int) error {
	if depth < 1 || depth > s.cfg.Perft.MaxDepth {
		return errors.Wrapf(errors.ErrInvalidDepth, "depth must be 1..%d, got %d", s.cfg.Perft.MaxDepth, depth)
	}
	s.cfg.Logf(2, "perft depth %d on %d workers", depth, s.cfg.Perft.Workers)

	var cache perft.Cache
	if s.cfg.Perft.CacheSize > 0 {
		cache = hashing.NewThreadSafeCountTable(s.cfg.Perft.CacheSize)
	}

	entries, total, err := perft.Divide(s.game, depth, s.cfg.Perft.Workers, cache)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%-16s %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(s.out, "total %d\n", total)
	return nil
}
