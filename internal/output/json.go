package output

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONPosition is a snapshot of a game in JSON form.
type JSONPosition struct {
	Board      []string            `json:"board"` // row 0 first, as in ParseBoard
	Turn       string              `json:"turn"`
	Status     string              `json:"status"`
	Castling   JSONCastling        `json:"castling"`
	EnPassant  *[2]int             `json:"enPassant,omitempty"`
	Promotion  *[2]int             `json:"promotion,omitempty"`
	LegalMoves map[string][][2]int `json:"legalMoves,omitempty"`
	Moves      []JSONMove          `json:"moves,omitempty"`
}

// JSONCastling lists the castling rights still held.
type JSONCastling struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"`
	Piece     string `json:"piece"`
	From      [2]int `json:"from"`
	To        [2]int `json:"to"`
	Text      string `json:"text"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

func coords(sq chess.Square) [2]int {
	return [2]int{sq.Row, sq.Col}
}

// PositionToJSON converts a game to its JSON snapshot.
func PositionToJSON(g *engine.GameState) *JSONPosition {
	board := g.Board()
	rights := g.CastlingRights()

	jp := &JSONPosition{
		Board:  board.Rows(),
		Turn:   g.Turn().String(),
		Status: g.Status(g.Turn()).String(),
		Castling: JSONCastling{
			WhiteKingside:  rights.White.Kingside,
			WhiteQueenside: rights.White.Queenside,
			BlackKingside:  rights.Black.Kingside,
			BlackQueenside: rights.Black.Queenside,
		},
	}

	if sq, ok := g.EnPassantTarget(); ok {
		c := coords(sq)
		jp.EnPassant = &c
	}
	if sq, ok := g.PromotionPending(); ok {
		c := coords(sq)
		jp.Promotion = &c
	}

	all := g.AllLegalMoves()
	if len(all) > 0 {
		jp.LegalMoves = make(map[string][][2]int, len(all))
		for from, targets := range all {
			list := make([][2]int, len(targets))
			for i, to := range targets {
				list[i] = coords(to)
			}
			sort.Slice(list, func(i, j int) bool {
				if list[i][0] != list[j][0] {
					return list[i][0] < list[j][0]
				}
				return list[i][1] < list[j][1]
			})
			jp.LegalMoves[from.String()] = list
		}
	}

	for i, e := range g.MoveLog() {
		jm := JSONMove{
			Ply:   i + 1,
			Color: e.Piece.Colour.String(),
			Piece: e.Piece.Kind.String(),
			From:  coords(e.From),
			To:    coords(e.To),
			Text:  FormatMove(e),
		}
		if e.IsEnPassant() {
			jm.Captured = chess.Pawn.String()
		} else if !e.Captured.IsEmpty() {
			jm.Captured = e.Captured.Kind.String()
		}
		if e.Promotion != chess.NoPiece {
			jm.Promotion = e.Promotion.String()
		}
		jp.Moves = append(jp.Moves, jm)
	}
	return jp
}

// WritePositionJSON writes the game snapshot as indented JSON.
func WritePositionJSON(w io.Writer, g *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PositionToJSON(g))
}
