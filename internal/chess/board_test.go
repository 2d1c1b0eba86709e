package chess

import "testing"

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		sq   Square
		want Piece
	}{
		{Sq(0, 0), B(Rook)},
		{Sq(0, 1), B(Knight)},
		{Sq(0, 2), B(Bishop)},
		{Sq(0, 3), B(Queen)},
		{Sq(0, 4), B(King)},
		{Sq(1, 5), B(Pawn)},
		{Sq(6, 2), W(Pawn)},
		{Sq(7, 3), W(Queen)},
		{Sq(7, 4), W(King)},
		{Sq(7, 7), W(Rook)},
		{Sq(4, 4), Empty},
	}

	for _, tt := range tests {
		if got := b.At(tt.sq); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.sq, got, tt.want)
		}
	}

	for _, colour := range []Colour{White, Black} {
		if n := b.Count(NewPiece(colour, Pawn)); n != 8 {
			t.Errorf("%v pawns = %d, want 8", colour, n)
		}
		if n := b.Count(NewPiece(colour, King)); n != 1 {
			t.Errorf("%v kings = %d, want 1", colour, n)
		}
	}
}

func TestBoard_SetRemove(t *testing.T) {
	var b Board
	sq := Sq(3, 3)

	b.Set(sq, W(Knight))
	if !b.IsFriendly(sq, White) || !b.IsEnemy(sq, Black) {
		t.Errorf("white knight on %v should be friendly to White and enemy to Black", sq)
	}
	if got := b.Remove(sq); got != W(Knight) {
		t.Errorf("Remove(%v) = %v, want white knight", sq, got)
	}
	if !b.IsEmpty(sq) {
		t.Errorf("IsEmpty(%v) = false after Remove", sq)
	}
	if b.IsEnemy(sq, White) || b.IsFriendly(sq, White) {
		t.Errorf("empty square reported as occupied")
	}
}

func TestBoard_StringParseRoundTrip(t *testing.T) {
	var b Board
	b.SetupInitialPosition()

	rows := []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	want := ""
	for _, r := range rows {
		want += r + "\n"
	}
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	parsed, ok := ParseBoard(rows)
	if !ok {
		t.Fatal("ParseBoard() failed on the initial diagram")
	}
	if *parsed != b {
		t.Errorf("ParseBoard() differs from SetupInitialPosition()")
	}

	back, ok := ParseBoard(b.Rows())
	if !ok || *back != b {
		t.Errorf("ParseBoard(Rows()) does not round-trip")
	}
}

func TestParseBoard_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{"........"}},
		{"short row", []string{"........", "........", "........", "........", "........", "........", "........", "......."}},
		{"bad letter", []string{"x.......", "........", "........", "........", "........", "........", "........", "........"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseBoard(tt.rows); ok {
				t.Errorf("ParseBoard(%v) succeeded, want failure", tt.rows)
			}
		})
	}
}
