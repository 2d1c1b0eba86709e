package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidMove,
		ErrInvalidPromotionKind,
		ErrKingNotFound,
		ErrPromotionPending,
		ErrNothingToUndo,
		ErrInvalidPosition,
		ErrInvalidDepth,
		ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
			for _, other := range sentinels {
				if other != sentinel && errors.Is(wrapped, other) {
					t.Errorf("errors.Is(wrapped %v, %v) = true, want false", sentinel, other)
				}
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		excludes []string
	}{
		{
			name:     "full context",
			err:      NewMoveError(ErrInvalidMove, chess.Sq(6, 4), chess.Sq(3, 4), 7, "not reachable"),
			contains: []string{"ply 7", "(6,4)->(3,4)", "not reachable", "invalid move"},
		},
		{
			name:     "no ply or reason",
			err:      &MoveError{Err: ErrPromotionPending, From: chess.Sq(1, 0), To: chess.Sq(0, 0)},
			contains: []string{"(1,0)->(0,0)", "promotion pending"},
			excludes: []string{"ply"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{From: chess.Sq(0, 0), To: chess.Sq(0, 1)},
			contains: []string{"move (0,0)->(0,1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, want it to contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	var err error = Wrap(NewMoveError(ErrInvalidMove, chess.Sq(7, 4), chess.Sq(7, 6), 1, ""), "apply")

	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("errors.Is(err, ErrInvalidMove) = false, want true")
	}

	var moveErr *MoveError
	if !As(err, &moveErr) {
		t.Fatalf("errors.As(err, *MoveError) = false, want true")
	}
	if moveErr.To != chess.Sq(7, 6) {
		t.Errorf("moveErr.To = %v, want (7,6)", moveErr.To)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrKingNotFound, "white")
	if !Is(wrapped, ErrKingNotFound) {
		t.Error("Wrap should preserve error chain")
	}
	if got := wrapped.Error(); got != "white: king not found" {
		t.Errorf("Wrap().Error() = %q, want %q", got, "white: king not found")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	wrapped := Wrapf(ErrInvalidPromotionKind, "kind %q", "dragon")
	if !Is(wrapped, ErrInvalidPromotionKind) {
		t.Error("Wrapf should preserve error chain")
	}
	if !strings.Contains(wrapped.Error(), `kind "dragon"`) {
		t.Errorf("Wrapf().Error() = %q, want formatted context", wrapped.Error())
	}
}

func TestNew(t *testing.T) {
	quit := New("quit")
	if quit.Error() != "quit" {
		t.Errorf("New().Error() = %q, want %q", quit.Error(), "quit")
	}
	if !Is(Wrap(quit, "session"), quit) {
		t.Error("wrapped New error should match itself")
	}
	if Is(New("quit"), quit) {
		t.Error("separate New errors should not match")
	}
}
