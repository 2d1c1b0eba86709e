// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines common error conditions and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that is not legal in the current position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPromotionKind indicates an unsupported promotion choice.
	ErrInvalidPromotionKind = errors.New("invalid promotion piece")

	// ErrKingNotFound indicates a board with no king of the requested colour.
	ErrKingNotFound = errors.New("king not found")

	// ErrPromotionPending indicates play cannot continue until a pawn is promoted.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNothingToUndo indicates an undo request with an empty move log.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidPosition indicates a setup that breaks a board invariant.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidDepth indicates a negative search depth.
	ErrInvalidDepth = errors.New("invalid depth")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the squares involved, the ply
// at which the move was attempted and an optional reason. It supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error        // The underlying error
	From   chess.Square // Origin square
	To     chess.Square // Destination square
	Ply    int          // 1-based ply the move would have been (0 if unknown)
	Reason string       // Short explanation (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	parts = append(parts, fmt.Sprintf("move %v->%v", e.From, e.To))
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError builds a MoveError for the given squares.
func NewMoveError(err error, from, to chess.Square, ply int, reason string) *MoveError {
	return &MoveError{Err: err, From: from, To: to, Ply: ply, Reason: reason}
}

// New returns an error with the given message, for package-level
// sentinels outside this package.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
