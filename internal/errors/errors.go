// Package errors provides sentinel errors and error types for the obstacle
// chess engine. It defines the expected failure conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that cannot be parsed or violates
	// the rules on the current board.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalBoard indicates a malformed or rule-violating board text.
	ErrIllegalBoard = errors.New("illegal board")

	// ErrIllegalStatusLine indicates a malformed board status line.
	ErrIllegalStatusLine = errors.New("illegal board at statusline")

	// ErrSourceExhausted indicates a move source has no further moves.
	ErrSourceExhausted = errors.New("move source exhausted")
)

// MoveError wraps ErrIllegalMove with the offending move text. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	// Text is the move notation that was rejected.
	Text string
}

// Error returns the message in the engine's diagnostic format.
func (e *MoveError) Error() string {
	return fmt.Sprintf("illegal move at %s", e.Text)
}

// Unwrap returns ErrIllegalMove, enabling errors.Is() checks.
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// IllegalMove constructs a MoveError for the given move text.
func IllegalMove(text string) error {
	return &MoveError{Text: text}
}

// BoardError wraps ErrIllegalBoard with the square at which the board text
// or board state is invalid.
type BoardError struct {
	// Square is the algebraic square at which the problem was detected.
	Square string
}

// Error returns the message in the engine's diagnostic format.
func (e *BoardError) Error() string {
	return fmt.Sprintf("illegal board at %s", e.Square)
}

// Unwrap returns ErrIllegalBoard.
func (e *BoardError) Unwrap() error {
	return ErrIllegalBoard
}

// IllegalBoard constructs a BoardError for the given square.
func IllegalBoard(square string) error {
	return &BoardError{Square: square}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
