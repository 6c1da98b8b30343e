// Package errors provides sentinel errors and error types for narmi-chess.
// It defines the two error families of the tool, decode errors for malformed
// notation and move errors for rule rejections, as structured types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
//
// The notation sentinels carry the exact user-facing reason text, so they are
// capitalised.
var (
	// ErrInvalidNotation indicates characters were left over after decoding.
	ErrInvalidNotation = errors.New("Invalid notation") //nolint:stylecheck // ST1005: stable user-facing text

	// ErrMissingRankAndFile indicates a move with neither destination rank nor file.
	ErrMissingRankAndFile = errors.New("Both rank and file are missing (or invalid)") //nolint:stylecheck // ST1005: stable user-facing text

	// ErrMissingRank indicates a move without a destination rank.
	ErrMissingRank = errors.New("Rank is missing (or invalid)") //nolint:stylecheck // ST1005: stable user-facing text

	// ErrMissingFile indicates a move without a destination file.
	ErrMissingFile = errors.New("File is missing (or invalid)") //nolint:stylecheck // ST1005: stable user-facing text

	// ErrMoveRejected indicates a rule refused a move.
	ErrMoveRejected = errors.New("move rejected")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownRule indicates a rule name that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownGameState indicates a game state name that cannot be parsed.
	ErrUnknownGameState = errors.New("unknown game state")
)

// NotationError is a decode error. It records the original token and the
// sentinel describing what went wrong.
type NotationError struct {
	Err  error  // One of the notation sentinels
	Text string // The token that failed to decode
}

// Reason returns the stable reason text, e.g. "Invalid notation: q" or
// "File is missing (or invalid)".
func (e *NotationError) Reason() string {
	if errors.Is(e.Err, ErrInvalidNotation) {
		return fmt.Sprintf("%v: %s", e.Err, e.Text)
	}
	if e.Err == nil {
		return ErrInvalidNotation.Error()
	}
	return e.Err.Error()
}

// Error returns the message for display. Missing-coordinate failures name the
// token they were found in.
func (e *NotationError) Error() string {
	if e.Err == nil || errors.Is(e.Err, ErrInvalidNotation) {
		return e.Reason()
	}
	return fmt.Sprintf("%s in notation: %s", e.Reason(), e.Text)
}

// Unwrap returns the underlying sentinel, enabling errors.Is() and errors.As().
func (e *NotationError) Unwrap() error {
	return e.Err
}

// MoveError is a rule rejection. Reason is the exact text shown to the user.
type MoveError struct {
	Err      error  // The underlying cause; ErrMoveRejected if nil
	Rule     string // Name of the rule that rejected the move
	Reason   string // Stable human-readable reason
	MoveText string // The move that was rejected (if known)
}

// Error returns the rejection reason.
func (e *MoveError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return e.Unwrap().Error()
}

// Unwrap returns the underlying error. Rejections without a specific cause
// unwrap to ErrMoveRejected.
func (e *MoveError) Unwrap() error {
	if e.Err == nil {
		return ErrMoveRejected
	}
	return e.Err
}

// Is reports every MoveError as an ErrMoveRejected, whatever its cause.
func (e *MoveError) Is(target error) bool {
	return target == ErrMoveRejected
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
