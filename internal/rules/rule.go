// Package rules validates a proposed move against the current game with an
// ordered pipeline of independent, stateless rules.
package rules

import (
	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/errors"
)

// Rule decides whether a move may be attempted in a game.
// Validate returns nil to accept, or a *errors.MoveError to reject.
// Implementations hold no mutable state and may be shared freely.
type Rule interface {
	Name() string
	Validate(game chess.Game, move string) error
}

// Reasons reported by the built-in rules. The text is stable.
const (
	ReasonGameEnded       = "Attempt to move when game is ended"
	ReasonAfterCheckmate  = "Attempt to move after checkmate"
	ReasonAfterStalemate  = "Attempt to move after stalemate"
	ReasonOutsideTheBoard = "Move is outside the confines of the chess board"
)

// reject builds the rejection for rule r.
func reject(r Rule, move, reason string, cause error) error {
	return &errors.MoveError{
		Err:      cause,
		Rule:     r.Name(),
		Reason:   reason,
		MoveText: move,
	}
}
