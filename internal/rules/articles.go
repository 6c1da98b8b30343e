package rules

import (
	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
)

// TurnOrder is FIDE article 1.2: White moves first, then the players
// alternate. Turns are not tracked per move yet, so every move is accepted.
type TurnOrder struct{}

// Name returns the registry name of the rule.
func (TurnOrder) Name() string { return "turn-order" }

// Validate accepts every move.
func (TurnOrder) Validate(chess.Game, string) error { return nil }

// MoveMade is FIDE article 1.3: a player has the move once the opponent's
// move has been made. It accepts every move.
type MoveMade struct{}

// Name returns the registry name of the rule.
func (MoveMade) Name() string { return "move-made" }

// Validate accepts every move.
func (MoveMade) Validate(chess.Game, string) error { return nil }

// GameEnded is FIDE article 1.4: once a game has ended no more moves are made.
type GameEnded struct{}

// Name returns the registry name of the rule.
func (GameEnded) Name() string { return "game-ended" }

// Validate rejects any move in a terminal state.
func (r GameEnded) Validate(game chess.Game, move string) error {
	if game.State().IsTerminal() {
		return reject(r, move, ReasonGameEnded, nil)
	}
	return nil
}

// NoMoveAfterCheckmate is FIDE articles 1.4.1 and 1.4.2: the checkmated
// player has lost the game.
type NoMoveAfterCheckmate struct{}

// Name returns the registry name of the rule.
func (NoMoveAfterCheckmate) Name() string { return "checkmate" }

// Validate rejects moves after either side has been checkmated. Other
// terminal states are left to the other rules.
func (r NoMoveAfterCheckmate) Validate(game chess.Game, move string) error {
	if game.State().IsCheckmate() {
		return reject(r, move, ReasonAfterCheckmate, nil)
	}
	return nil
}

// NoMoveAfterStalemate is FIDE article 1.5: a position from which neither side
// can checkmate is drawn.
type NoMoveAfterStalemate struct{}

// Name returns the registry name of the rule.
func (NoMoveAfterStalemate) Name() string { return "stalemate" }

// Validate rejects any move in a terminal state.
func (r NoMoveAfterStalemate) Validate(game chess.Game, move string) error {
	if game.State().IsTerminal() {
		return reject(r, move, ReasonAfterStalemate, nil)
	}
	return nil
}

// Board is FIDE article 2.1: the board is an 8x8 grid, so the move must
// decode to squares on it. The decoder's own reason is kept as the cause but
// only the generic message is reported.
type Board struct{}

// Name returns the registry name of the rule.
func (Board) Name() string { return "board" }

// Validate decodes move and rejects it if decoding fails.
func (r Board) Validate(_ chess.Game, move string) error {
	if _, err := notation.Decode(move); err != nil {
		return reject(r, move, ReasonOutsideTheBoard, err)
	}
	return nil
}
