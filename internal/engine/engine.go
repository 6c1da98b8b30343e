// Package engine applies validated moves to games.
package engine

import (
	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/errors"
	"github.com/lgbarn/narmi-chess-go/internal/rules"
)

// MakeMove validates move against game with p and returns the game that
// results from accepting it. On rejection the original game is returned
// with the rule's error.
//
// Only the move history is extended; computing check, checkmate or
// stalemate is left to the caller through chess.Game.WithState.
func MakeMove(p *rules.Pipeline, game chess.Game, move string) (chess.Game, error) {
	if err := p.Validate(game, move); err != nil {
		return game, err
	}
	return game.WithMove(move), nil
}

// Replay applies moves in order starting from game. It stops at the first
// rejected move and returns the last accepted game, the number of moves
// applied and the rejection wrapped with its ply number.
func Replay(p *rules.Pipeline, game chess.Game, moves []string) (chess.Game, int, error) {
	for i, move := range moves {
		next, err := MakeMove(p, game, move)
		if err != nil {
			return game, i, errors.Wrapf(err, "ply %d (%s)", game.PlyCount()+1, move)
		}
		game = next
	}
	return game, len(moves), nil
}
