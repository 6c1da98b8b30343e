package worker

import (
	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
	"github.com/lgbarn/narmi-chess-go/internal/rules"
)

// DecodeFunc returns a process function that decodes each token.
func DecodeFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := newResult(item)
		result.Notation, result.Err = notation.Decode(item.Text)
		return result
	}
}

// ValidateFunc returns a process function that checks each token against
// game with p. Every token is treated as a candidate for the same position.
// Accepted tokens are then decoded; a pipeline without the board rule can
// accept a token that does not decode, and that token fails with the decode
// error.
func ValidateFunc(p *rules.Pipeline, game chess.Game) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := newResult(item)
		if err := p.Validate(game, item.Text); err != nil {
			result.Err = err
			return result
		}
		result.Notation, result.Err = notation.Decode(item.Text)
		return result
	}
}

func newResult(item WorkItem) ProcessResult {
	return ProcessResult{Text: item.Text, Line: item.Line, Index: item.Index}
}
