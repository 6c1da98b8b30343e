package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/engine"
	"github.com/lgbarn/narmi-chess-go/internal/movetext"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
	"github.com/lgbarn/narmi-chess-go/internal/rules"
)

// MustDecode decodes text and calls t.Fatal if it is not valid notation.
func MustDecode(t *testing.T, text string) *notation.Notation {
	t.Helper()
	n, err := notation.Decode(text)
	if err != nil {
		t.Fatalf("failed to decode %q: %v", text, err)
	}
	return n
}

// GameIn returns a game in state with the given moves already played.
func GameIn(state chess.GameState, moves ...string) chess.Game {
	return chess.RestoreGame(state, moves)
}

// MustReplay plays movetext from the start with the default rules.
// It calls t.Fatal if any move is rejected.
func MustReplay(t *testing.T, text string) chess.Game {
	t.Helper()
	moves := ScanTokens(t, text)
	game, ply, err := engine.Replay(rules.DefaultPipeline(), chess.NewGame(), moves)
	if err != nil {
		t.Fatalf("replay stopped at ply %d: %v", ply, err)
	}
	return game
}

// ScanTokens returns the move tokens in text.
func ScanTokens(t *testing.T, text string) []string {
	t.Helper()
	s := movetext.NewScanner(strings.NewReader(text))
	tokens := s.Texts()
	if err := s.Err(); err != nil {
		t.Fatalf("failed to scan movetext: %v", err)
	}
	return tokens
}
