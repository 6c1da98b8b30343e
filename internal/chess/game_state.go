package chess

import "strings"

// GameState is the lifecycle state of a game.
type GameState int

const (
	NotStarted GameState = iota
	Started
	Stalemate
	WhiteResigned
	BlackResigned
	WhiteCheckmate
	BlackCheckmate
)

// AllGameStates lists every state in declaration order.
var AllGameStates = []GameState{
	NotStarted,
	Started,
	Stalemate,
	WhiteResigned,
	BlackResigned,
	WhiteCheckmate,
	BlackCheckmate,
}

var gameStateNames = []string{
	"NotStarted",
	"Started",
	"Stalemate",
	"WhiteResigned",
	"BlackResigned",
	"WhiteCheckmate",
	"BlackCheckmate",
}

// String returns the string representation of a game state.
func (s GameState) String() string {
	if s >= 0 && int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return "Unknown"
}

// IsTerminal returns true for states from which no further move may be made.
func (s GameState) IsTerminal() bool {
	return s != NotStarted && s != Started
}

// IsCheckmate returns true if either side has been checkmated.
func (s GameState) IsCheckmate() bool {
	return s == WhiteCheckmate || s == BlackCheckmate
}

// ParseGameState parses a state name case-insensitively. Hyphens and
// underscores are ignored, so "white-checkmate" matches WhiteCheckmate.
func ParseGameState(name string) (GameState, bool) {
	normalized := strings.NewReplacer("-", "", "_", "").Replace(name)
	for i, n := range gameStateNames {
		if strings.EqualFold(n, normalized) {
			return GameState(i), true
		}
	}
	return NotStarted, false
}
