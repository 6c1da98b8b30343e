package chess

// Game is an immutable snapshot of a game: its state and the ordered list of
// accepted move texts. Every change returns a new Game; the receiver is never
// modified, so a snapshot can be shared between goroutines freely.
type Game struct {
	state GameState
	moves []string
}

// NewGame creates a game that has not started and has no moves.
func NewGame() Game {
	return Game{state: NotStarted}
}

// RestoreGame creates a snapshot in the given state with the given move history.
// The moves slice is copied.
func RestoreGame(state GameState, moves []string) Game {
	return Game{state: state, moves: copyMoves(moves, 0)}
}

// State returns the current game state.
func (g Game) State() GameState {
	return g.state
}

// Moves returns a copy of the accepted move texts in order.
func (g Game) Moves() []string {
	return copyMoves(g.moves, 0)
}

// PlyCount returns the number of accepted moves.
func (g Game) PlyCount() int {
	return len(g.moves)
}

// LastMove returns the most recent move text, or "" if there are none.
func (g Game) LastMove() string {
	if len(g.moves) == 0 {
		return ""
	}
	return g.moves[len(g.moves)-1]
}

// SideToMove returns the colour whose turn it is. White moves first.
func (g Game) SideToMove() Colour {
	if len(g.moves)%2 == 0 {
		return White
	}
	return Black
}

// WithMove returns a new Game with move appended. A game that had not
// started becomes Started; every other state is carried over.
func (g Game) WithMove(move string) Game {
	moves := copyMoves(g.moves, 1)
	moves = append(moves, move)

	state := g.state
	if state == NotStarted {
		state = Started
	}
	return Game{state: state, moves: moves}
}

// WithState returns a new Game in the given state. Terminal states are
// absorbing: a game that has ended is returned unchanged.
func (g Game) WithState(state GameState) Game {
	if g.state.IsTerminal() {
		return g
	}
	return Game{state: state, moves: g.moves}
}

// copyMoves copies moves into a new slice with room for extra more entries.
func copyMoves(moves []string, extra int) []string {
	if len(moves) == 0 && extra == 0 {
		return nil
	}
	out := make([]string, len(moves), len(moves)+extra)
	copy(out, moves)
	return out
}
