package engine

import "github.com/lgbarn/narmi-chess-go/internal/chess"

// pawnStartRank returns the rank a pawn of colour starts on.
func pawnStartRank(colour chess.Colour) chess.Coordinate {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// pawnDirection returns +1 for White, -1 for Black.
func pawnDirection(colour chess.Colour) chess.Coordinate {
	if colour == chess.White {
		return 1
	}
	return -1
}

// PawnTargets returns the squares a pawn of colour on from could move to on
// an otherwise empty board: one step forward, two from its start rank, and
// both diagonal captures. Squares off the board are dropped. The board
// contents are not consulted, so blocked squares are still listed.
func PawnTargets(colour chess.Colour, from chess.Square) []chess.Square {
	if !from.OnBoard() {
		return nil
	}

	dir := pawnDirection(colour)
	candidates := []chess.Square{
		chess.NewSquare(from.Rank+dir, from.File),
		chess.NewSquare(from.Rank+dir, from.File-1),
		chess.NewSquare(from.Rank+dir, from.File+1),
	}
	if from.Rank == pawnStartRank(colour) {
		candidates = append(candidates, chess.NewSquare(from.Rank+2*dir, from.File))
	}

	targets := make([]chess.Square, 0, len(candidates))
	for _, sq := range candidates {
		if sq.OnBoard() {
			targets = append(targets, sq)
		}
	}
	return targets
}

// CanPawnReach reports whether a pawn of colour on from can reach to.
func CanPawnReach(colour chess.Colour, from, to chess.Square) bool {
	for _, sq := range PawnTargets(colour, from) {
		if sq == to {
			return true
		}
	}
	return false
}
