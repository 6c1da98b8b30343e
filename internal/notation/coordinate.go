package notation

import (
	"strconv"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
)

// Numeral interpretations for the two kinds of coordinate. Ranks are the
// decimal digits '1'..'8'; files are the base-18 digits 'a'..'h' (10..17).
const (
	rankBase   = 10
	rankOffset = 1
	fileBase   = 18
	fileOffset = 10
)

// parseCoordinate reads c as a digit in base and maps offset..offset+7 onto 0..7.
func parseCoordinate(c byte, base, offset int) (chess.Coordinate, bool) {
	digit, err := strconv.ParseUint(string(c), base, 8)
	if err != nil {
		return chess.NoCoordinate, false
	}
	if int(digit) < offset || int(digit) > offset+chess.BoardSize-1 {
		return chess.NoCoordinate, false
	}
	return chess.Coordinate(int(digit) - offset), true
}

// parseRank parses '1'..'8'.
func parseRank(c byte) (chess.Coordinate, bool) {
	return parseCoordinate(c, rankBase, rankOffset)
}

// parseFile parses 'a'..'h'.
func parseFile(c byte) (chess.Coordinate, bool) {
	return parseCoordinate(c, fileBase, fileOffset)
}

// extractCoordinatePair peels an optional file+rank pair off the end of text.
// If the last character is a rank, the character before it may be a file.
// Otherwise the last character itself may be a file. Between zero and two
// characters are consumed.
func extractCoordinatePair(text string) (rank, file chess.Coordinate, rest string) {
	rank, file, rest = chess.NoCoordinate, chess.NoCoordinate, text
	if rest == "" {
		return
	}

	if r, ok := parseRank(rest[len(rest)-1]); ok {
		rank = r
		rest = rest[:len(rest)-1]
		if rest == "" {
			return
		}
		if f, ok := parseFile(rest[len(rest)-1]); ok {
			file = f
			rest = rest[:len(rest)-1]
		}
		return
	}

	if f, ok := parseFile(rest[len(rest)-1]); ok {
		file = f
		rest = rest[:len(rest)-1]
	}
	return
}
