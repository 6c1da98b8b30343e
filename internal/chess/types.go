// Package chess provides the core chess types shared by the decoder, the rule
// pipeline and the move engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota // No piece, also used for "not specified"
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the SAN letter of a piece type. Pawns and empty squares have no letter.
func (p PieceType) Letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// PieceTypeFromLetter decodes one of the letters K, Q, B, R or N.
// A pawn cannot be named by a letter, so 'P' is rejected.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'N':
		return Knight, true
	}
	return Empty, false
}

// EndOfGameType is the result recorded by an end-of-game token.
type EndOfGameType int

const (
	NoEndOfGame EndOfGameType = iota
	WhiteWin
	BlackWin
	Draw
)

// String returns the string representation of an end-of-game type.
func (e EndOfGameType) String() string {
	switch e {
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	}
	return "None"
}

// Result returns the PGN result string (e.g., "1-0") or "" if the game has not ended.
func (e EndOfGameType) Result() string {
	switch e {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return ""
}

// Constants for board dimensions.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Coordinate is a 0-7 rank or file index. NoCoordinate marks an absent value.
type Coordinate int8

// NoCoordinate means the coordinate was not given.
const NoCoordinate Coordinate = -1

// Valid returns true if c lies on the board.
func (c Coordinate) Valid() bool {
	return c >= 0 && c < BoardSize
}

// RankString returns the rank digit ("1".."8") or "" when c is not valid.
func (c Coordinate) RankString() string {
	if !c.Valid() {
		return ""
	}
	return string(rune(RankBase + int(c)))
}

// FileString returns the file letter ("a".."h") or "" when c is not valid.
func (c Coordinate) FileString() string {
	if !c.Valid() {
		return ""
	}
	return string(rune(FileBase + int(c)))
}

// Square is a board square addressed by rank and file.
type Square struct {
	Rank Coordinate
	File Coordinate
}

// NewSquare creates a square. Either coordinate may be NoCoordinate.
func NewSquare(rank, file Coordinate) Square {
	return Square{Rank: rank, File: file}
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	file := Coordinate(int(s[0]) - FileBase)
	rank := Coordinate(int(s[1]) - RankBase)
	if !file.Valid() || !rank.Valid() {
		return Square{}, false
	}
	return Square{Rank: rank, File: file}, true
}

// OnBoard returns true if both coordinates are valid.
func (s Square) OnBoard() bool {
	return s.Rank.Valid() && s.File.Valid()
}

// String returns the algebraic name of the square. Missing parts are omitted.
func (s Square) String() string {
	return s.File.FileString() + s.Rank.RankString()
}
