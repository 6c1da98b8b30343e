// Package notation decodes a single algebraic (PGN-style) move token into a
// typed Notation record.
package notation

import (
	"strings"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
)

// Notation is the decoded form of one move token.
//
// A token is either a coordinate move (destination, piece, capture,
// disambiguation, promotion and suffix flags) or a special form (castling or
// an end-of-game result). The two modes never mix: for a special form every
// coordinate field is NoCoordinate, PieceType and PromotedTo are Empty and
// Capture is false.
type Notation struct {
	// The original token text.
	Text string

	// Destination square. Always present for a coordinate move.
	ToRank chess.Coordinate
	ToFile chess.Coordinate

	// The moving piece. Pawn when no letter is given; Empty for special forms.
	PieceType chess.PieceType

	Capture bool

	// Disambiguating source rank and file (e.g. "bRd1" or "c2Qa1"), if given.
	FromRank chess.Coordinate
	FromFile chess.Coordinate

	Check     bool
	Checkmate bool
	EnPassant bool

	KingSideCastle  bool
	QueenSideCastle bool

	// The piece a pawn promotes to, Empty if not a promotion.
	PromotedTo chess.PieceType

	// The recorded result, NoEndOfGame unless the token is a result.
	EndOfGame chess.EndOfGameType
}

// newNotation returns a record for text with every optional field absent.
func newNotation(text string) *Notation {
	return &Notation{
		Text:       text,
		ToRank:     chess.NoCoordinate,
		ToFile:     chess.NoCoordinate,
		PieceType:  chess.Empty,
		FromRank:   chess.NoCoordinate,
		FromFile:   chess.NoCoordinate,
		PromotedTo: chess.Empty,
		EndOfGame:  chess.NoEndOfGame,
	}
}

// IsCastle returns true if the token is a castling move.
func (n *Notation) IsCastle() bool {
	return n.KingSideCastle || n.QueenSideCastle
}

// IsEndOfGame returns true if the token records a game result.
func (n *Notation) IsEndOfGame() bool {
	return n.EndOfGame != chess.NoEndOfGame
}

// IsSpecialForm returns true for castling and end-of-game tokens.
func (n *Notation) IsSpecialForm() bool {
	return n.IsCastle() || n.IsEndOfGame()
}

// IsPromotion returns true if the move promotes a pawn.
func (n *Notation) IsPromotion() bool {
	return n.PromotedTo != chess.Empty
}

// Destination returns the destination square.
func (n *Notation) Destination() chess.Square {
	return chess.NewSquare(n.ToRank, n.ToFile)
}

// Source returns the (possibly partial) disambiguating source square.
func (n *Notation) Source() chess.Square {
	return chess.NewSquare(n.FromRank, n.FromFile)
}

// String returns the canonical SAN text of the decoded move. It differs from
// Text only in spelling: "0-0" becomes "O-O" and suffixes are normalised.
func (n *Notation) String() string {
	switch {
	case n.KingSideCastle:
		return castleKingSide
	case n.QueenSideCastle:
		return castleQueenSide
	case n.IsEndOfGame():
		return n.EndOfGame.Result()
	}

	var sb strings.Builder
	sb.WriteString(n.PieceType.Letter())
	sb.WriteString(n.Source().String())
	if n.Capture {
		sb.WriteString(captureMarker)
	}
	sb.WriteString(n.Destination().String())
	if n.IsPromotion() {
		sb.WriteString(promotionMarker)
		sb.WriteString(n.PromotedTo.Letter())
	}
	if n.EnPassant {
		sb.WriteString(enPassantSuffix)
	}
	if n.Checkmate {
		sb.WriteString(checkmateSuffix)
	} else if n.Check {
		sb.WriteString(checkSuffix)
	}
	return sb.String()
}
