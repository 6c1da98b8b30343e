package notation

import (
	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/errors"
)

// Decode parses a move token such as "e4", "Nxf3", "bRd1", "e8=Q+", "O-O" or
// "1-0". The token is peeled from the right: suffixes, promotion,
// destination, capture marker, piece letter and finally the disambiguating
// source. Anything left over is an error.
//
// Failures are returned as *errors.NotationError wrapping one of
// errors.ErrInvalidNotation, errors.ErrMissingRankAndFile,
// errors.ErrMissingRank or errors.ErrMissingFile.
func Decode(text string) (*Notation, error) {
	n := newNotation(text)
	if matchSpecialForm(text, n) {
		return n, nil
	}

	flags, rest := stripSuffixes(text)
	promotedTo, rest := extractPromotion(rest)
	toRank, toFile, rest := extractCoordinatePair(rest)
	capture, rest := extractCapture(rest)
	piece, rest := extractPieceType(rest)
	fromRank, fromFile, rest := extractCoordinatePair(rest)

	if rest != "" {
		return nil, &errors.NotationError{Err: errors.ErrInvalidNotation, Text: text}
	}

	n.ToRank = toRank
	n.ToFile = toFile
	n.PieceType = piece
	n.Capture = capture
	n.FromRank = fromRank
	n.FromFile = fromFile
	n.Check = flags.check
	n.Checkmate = flags.checkmate
	n.EnPassant = flags.enPassant
	n.PromotedTo = promotedTo

	if err := n.validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// validate checks that a coordinate move has a complete destination.
func (n *Notation) validate() error {
	if n.IsSpecialForm() {
		return nil
	}

	var err error
	switch {
	case !n.ToRank.Valid() && !n.ToFile.Valid():
		err = errors.ErrMissingRankAndFile
	case !n.ToRank.Valid():
		err = errors.ErrMissingRank
	case !n.ToFile.Valid():
		err = errors.ErrMissingFile
	default:
		return nil
	}
	return &errors.NotationError{Err: err, Text: n.Text}
}

// MovingPiece returns the piece that moves. Castling moves the king; results
// move nothing and return Empty.
func (n *Notation) MovingPiece() chess.PieceType {
	if n.IsCastle() {
		return chess.King
	}
	return n.PieceType
}
