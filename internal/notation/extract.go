package notation

import (
	"strings"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
)

// Notation markers.
const (
	enPassantSuffix = "e.p."
	checkSuffix     = "+"
	checkmateSuffix = "#"
	captureMarker   = "x"
	promotionMarker = "="
)

// suffixFlags are the annotations that may trail a move.
type suffixFlags struct {
	check     bool
	checkmate bool
	enPassant bool
}

// stripSuffixes removes trailing "e.p.", "+" and "#" annotations, in any
// order and any number, checking them in that priority on each pass.
func stripSuffixes(text string) (suffixFlags, string) {
	var flags suffixFlags
	for {
		switch {
		case strings.HasSuffix(text, enPassantSuffix):
			flags.enPassant = true
			text = strings.TrimSuffix(text, enPassantSuffix)
		case strings.HasSuffix(text, checkSuffix):
			flags.check = true
			text = strings.TrimSuffix(text, checkSuffix)
		case strings.HasSuffix(text, checkmateSuffix):
			flags.checkmate = true
			text = strings.TrimSuffix(text, checkmateSuffix)
		default:
			return flags, text
		}
	}
}

// extractPromotion removes a trailing "=<piece>" where piece is K, Q, B, R or N.
// Anything else leaves text unchanged.
func extractPromotion(text string) (chess.PieceType, string) {
	n := len(text)
	if n < 2 || text[n-2:n-1] != promotionMarker {
		return chess.Empty, text
	}
	piece, ok := chess.PieceTypeFromLetter(text[n-1])
	if !ok {
		return chess.Empty, text
	}
	return piece, text[:n-2]
}

// extractCapture removes a trailing capture marker.
func extractCapture(text string) (bool, string) {
	if strings.HasSuffix(text, captureMarker) {
		return true, strings.TrimSuffix(text, captureMarker)
	}
	return false, text
}

// extractPieceType removes a trailing piece letter. Pawn moves carry no
// letter, so anything else yields Pawn with text unchanged.
func extractPieceType(text string) (chess.PieceType, string) {
	if text == "" {
		return chess.Pawn, text
	}
	piece, ok := chess.PieceTypeFromLetter(text[len(text)-1])
	if !ok {
		return chess.Pawn, text
	}
	return piece, text[:len(text)-1]
}
