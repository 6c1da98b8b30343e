package notation

import "github.com/lgbarn/narmi-chess-go/internal/chess"

// Special forms are matched against the whole token.
const (
	castleKingSide      = "O-O"
	castleKingSideZero  = "0-0"
	castleQueenSide     = "O-O-O"
	castleQueenSideZero = "0-0-0"

	resultWhiteWin  = "1-0"
	resultBlackWin  = "0-1"
	resultDrawGlyph = "½–½"
	resultDrawPGN   = "1/2-1/2"
)

// matchSpecialForm sets the castling flag or end-of-game marker on n if text
// is exactly one of the special forms.
func matchSpecialForm(text string, n *Notation) bool {
	switch text {
	case castleKingSide, castleKingSideZero:
		n.KingSideCastle = true
	case castleQueenSide, castleQueenSideZero:
		n.QueenSideCastle = true
	case resultWhiteWin:
		n.EndOfGame = chess.WhiteWin
	case resultBlackWin:
		n.EndOfGame = chess.BlackWin
	case resultDrawGlyph, resultDrawPGN:
		n.EndOfGame = chess.Draw
	default:
		return false
	}
	return true
}
