// Package output renders decoded moves, rule verdicts and batch reports as
// text or JSON.
package output

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
	"github.com/lgbarn/narmi-chess-go/internal/worker"
)

// JSONNotation represents a decoded move in JSON format.
type JSONNotation struct {
	Text            string `json:"text"`
	SAN             string `json:"san"`
	To              string `json:"to,omitempty"`
	From            string `json:"from,omitempty"`
	Piece           string `json:"piece,omitempty"`
	Capture         bool   `json:"capture,omitempty"`
	Check           bool   `json:"check,omitempty"`
	Checkmate       bool   `json:"checkmate,omitempty"`
	EnPassant       bool   `json:"enPassant,omitempty"`
	KingSideCastle  bool   `json:"kingSideCastle,omitempty"`
	QueenSideCastle bool   `json:"queenSideCastle,omitempty"`
	Promotion       string `json:"promotion,omitempty"`
	Result          string `json:"result,omitempty"`
}

// JSONDecodeError represents a token that failed to decode.
type JSONDecodeError struct {
	Text   string `json:"text"`
	Line   uint   `json:"line,omitempty"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// JSONVerdict represents the outcome of running the rule pipeline on a move.
type JSONVerdict struct {
	Move     string `json:"move"`
	State    string `json:"state"`
	Accepted bool   `json:"accepted"`
	Rule     string `json:"rule,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// JSONReport holds the results of a batch check.
type JSONReport struct {
	Total   int               `json:"total"`
	Valid   int               `json:"valid"`
	Invalid int               `json:"invalid"`
	Errors  []JSONDecodeError `json:"errors,omitempty"`
}

// NotationToJSON converts a decoded move to JSON format.
func NotationToJSON(n *notation.Notation) *JSONNotation {
	jn := &JSONNotation{
		Text:            n.Text,
		SAN:             n.String(),
		Capture:         n.Capture,
		Check:           n.Check,
		Checkmate:       n.Checkmate,
		EnPassant:       n.EnPassant,
		KingSideCastle:  n.KingSideCastle,
		QueenSideCastle: n.QueenSideCastle,
		Result:          n.EndOfGame.Result(),
		Piece:           pieceName(n.MovingPiece()),
	}
	if !n.IsSpecialForm() {
		jn.To = n.Destination().String()
		jn.From = n.Source().String()
	}
	if n.IsPromotion() {
		jn.Promotion = pieceName(n.PromotedTo)
	}
	return jn
}

// DecodeErrorToJSON converts a decode failure to JSON format.
func DecodeErrorToJSON(text string, line uint, err error) JSONDecodeError {
	return JSONDecodeError{
		Text:   text,
		Line:   line,
		Reason: Reason(err),
		Error:  err.Error(),
	}
}

// VerdictToJSON converts a pipeline outcome to JSON format. A nil err is an
// accepted move.
func VerdictToJSON(game chess.Game, move string, err error) *JSONVerdict {
	v := &JSONVerdict{
		Move:     move,
		State:    game.State().String(),
		Accepted: err == nil,
	}
	if err != nil {
		v.Reason = err.Error()
		var moveErr *chesserrors.MoveError
		if errors.As(err, &moveErr) {
			v.Rule = moveErr.Rule
			v.Reason = moveErr.Reason
		}
	}
	return v
}

// ReportToJSON summarises batch results.
func ReportToJSON(results []worker.ProcessResult) *JSONReport {
	report := &JSONReport{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			report.Valid++
			continue
		}
		report.Invalid++
		report.Errors = append(report.Errors, DecodeErrorToJSON(r.Text, r.Line, r.Err))
	}
	return report
}

// Reason returns the stable reason text of a decode or move error.
func Reason(err error) string {
	var moveErr *chesserrors.MoveError
	if errors.As(err, &moveErr) {
		return moveErr.Error()
	}
	var notationErr *chesserrors.NotationError
	if errors.As(err, &notationErr) {
		return notationErr.Reason()
	}
	return err.Error()
}

// writeJSON encodes v with indentation.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// pieceName returns the lower-case piece name, or "" for Empty.
func pieceName(p chess.PieceType) string {
	switch p {
	case chess.King:
		return "king"
	case chess.Queen:
		return "queen"
	case chess.Rook:
		return "rook"
	case chess.Bishop:
		return "bishop"
	case chess.Knight:
		return "knight"
	case chess.Pawn:
		return "pawn"
	}
	return ""
}
