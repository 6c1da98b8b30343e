package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
	"github.com/lgbarn/narmi-chess-go/internal/worker"
)

// Writer renders results to an underlying writer as text or JSON.
type Writer struct {
	w    io.Writer
	json bool
}

// NewWriter creates a Writer. When jsonFormat is set every result is written
// as an indented JSON document.
func NewWriter(w io.Writer, jsonFormat bool) *Writer {
	return &Writer{w: w, json: jsonFormat}
}

// Notation writes a decoded move.
func (w *Writer) Notation(n *notation.Notation) error {
	if w.json {
		return writeJSON(w.w, NotationToJSON(n))
	}
	_, err := fmt.Fprintf(w.w, "%s\t%s\n", n.Text, describe(n))
	return err
}

// DecodeError writes a token that failed to decode.
func (w *Writer) DecodeError(text string, line uint, err error) error {
	if w.json {
		return writeJSON(w.w, DecodeErrorToJSON(text, line, err))
	}
	if line > 0 {
		_, err2 := fmt.Fprintf(w.w, "%d: %s\terror: %v\n", line, text, err)
		return err2
	}
	_, err2 := fmt.Fprintf(w.w, "%s\terror: %v\n", text, err)
	return err2
}

// Verdict writes the outcome of validating move against game.
func (w *Writer) Verdict(game chess.Game, move string, err error) error {
	v := VerdictToJSON(game, move, err)
	if w.json {
		return writeJSON(w.w, v)
	}
	if v.Accepted {
		_, werr := fmt.Fprintf(w.w, "%s\taccepted\n", move)
		return werr
	}
	_, werr := fmt.Fprintf(w.w, "%s\trejected by %s: %s\n", move, v.Rule, v.Reason)
	return werr
}

// Report writes a batch summary followed by each failure.
func (w *Writer) Report(results []worker.ProcessResult) error {
	report := ReportToJSON(results)
	if w.json {
		return writeJSON(w.w, report)
	}
	for _, e := range report.Errors {
		if _, err := fmt.Fprintf(w.w, "%d: %s\t%s\n", e.Line, e.Text, e.Reason); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w.w, "%d tokens, %d valid, %d invalid\n", report.Total, report.Valid, report.Invalid)
	return err
}

// Squares writes a list of squares on one line.
func (w *Writer) Squares(squares []chess.Square) error {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	if w.json {
		return writeJSON(w.w, names)
	}
	_, err := fmt.Fprintln(w.w, strings.Join(names, " "))
	return err
}

// describe returns a short "key=value" description of n.
func describe(n *notation.Notation) string {
	switch {
	case n.KingSideCastle:
		return "piece=" + pieceName(n.MovingPiece()) + " castle=kingside"
	case n.QueenSideCastle:
		return "piece=" + pieceName(n.MovingPiece()) + " castle=queenside"
	case n.IsEndOfGame():
		return "result=" + n.EndOfGame.Result()
	}

	parts := []string{
		"piece=" + pieceName(n.MovingPiece()),
		"to=" + n.Destination().String(),
	}
	if from := n.Source().String(); from != "" {
		parts = append(parts, "from="+from)
	}
	if n.Capture {
		parts = append(parts, "capture")
	}
	if n.IsPromotion() {
		parts = append(parts, "promotion="+pieceName(n.PromotedTo))
	}
	if n.EnPassant {
		parts = append(parts, "en-passant")
	}
	if n.Check {
		parts = append(parts, "check")
	}
	if n.Checkmate {
		parts = append(parts, "checkmate")
	}
	return strings.Join(parts, " ")
}

// JSONReach represents whether a pawn can move between two squares.
type JSONReach struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Reachable bool   `json:"reachable"`
}

// Reach writes whether a pawn on from can move to to.
func (w *Writer) Reach(from, to chess.Square, reachable bool) error {
	if w.json {
		return writeJSON(w.w, JSONReach{From: from.String(), To: to.String(), Reachable: reachable})
	}
	verdict := "unreachable"
	if reachable {
		verdict = "reachable"
	}
	_, err := fmt.Fprintf(w.w, "%s-%s\t%s\n", from, to, verdict)
	return err
}
