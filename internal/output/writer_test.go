package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
	"github.com/lgbarn/narmi-chess-go/internal/rules"
	"github.com/lgbarn/narmi-chess-go/internal/worker"
)

func mustDecode(t *testing.T, text string) *notation.Notation {
	t.Helper()
	n, err := notation.Decode(text)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", text, err)
	}
	return n
}

func TestNotationToJSON(t *testing.T) {
	tests := []struct {
		text string
		want *JSONNotation
	}{
		{"e4", &JSONNotation{Text: "e4", SAN: "e4", To: "e4", Piece: "pawn"}},
		{"c2Qxa1+", &JSONNotation{Text: "c2Qxa1+", SAN: "Qc2xa1+", To: "a1", From: "c2", Piece: "queen", Capture: true, Check: true}},
		{"dxe8=N#", &JSONNotation{Text: "dxe8=N#", SAN: "dxe8=N#", To: "e8", From: "d", Piece: "pawn", Capture: true, Checkmate: true, Promotion: "knight"}},
		{"0-0", &JSONNotation{Text: "0-0", SAN: "O-O", Piece: "king", KingSideCastle: true}},
		{"0-1", &JSONNotation{Text: "0-1", SAN: "0-1", Result: "0-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := NotationToJSON(mustDecode(t, tt.text))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NotationToJSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriterNotation_Text(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	for _, text := range []string{"Nxf3+", "O-O-O", "1-0"} {
		if err := w.Notation(mustDecode(t, text)); err != nil {
			t.Fatalf("Notation(%q) error: %v", text, err)
		}
	}

	want := "Nxf3+\tpiece=knight to=f3 capture check\n" +
		"O-O-O\tpiece=king castle=queenside\n" +
		"1-0\tresult=1-0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterNotation_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, true).Notation(mustDecode(t, "e8=Q")); err != nil {
		t.Fatalf("Notation error: %v", err)
	}

	var got JSONNotation
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.Promotion != "queen" || got.To != "e8" {
		t.Errorf("decoded JSON = %+v, want queen promotion on e8", got)
	}
}

func TestWriterDecodeError(t *testing.T) {
	_, err := notation.Decode("i9")
	if err == nil {
		t.Fatal("Decode(\"i9\") succeeded, want error")
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf, false).DecodeError("i9", 4, err); err != nil {
		t.Fatalf("DecodeError error: %v", err)
	}
	if got, want := buf.String(), "4: i9\terror: Invalid notation: i9\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	_, err = notation.Decode("4")
	if got := DecodeErrorToJSON("4", 0, err); got.Reason != "File is missing (or invalid)" {
		t.Errorf("Reason = %q, want the bare missing-file sentence", got.Reason)
	}
}

func TestWriterVerdict(t *testing.T) {
	p := rules.DefaultPipeline()
	ended := chess.RestoreGame(chess.WhiteResigned, nil)

	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	if err := w.Verdict(chess.NewGame(), "e4", p.Validate(chess.NewGame(), "e4")); err != nil {
		t.Fatal(err)
	}
	if err := w.Verdict(ended, "e4", p.Validate(ended, "e4")); err != nil {
		t.Fatal(err)
	}

	want := "e4\taccepted\n" +
		"e4\trejected by game-ended: " + rules.ReasonGameEnded + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestVerdictToJSON(t *testing.T) {
	game := chess.NewGame()
	got := VerdictToJSON(game, "i9", rules.DefaultPipeline().Validate(game, "i9"))
	want := &JSONVerdict{
		Move:   "i9",
		State:  chess.NotStarted.String(),
		Rule:   "board",
		Reason: rules.ReasonOutsideTheBoard,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("VerdictToJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterReport(t *testing.T) {
	var items []worker.WorkItem
	for i, text := range []string{"e4", "i9", "Nf3"} {
		items = append(items, worker.WorkItem{Text: text, Line: 1, Index: i})
	}
	results := worker.Run(items, worker.DecodeFunc(), nil, worker.WithWorkers(2))

	var buf bytes.Buffer
	if err := NewWriter(&buf, false).Report(results); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1: i9\tInvalid notation: i9") {
		t.Errorf("report missing failure line:\n%s", out)
	}
	if !strings.HasSuffix(out, "3 tokens, 2 valid, 1 invalid\n") {
		t.Errorf("report missing summary:\n%s", out)
	}

	report := ReportToJSON(results)
	if report.Total != 3 || report.Valid != 2 || report.Invalid != 1 || len(report.Errors) != 1 {
		t.Errorf("ReportToJSON = %+v", report)
	}
}

func TestWriterSquares(t *testing.T) {
	var buf bytes.Buffer
	squares := []chess.Square{chess.NewSquare(2, 4), chess.NewSquare(3, 4)}
	if err := NewWriter(&buf, false).Squares(squares); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "e3 e4\n" {
		t.Errorf("Squares = %q, want %q", got, "e3 e4\n")
	}
}

func TestWriterReach(t *testing.T) {
	e2, e4, e5 := chess.NewSquare(1, 4), chess.NewSquare(3, 4), chess.NewSquare(4, 4)

	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	if err := w.Reach(e2, e4, true); err != nil {
		t.Fatal(err)
	}
	if err := w.Reach(e2, e5, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("e2-e4\treachable\ne2-e5\tunreachable\n", buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := NewWriter(&buf, true).Reach(e2, e4, true); err != nil {
		t.Fatal(err)
	}
	var got JSONReach
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if diff := cmp.Diff(JSONReach{From: "e2", To: "e4", Reachable: true}, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}
