package worker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
)

// drain submits items to a started pool and collects the results by index.
func drain(t *testing.T, pool *Pool, work []WorkItem) map[int]ProcessResult {
	t.Helper()
	pool.Start()
	go func() {
		for _, item := range work {
			pool.Submit(item)
		}
		pool.Close()
	}()

	byIndex := make(map[int]ProcessResult, len(work))
	for r := range pool.Results() {
		if _, dup := byIndex[r.Index]; dup {
			t.Errorf("index %d returned twice", r.Index)
		}
		byIndex[r.Index] = r
	}
	return byIndex
}

func TestPool_DecodesEveryToken(t *testing.T) {
	texts := []string{"e4", "Nxf3+", "O-O", "i9", "4", "e8=Q"}
	got := drain(t, NewPool(DecodeFunc(), WithWorkers(3), WithBufferSize(2)), items(texts...))

	if len(got) != len(texts) {
		t.Fatalf("results = %d; want %d", len(got), len(texts))
	}

	tests := []struct {
		index int
		to    string
		piece chess.PieceType
		err   error
	}{
		{0, "e4", chess.Pawn, nil},
		{1, "f3", chess.Knight, nil},
		{2, "", chess.Empty, nil},
		{3, "", chess.Empty, chesserrors.ErrInvalidNotation},
		{4, "", chess.Empty, chesserrors.ErrMissingFile},
		{5, "e8", chess.Pawn, nil},
	}
	for _, tt := range tests {
		t.Run(texts[tt.index], func(t *testing.T) {
			r := got[tt.index]
			if r.Text != texts[tt.index] {
				t.Fatalf("result %d text = %q; want %q", tt.index, r.Text, texts[tt.index])
			}
			if tt.err != nil {
				var notationErr *chesserrors.NotationError
				if !errors.As(r.Err, &notationErr) || !errors.Is(r.Err, tt.err) {
					t.Errorf("Err = %v; want NotationError wrapping %v", r.Err, tt.err)
				}
				if r.Notation != nil {
					t.Errorf("failed token has Notation %+v", r.Notation)
				}
				return
			}
			if r.Err != nil || r.Notation == nil {
				t.Fatalf("(%+v, %v); want a decoded move", r.Notation, r.Err)
			}
			if got := r.Notation.Destination().String(); got != tt.to {
				t.Errorf("destination = %q; want %q", got, tt.to)
			}
			if r.Notation.PieceType != tt.piece {
				t.Errorf("piece = %v; want %v", r.Notation.PieceType, tt.piece)
			}
		})
	}
}

func TestPool_StopSkipsPendingTokens(t *testing.T) {
	pool := NewPool(DecodeFunc(), WithWorkers(2))
	if pool.IsStopped() {
		t.Fatal("new pool is stopped")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop")
	}

	if got := drain(t, pool, items("e4", "e5", "Nf3")); len(got) != 0 {
		t.Errorf("stopped pool returned %d results; want 0", len(got))
	}
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
		wantFast    bool
	}{
		{"defaults", nil, 1, 10, false},
		{"workers and buffer", []PoolOption{WithWorkers(4), WithBufferSize(32)}, 4, 32, false},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-1)}, 1, 10, false},
		{"fail fast", []PoolOption{WithFailFast()}, 1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(DecodeFunc(), tt.opts...)
			if p.numWorkers != tt.wantWorkers || cap(p.workChan) != tt.wantBuffer || p.failFast != tt.wantFast {
				t.Errorf("pool = (workers %d, buffer %d, failFast %v); want (%d, %d, %v)",
					p.numWorkers, cap(p.workChan), p.failFast, tt.wantWorkers, tt.wantBuffer, tt.wantFast)
			}
		})
	}
}

// TestRun_FailFast stops a long batch at its first invalid token.
func TestRun_FailFast(t *testing.T) {
	texts := []string{"Zz9"}
	for i := 0; i < 200; i++ {
		texts = append(texts, fmt.Sprintf("%c%d", 'a'+i%8, 1+i%8))
	}

	results := Run(items(texts...), DecodeFunc(), nil, WithWorkers(1), WithBufferSize(1), WithFailFast())

	if len(results) == 0 || results[0].Index != 0 || results[0].OK() {
		t.Fatalf("first result = %+v; want the failed Zz9 at index 0", results)
	}
	if !errors.Is(results[0].Err, chesserrors.ErrInvalidNotation) {
		t.Errorf("results[0].Err = %v; want ErrInvalidNotation", results[0].Err)
	}
	if len(results) >= len(texts) {
		t.Errorf("fail-fast processed all %d tokens", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Index <= results[i-1].Index {
			t.Errorf("results out of order at %d", i)
		}
	}
}

func TestRun_WithoutFailFastProcessesAll(t *testing.T) {
	results := Run(items("Zz9", "e4", "i9", "Nf3"), DecodeFunc(), nil, WithWorkers(2))
	if len(results) != 4 {
		t.Fatalf("results = %d; want 4", len(results))
	}
	if results[0].OK() || !results[1].OK() || results[2].OK() || !results[3].OK() {
		t.Errorf("OK() per index = %v %v %v %v; want false true false true",
			results[0].OK(), results[1].OK(), results[2].OK(), results[3].OK())
	}
}
