package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movetext = "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 *\n"

func compress(t *testing.T, format Format, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch format {
	case Zstd:
		w, err = zstd.NewWriter(&buf)
	case Bzip2:
		w, err = bzip2.NewWriter(&buf, nil)
	default:
		return []byte(data)
	}
	require.NoError(t, err)
	_, err = io.WriteString(w, data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, Plain, FormatFromPath("games.pgn"))
	assert.Equal(t, Plain, FormatFromPath("games"))
	assert.Equal(t, Zstd, FormatFromPath("games.pgn.zst"))
	assert.Equal(t, Bzip2, FormatFromPath("games.pgn.BZ2"))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format Format
	}{
		{"plain", "games.pgn", Plain},
		{"zstd", "games.pgn.zst", Zstd},
		{"bzip2", "games.pgn.bz2", Bzip2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := compress(t, tt.format, movetext)
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, data, 0o600))

			f, err := Open(path)
			require.NoError(t, err)
			defer f.Close()

			got, err := io.ReadAll(f)
			require.NoError(t, err)
			assert.Equal(t, movetext, string(got))
			assert.Equal(t, tt.format, f.Format)
			assert.EqualValues(t, len(data), f.Size())
			assert.Positive(t, int64(f.BytesIn()))
			assert.LessOrEqual(t, int64(f.BytesIn()), int64(len(data)))
			assert.EqualValues(t, len(movetext), f.BytesOut())
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pgn"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.pgn.bz2")
	require.NoError(t, os.WriteFile(path, []byte("not bzip2 data"), 0o600))
	f, err := Open(path)
	if err == nil {
		// The bzip2 header may only be checked on the first read.
		_, err = io.ReadAll(f)
		_ = f.Close()
	}
	assert.Error(t, err)
}

func TestNewReader(t *testing.T) {
	f, err := NewReader(bytes.NewReader(compress(t, Zstd, movetext)), Zstd)
	require.NoError(t, err)
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, movetext, string(got))
	assert.Zero(t, f.Size())
	require.NoError(t, f.Close())
}
