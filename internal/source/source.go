// Package source opens movetext files, decompressing them by extension.
package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"

	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
)

// Format is the compression format of a movetext file.
type Format int

const (
	Plain Format = iota
	Zstd
	Bzip2
)

// FormatFromPath selects the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return Zstd
	case ".bz2":
		return Bzip2
	}
	return Plain
}

// counter counts the bytes passing through the wrapped reader.
type counter struct {
	r io.Reader
	n bytesize.ByteSize
}

func (c *counter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += bytesize.ByteSize(uint64(n))
	return n, err
}

// File is an open movetext file. Reads return decompressed data.
type File struct {
	io.Reader
	Path   string
	Format Format

	size    bytesize.ByteSize
	in      *counter // compressed bytes
	out     *counter // decompressed bytes
	closers []func() error
}

// Open opens path and wraps it in the decompressor its extension names.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chesserrors.Wrap(err, "opening movetext")
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, chesserrors.Wrap(err, "opening movetext")
	}

	file := &File{
		Path:    path,
		Format:  FormatFromPath(path),
		size:    bytesize.ByteSize(stat.Size()),
		in:      &counter{r: f},
		closers: []func() error{f.Close},
	}
	if err := file.wrap(); err != nil {
		_ = f.Close()
		return nil, chesserrors.Wrapf(err, "opening %s", path)
	}
	return file, nil
}

// NewReader wraps an already open stream of the given format.
func NewReader(r io.Reader, format Format) (*File, error) {
	file := &File{Format: format, in: &counter{r: r}}
	if err := file.wrap(); err != nil {
		return nil, err
	}
	return file, nil
}

func (f *File) wrap() error {
	var r io.Reader
	switch f.Format {
	case Zstd:
		dec, err := zstd.NewReader(f.in, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return err
		}
		f.closers = append([]func() error{func() error { dec.Close(); return nil }}, f.closers...)
		r = dec
	case Bzip2:
		dec, err := bzip2.NewReader(f.in, nil)
		if err != nil {
			return err
		}
		f.closers = append([]func() error{dec.Close}, f.closers...)
		r = dec
	default:
		r = f.in
	}
	f.out = &counter{r: r}
	f.Reader = f.out
	return nil
}

// Close releases the decompressor and the underlying file.
func (f *File) Close() error {
	var first error
	for _, c := range f.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Size returns the size of the file on disk, or 0 for streams.
func (f *File) Size() bytesize.ByteSize {
	return f.size
}

// BytesIn returns the number of bytes read from the underlying file.
func (f *File) BytesIn() bytesize.ByteSize {
	return f.in.n
}

// BytesOut returns the number of decompressed bytes read.
func (f *File) BytesOut() bytesize.ByteSize {
	return f.out.n
}
