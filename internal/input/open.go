// Package input opens NDJSON sources for classification, transparently
// decompressing gzip, zstd and lz4 files by extension. Log shippers
// commonly rotate NDJSON files into one of these formats, and the
// classification engines only need an io.Reader over the raw records.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Open opens path for reading. Files ending in .gz, .zst or .lz4 are
// decompressed on the fly; anything else is read as-is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &decompressed{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		rc := zr.IOReadCloser()
		return &decompressed{Reader: rc, closers: []io.Closer{rc, f}}, nil
	case ".lz4":
		return &decompressed{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// decompressed pairs a decoding reader with the closers beneath it.
type decompressed struct {
	io.Reader
	closers []io.Closer
}

// Close closes every layer, returning the first error seen.
func (d *decompressed) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
