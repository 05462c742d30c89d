// Package toyjson classifies NDJSON records by their "type" field,
// reporting per-category record counts and byte totals.
//
// Example usage:
//
//	result, err := toyjson.ClassifyFile(context.Background(), "events.ndjson",
//	    toyjson.WithChunkSize(1_000_000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for category, tally := range result {
//	    fmt.Println(category, tally.Count, tally.Bytes)
//	}
package toyjson

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/robertohuertasm/toy-json-parser/internal/classifier"
	"github.com/robertohuertasm/toy-json-parser/internal/input"
)

// Result maps a category label to its tally. The ErrorCategory key
// collects lines that could not be classified.
type Result = classifier.Result

// Tally holds the record count and byte total for one category.
type Tally = classifier.Tally

// Option configures the classification engines.
type Option = classifier.Option

// ErrorCategory is the reserved label for unclassifiable lines.
const ErrorCategory = classifier.ErrorCategory

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = classifier.DefaultChunkSize

// ErrNoTerminator is returned when a chunk buffer holds no line
// terminator: the chunk size is smaller than a record, or the input is
// missing its trailing terminator.
var ErrNoTerminator = classifier.ErrNoTerminator

// WithChunkSize sets the maximum chunk size in bytes.
func WithChunkSize(n int) Option { return classifier.WithChunkSize(n) }

// WithMaxWorkers bounds the number of concurrent classification workers.
func WithMaxWorkers(n int) Option { return classifier.WithMaxWorkers(n) }

// WithLogger sets the logger used for diagnostics.
func WithLogger(log zerolog.Logger) Option { return classifier.WithLogger(log) }

// WithVerboseErrors enables logging of individual line parse failures.
func WithVerboseErrors(v bool) Option { return classifier.WithVerboseErrors(v) }

// Classify reads NDJSON from r with the concurrent chunked engine and
// returns the category mapping. The input must end with a line
// terminator and no single record may exceed the chunk size.
func Classify(ctx context.Context, r io.Reader, opts ...Option) (Result, error) {
	return classifier.NewEngine(opts...).Run(ctx, r)
}

// ClassifyFile opens path, decompressing .gz, .zst and .lz4 files by
// extension, and classifies it with the chunked engine.
func ClassifyFile(ctx context.Context, path string, opts ...Option) (Result, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Classify(ctx, rc, opts...)
}

// Sequential classifies r with the single-threaded reference
// algorithm. It applies the same classification rules as Classify but
// tolerates input without a trailing terminator.
func Sequential(r io.Reader, opts ...Option) (Result, error) {
	return classifier.Sequential(r, opts...)
}

// SequentialFile opens path, decompressing by extension, and
// classifies it with the sequential algorithm.
func SequentialFile(path string, opts ...Option) (Result, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Sequential(rc, opts...)
}
