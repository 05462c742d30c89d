package classifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = 1_000_000

// ErrNoTerminator is the fatal boundary condition: an accumulated
// chunk buffer holds no line terminator. Either the chunk size is
// smaller than one serialized record, or the input is missing its
// trailing terminator. No mapping is produced when it occurs.
var ErrNoTerminator = errors.New("no line terminator in chunk: chunk size smaller than a record, or input missing trailing terminator")

// ErrWorkerFailed reports that a classification worker panicked. The
// engine never produces a partial mapping when this happens.
var ErrWorkerFailed = errors.New("classification worker failed")

// Option configures an Engine.
type Option func(*Engine)

// WithChunkSize sets the maximum chunk size in bytes. Values below one
// fall back to DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(e *Engine) { e.chunkSize = n }
}

// WithMaxWorkers bounds the number of concurrent classification
// workers. Values below one fall back to the number of CPUs.
func WithMaxWorkers(n int) Option {
	return func(e *Engine) { e.maxWorkers = n }
}

// WithLogger sets the logger used for per-line diagnostics and
// degraded-path warnings. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithVerboseErrors enables logging of individual line parse failures.
func WithVerboseErrors(v bool) Option {
	return func(e *Engine) { e.verbose = v }
}

// Engine classifies an NDJSON stream by reading it in bounded chunks,
// cutting every chunk at a line boundary, and fanning classification
// out to worker goroutines. Workers never share state: each one owns
// its chunk, builds a local mapping, and delivers it on a channel for
// the single-owner merge.
type Engine struct {
	chunkSize  int
	maxWorkers int
	verbose    bool
	log        zerolog.Logger
}

// NewEngine creates an engine with the given options applied over the
// defaults.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		chunkSize:  DefaultChunkSize,
		maxWorkers: runtime.GOMAXPROCS(0),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.chunkSize <= 0 {
		e.chunkSize = DefaultChunkSize
	}
	if e.maxWorkers <= 0 {
		e.maxWorkers = runtime.GOMAXPROCS(0)
	}
	return e
}

// Run reads r to the end and returns the merged category mapping.
//
// Chunk assembly is strictly sequential: the carry-over left after a
// read is prefixed onto the next one, so no record is ever split
// across workers. Dispatch blocks when all worker slots are busy,
// which bounds memory at roughly maxWorkers chunks. On the fatal
// boundary condition any already-dispatched work is drained and
// discarded and no mapping is returned.
func (e *Engine) Run(ctx context.Context, r io.Reader) (Result, error) {
	var (
		wg       sync.WaitGroup
		failures atomic.Int64
		chunks   int
		carry    []byte
		fatal    error
	)
	slots := make(chan struct{}, e.maxWorkers)
	results := make(chan Result, e.maxWorkers)

	// Single-owner aggregation: only this goroutine touches merged, so
	// classification runs lock-free. The merge is commutative, making
	// the outcome independent of worker completion order.
	merged := make(Result)
	received := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		for local := range results {
			merged.merge(local)
			received++
		}
	}()

read:
	for {
		select {
		case <-ctx.Done():
			fatal = ctx.Err()
			break read
		default:
		}

		buf := make([]byte, 0, e.chunkSize)
		buf = append(buf, carry...)
		n, rerr := io.ReadFull(r, buf[len(buf):e.chunkSize])
		buf = buf[:len(buf)+n]
		if rerr != nil && rerr != io.EOF && rerr != io.ErrUnexpectedEOF {
			fatal = fmt.Errorf("read chunk: %w", rerr)
			break
		}
		if len(buf) == 0 {
			break
		}

		complete, rest, ok := splitAtLastTerminator(buf)
		if !ok {
			fatal = ErrNoTerminator
			break
		}
		carry = append([]byte(nil), rest...)

		// A chunk that would dispatch zero bytes carries no pseudo-line
		// and must stay out of the correction count.
		if len(complete) == 0 {
			continue
		}
		chunks++
		wg.Add(1)
		slots <- struct{}{}
		go func(chunk []byte) {
			defer wg.Done()
			defer func() { <-slots }()
			defer func() {
				if p := recover(); p != nil {
					failures.Add(1)
					e.log.Error().Interface("panic", p).Msg("classification worker failed")
				}
			}()
			results <- classifyChunk(chunk, e.log, e.verbose)
		}(complete)
	}

	wg.Wait()
	close(results)
	<-done

	if fatal != nil {
		return nil, fatal
	}
	if n := failures.Load(); n > 0 {
		return nil, fmt.Errorf("%w: %d worker(s) panicked", ErrWorkerFailed, n)
	}
	if received < chunks {
		// Lost contributions count as empty mappings; only chunks that
		// actually reported carry a pseudo-line to rectify.
		e.log.Warn().Int("dispatched", chunks).Int("received", received).Msg("missing worker results")
	}

	rectifyBoundaryArtifacts(merged, received)
	return merged, nil
}

// rectifyBoundaryArtifacts removes the artifact the chunking scheme
// introduces: every dispatched chunk ends at a terminator, so line
// splitting records one spurious empty line of exactly one byte per
// chunk under ErrorCategory. When the corrected byte total reaches
// zero the entry held nothing but artifacts and is dropped.
func rectifyBoundaryArtifacts(r Result, chunks int) {
	if chunks == 0 {
		return
	}
	t, ok := r[ErrorCategory]
	if !ok {
		return
	}
	t.Count -= chunks
	t.Bytes -= chunks
	if t.Bytes <= 0 {
		delete(r, ErrorCategory)
		return
	}
	r[ErrorCategory] = t
}
