// Package classifier implements the concurrent, chunk-based NDJSON
// classification engine.
//
// The input stream is read in bounded chunks. Every chunk is cut at
// the last line terminator before dispatch, so no record is ever split
// across workers; the trailing incomplete line is carried over into
// the next read. Each dispatched chunk is classified by one worker
// goroutine into a local category mapping, and a single aggregator
// merges the local mappings into the final Result.
//
// # Boundary correction
//
// Because every dispatched chunk ends exactly at a terminator, the
// worker's line split sees one empty trailing pseudo-line per chunk,
// tallied as one ErrorCategory count of one byte. After the merge the
// aggregator subtracts one count and one byte per chunk from the
// ErrorCategory entry and drops it entirely when nothing real remains.
// The corrected mapping is therefore identical for any chunk size
// large enough to hold the longest record.
//
// # Failure modes
//
//   - A line that is not a JSON object with a string "type" field is
//     tallied under ErrorCategory and never stops the run.
//   - A chunk buffer without any terminator aborts the run with
//     ErrNoTerminator and no mapping.
//   - A worker panic surfaces as ErrWorkerFailed; a worker result that
//     never arrives is logged and treated as an empty contribution.
package classifier
