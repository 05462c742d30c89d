package classifier

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"
)

// typedLine is the minimal view of a record: only the discriminant
// field matters. A pointer distinguishes an absent field from an
// empty string value.
type typedLine struct {
	Type *string `json:"type"`
}

// classifyChunk splits chunk at the terminator byte and tallies each
// line under its "type" value. Each line is charged its raw length
// plus one byte for the stripped terminator, so category byte totals
// add up to the exact input span.
//
// The dispatcher guarantees chunk ends at a terminator, which makes
// the split produce one empty trailing pseudo-line per chunk. It lands
// in ErrorCategory as one count and one byte and is rectified by the
// aggregator after the merge.
func classifyChunk(chunk []byte, log zerolog.Logger, verbose bool) Result {
	local := make(Result)
	for _, line := range bytes.Split(chunk, []byte{terminator}) {
		classifyLine(local, line, len(line)+1, log, verbose)
	}
	return local
}

// classifyLine parses line as a minimal JSON record and folds n bytes
// into the category named by its "type" field. Malformed JSON and
// records without a string "type" field fold into ErrorCategory;
// neither stops classification.
func classifyLine(r Result, line []byte, n int, log zerolog.Logger, verbose bool) {
	var tl typedLine
	if err := json.Unmarshal(line, &tl); err != nil {
		if verbose {
			log.Debug().Int("bytes", n).Err(err).Msg("unparseable line")
		}
		r.addLine(ErrorCategory, n)
		return
	}
	if tl.Type == nil {
		if verbose {
			log.Debug().Int("bytes", n).Msg(`record has no string "type" field`)
		}
		r.addLine(ErrorCategory, n)
		return
	}
	r.addLine(*tl.Type, n)
}
