package classifier

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Sequential classifies r line by line on the calling goroutine. It is
// the reference algorithm for the chunked engine: same classification
// rules, no coordination. Unlike the chunked engine it tolerates input
// without a trailing terminator, charging the final line its raw
// length.
func Sequential(r io.Reader, opts ...Option) (Result, error) {
	e := NewEngine(opts...)
	br := bufio.NewReaderSize(r, 64*1024)
	result := make(Result)
	for {
		line, err := br.ReadBytes(terminator)
		if len(line) > 0 {
			// line still carries its terminator, so its length is the
			// full span the record occupied.
			classifyLine(result, line, len(line), e.log, e.verbose)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return result, nil
			}
			return nil, fmt.Errorf("read line: %w", err)
		}
	}
}
