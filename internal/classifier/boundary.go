package classifier

import "bytes"

// terminator separates NDJSON records.
const terminator = '\n'

// splitAtLastTerminator splits buf at the last line terminator. The
// complete part ends just past that terminator and is safe to hand to
// a worker; carry holds the trailing incomplete line and must be
// prefixed onto the next read. ok is false when buf contains no
// terminator at all, which the dispatcher treats as fatal.
func splitAtLastTerminator(buf []byte) (complete, carry []byte, ok bool) {
	i := bytes.LastIndexByte(buf, terminator)
	if i < 0 {
		return nil, buf, false
	}
	return buf[:i+1], buf[i+1:], true
}
