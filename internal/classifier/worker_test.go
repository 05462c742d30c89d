package classifier

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyChunk(t *testing.T) {
	chunk := []byte("{\"type\":\"B\",\"foo\":\"bar\"}\n{\"type\":\"A\"}\n")

	local := classifyChunk(chunk, zerolog.Nop(), false)

	require.Len(t, local, 3)
	assert.Equal(t, Tally{Count: 1, Bytes: 25}, local["B"])
	assert.Equal(t, Tally{Count: 1, Bytes: 13}, local["A"])
	// The trailing pseudo-line after the final terminator counts as one
	// error line of one byte until the aggregator rectifies it.
	assert.Equal(t, Tally{Count: 1, Bytes: 1}, local[ErrorCategory])
}

func TestClassifyChunkBytesCoverWholeChunk(t *testing.T) {
	chunk := []byte("  {  \"type\":\"B\", \"foo\":\"bar\"}  \nnot json\n")

	local := classifyChunk(chunk, zerolog.Nop(), false)

	// Pseudo-line included, the tallied bytes span the chunk exactly.
	assert.Equal(t, len(chunk)+1, local.TotalBytes())
	assert.Equal(t, Tally{Count: 1, Bytes: 32}, local["B"], "leading and trailing spaces belong to the record")
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantCat string
	}{
		{name: "string type field", line: `{"type":"C","items":["one","two"]}`, wantCat: "C"},
		{name: "empty string type", line: `{"type":""}`, wantCat: ""},
		{name: "malformed json", line: `{"type":"B" "foo":"bar"}`, wantCat: ErrorCategory},
		{name: "missing type field", line: `{"type1":"B"}`, wantCat: ErrorCategory},
		{name: "non-string type field", line: `{"type":42}`, wantCat: ErrorCategory},
		{name: "null type field", line: `{"type":null}`, wantCat: ErrorCategory},
		{name: "non-object json", line: `["type","A"]`, wantCat: ErrorCategory},
		{name: "empty line", line: ``, wantCat: ErrorCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := make(Result)
			classifyLine(r, []byte(tt.line), len(tt.line)+1, zerolog.Nop(), false)

			require.Len(t, r, 1)
			assert.Equal(t, Tally{Count: 1, Bytes: len(tt.line) + 1}, r[tt.wantCat])
		})
	}
}

func TestClassifyLineVerboseLogging(t *testing.T) {
	// Verbose diagnostics must not disturb classification.
	log := zerolog.New(zerolog.NewTestWriter(t))
	r := make(Result)

	classifyLine(r, []byte("not json"), 9, log, true)
	classifyLine(r, []byte(`{"notype":1}`), 13, log, true)

	assert.Equal(t, Tally{Count: 2, Bytes: 22}, r[ErrorCategory])
}
