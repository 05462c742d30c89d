package classifier

// ErrorCategory is the reserved label for lines that could not be
// classified: malformed JSON, or a JSON object whose "type" field is
// absent or not a string.
const ErrorCategory = "ERROR"

// Tally accumulates the record count and byte total for one category.
// Bytes covers the exact span of input the records occupied, line
// terminators included, so Bytes is never below Count.
type Tally struct {
	Count int `json:"count"`
	Bytes int `json:"bytes"`
}

// Merge folds other into t. Merging is commutative and associative, so
// partial tallies can be combined in any order.
func (t *Tally) Merge(other Tally) {
	t.Count += other.Count
	t.Bytes += other.Bytes
}

// addLine folds one line spanning n bytes into the tally.
func (t *Tally) addLine(n int) {
	t.Count++
	t.Bytes += n
}

// Result maps a category label to its tally. The ErrorCategory key
// collects every unclassifiable line.
type Result map[string]Tally

// addLine folds one line of n bytes into the entry for cat, creating
// the entry on first reference.
func (r Result) addLine(cat string, n int) {
	t := r[cat]
	t.addLine(n)
	r[cat] = t
}

// merge folds every entry of other into r.
func (r Result) merge(other Result) {
	for cat, t := range other {
		cur := r[cat]
		cur.Merge(t)
		r[cat] = cur
	}
}

// TotalCount returns the number of lines across all categories.
func (r Result) TotalCount() int {
	var n int
	for _, t := range r {
		n += t.Count
	}
	return n
}

// TotalBytes returns the byte total across all categories.
func (r Result) TotalBytes() int {
	var n int
	for _, t := range r {
		n += t.Bytes
	}
	return n
}
