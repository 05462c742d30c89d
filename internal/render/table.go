// Package render turns a classification result into terminal output.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/robertohuertasm/toy-json-parser/internal/classifier"
)

// Table writes result to w, as a boxed table when pretty is set and as
// lean pipe-separated lines otherwise. Rows are sorted by category so
// output is stable across runs.
func Table(w io.Writer, result classifier.Result, pretty bool) {
	if pretty {
		prettyTable(w, result)
		return
	}
	leanTable(w, result)
}

func prettyTable(w io.Writer, result classifier.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"TYPE", "TOTAL COUNT", "TOTAL BYTES"})
	for _, cat := range sortedCategories(result) {
		t := result[cat]
		table.Append([]string{cat, strconv.Itoa(t.Count), strconv.Itoa(t.Bytes)})
	}
	table.Render()
}

func leanTable(w io.Writer, result classifier.Result) {
	for _, cat := range sortedCategories(result) {
		t := result[cat]
		fmt.Fprintf(w, "TYPE: %s | TOTAL COUNT: %d | TOTAL BYTES: %d\n", cat, t.Count, t.Bytes)
	}
}

func sortedCategories(result classifier.Result) []string {
	cats := make([]string, 0, len(result))
	for cat := range result {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
