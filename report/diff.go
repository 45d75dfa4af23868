package report

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff prints a line diff of two documents, deletions prefixed "-" and
// insertions "+".
func (r *Reporter) Diff(before, after string) {
	diffCfg := diffpatch.New()
	a, b, lineIndex := diffCfg.DiffLinesToChars(before, after)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lineIndex)
	for _, d := range diffs {
		for _, ln := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintf(r.w, "%s\n", r.red("- %s", ln))
			case diffpatch.DiffInsert:
				fmt.Fprintf(r.w, "%s\n", r.green("+ %s", ln))
			case diffpatch.DiffEqual:
				fmt.Fprintf(r.w, "  %s\n", ln)
			}
		}
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
