// Package diffview renders line-level diffs for failure display.
//
// The rendered text is display-only. The harness decides pass/fail by
// comparing line sequences directly; diffview is consulted only after a
// mismatch has already been recorded.
package diffview

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Render produces a full-file diff between the expected and actual line
// sequences. Unchanged lines are prefixed with a space, lines present only
// in expected with "-", and lines present only in actual with "+".
//
// Equal sequences render as the empty string.
func Render(expected, actual []string) string {
	if equal(expected, actual) {
		return ""
	}

	matcher := difflib.NewMatcher(expected, actual)
	var rows []string
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, l := range expected[op.I1:op.I2] {
				rows = append(rows, " "+l)
			}
		case 'd':
			for _, l := range expected[op.I1:op.I2] {
				rows = append(rows, "-"+l)
			}
		case 'i':
			for _, l := range actual[op.J1:op.J2] {
				rows = append(rows, "+"+l)
			}
		case 'r':
			for _, l := range expected[op.I1:op.I2] {
				rows = append(rows, "-"+l)
			}
			for _, l := range actual[op.J1:op.J2] {
				rows = append(rows, "+"+l)
			}
		}
	}
	return strings.Join(rows, "\n")
}

// Unified produces a unified-format diff with file headers and context,
// suitable for CLI output. fromName labels the expected side and toName
// the actual side.
func Unified(fromName, toName string, expected, actual []string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        withTerminators(expected),
		B:        withTerminators(actual),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// withTerminators re-attaches the "\n" terminators difflib's unified
// renderer expects on each line.
func withTerminators(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
