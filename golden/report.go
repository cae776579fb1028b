package golden

import (
	"fmt"
	"strings"
)

// Status classifies the outcome of one fixture case.
type Status string

const (
	StatusPass     Status = "pass"
	StatusMismatch Status = "mismatch"
	StatusMissing  Status = "missing"
)

// CaseResult is the outcome of one fixture pair.
type CaseResult struct {
	// Name is the case name: the input file path relative to the scanned
	// root, including the ".input" suffix.
	Name string `json:"name"`

	// GoldenFile is the relative name of the expected-output file, whether
	// or not it exists.
	GoldenFile string `json:"golden_file"`

	Status Status `json:"status"`

	// Expected and Actual carry the compared line sequences for a
	// mismatch. Expected is absent when the golden file is missing.
	Expected []string `json:"expected,omitempty"`
	Actual   []string `json:"actual,omitempty"`

	// Diff is the rendered line diff for a mismatch. Display only.
	Diff string `json:"diff,omitempty"`

	// PendingFile names the ".valid.new" file written for a missing
	// golden, when generation is enabled.
	PendingFile string `json:"pending_file,omitempty"`
}

// Report is the run report for one harness invocation: one result per
// discovered fixture case, in run order. It is created at the start of a
// run, populated as cases are processed, and consumed at the end to decide
// pass/fail; it does not outlive the invocation that built it.
type Report struct {
	Dir     string       `json:"dir"`
	Results []CaseResult `json:"results"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if res.Status != StatusPass {
			return false
		}
	}
	return true
}

// Failed returns the failing results in run order.
func (r *Report) Failed() []CaseResult {
	var out []CaseResult
	for _, res := range r.Results {
		if res.Status != StatusPass {
			out = append(out, res)
		}
	}
	return out
}

// Render produces the aggregated failure text: one section per failing
// case in run order, followed by a summary. Returns the empty string for a
// fully passing report. The output is deterministic for a given report.
func (r *Report) Render() string {
	failed := r.Failed()
	if len(failed) == 0 {
		return ""
	}

	var b strings.Builder
	for _, res := range failed {
		switch res.Status {
		case StatusMismatch:
			fmt.Fprintf(&b, "=> %q output did not match %q:\n\n%s\n\n", res.Name, res.GoldenFile, res.Diff)
		case StatusMissing:
			fmt.Fprintf(&b, "=> %q for case %q not found\n", res.GoldenFile, res.Name)
			if res.PendingFile != "" {
				fmt.Fprintf(&b, ".. created %q with the current output\n", res.PendingFile)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("===== Failed cases =====\n\n")
	for _, res := range failed {
		fmt.Fprintf(&b, "- %s\n", res.Name)
	}
	fmt.Fprintf(&b, "\n%d of %d cases failed\n", len(failed), len(r.Results))
	return b.String()
}
