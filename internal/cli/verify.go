package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/fixture"
	"github.com/goldrun/goldrun/golden"
	"github.com/goldrun/goldrun/runlog"
)

// VerifyResult holds the structural findings for a fixture directory.
type VerifyResult struct {
	Dir     string   `json:"dir"`
	Cases   int      `json:"cases"`
	Missing []string `json:"missing,omitempty"` // inputs without goldens
	Orphans []string `json:"orphans,omitempty"` // goldens without inputs
	Pending []string `json:"pending,omitempty"` // unreviewed .valid.new files
	Clean   bool     `json:"clean"`
}

func (r VerifyResult) findings() int {
	return len(r.Missing) + len(r.Orphans) + len(r.Pending)
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "verify <dir>",
		Short: "Check the structure of a fixture directory",
		Long: `Check a fixture directory for structural problems: inputs without
goldens, goldens without inputs, and unreviewed ".valid.new" files.

Verify does not run any transformation; content mismatches are only
detectable by the tests that own the callback.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, args[0], dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "record the structural run to this history database")

	return cmd
}

func runVerify(opts *RootOptions, dir, dbPath string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	set, err := fixture.Scan(dir)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "scanning fixtures", err))
	}
	formatter.VerboseLog("scanned %d case(s) in %s", len(set.Cases), dir)

	result := VerifyResult{Dir: dir, Cases: len(set.Cases)}
	for _, c := range set.Missing() {
		result.Missing = append(result.Missing, c.Name)
	}
	result.Orphans = set.Orphans
	result.Pending = set.Pending
	result.Clean = result.findings() == 0

	if dbPath != "" {
		if err := recordStructuralRun(cmd, dir, dbPath, set); err != nil {
			return formatter.EmitError(WrapExitError(ExitCommandError, "recording run", err))
		}
		formatter.VerboseLog("recorded run to %s", dbPath)
	}

	if err := formatter.Emit(result, renderVerify(result, colorEnabled(opts.NoColor))); err != nil {
		return err
	}
	if !result.Clean {
		return NewExitError(ExitFailure, fmt.Sprintf("%d finding(s)", result.findings()))
	}
	return nil
}

// recordStructuralRun stores a verify pass as a run report: paired cases
// count as passes, inputs without goldens as missing. Mismatches cannot
// occur without a transformation.
func recordStructuralRun(cmd *cobra.Command, dir, dbPath string, set *fixture.Set) error {
	store, err := runlog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	report := &golden.Report{Dir: dir}
	for _, c := range set.Cases {
		status := golden.StatusPass
		if !c.HasGolden {
			status = golden.StatusMissing
		}
		report.Results = append(report.Results, golden.CaseResult{
			Name:       c.Name,
			GoldenFile: c.GoldenName,
			Status:     status,
		})
	}

	_, err = store.Record(cmd.Context(), dir, report)
	return err
}

func renderVerify(result VerifyResult, color bool) string {
	var b strings.Builder

	if result.Clean {
		fmt.Fprintf(&b, "ok: %d case(s) in %s, no findings\n", result.Cases, result.Dir)
		return b.String()
	}

	fmt.Fprintf(&b, "%d case(s) in %s\n", result.Cases, result.Dir)
	writeFindingList(&b, "missing goldens:", result.Missing, color)
	writeFindingList(&b, "orphan goldens:", result.Orphans, color)
	writeFindingList(&b, "pending goldens:", result.Pending, color)
	fmt.Fprintf(&b, "\n%d finding(s)\n", result.findings())
	return b.String()
}

func writeFindingList(b *strings.Builder, heading string, names []string, color bool) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", styleHeading(heading, color))
	for _, name := range names {
		fmt.Fprintf(b, "  - %s\n", name)
	}
}
