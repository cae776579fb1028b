package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/diffview"
	"github.com/goldrun/goldrun/fixture"
)

// PendingDiff is the diff between a golden and its pending replacement.
type PendingDiff struct {
	Golden  string `json:"golden"`
	Pending string `json:"pending"`
	// New is true when no golden exists yet; the pending file is entirely
	// new output.
	New  bool   `json:"new"`
	Diff string `json:"diff"`
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <dir>",
		Short: "Show pending goldens against their current goldens",
		Long: `Show a unified diff for every ".valid.new" file in the directory
against the ".valid" file it would replace. Review these before running
"goldrun promote".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(rootOpts, args[0], cmd)
		},
	}
}

func runDiff(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	set, err := fixture.Scan(dir)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "scanning fixtures", err))
	}

	diffs, err := pendingDiffs(dir, set.Pending)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "reading pending goldens", err))
	}

	if len(diffs) == 0 {
		return formatter.Emit(diffs, "no pending goldens\n")
	}

	color := colorEnabled(opts.NoColor)
	var b strings.Builder
	for i, d := range diffs {
		if i > 0 {
			b.WriteString("\n")
		}
		if d.New {
			fmt.Fprintf(&b, "%s\n", styleHeading(fmt.Sprintf("%s (new golden)", d.Pending), color))
		}
		b.WriteString(styleDiff(d.Diff, color))
	}
	return formatter.Emit(diffs, b.String())
}

func pendingDiffs(dir string, pending []string) ([]PendingDiff, error) {
	var diffs []PendingDiff
	for _, rel := range pending {
		base := strings.TrimSuffix(rel, fixture.PendingSuffix)
		goldenRel := base + fixture.GoldenSuffix

		pendingLines, err := fixture.ReadLines(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}

		var goldenLines []string
		isNew := false
		goldenLines, err = fixture.ReadLines(filepath.Join(dir, filepath.FromSlash(goldenRel)))
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
			isNew = true
		}

		text, err := diffview.Unified(goldenRel, rel, goldenLines, pendingLines)
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, PendingDiff{
			Golden:  goldenRel,
			Pending: rel,
			New:     isNew,
			Diff:    text,
		})
	}
	return diffs, nil
}
