package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/golden"
	"github.com/goldrun/goldrun/runlog"
)

// NewHistoryCommand creates the history command and its subcommands.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse recorded fixture runs",
		Long: `List runs recorded to a history database (see "verify --db" and the
golden package's WithRecorder option), newest first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, dbPath, limit, cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "goldrun.db", "history database path")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to list")

	show := &cobra.Command{
		Use:           "show <run-id>",
		Short:         "Show the per-case outcomes of one run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(rootOpts, dbPath, args[0], cmd)
		},
	}
	cmd.AddCommand(show)

	return cmd
}

func openHistory(formatter *OutputFormatter, dbPath string) (*runlog.Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, formatter.EmitError(WrapExitError(ExitCommandError, "history database not found", err))
	}
	store, err := runlog.Open(dbPath)
	if err != nil {
		return nil, formatter.EmitError(WrapExitError(ExitCommandError, "opening history database", err))
	}
	return store, nil
}

func runHistory(opts *RootOptions, dbPath string, limit int, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	store, err := openHistory(formatter, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "querying runs", err))
	}

	var b strings.Builder
	if len(runs) == 0 {
		b.WriteString("no recorded runs\n")
	}
	for _, run := range runs {
		status := "ok"
		if run.Failed > 0 {
			status = fmt.Sprintf("%d failed", run.Failed)
		}
		fmt.Fprintf(&b, "%s  %s  %s  %d case(s), %s\n",
			run.ID, run.StartedAt.Format(time.RFC3339), run.Dir, run.Total, status)
	}
	return formatter.Emit(runs, b.String())
}

func runHistoryShow(opts *RootOptions, dbPath, runID string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	store, err := openHistory(formatter, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Results(cmd.Context(), runID)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "querying results", err))
	}
	if len(results) == 0 {
		return formatter.EmitError(NewExitError(ExitCommandError, fmt.Sprintf("no run %q", runID)))
	}

	color := colorEnabled(opts.NoColor)
	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "%-10s %s\n", res.Status, res.Name)
		if res.Status == string(golden.StatusMismatch) && res.Diff != "" {
			b.WriteString(styleDiff(res.Diff, color))
			b.WriteString("\n")
		}
	}
	return formatter.Emit(results, b.String())
}
