package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/fixture"
)

// NewCleanCommand creates the clean command.
func NewCleanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clean <dir>",
		Short:         "Discard pending goldens",
		Long:          `Delete every ".valid.new" file under the directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(rootOpts, args[0], cmd)
		},
	}
}

func runClean(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	set, err := fixture.Scan(dir)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "scanning fixtures", err))
	}

	var removed []string
	for _, rel := range set.Pending {
		if err := os.Remove(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			return formatter.EmitError(WrapExitError(ExitCommandError, "removing "+rel, err))
		}
		removed = append(removed, rel)
		formatter.VerboseLog("removed %s", rel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "removed %d pending golden(s)\n", len(removed))
	return formatter.Emit(removed, b.String())
}
