package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/fixture"
)

// NewPromoteCommand creates the promote command.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "promote <dir> [case...]",
		Short: "Accept pending goldens",
		Long: `Rename reviewed ".valid.new" files to ".valid", making them the new
goldens. Name specific cases by base name ("a", "sub/b") or input name
("a.input"), or pass --all to promote every pending golden.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromote(rootOpts, args[0], args[1:], all, cmd)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "promote every pending golden")

	return cmd
}

func runPromote(opts *RootOptions, dir string, names []string, all bool, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	if len(names) == 0 && !all {
		return formatter.EmitError(NewExitError(ExitCommandError, "name the cases to promote, or pass --all"))
	}

	set, err := fixture.Scan(dir)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "scanning fixtures", err))
	}

	pendingByBase := make(map[string]string, len(set.Pending))
	for _, rel := range set.Pending {
		pendingByBase[strings.TrimSuffix(rel, fixture.PendingSuffix)] = rel
	}

	var bases []string
	if all {
		for _, rel := range set.Pending {
			bases = append(bases, strings.TrimSuffix(rel, fixture.PendingSuffix))
		}
	} else {
		for _, name := range names {
			base := strings.TrimSuffix(name, fixture.InputSuffix)
			if _, ok := pendingByBase[base]; !ok {
				return formatter.EmitError(NewExitError(ExitCommandError,
					fmt.Sprintf("no pending golden for %q", name)))
			}
			bases = append(bases, base)
		}
	}

	var promoted []string
	for _, base := range bases {
		from := filepath.Join(dir, filepath.FromSlash(base+fixture.PendingSuffix))
		to := filepath.Join(dir, filepath.FromSlash(base+fixture.GoldenSuffix))
		if err := os.Rename(from, to); err != nil {
			return formatter.EmitError(WrapExitError(ExitCommandError, "promoting "+base, err))
		}
		promoted = append(promoted, base+fixture.GoldenSuffix)
		formatter.VerboseLog("promoted %s", base+fixture.GoldenSuffix)
	}

	var b strings.Builder
	for _, name := range promoted {
		fmt.Fprintf(&b, "promoted: %s\n", name)
	}
	if len(promoted) == 0 {
		b.WriteString("nothing to promote\n")
	}
	return formatter.Emit(promoted, b.String())
}
