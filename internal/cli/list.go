package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/fixture"
)

// ListEntry describes one fixture case for list output.
type ListEntry struct {
	Name      string `json:"name"`
	Golden    string `json:"golden"`
	HasGolden bool   `json:"has_golden"`
	Pending   bool   `json:"pending"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <dir>",
		Short: "List fixture cases in run order",
		Long: `List every fixture case under a directory, in the order the harness
will process them: breadth first, lexicographic within each directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
}

func runList(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	set, err := fixture.Scan(dir)
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "scanning fixtures", err))
	}

	entries := make([]ListEntry, 0, len(set.Cases))
	for _, c := range set.Cases {
		entries = append(entries, ListEntry{
			Name:      c.Name,
			Golden:    c.GoldenName,
			HasGolden: c.HasGolden,
			Pending:   c.HasPending,
		})
	}

	var b strings.Builder
	for _, e := range entries {
		marker := ""
		if !e.HasGolden {
			marker = "  (no golden)"
		}
		if e.Pending {
			marker += "  (pending)"
		}
		fmt.Fprintf(&b, "%s%s\n", e.Name, marker)
	}
	return formatter.Emit(entries, b.String())
}
