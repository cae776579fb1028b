// Command goldrun manages golden-file test fixture directories.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goldrun/goldrun/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
