package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/goldrun/goldrun/fixture"
)

// debounceWindow coalesces bursts of filesystem events (editors typically
// emit several per save) into one re-check.
const debounceWindow = 250 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-verify a fixture directory on every change",
		Long: `Watch a fixture directory and re-run the structural verify check
whenever a file changes. Runs until interrupted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(rootOpts, args[0], cmd)
		},
	}
}

func runWatch(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "creating watcher", err))
	}
	defer watcher.Close()

	if err := watchTree(watcher, dir); err != nil {
		return formatter.EmitError(WrapExitError(ExitCommandError, "watching "+dir, err))
	}

	check := func() {
		// Findings are expected while editing; report them and keep
		// watching instead of exiting.
		if err := runVerify(opts, dir, "", cmd); err != nil {
			formatter.VerboseLog("verify: %v", err)
		}
	}
	check()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			// New subdirectories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name)
				}
			}
			timer.Reset(debounceWindow)
		case <-timer.C:
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.VerboseLog("watch error: %v", err)
		}
	}
}

// watchTree registers dir and every subdirectory with the watcher.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevantEvent reports whether an event can change verify's findings:
// fixture files appearing, disappearing, or being rewritten.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if name == fixture.ManifestName {
		return true
	}
	return strings.HasSuffix(name, fixture.InputSuffix) ||
		strings.HasSuffix(name, fixture.GoldenSuffix) ||
		strings.HasSuffix(name, fixture.PendingSuffix) ||
		!strings.Contains(name, ".") // possibly a new directory
}
