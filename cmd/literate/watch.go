package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/sources"
)

const settleDelay = 200 * time.Millisecond

// Watch compiles the script, then again each time it changes, until ctx is
// done. Compile errors are logged and do not stop watching.
type Watch func(ctx context.Context, location string, args []string) error

func (Module) Watch(
	compile Compile,
	logger logs.Logger,
) Watch {
	return func(ctx context.Context, location string, args []string) error {
		if location == sources.Stdin || sources.IsRemote(location) {
			return ErrNotWatchable
		}
		path, err := filepath.Abs(location)
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		// editors often replace the file, so watch its directory
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return err
		}

		run := func() {
			if _, err := compile(ctx, location, args); err != nil {
				logger.ErrorContext(ctx, "compile", "error", err)
			}
		}
		run()

		timer := time.NewTimer(settleDelay)
		timer.Stop()
		defer timer.Stop()

		for {
			select {

			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				timer.Reset(settleDelay)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.WarnContext(ctx, "watch", "error", err)

			case <-timer.C:
				logger.InfoContext(ctx, "changed", "path", path)
				run()

			}
		}
	}
}
