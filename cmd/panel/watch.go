package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-panel/internal/layout"
	"github.com/grindlemire/go-panel/internal/report"
	"github.com/grindlemire/go-panel/internal/scene"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch scene",
		Short: "Re-run layout whenever the scene file changes",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !cmd.Flags().Changed("debounce") {
				debounce = a.cfg.WatchDebounce
			}
			out := cmd.OutOrStdout()
			opts := a.reportOptions(true)
			return watchScene(ctx, args[0], debounce, a.log, func(res *scene.Result, err error) {
				renderWatch(out, res, err, opts)
			})
		}),
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "wait this long after the last change before re-running")
	return cmd
}

func renderWatch(w io.Writer, res *scene.Result, err error, opts report.Options) {
	fmt.Fprintf(w, "--- %s\n", time.Now().Format(time.TimeOnly))
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	if werr := report.Write(w, []*scene.Result{res}, opts); werr != nil {
		fmt.Fprintf(w, "error: %v\n", werr)
	}
}

// watchScene runs the scene once, then again after every burst of writes to
// it, until ctx is done. The parent directory is watched so editors that
// replace the file on save are still followed.
func watchScene(ctx context.Context, path string, debounce time.Duration, log *zap.Logger, render func(*scene.Result, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	runOnce := func() {
		render(scene.RunFile(path, layout.WithLogger(log.With(zap.String("scene", path)))))
	}
	runOnce()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Debug("scene changed", zap.String("scene", path), zap.String("op", event.Op.String()))
				timer.Reset(debounce)
			}

		case <-timer.C:
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}
