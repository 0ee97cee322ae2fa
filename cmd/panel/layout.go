package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-panel/internal/debug"
	"github.com/grindlemire/go-panel/internal/layout"
	"github.com/grindlemire/go-panel/internal/report"
	"github.com/grindlemire/go-panel/internal/scene"
)

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout scene...",
		Short: "Compute and print the bounds of every node",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			results, err := runScenes(cmd.Context(), args, a.log)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), results, a.reportOptions(false))
		}),
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check scene...",
		Short: "Compare computed bounds against each scene's expect block",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			results, err := runScenes(cmd.Context(), args, a.log)
			if err != nil {
				return err
			}
			if err := report.Write(cmd.OutOrStdout(), results, a.reportOptions(true)); err != nil {
				return err
			}
			if failed := report.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d scene(s) failed", failed, len(results))
			}
			return nil
		}),
	}
}

func (a *app) reportOptions(check bool) report.Options {
	return report.Options{
		Format: a.cfg.Format,
		Color:  a.cfg.Color,
		Theme:  a.cfg.Theme,
		Check:  check,
	}
}

// runScenes lays out every scene concurrently. Results keep the order of
// paths; the first load or build error cancels the rest.
func runScenes(ctx context.Context, paths []string, log *zap.Logger) ([]*scene.Result, error) {
	results := make([]*scene.Result, len(paths))
	debug.Log("running %d scene(s)", len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := scene.RunFile(path, layout.WithLogger(log.With(zap.String("scene", path))))
			if err != nil {
				return err
			}
			log.Debug("scene laid out",
				zap.String("scene", path),
				zap.Int("nodes", len(res.Entries)),
				zap.Int("mismatches", len(res.Mismatches)))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
