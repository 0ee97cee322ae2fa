package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/grindlemire/go-panel/internal/config"
	"github.com/grindlemire/go-panel/internal/logging"
)

// app holds what the persistent pre-run resolved for the subcommands.
type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
	closeLog   func() error
}

// newRootCmd builds a fresh command tree. Tests call it once per case so
// flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "panel",
		Short:         "panel - dock, flow and table layout for scene files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("panel version {{.Version}}\n")

	addGlobalFlags(root.PersistentFlags(), a)

	root.AddCommand(
		newLayoutCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return root
}

func addGlobalFlags(fs *pflag.FlagSet, a *app) {
	d := config.DefaultConfig()
	fs.StringVarP(&a.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/panel/config.yaml)")
	fs.StringP("format", "f", d.Format, "output format: text, json or yaml")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.String("log-file", d.LogFile, "also write JSON logs to this file")
	fs.String("theme", d.Theme, "text colors: latte, frappe, macchiato or mocha")
	fs.Bool("no-color", false, "disable colored text output")
}

// setup loads the config, applies flag overrides, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFrom(path, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closeLog, err := logging.New(logging.Config{
		Level:    cfg.LogLevel,
		FilePath: cfg.LogFile,
		Console:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	a.log = logger
	a.closeLog = closeLog
	a.log.Debug("config loaded", zap.String("path", path), zap.String("format", cfg.Format))
	return nil
}

// run wraps a subcommand so the logger is flushed whether or not it fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := a.close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args)
	}
}

func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}
