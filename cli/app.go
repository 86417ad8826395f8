// Package cli implements the mbase command-line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/catalog"
	"github.com/zoobzio/mbase/render"
)

// App holds the shared state of one CLI invocation. It is created once and
// threaded into every command.
type App struct {
	// I/O
	Out      io.Writer
	Err      io.Writer
	In       io.Reader
	ColorOut io.Writer

	Registry *mbase.Registry
	Config   Config
	Logger   *zap.Logger

	// Global flags
	cfgFile  string
	format   render.Format
	logLevel string
	noColor  bool

	isTerminal func(io.Writer) bool
}

// New creates an App over the process streams and the shared registry.
func New() *App {
	return &App{
		Out:        os.Stdout,
		Err:        os.Stderr,
		In:         os.Stdin,
		ColorOut:   colorable.NewColorableStdout(),
		Registry:   catalog.Default(),
		Logger:     zap.NewNop(),
		format:     render.FormatText,
		logLevel:   defaultLogLevel,
		isTerminal: isTerminal,
	}
}

// Execute runs the CLI against the process arguments and returns the exit
// code.
func Execute(ctx context.Context, version string) int {
	return New().Run(ctx, version, os.Args[1:])
}

// Run executes args and maps the outcome to an exit code. Errors not
// already reported by the command are printed to Err.
func (a *App) Run(ctx context.Context, version string, args []string) int {
	root := NewRootCommand(a, version)
	root.SetArgs(args)
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	root.SetIn(a.In)

	err := root.ExecuteContext(ctx)
	_ = a.Logger.Sync()
	if err == nil {
		return mbase.ExitSuccess
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(a.Err, "error: %v\n", err)
	}
	return mbase.ExitCode(err)
}

// init resolves configuration and logging before any command runs.
func (a *App) init(cmd *cobra.Command) error {
	a.Out = cmd.OutOrStdout()
	a.Err = cmd.ErrOrStderr()
	a.In = cmd.InOrStdin()
	if a.Out != os.Stdout {
		a.ColorOut = a.Out
	}

	cfg, path, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.Config = cfg

	level := a.logLevel
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	logger, err := newLogger(level, a.Err)
	if err != nil {
		return err
	}
	a.Logger = logger

	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		f, err := render.ParseFormat(cfg.Format)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		a.format = f
	}

	if path != "" {
		a.Logger.Debug("configuration loaded", zap.String("path", path))
	}
	return nil
}

// useColor reports whether styled output should be written.
func (a *App) useColor() bool {
	if a.noColor {
		return false
	}
	if a.Config.Color != nil && !*a.Config.Color {
		return false
	}
	return a.isTerminal(a.Out)
}

// codecName resolves the codec for a command: an explicit flag wins, then
// the config file, then the flag default.
func (a *App) codecName(cmd *cobra.Command, flag, value string) string {
	if cmd.Flags().Changed(flag) || a.Config.Codec == "" {
		a.Logger.Debug("codec resolved", zap.String("codec", value), zap.String("source", "flag"))
		return value
	}
	a.Logger.Debug("codec resolved", zap.String("codec", a.Config.Codec), zap.String("source", "config"))
	return a.Config.Codec
}

// mode resolves the decode mode the same way codecName does.
func (a *App) mode(cmd *cobra.Command, value mbase.Mode) mbase.Mode {
	if cmd.Flags().Changed("mode") || a.Config.Mode == "" {
		return value
	}
	return mbase.Mode(a.Config.Mode)
}

// codec looks up a codec by name in the app's registry.
func (a *App) codec(name string) (mbase.Codec, error) {
	return a.Registry.Get(name)
}

// reportedError marks a failure whose message the command already wrote.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
