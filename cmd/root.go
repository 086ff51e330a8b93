// Package cmd assembles the taskapp command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/app"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/label"
	"github.com/thenoetrevino/taskapp/internal/cli/snapshot"
	"github.com/thenoetrevino/taskapp/internal/cli/styles"
	"github.com/thenoetrevino/taskapp/internal/cli/task"
	"github.com/thenoetrevino/taskapp/internal/config"
	"github.com/thenoetrevino/taskapp/internal/logging"
)

// startupError wraps failures while loading config or opening the session,
// so they are not mistaken for command line errors
type startupError struct {
	err error
}

func (e *startupError) Error() string { return e.err.Error() }
func (e *startupError) Unwrap() error { return e.err }

// session holds what the root command opens before a subcommand runs
type session struct {
	cli       *cli.CLI
	logCloser io.Closer
}

func (s *session) close() error {
	var errs []error
	if s.cli != nil {
		errs = append(errs, s.cli.Close())
	}
	if s.logCloser != nil {
		errs = append(errs, s.logCloser.Close())
	}
	return errors.Join(errs...)
}

// newRootCmd builds the command tree. Subcommands run against a session
// opened in the root's PersistentPreRunE and recorded in s.
func newRootCmd(s *session, opts ...app.Option) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "taskapp",
		Short: "taskapp - a small task and label manager",
		Long: `taskapp keeps a list of tasks and labels, saved between runs.

Each command restores the saved state, applies one change and saves it back.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsSession(cmd) {
				return nil
			}
			if err := open(cmd, s, configPath, opts); err != nil {
				return &startupError{err: err}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/taskapp/config.yaml)")

	root.AddCommand(task.TaskCmd())
	root.AddCommand(label.LabelCmd())
	root.AddCommand(snapshot.ExportCmd())
	root.AddCommand(snapshot.ImportCmd())

	return root
}

// needsSession is false for cobra's built-in help and completion commands
func needsSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion":
			return false
		}
	}
	return true
}

func open(cmd *cobra.Command, s *session, configPath string, opts []app.Option) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logCloser, err := logging.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	s.logCloser = logCloser

	styles.Init(cfg.ColorScheme)

	ctx := cmd.Context()
	cliInstance, err := cli.NewCLI(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	s.cli = cliInstance

	slog.Debug("session opened", "command", cmd.CommandPath(), "storage", cfg.Storage.Path)
	cmd.SetContext(cli.WithCLI(ctx, cliInstance))
	return nil
}

// Run executes the command line in args and releases the session.
// Errors cobra raises while parsing the command line come back as
// cli.UsageError.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...app.Option) error {
	s := &session{}
	root := newRootCmd(s, opts...)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if closeErr := s.close(); closeErr != nil {
		slog.Error("failed to close session", "error", closeErr)
	}

	var startup *startupError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &startup):
		return startup.err
	case cli.IsReported(err):
		return err
	default:
		return &cli.UsageError{Err: err}
	}
}

// Execute runs taskapp with the process arguments
func Execute() error {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
