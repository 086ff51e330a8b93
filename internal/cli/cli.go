// Package cli holds the shared plumbing for the taskapp commands: the
// session container, output formatting and exit codes
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskapp/internal/app"
	"github.com/thenoetrevino/taskapp/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the task store
}

// NewCLI opens the App described by cfg and restores the saved snapshot
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	if err := application.Load(ctx); err != nil {
		if closeErr := application.Close(); closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to restore saved state: %w", err)
	}

	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

type cliContextKey struct{}

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// ErrNoCLI is returned when a command runs without an initialized CLI
var ErrNoCLI = errors.New("cli not initialized")

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
