package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskapp/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	storage storage.Storage
	logger  *slog.Logger
}

// WithStorage supplies the storage backend instead of opening the SQLite
// file named in the config. The App does not close a supplied backend.
func WithStorage(s storage.Storage) Option {
	return func(cfg *appConfig) {
		cfg.storage = s
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
