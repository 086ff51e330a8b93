package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskapp/internal/config"
	"github.com/thenoetrevino/taskapp/internal/events"
	"github.com/thenoetrevino/taskapp/internal/storage"
	"github.com/thenoetrevino/taskapp/internal/store"
)

// App holds the session state and the resources backing it.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config

	// The task store; all state changes go through it
	Store *store.TaskStore

	// Event bus the store publishes to
	Events *events.Bus

	storage storage.Storage
	closers []io.Closer
	logger  *slog.Logger

	unsubscribe func()
	watcher     sync.WaitGroup
}

// New creates a new App from cfg. The store starts from the configured seed;
// call Load to replace it with the saved snapshot.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	seed, err := store.ParseSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		logger: logger,
	}

	a.storage = options.storage
	if a.storage == nil {
		db, err := storage.OpenSQLite(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		a.storage = db
		a.closers = append(a.closers, db)
	}

	a.Events = events.NewBus(logger)
	a.watchEvents()

	a.Store = store.New(seed, a.storage,
		store.WithKey(cfg.Storage.Key),
		store.WithPublisher(a.Events),
		store.WithLogger(logger),
	)

	return a, nil
}

// Load restores the saved snapshot, if there is one
func (a *App) Load(ctx context.Context) error {
	return a.Store.RestoreFromPersistence(ctx)
}

// Save persists the current snapshot
func (a *App) Save(ctx context.Context) error {
	return a.Store.Save(ctx)
}

// watchEvents logs every state change at debug level
func (a *App) watchEvents() {
	ch, unsubscribe := a.Events.Subscribe(events.DefaultBufferSize)
	a.unsubscribe = unsubscribe

	a.watcher.Add(1)
	go func() {
		defer a.watcher.Done()
		for ev := range ch {
			a.logger.Debug("state changed",
				"event_type", ev.Type,
				"task_id", ev.TaskID,
				"label_id", ev.LabelID,
				"sequence_id", ev.SequenceID)
		}
	}()
}

// Close stops the event watcher and releases storage opened by New
func (a *App) Close() error {
	a.unsubscribe()
	a.watcher.Wait()

	errs := []error{a.Events.Close()}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
