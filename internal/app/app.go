// Package app wires configuration, logging, the record store and the
// assistant together for the command binaries.
package app

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/shalconnects/balanze-go/internal/assistant"
	"github.com/shalconnects/balanze-go/internal/config"
	"github.com/shalconnects/balanze-go/internal/logging"
	"github.com/shalconnects/balanze-go/internal/store/sqlite"
	"github.com/shalconnects/balanze-go/internal/types"
	"github.com/shalconnects/balanze-go/pkg/balanze"
)

// App holds the long-lived components of a running binary
type App struct {
	Config    *config.Config
	Logger    *logging.Logger
	Store     balanze.Store
	Assistant *assistant.Assistant

	closers []func()
}

// New builds an App from cfg. The config must already be validated.
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Environment,
		}); err != nil {
			logger.Error("Failed to initialize Sentry", "error", err)
		} else {
			a.closers = append(a.closers, func() { sentry.Flush(2 * time.Second) })
		}
	}

	store, err := a.openStore()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	a.Assistant = assistant.New(store, &assistant.Options{Logger: logger})
	return a, nil
}

func (a *App) openStore() (balanze.Store, error) {
	cfg := a.Config.Store

	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite store")
		}
		a.closers = append(a.closers, func() { store.Close() })
		a.Logger.Info("Using SQLite store", "path", cfg.SQLitePath)
		return store, nil

	case config.DriverREST:
		opts := &balanze.ClientOptions{
			BaseURL: cfg.URL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.GetTimeout(),
			Logger:  a.Logger,
			RetryConfig: &types.RetryConfig{
				MaxRetries: cfg.MaxRetries,
				RetryWait:  time.Second,
				MaxWait:    10 * time.Second,
			},
		}
		if cfg.RateLimit > 0 {
			opts.RateLimiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
		}

		client, err := balanze.NewClient(opts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create store client")
		}
		a.Logger.Info("Using REST store", "url", cfg.URL)
		return client, nil
	}

	return nil, errors.Errorf("unknown store driver %q", cfg.Driver)
}

// Close releases the store and flushes error reporting, newest first
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
