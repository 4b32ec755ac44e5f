package admincli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// App holds the lazily-constructed dependencies shared by all commands.
type App struct {
	Flags GlobalFlags

	log    *slog.Logger
	store  *kvstore.SQLite
	client *shaheen.Client
}

// Setup opens the profile store and builds the API client. Called from the
// root command's PersistentPreRunE.
func (a *App) Setup() error {
	level := slog.LevelWarn
	if a.Flags.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(a.log)

	if dir := filepath.Dir(a.Flags.StateFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	store, err := kvstore.OpenSQLite(a.Flags.StateFile)
	if err != nil {
		return err
	}
	a.store = store

	opts := []shaheen.Option{
		shaheen.WithBaseURL(a.Flags.BaseURL),
		shaheen.WithTokenStore(kvstore.NewTokenStore(store, "")),
		shaheen.WithRetries(a.Flags.Retries),
		shaheen.WithBackoff(
			time.Duration(a.Flags.BackoffInitMS)*time.Millisecond,
			time.Duration(a.Flags.BackoffMaxMS)*time.Millisecond,
		),
		shaheen.WithOnAuthExpired(func() {
			fmt.Fprintln(os.Stderr, "session expired; run `shaheenadmin login` again")
		}),
	}
	if a.Flags.Verbose {
		// The SDK logger redacts the bearer token.
		opts = append(opts, shaheen.WithLogger(func(event string, meta map[string]any) {
			args := make([]any, 0, len(meta)*2)
			for k, v := range meta {
				args = append(args, k, v)
			}
			a.log.Debug(event, args...)
		}))
	}
	a.client = shaheen.New(opts...)
	return nil
}

// Close releases the profile store.
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// Client returns the configured API client.
func (a *App) Client() *shaheen.Client { return a.client }

// Store returns the profile persistence store.
func (a *App) Store() *kvstore.SQLite { return a.store }

// Log returns the CLI logger.
func (a *App) Log() *slog.Logger { return a.log }

// Ctx returns a context with the CLI-configured timeout.
func (a *App) Ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, a.Flags.Timeout())
}
