package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"dws-console/internal/console"
	"dws-console/internal/fixtures"
	"dws-console/internal/registry"
	"dws-console/internal/session"
	"dws-console/internal/store"
)

// env is what a command gets from withConsole.
type env struct {
	seed    fixtures.Seed
	console *console.Console
	journal *store.Journal
	log     *slog.Logger
}

// withConsole seeds a console from the embedded fixtures, runs fn and releases the
// journal and log file afterwards.
func withConsole(ctx context.Context, app *App, fn func(env) error) error {
	log, closeLog, err := openLogger(app.cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	seed, err := fixtures.Load()
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	creds, err := session.NewCredentials(seed.Users, app.cfg.Password, 0)
	if err != nil {
		return fmt.Errorf("credentials: %w", err)
	}

	e := env{seed: seed, log: log}
	opts := console.Options{
		Session:          session.NewController(creds, app.cfg.LoginDelay, log.With("component", "session")),
		Registry:         registry.New(registry.TaskOverrides(seed.TaskOverrides)),
		Seed:             seed.State,
		Logger:           log.With("component", "console"),
		StrictNavigation: app.cfg.StrictNav,
	}
	if app.cfg.Journal != "" {
		j, err := store.OpenJournal(ctx, app.cfg.Journal)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		e.journal = j
		opts.Journal = j
	}
	e.console = console.New(opts)
	log.Debug("console ready",
		slog.Bool("strict", app.cfg.StrictNav),
		slog.String("journal", app.cfg.Journal),
		slog.Duration("loginDelay", app.cfg.LoginDelay))
	return fn(e)
}

// openLogger returns a text logger writing to path, or a discarding one when path is
// empty. The TUI owns the terminal, so logs never go to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
