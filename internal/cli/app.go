package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"

	"github.com/ganot/punchcard/internal/config"
	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/domain/report"
	"github.com/ganot/punchcard/internal/domain/tracker"
	"github.com/ganot/punchcard/internal/sqlite"
)

var warnColor = color.New(color.FgYellow)

// app bundles the wired services behind each command.
type app struct {
	cfg      config.Config
	db       *sqlite.DB
	projects *project.Service
	tracker  *tracker.Service
	reports  *report.Service
	logger   *slog.Logger
}

// newApp loads configuration, opens the store, and wires the services.
// Callers must Close the returned app.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)

	if dir := filepath.Dir(cfg.Store.Path); dir != "." && cfg.Store.Path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sqlite.New(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	projRepo := sqlite.NewProjectRepository(db)
	intervalRepo := sqlite.NewIntervalRepository(db)

	return &app{
		cfg:      cfg,
		db:       db,
		projects: project.NewService(projRepo, logger),
		tracker:  tracker.NewService(projRepo, intervalRepo, logger),
		reports:  report.NewService(projRepo, intervalRepo, logger),
		logger:   logger,
	}, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// recover restores the running-project slot from any interval left open by a
// previous run, telling the user when it does.
func (a *app) recover(ctx context.Context) error {
	proj, err := a.tracker.Recover(ctx)
	if err != nil {
		return fmt.Errorf("recovering open timer: %w", err)
	}
	if proj != nil {
		warnColor.Fprintf(os.Stderr, "Recovered running timer for %q from a previous session\n", proj.Title)
	}
	return nil
}

// resolveProject looks a project up by title, falling back to a numeric ID
// when no title matches.
func (a *app) resolveProject(ctx context.Context, arg string) (*project.Project, error) {
	proj, err := a.projects.GetByTitle(ctx, arg)
	if err == nil {
		return proj, nil
	}
	if !errors.Is(err, project.ErrProjectNotFound) {
		return nil, err
	}
	if id, convErr := strconv.ParseInt(arg, 10, 64); convErr == nil {
		return a.projects.GetByID(ctx, id)
	}
	return nil, err
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
