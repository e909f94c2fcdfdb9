// Package main is an example runner for the user store: it walks one user
// through the store lifecycle and runs the counter workers, logging each
// step. There is no network surface and nothing is persisted.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/userstore/userstore/internal/config"
	"github.com/userstore/userstore/internal/counter"
	"github.com/userstore/userstore/internal/metrics"
	"github.com/userstore/userstore/internal/model"
	"github.com/userstore/userstore/internal/store"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	logger.Info("starting demo",
		"store_capacity", cfg.StoreCapacity,
		"counter_workers", cfg.CounterWorkers,
	)

	if err := runStoreDemo(logger, cfg); err != nil {
		logger.Error("store demo failed", "error", err)
		os.Exit(1)
	}

	if err := runCounterDemo(ctx, logger, cfg); err != nil {
		logger.Error("counter demo failed", "error", err)
		os.Exit(1)
	}

	logger.Info("demo complete")
}

// runStoreDemo walks a single user through the store lifecycle:
// save, find, duplicate save, delete, and the failing retries.
func runStoreDemo(logger *slog.Logger, cfg *config.Config) error {
	recorder := metrics.NewInMemory()
	s := store.NewGuarded(store.NewWithCapacity(cfg.StoreCapacity), recorder)

	user := model.User{
		ID:     1,
		Name:   "John",
		Email:  "john@example.com",
		Active: true,
		Roles:  []model.Role{model.RoleUser},
	}

	if err := s.Save(user); err != nil {
		return err
	}
	logger.Info("saved user", "id", user.ID, "name", user.Name)

	found, err := s.Find(user.ID)
	if err != nil {
		return err
	}
	logger.Info("found user",
		"id", found.ID,
		"email", found.Email,
		"active", found.Active,
		"roles", len(found.Roles),
	)

	// Overwrite is disallowed; a second save with the same id must fail.
	if err := s.Save(user); !errors.Is(err, store.ErrAlreadyExists) {
		return errors.New("duplicate save unexpectedly accepted")
	}
	logger.Info("duplicate save rejected", "id", user.ID)

	if err := s.Delete(user.ID); err != nil {
		return err
	}
	logger.Info("deleted user", "id", user.ID)

	if _, err := s.Find(user.ID); !errors.Is(err, store.ErrNotFound) {
		return errors.New("deleted user unexpectedly found")
	}
	if err := s.Delete(user.ID); !errors.Is(err, store.ErrNotFound) {
		return errors.New("second delete unexpectedly succeeded")
	}
	logger.Info("absent user rejected", "id", user.ID)

	snap := recorder.Snapshot()
	logger.Info("store metrics",
		"users_saved", snap.UsersSaved,
		"users_deleted", snap.UsersDeleted,
		"find_hits", snap.FindHits,
		"find_misses", snap.FindMisses,
	)

	return nil
}

// runCounterDemo launches the configured number of workers, each
// incrementing a shared counter once under its lock.
func runCounterDemo(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	var c counter.Counter

	if err := counter.RunIncrementers(ctx, &c, cfg.CounterWorkers, logger); err != nil {
		return err
	}

	logger.Info("counter finished",
		"workers", cfg.CounterWorkers,
		"value", c.Value(),
	)
	return nil
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
