package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/skirmishforge/warband-api/internal/catalog"
	"github.com/skirmishforge/warband-api/internal/config"
	"github.com/skirmishforge/warband-api/internal/engine/mordheim"
	rostersvc "github.com/skirmishforge/warband-api/internal/orchestrators/roster"
	"github.com/skirmishforge/warband-api/internal/pkg/idgen"
	"github.com/skirmishforge/warband-api/internal/redis"
	rosterrepo "github.com/skirmishforge/warband-api/internal/repositories/roster"
)

// app bundles the wired service stack for a single command invocation.
type app struct {
	svc   rostersvc.Service
	close func() error
}

// newApp loads configuration and wires the catalog, engine, storage,
// and orchestrator together.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	var rules *catalog.Catalog
	if cfg.RulesetDir != "" {
		rules, err = catalog.LoadDir(cfg.RulesetDir)
	} else {
		rules, err = catalog.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset: %w", err)
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		UseTLS: cfg.RedisTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := rosterrepo.NewRedis(&rosterrepo.RedisConfig{
		Client: client,
	})
	if err != nil {
		return nil, err
	}

	eng, err := mordheim.New(&mordheim.Config{
		Catalog: rules,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	svc, err := rostersvc.New(&rostersvc.Config{
		Repository: repo,
		Engine:     eng,
		Catalog:    rules,
		IDGen:      idgen.NewPrefixed("roster"),
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{svc: svc, close: client.Close}, nil
}
