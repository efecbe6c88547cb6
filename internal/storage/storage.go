// Package storage opens the configured persistence backends.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/config"
	"github.com/findash/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Storage bundles the opened backends.
type Storage struct {
	// Budgets stores the budget limits
	Budgets budget.Store

	// Cache caches the transaction list. It is nil when caching is disabled.
	Cache *RedisCache

	ping    func(context.Context) error
	closers []func() error
}

// Open opens the budget backend selected by cfg.BudgetBackend and, if
// REDIS_URL is set and CACHE_TTL is positive, the transaction cache.
func Open(ctx context.Context, cfg config.Config) (*Storage, error) {
	s := &Storage{
		ping: func(context.Context) error { return nil },
	}

	var client *redis.Client
	if cfg.RedisURL != "" && (cfg.BudgetBackend == config.BackendRedis || cfg.CacheTTL > 0) {
		c, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		client = c
		s.closers = append(s.closers, client.Close)
	}

	switch cfg.BudgetBackend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("could not create data directory: %w", err)
		}

		if err := models.Connect(cfg.SQLitePath()); err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.Budgets = models.BudgetStore{}
		s.closers = append(s.closers, models.Close)
		s.ping = func(ctx context.Context) error {
			sqlDB, err := models.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}

	case config.BackendRedis:
		if client == nil {
			return nil, errors.New("the redis backend needs REDIS_URL to be set")
		}
		s.Budgets = NewRedisStore(client)
		s.ping = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}

	case config.BackendPostgres:
		store, err := OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.Budgets = store
		s.closers = append(s.closers, store.Close)
		s.ping = func(ctx context.Context) error {
			return store.db.PingContext(ctx)
		}

	case config.BackendMemory:
		s.Budgets = budget.NewMemoryStore()

	default:
		return nil, errors.Join(fmt.Errorf("unknown budget backend '%s'", cfg.BudgetBackend), s.Close())
	}

	if client != nil && cfg.CacheTTL > 0 {
		s.Cache = NewRedisCache(client, cfg.CacheTTL)
	}

	log.Info().Str("backend", cfg.BudgetBackend).Bool("cache", s.Cache != nil).Msg("storage")
	return s, nil
}

// Ping verifies that the budget backend is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close closes all backends in reverse order of opening.
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
