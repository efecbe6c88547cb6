package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/transaction"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	budgetKey       = "findash:budgets"
	transactionsKey = "findash:transactions"
)

// NewRedisClient connects to redis and verifies the connection.
//
// rawURL is either a redis:// URL or a plain host:port address.
func NewRedisClient(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		opt = &redis.Options{
			Addr: rawURL,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// RedisStore keeps budget limits in a redis hash, one field per category.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ budget.Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: budgetKey}
}

func (s *RedisStore) Get(ctx context.Context, category string) (decimal.Decimal, bool, error) {
	value, err := s.client.HGet(ctx, s.key, category).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: reading budget limit: %w", models.ErrGeneral, err)
	}

	limit, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("budget limit for %q is corrupt: %w", category, err)
	}
	return limit, true, nil
}

func (s *RedisStore) Set(ctx context.Context, category string, limit decimal.Decimal) error {
	if err := budget.ValidateLimit(limit); err != nil {
		return err
	}

	if err := s.client.HSet(ctx, s.key, category, limit.String()).Err(); err != nil {
		return fmt.Errorf("%w: writing budget limit: %w", models.ErrGeneral, err)
	}
	return nil
}

func (s *RedisStore) All(ctx context.Context) (budget.Limits, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: reading budget limits: %w", models.ErrGeneral, err)
	}

	limits := make(budget.Limits, len(values))
	for category, value := range values {
		limit, err := decimal.NewFromString(value)
		if err != nil {
			log.Warn().Str("category", category).Str("value", value).Msg("skipping corrupt budget limit")
			continue
		}
		limits[category] = limit
	}
	return limits, nil
}

// RedisCache caches the normalized transaction list.
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, key: transactionsKey, ttl: ttl}
}

// Load returns the cached list. ok is false on a cache miss.
func (c *RedisCache) Load(ctx context.Context) ([]transaction.Transaction, bool, error) {
	cached, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var transactions []transaction.Transaction
	if err := json.Unmarshal(cached, &transactions); err != nil {
		return nil, false, fmt.Errorf("decoding cached transactions: %w", err)
	}
	return transactions, true, nil
}

func (c *RedisCache) Store(ctx context.Context, transactions []transaction.Transaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
