package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS budget_limits (
		category   TEXT PRIMARY KEY,
		amount     NUMERIC(20, 8) NOT NULL CHECK (amount >= 0),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// PostgresStore keeps budget limits in a PostgreSQL table.
type PostgresStore struct {
	db *sql.DB
}

var _ budget.Store = (*PostgresStore)(nil)

// OpenPostgres connects to databaseURL and creates the schema if needed.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Get(ctx context.Context, category string) (decimal.Decimal, bool, error) {
	var amount string
	err := s.db.QueryRowContext(ctx, `SELECT amount::text FROM budget_limits WHERE category = $1`, category).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: reading budget limit: %w", models.ErrGeneral, err)
	}

	limit, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, false, err
	}
	return limit, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, category string, limit decimal.Decimal) error {
	if err := budget.ValidateLimit(limit); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_limits (category, amount, updated_at) VALUES ($1, $2::numeric, now())
		ON CONFLICT (category) DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
		category, limit.String())
	if err != nil {
		return fmt.Errorf("%w: writing budget limit: %w", models.ErrGeneral, err)
	}
	return nil
}

func (s *PostgresStore) All(ctx context.Context) (budget.Limits, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, amount::text FROM budget_limits`)
	if err != nil {
		return nil, fmt.Errorf("%w: reading budget limits: %w", models.ErrGeneral, err)
	}
	defer rows.Close()

	limits := make(budget.Limits)
	for rows.Next() {
		var category, amount string
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}

		limit, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, err
		}
		limits[category] = limit
	}

	return limits, rows.Err()
}
