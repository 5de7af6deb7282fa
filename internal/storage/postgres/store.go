package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"defiskills/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS liquidity_snapshots (
	query                TEXT             NOT NULL,
	taken_at             TIMESTAMPTZ      NOT NULL,
	pair_count           INTEGER          NOT NULL,
	median_fdv           DOUBLE PRECISION NOT NULL,
	median_market_cap    DOUBLE PRECISION NOT NULL,
	median_liquidity_usd DOUBLE PRECISION NOT NULL,
	chains               TEXT[]           NOT NULL DEFAULT '{}',
	created_at           TIMESTAMPTZ      NOT NULL DEFAULT now(),
	PRIMARY KEY (query, taken_at)
)`

// Store provides Postgres persistence for liquidity snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the snapshot table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// PutSnapshots inserts or updates snapshots keyed by query and timestamp.
func (s *Store) PutSnapshots(ctx context.Context, snapshots []model.LiquiditySnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		chains := snap.Chains
		if chains == nil {
			chains = []string{}
		}
		batch.Queue(`
			INSERT INTO liquidity_snapshots (
				query, taken_at, pair_count, median_fdv, median_market_cap, median_liquidity_usd, chains
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (query, taken_at)
			DO UPDATE SET
				pair_count = EXCLUDED.pair_count,
				median_fdv = EXCLUDED.median_fdv,
				median_market_cap = EXCLUDED.median_market_cap,
				median_liquidity_usd = EXCLUDED.median_liquidity_usd,
				chains = EXCLUDED.chains
		`,
			snap.Query,
			snap.TakenAt,
			snap.PairCount,
			snap.MedianFDV,
			snap.MedianMarketCap,
			snap.MedianLiquidityUSD,
			chains,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range snapshots {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// RecentSnapshots returns up to limit snapshots for query, newest first.
func (s *Store) RecentSnapshots(ctx context.Context, query string, limit int) ([]model.LiquiditySnapshot, error) {
	if query == "" {
		return nil, fmt.Errorf("query required")
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.pool.Query(ctx, `
		SELECT query, taken_at, pair_count, median_fdv, median_market_cap, median_liquidity_usd, chains
		FROM liquidity_snapshots
		WHERE query = $1
		ORDER BY taken_at DESC
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LiquiditySnapshot
	for rows.Next() {
		var snap model.LiquiditySnapshot
		if err := rows.Scan(
			&snap.Query,
			&snap.TakenAt,
			&snap.PairCount,
			&snap.MedianFDV,
			&snap.MedianMarketCap,
			&snap.MedianLiquidityUSD,
			&snap.Chains,
		); err != nil {
			return nil, err
		}
		snap.TakenAt = snap.TakenAt.UTC()
		out = append(out, snap)
	}
	return out, rows.Err()
}
