package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"defiskills/internal/model"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container test skipped in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.EnsureSchema(ctx))
	return store
}

func TestNewStoreRequiresDSN(t *testing.T) {
	_, err := NewStore(context.Background(), "")
	assert.Error(t, err)
}

func TestStorePutAndReadSnapshots(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	older := model.LiquiditySnapshot{
		Query:     "pepe",
		TakenAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PairCount: 3,
		MedianFDV: 20,
		Chains:    []string{"ethereum", "solana"},
	}
	newer := model.LiquiditySnapshot{
		Query:              "pepe",
		TakenAt:            time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		PairCount:          1,
		MedianLiquidityUSD: 5,
	}

	require.NoError(t, store.PutSnapshots(ctx, []model.LiquiditySnapshot{older, newer}))

	older.PairCount = 4
	require.NoError(t, store.PutSnapshots(ctx, []model.LiquiditySnapshot{older}))

	got, err := store.RecentSnapshots(ctx, "pepe", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, newer.TakenAt, got[0].TakenAt)
	assert.Empty(t, got[0].Chains)
	assert.Equal(t, 5.0, got[0].MedianLiquidityUSD)
	assert.Equal(t, 4, got[1].PairCount)
	assert.Equal(t, []string{"ethereum", "solana"}, got[1].Chains)
}
