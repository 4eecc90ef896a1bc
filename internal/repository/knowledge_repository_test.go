package repository

import (
	"context"
	"testing"
	"time"

	"rag-mecanico/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const testDimension = 3

func startPgvector(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping pgvector container test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"pgvector/pgvector:pg16",
		postgres.WithDatabase("mecanico"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start pgvector container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(connStr)
	require.NoError(t, err)
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_ = pgxvector.RegisterTypes(ctx, conn)
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestKnowledgeRepository(t *testing.T) {
	pool := startPgvector(t)
	ctx := context.Background()
	repo := NewKnowledgeRepository(pool, "mecanica_test", zap.NewNop())

	t.Run("EnsureIndex is idempotent", func(t *testing.T) {
		require.NoError(t, repo.EnsureIndex(ctx, testDimension))
		require.NoError(t, repo.EnsureIndex(ctx, testDimension))
	})

	t.Run("EnsureIndex rejects a different dimension", func(t *testing.T) {
		err := repo.EnsureIndex(ctx, testDimension+1)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Upsert twice keeps a single record", func(t *testing.T) {
		rec := &models.KnowledgeRecord{
			ID:        "frenos-001",
			Embedding: []float32{1, 0, 0},
			Metadata:  map[string]any{"text": "Espesor mínimo de pastillas: 3mm"},
		}
		require.NoError(t, repo.Upsert(ctx, rec))

		rec.Metadata = map[string]any{"text": "Espesor mínimo de pastillas: 3 mm"}
		require.NoError(t, repo.Upsert(ctx, rec))

		stats, err := repo.Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Count)
		assert.Equal(t, testDimension, stats.Dimension)
		assert.Equal(t, "cosine", stats.Metric)
		assert.Equal(t, "mecanica_test", stats.Name)

		matches, err := repo.Query(ctx, []float32{1, 0, 0}, 5)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Espesor mínimo de pastillas: 3 mm", matches[0].Text())
	})

	t.Run("Query ranks by descending cosine similarity", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &models.KnowledgeRecord{
			ID:        "motor-001",
			Embedding: []float32{0, 1, 0},
			Metadata:  map[string]any{"text": "Temperatura operativa 80-90°C", "source": "manual"},
		}))
		require.NoError(t, repo.Upsert(ctx, &models.KnowledgeRecord{
			ID:        "motor-002",
			Embedding: []float32{0, 0.9, 0.1},
			Metadata:  map[string]any{"text": "Presión de aceite 2-4 bar"},
		}))

		matches, err := repo.Query(ctx, []float32{0, 1, 0}, 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)

		assert.Equal(t, "motor-001", matches[0].ID)
		assert.Equal(t, "motor-002", matches[1].ID)
		assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
		assert.Greater(t, matches[0].Score, matches[1].Score)
		assert.Equal(t, "manual", matches[0].Metadata["source"], "metadata is passed through unmodified")
	})
}
