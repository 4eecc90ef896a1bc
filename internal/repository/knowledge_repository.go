package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rag-mecanico/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// ErrDimensionMismatch is returned when an existing index was created with a
// different embedding dimension.
var ErrDimensionMismatch = errors.New("index dimension mismatch")

// KnowledgeRepository stores reference passages in a pgvector table and
// answers cosine similarity queries against it.
type KnowledgeRepository struct {
	db     *pgxpool.Pool
	name   string
	table  string
	sb     squirrel.StatementBuilderType
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, indexName string, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		name:   indexName,
		table:  pgx.Identifier{indexName}.Sanitize(),
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger,
	}
}

// EnsureIndex creates the extension, table and HNSW cosine index if missing.
// Safe to call repeatedly.
func (r *KnowledgeRepository) EnsureIndex(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid index dimension %d", dimension)
	}

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			embedding vector(%d) NOT NULL,
			metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, r.table, dimension),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING hnsw (embedding vector_cosine_ops)`,
			pgx.Identifier{r.name + "_embedding_idx"}.Sanitize(), r.table),
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure index: %w", err)
		}
	}

	existing, err := r.dimension(ctx)
	if err != nil {
		return err
	}
	if existing != dimension {
		return fmt.Errorf("%w: table has %d, expected %d", ErrDimensionMismatch, existing, dimension)
	}

	r.logger.Info("Vector index ready", zap.String("index", r.name), zap.Int("dimension", dimension))
	return nil
}

// Query returns the topK nearest passages by cosine distance, best first.
func (r *KnowledgeRepository) Query(ctx context.Context, embedding []float32, topK int) ([]models.Match, error) {
	vec := pgvector.NewVector(embedding)

	query := r.sb.Select("id", "metadata").
		Column("1 - (embedding <=> ?) AS score", vec).
		From(r.table).
		OrderByClause("embedding <=> ?", vec).
		Limit(uint64(topK))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0, topK)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.Metadata, &m.Score); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

// Upsert inserts the record or overwrites the one with the same id.
func (r *KnowledgeRepository) Upsert(ctx context.Context, rec *models.KnowledgeRecord) error {
	now := rec.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	query := r.sb.Insert(r.table).
		Columns("id", "embedding", "metadata", "created_at", "updated_at").
		Values(rec.ID, pgvector.NewVector(rec.Embedding), rec.Metadata, createdAt, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET embedding = EXCLUDED.embedding, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to upsert %q: %w", rec.ID, err)
	}
	return nil
}

// Describe reports record count and dimension.
func (r *KnowledgeRepository) Describe(ctx context.Context) (*models.IndexStats, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(r.table).ToSql()
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	dim, err := r.dimension(ctx)
	if err != nil {
		return nil, err
	}

	return &models.IndexStats{
		Name:      r.name,
		Count:     count,
		Dimension: dim,
		Metric:    "cosine",
	}, nil
}

// dimension reads the declared vector(N) size; pgvector stores N as the typmod.
func (r *KnowledgeRepository) dimension(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("atttypmod").
		From("pg_attribute").
		Where(squirrel.Expr("attrelid = to_regclass(?)", r.table)).
		Where(squirrel.Eq{"attname": "embedding"}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var dim int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&dim); err != nil {
		return 0, fmt.Errorf("failed to read index dimension: %w", err)
	}
	return dim, nil
}
