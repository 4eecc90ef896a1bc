package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"rag-mecanico/internal/models"
	"rag-mecanico/pkg/config"

	"go.uber.org/zap"
)

const defaultTopK = 5

// VectorIndex stores embedded passages and answers nearest-neighbour queries.
type VectorIndex interface {
	EnsureIndex(ctx context.Context, dimension int) error
	Query(ctx context.Context, embedding []float32, topK int) ([]models.Match, error)
	Upsert(ctx context.Context, rec *models.KnowledgeRecord) error
	Describe(ctx context.Context) (*models.IndexStats, error)
}

var errStoreNotConfigured = errors.New("vector store not configured")

// RAGService is the retrieval side of the assistant: it embeds questions,
// searches the index and writes new reference passages.
type RAGService struct {
	embedder  *EmbeddingService
	index     VectorIndex
	config    *config.RAGConfig
	indexName string
	agentName string
	logger    *zap.Logger

	mu         sync.Mutex
	indexReady bool
}

// NewRAGService builds the service. index may be nil when no vector store is
// configured; every retrieval then reports ErrUnavailable.
func NewRAGService(
	embedder *EmbeddingService,
	index VectorIndex,
	cfg *config.RAGConfig,
	indexName string,
	agentName string,
	logger *zap.Logger,
) *RAGService {
	return &RAGService{
		embedder:  embedder,
		index:     index,
		config:    cfg,
		indexName: indexName,
		agentName: agentName,
		logger:    logger,
	}
}

// EnsureReady loads the embedding model and creates the index if needed.
// Safe to call concurrently and repeatedly; failures are retried next time.
func (s *RAGService) EnsureReady(ctx context.Context) error {
	if s.index == nil {
		return unavailable(errStoreNotConfigured)
	}
	if err := s.embedder.EnsureReady(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexReady {
		return nil
	}
	if err := s.index.EnsureIndex(ctx, s.embedder.Dimension()); err != nil {
		s.logger.Error("Failed to initialize vector index", zap.String("index", s.indexName), zap.Error(err))
		return unavailable(err)
	}
	s.indexReady = true
	return nil
}

// Search returns the topK passages closest to query, best first.
// topK <= 0 uses the configured default.
func (s *RAGService) Search(ctx context.Context, query string, topK int) ([]models.Match, error) {
	if err := s.EnsureReady(ctx); err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = s.config.TopK
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, unavailable(err)
	}

	matches, err := s.index.Query(ctx, vec, topK)
	if err != nil {
		s.logger.Error("Vector search failed", zap.Error(err))
		return nil, unavailable(err)
	}

	s.logger.Info("Knowledge search completed",
		zap.String("query", query),
		zap.Int("results", len(matches)),
	)

	return matches, nil
}

// AddKnowledge embeds text and stores it under id, replacing any previous
// record with the same id. Provenance fields overwrite caller metadata.
func (s *RAGService) AddKnowledge(ctx context.Context, id, text string, metadata map[string]any) (*models.KnowledgeRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewValidationError("id", "is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text", "is required")
	}

	text = sanitizeUTF8(text)

	if err := s.EnsureReady(ctx); err != nil {
		return nil, err
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meta := make(map[string]any, len(metadata)+4)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[models.MetadataText] = text
	meta[models.MetadataAgent] = s.agentName
	meta[models.MetadataCategory] = models.KnowledgeCategory
	meta[models.MetadataAddedDate] = now.Format(time.RFC3339)

	rec := &models.KnowledgeRecord{
		ID:        id,
		Embedding: vec,
		Metadata:  meta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.index.Upsert(ctx, rec); err != nil {
		s.logger.Error("Failed to store knowledge", zap.String("id", id), zap.Error(err))
		return nil, unavailable(err)
	}

	s.logger.Info("Knowledge added", zap.String("id", id), zap.Int("chars", len(text)))
	return rec, nil
}

// Stats describes the index.
func (s *RAGService) Stats(ctx context.Context) (*models.IndexStats, error) {
	if err := s.EnsureReady(ctx); err != nil {
		return nil, err
	}
	stats, err := s.index.Describe(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return stats, nil
}

// Configured reports whether a vector store was supplied at all.
func (s *RAGService) Configured() bool {
	return s.index != nil
}

func (s *RAGService) IndexReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexReady
}

func (s *RAGService) ModelLoaded() bool {
	return s.embedder.Loaded()
}

func (s *RAGService) ModelName() string {
	return s.embedder.ModelName()
}

func (s *RAGService) IndexName() string {
	return s.indexName
}
