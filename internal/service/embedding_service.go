package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"rag-mecanico/pkg/config"

	"go.uber.org/zap"
)

// EmbeddingModel maps text to a fixed-length vector.
type EmbeddingModel interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Close() error
}

// ModelLoader opens an EmbeddingModel. It may download weights, so it is
// only called from EnsureReady.
type ModelLoader func(ctx context.Context) (EmbeddingModel, error)

// NewModelLoader picks the embedding provider from configuration and returns
// the loader plus the model name it will use.
func NewModelLoader(cfg *config.EmbeddingConfig, dimension int) (ModelLoader, string, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "hugot":
		return HugotLoader(cfg.Model, cfg.ModelDir), cfg.Model, nil
	case "openai":
		model := cfg.Model
		if strings.HasPrefix(model, "sentence-transformers/") {
			model = defaultOpenAIModel
		}
		return OpenAILoader(cfg.OpenAIAPIKey, model, dimension), model, nil
	default:
		return nil, "", fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// EmbeddingService lazily loads the model on first use and embeds
// normalized text with it.
type EmbeddingService struct {
	mu        sync.Mutex
	model     EmbeddingModel
	load      ModelLoader
	name      string
	dimension int
	logger    *zap.Logger
}

func NewEmbeddingService(load ModelLoader, name string, dimension int, logger *zap.Logger) *EmbeddingService {
	return &EmbeddingService{
		load:      load,
		name:      name,
		dimension: dimension,
		logger:    logger,
	}
}

// EnsureReady loads the model once. A failed load is retried on the next call.
func (s *EmbeddingService) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		return nil
	}
	if s.load == nil {
		return ErrUnavailable
	}

	model, err := s.load(ctx)
	if err != nil {
		s.logger.Error("Failed to load embedding model", zap.String("model", s.name), zap.Error(err))
		return unavailable(err)
	}

	s.model = model
	s.logger.Info("Embedding model loaded", zap.String("model", s.name), zap.Int("dimension", s.dimension))
	return nil
}

func (s *EmbeddingService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model != nil
}

func (s *EmbeddingService) ModelName() string {
	return s.name
}

func (s *EmbeddingService) Dimension() int {
	return s.dimension
}

// Embed normalizes text and returns its vector.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := s.EnsureReady(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	model := s.model
	s.mu.Unlock()

	vec, err := model.Embed(ctx, NormalizeText(text))
	if err != nil {
		return nil, unavailable(fmt.Errorf("failed to embed text: %w", err))
	}
	if len(vec) != s.dimension {
		return nil, fmt.Errorf("embedding has %d dimensions, index expects %d", len(vec), s.dimension)
	}
	return vec, nil
}

func (s *EmbeddingService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model == nil {
		return nil
	}
	err := s.model.Close()
	s.model = nil
	return err
}
