package service

import (
	"context"

	"rag-mecanico/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockVectorIndex struct {
	mock.Mock
}

func (m *mockVectorIndex) EnsureIndex(ctx context.Context, dimension int) error {
	args := m.Called(ctx, dimension)
	return args.Error(0)
}

func (m *mockVectorIndex) Query(ctx context.Context, embedding []float32, topK int) ([]models.Match, error) {
	args := m.Called(ctx, embedding, topK)
	matches, _ := args.Get(0).([]models.Match)
	return matches, args.Error(1)
}

func (m *mockVectorIndex) Upsert(ctx context.Context, rec *models.KnowledgeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockVectorIndex) Describe(ctx context.Context) (*models.IndexStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.IndexStats)
	return stats, args.Error(1)
}

type mockSynthesizer struct {
	mock.Mock
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, req models.SynthesisRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	audio, _ := args.Get(0).([]byte)
	return audio, args.Error(1)
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, query string, topK int) ([]models.Match, error) {
	args := m.Called(ctx, query, topK)
	matches, _ := args.Get(0).([]models.Match)
	return matches, args.Error(1)
}

// fakeModel returns a fixed vector and counts calls.
type fakeModel struct {
	vec    []float32
	err    error
	calls  int
	inputs []string
	closed bool
}

func (f *fakeModel) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	f.inputs = append(f.inputs, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.vec, nil
}

func (f *fakeModel) Close() error {
	f.closed = true
	return nil
}

func loaderFor(model EmbeddingModel) ModelLoader {
	return func(context.Context) (EmbeddingModel, error) {
		return model, nil
	}
}
