package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"rag-mecanico/pkg/config"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddingService(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads once under concurrency", func(t *testing.T) {
		var mu sync.Mutex
		loads := 0
		model := &fakeModel{vec: []float32{1, 0, 0}}
		svc := NewEmbeddingService(func(context.Context) (EmbeddingModel, error) {
			mu.Lock()
			loads++
			mu.Unlock()
			return model, nil
		}, "fake", 3, zap.NewNop())

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, svc.EnsureReady(ctx))
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, loads)
		assert.True(t, svc.Loaded())
	})

	t.Run("Failed load is unavailable and retried", func(t *testing.T) {
		attempts := 0
		svc := NewEmbeddingService(func(context.Context) (EmbeddingModel, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("download failed")
			}
			return &fakeModel{vec: []float32{0, 1, 0}}, nil
		}, "fake", 3, zap.NewNop())

		err := svc.EnsureReady(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.False(t, svc.Loaded())

		require.NoError(t, svc.EnsureReady(ctx))
		assert.Equal(t, 2, attempts)
	})

	t.Run("Embed normalizes input", func(t *testing.T) {
		model := &fakeModel{vec: []float32{1, 0, 0}}
		svc := NewEmbeddingService(loaderFor(model), "fake", 3, zap.NewNop())

		vec, err := svc.Embed(ctx, "¿Cuántas rpm?")

		require.NoError(t, err)
		assert.Equal(t, []float32{1, 0, 0}, vec)
		assert.Equal(t, []string{"Cuántas RPM"}, model.inputs)
	})

	t.Run("Model failure is unavailable", func(t *testing.T) {
		svc := NewEmbeddingService(loaderFor(&fakeModel{err: errors.New("onnx")}), "fake", 3, zap.NewNop())

		_, err := svc.Embed(ctx, "motor")

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("Dimension mismatch", func(t *testing.T) {
		svc := NewEmbeddingService(loaderFor(&fakeModel{vec: []float32{1, 0}}), "fake", 3, zap.NewNop())

		_, err := svc.Embed(ctx, "motor")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expects 3")
	})

	t.Run("Close releases the model", func(t *testing.T) {
		model := &fakeModel{vec: []float32{1, 0, 0}}
		svc := NewEmbeddingService(loaderFor(model), "fake", 3, zap.NewNop())
		require.NoError(t, svc.EnsureReady(ctx))

		require.NoError(t, svc.Close())
		assert.True(t, model.closed)
		assert.False(t, svc.Loaded())
	})
}

type fakeEmbeddingsAPI struct {
	req  openai.EmbeddingRequest
	resp openai.EmbeddingResponse
	err  error
}

func (f *fakeEmbeddingsAPI) CreateEmbeddings(_ context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	f.req = conv.Convert()
	return f.resp, f.err
}

func TestOpenAIModel(t *testing.T) {
	t.Run("Requests the index dimension and normalizes", func(t *testing.T) {
		api := &fakeEmbeddingsAPI{resp: openai.EmbeddingResponse{
			Data: []openai.Embedding{{Embedding: []float32{3, 4}}},
		}}
		model := newOpenAIModel(api, "text-embedding-3-small", 2)

		vec, err := model.Embed(context.Background(), "motor")

		require.NoError(t, err)
		assert.Equal(t, 2, api.req.Dimensions)
		assert.Equal(t, openai.EmbeddingModel("text-embedding-3-small"), api.req.Model)
		assert.InDelta(t, 0.6, vec[0], 1e-6)
		assert.InDelta(t, 0.8, vec[1], 1e-6)
		assert.InDelta(t, 1.0, math.Hypot(float64(vec[0]), float64(vec[1])), 1e-6)
	})

	t.Run("Empty response", func(t *testing.T) {
		model := newOpenAIModel(&fakeEmbeddingsAPI{}, "m", 2)

		_, err := model.Embed(context.Background(), "motor")

		assert.Error(t, err)
	})

	t.Run("Loader requires an API key", func(t *testing.T) {
		_, err := OpenAILoader("", "m", 2)(context.Background())

		assert.Error(t, err)
	})
}

func TestNewModelLoader(t *testing.T) {
	_, name, err := NewModelLoader(&config.EmbeddingConfig{Provider: "hugot", Model: "sentence-transformers/all-MiniLM-L6-v2"}, 384)
	require.NoError(t, err)
	assert.Equal(t, "sentence-transformers/all-MiniLM-L6-v2", name)

	_, name, err = NewModelLoader(&config.EmbeddingConfig{Provider: "openai", Model: "sentence-transformers/all-MiniLM-L6-v2"}, 384)
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", name)

	_, _, err = NewModelLoader(&config.EmbeddingConfig{Provider: "bert"}, 384)
	assert.Error(t, err)
}
