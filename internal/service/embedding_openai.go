package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = string(openai.SmallEmbedding3)

// EmbeddingsAPI is the subset of the OpenAI client used for embeddings.
type EmbeddingsAPI interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

type openAIModel struct {
	client    EmbeddingsAPI
	model     string
	dimension int
}

// OpenAILoader returns a ModelLoader backed by the OpenAI embeddings API.
// Vectors are requested at the index dimension and L2-normalized.
func OpenAILoader(apiKey, model string, dimension int) ModelLoader {
	return func(ctx context.Context) (EmbeddingModel, error) {
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return newOpenAIModel(openai.NewClient(apiKey), model, dimension), nil
	}
}

func newOpenAIModel(client EmbeddingsAPI, model string, dimension int) *openAIModel {
	return &openAIModel{client: client, model: model, dimension: dimension}
}

func (m *openAIModel) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := m.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model:      openai.EmbeddingModel(m.model),
		Input:      []string{text},
		Dimensions: m.dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("no embedding data returned from API")
	}

	vec := resp.Data[0].Embedding
	l2normalize(vec)
	return vec, nil
}

func (m *openAIModel) Close() error {
	return nil
}

func l2normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}
