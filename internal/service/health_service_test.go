package service

import (
	"context"
	"testing"

	"rag-mecanico/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestHealthService(t *testing.T) {
	ctx := context.Background()

	t.Run("Vector store not configured", func(t *testing.T) {
		rag := newTestRAG(nil, &fakeModel{vec: []float32{1, 0, 0}})
		speech := NewSpeechService(nil, testSpeechConfig, zap.NewNop())
		svc := NewHealthService(rag, speech, "Miguel", "Miguel", zap.NewNop())

		report := svc.Health(ctx)

		assert.Equal(t, "healthy", report.Status)
		assert.False(t, report.VectorStoreConfigured)
		assert.Equal(t, models.VectorStoreDisconnected, report.VectorStoreStatus)
		assert.False(t, report.SpeechConfigured)
		assert.Equal(t, "Browser TTS", report.VoiceService)
		assert.Equal(t, "mecanica_vehiculos", report.IndexName)
	})

	t.Run("Connected store reports stats", func(t *testing.T) {
		index := new(mockVectorIndex)
		index.On("EnsureIndex", mock.Anything, 3).Return(nil)
		index.On("Describe", mock.Anything).Return(&models.IndexStats{Name: "mecanica_vehiculos", Count: 12, Dimension: 3, Metric: "cosine"}, nil)
		rag := newTestRAG(index, &fakeModel{vec: []float32{1, 0, 0}})
		speech := NewSpeechService(new(mockSynthesizer), testSpeechConfig, zap.NewNop())
		svc := NewHealthService(rag, speech, "Miguel", "Miguel", zap.NewNop())

		report := svc.Health(ctx)

		assert.Equal(t, models.VectorStoreConnected, report.VectorStoreStatus)
		assert.Equal(t, int64(12), report.IndexStats.Count)
		assert.True(t, report.ModelLoaded)
		assert.True(t, report.SpeechConfigured)
		assert.Contains(t, report.VoiceService, "Miguel")

		status := svc.IndexStatus(ctx)
		assert.True(t, status.IndexReady)
		assert.True(t, status.IndexExists)
		assert.Equal(t, "Miguel", status.Agent)
	})

	t.Run("Store errors do not fail the health check", func(t *testing.T) {
		index := new(mockVectorIndex)
		index.On("EnsureIndex", mock.Anything, 3).Return(assert.AnError)
		rag := newTestRAG(index, &fakeModel{vec: []float32{1, 0, 0}})
		svc := NewHealthService(rag, NewSpeechService(nil, testSpeechConfig, zap.NewNop()), "Miguel", "Miguel", zap.NewNop())

		report := svc.Health(ctx)

		assert.Equal(t, "healthy", report.Status)
		assert.Equal(t, models.VectorStoreError, report.VectorStoreStatus)
		assert.Nil(t, report.IndexStats)

		status := svc.IndexStatus(ctx)
		assert.False(t, status.IndexReady)
		assert.False(t, status.IndexExists)
	})
}
