package service

import (
	"context"
	"fmt"

	"rag-mecanico/internal/models"

	"go.uber.org/zap"
)

type HealthService struct {
	rag       *RAGService
	speech    *SpeechService
	agentName string
	voiceID   string
	logger    *zap.Logger
}

func NewHealthService(rag *RAGService, speech *SpeechService, agentName, voiceID string, logger *zap.Logger) *HealthService {
	return &HealthService{
		rag:       rag,
		speech:    speech,
		agentName: agentName,
		voiceID:   voiceID,
		logger:    logger,
	}
}

// Health never fails. Backend problems show up in VectorStoreStatus.
func (s *HealthService) Health(ctx context.Context) *models.HealthReport {
	report := &models.HealthReport{
		Status:                "healthy",
		AgentName:             s.agentName,
		SpeechConfigured:      s.speech.Configured(),
		VectorStoreConfigured: s.rag.Configured(),
		VectorStoreStatus:     models.VectorStoreDisconnected,
		EmbeddingModel:        s.rag.ModelName(),
		IndexName:             s.rag.IndexName(),
		VoiceService:          "Browser TTS",
	}
	if report.SpeechConfigured {
		report.VoiceService = fmt.Sprintf("AWS Polly - %s (generative/neural/standard)", s.voiceID)
	}

	if report.VectorStoreConfigured {
		stats, err := s.rag.Stats(ctx)
		if err != nil {
			s.logger.Warn("Health check: vector store not ready", zap.Error(err))
			report.VectorStoreStatus = models.VectorStoreError
		} else {
			report.VectorStoreStatus = models.VectorStoreConnected
			report.IndexStats = stats
		}
	}
	report.ModelLoaded = s.rag.ModelLoaded()

	return report
}

func (s *HealthService) IndexStatus(ctx context.Context) *models.IndexStatus {
	status := &models.IndexStatus{
		IndexName: s.rag.IndexName(),
		Agent:     s.agentName,
	}

	if s.rag.Configured() {
		stats, err := s.rag.Stats(ctx)
		if err != nil {
			s.logger.Warn("Index status: vector store not ready", zap.Error(err))
		} else {
			status.IndexExists = true
			status.IndexStats = stats
		}
	}
	status.ModelLoaded = s.rag.ModelLoaded()
	status.IndexReady = s.rag.IndexReady() && status.ModelLoaded

	return status
}
